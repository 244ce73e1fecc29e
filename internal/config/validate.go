package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	switch g.Backend {
	case BackendWatsonx:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for backend %q", g.Backend)
		}
		if g.ProjectID == "" {
			return fmt.Errorf("project_id is required for backend %q", g.Backend)
		}
		if g.TokenURL == "" || g.GenerationURL == "" {
			return fmt.Errorf("token_url and generation_url are required for backend %q", g.Backend)
		}
		if g.PassageModel == "" || g.ScoringModel == "" {
			return fmt.Errorf("passage_model and scoring_model are required")
		}
	case BackendAnthropic:
		if g.AnthropicAPIKey == "" {
			return fmt.Errorf("anthropic_api_key is required for backend %q", g.Backend)
		}
		if g.AnthropicPassageModel == "" || g.AnthropicScoringModel == "" {
			return fmt.Errorf("anthropic_passage_model and anthropic_scoring_model are required")
		}
	default:
		return fmt.Errorf("unknown backend %q", g.Backend)
	}

	if g.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %v)", g.HTTPTimeout)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	switch d.Provider {
	case DictionaryFreeDict:
		if d.BaseURL == "" {
			return fmt.Errorf("base_url is required for provider %q", d.Provider)
		}
		if d.HTTPTimeout <= 0 {
			return fmt.Errorf("http_timeout must be > 0 (got %v)", d.HTTPTimeout)
		}
	case DictionaryStub:
	default:
		return fmt.Errorf("unknown provider %q", d.Provider)
	}
	return nil
}
