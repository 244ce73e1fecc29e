package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "./config.yaml"
)

// Load reads configuration from a YAML file and environment variables, then validates it.
// Priority: ENV > YAML > env-default tags.
// The file comes from CONFIG_PATH (fallback ./config.yaml). A missing fallback file is
// not an error; a missing explicit file is.
func Load() (*Config, error) {
	path, explicit := resolvePath()

	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func resolvePath() (string, bool) {
	if path := os.Getenv(configPathEnv); path != "" {
		return path, true
	}
	return defaultConfigPath, false
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: %s=%s: %w", configPathEnv, path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
