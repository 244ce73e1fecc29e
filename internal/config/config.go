package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Generation GenerationConfig `yaml:"generation"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds identity and token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"ielts-progressor"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	HookSecret       string        `yaml:"hook_secret"        env:"AUTH_HOOK_SECRET"`
}

// Generation backends.
const (
	BackendWatsonx   = "watsonx"
	BackendAnthropic = "anthropic"
)

// GenerationConfig holds text-generation backend settings.
type GenerationConfig struct {
	Backend       string        `yaml:"backend"        env:"GENERATION_BACKEND"        env-default:"watsonx"`
	APIKey        string        `yaml:"api_key"        env:"GENERATION_API_KEY"`
	ProjectID     string        `yaml:"project_id"     env:"GENERATION_PROJECT_ID"`
	TokenURL      string        `yaml:"token_url"      env:"GENERATION_TOKEN_URL"      env-default:"https://iam.cloud.ibm.com/identity/token"`
	GenerationURL string        `yaml:"generation_url" env:"GENERATION_URL"            env-default:"https://us-south.ml.cloud.ibm.com/ml/v1/text/generation?version=2023-05-29"`
	PassageModel  string        `yaml:"passage_model"  env:"GENERATION_PASSAGE_MODEL"  env-default:"meta-llama/llama-3-405b-instruct"`
	ScoringModel  string        `yaml:"scoring_model"  env:"GENERATION_SCORING_MODEL"  env-default:"meta-llama/llama-3-70b-instruct"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"   env:"GENERATION_HTTP_TIMEOUT"   env-default:"60s"`

	AnthropicAPIKey       string `yaml:"anthropic_api_key"       env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL      string `yaml:"anthropic_base_url"      env:"ANTHROPIC_BASE_URL"`
	AnthropicPassageModel string `yaml:"anthropic_passage_model" env:"ANTHROPIC_PASSAGE_MODEL" env-default:"claude-sonnet-4-5"`
	AnthropicScoringModel string `yaml:"anthropic_scoring_model" env:"ANTHROPIC_SCORING_MODEL" env-default:"claude-haiku-4-5"`
}

// Dictionary providers.
const (
	DictionaryFreeDict = "freedict"
	DictionaryStub     = "stub"
)

// DictionaryConfig holds word-meaning lookup settings.
type DictionaryConfig struct {
	Provider    string        `yaml:"provider"     env:"DICTIONARY_PROVIDER"     env-default:"freedict"`
	BaseURL     string        `yaml:"base_url"     env:"DICTIONARY_BASE_URL"     env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"DICTIONARY_HTTP_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
