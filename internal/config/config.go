package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	LLM       LLMConfig       `yaml:"llm" mapstructure:"llm"`
	Gemini    GeminiConfig    `yaml:"gemini" mapstructure:"gemini"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Catalog   CatalogConfig   `yaml:"catalog" mapstructure:"catalog"`
	Retrieval RetrievalConfig `yaml:"retrieval" mapstructure:"retrieval"`
	Tagging   TaggingConfig   `yaml:"tagging" mapstructure:"tagging"`
	Pricing   PricingConfig   `yaml:"pricing" mapstructure:"pricing"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// LLMConfig selects the generative model provider.
type LLMConfig struct {
	Provider    string   `yaml:"provider" mapstructure:"provider"`
	TimeoutSecs int      `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	Temperature *float64 `yaml:"temperature" mapstructure:"temperature"`
}

// Timeout returns the per-call deadline.
func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// GeminiConfig holds Google Gemini API settings.
type GeminiConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	Model   string `yaml:"model" mapstructure:"model"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
}

// CatalogConfig locates the tagged product dataset.
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// RetrievalConfig configures candidate retrieval.
type RetrievalConfig struct {
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// TaggingConfig configures the offline tagging run.
type TaggingConfig struct {
	Input             string `yaml:"input" mapstructure:"input"`
	Output            string `yaml:"output" mapstructure:"output"`
	MaxProducts       int    `yaml:"max_products" mapstructure:"max_products"`
	BatchSize         int    `yaml:"batch_size" mapstructure:"batch_size"`
	BatchDelaySecs    int    `yaml:"batch_delay_secs" mapstructure:"batch_delay_secs"`
	RequestsPerMinute int    `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	RetryAttempts     int    `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	RetryBackoffSecs  int    `yaml:"retry_backoff_secs" mapstructure:"retry_backoff_secs"`
}

// PricingConfig holds per-provider token pricing (USD per million tokens).
type PricingConfig struct {
	Gemini    map[string]ModelPricing `yaml:"gemini" mapstructure:"gemini"`
	Anthropic map[string]ModelPricing `yaml:"anthropic" mapstructure:"anthropic"`
}

// ModelPricing holds per-model token pricing.
type ModelPricing struct {
	Input  float64 `yaml:"input" mapstructure:"input"`
	Output float64 `yaml:"output" mapstructure:"output"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port                int      `yaml:"port" mapstructure:"port"`
	CORSOrigins         []string `yaml:"cors_origins" mapstructure:"cors_origins"`
	ShutdownTimeoutSecs int      `yaml:"shutdown_timeout_secs" mapstructure:"shutdown_timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, config.yaml and the environment.
// Environment wins over the file; ADVISOR_ prefixed keys map onto the
// dotted names (ADVISOR_LLM_PROVIDER -> llm.provider).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("gemini.key", "ADVISOR_GEMINI_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("anthropic.key", "ADVISOR_ANTHROPIC_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.temperature")

	// Defaults
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("catalog.path", "fashion_products_tagged.json")
	v.SetDefault("retrieval.limit", 30)
	v.SetDefault("tagging.input", "fashion_products.json")
	v.SetDefault("tagging.output", "fashion_products_tagged.json")
	v.SetDefault("tagging.max_products", 240)
	v.SetDefault("tagging.batch_size", 5)
	v.SetDefault("tagging.batch_delay_secs", 30)
	v.SetDefault("tagging.requests_per_minute", 0)
	v.SetDefault("tagging.retry_attempts", 1)
	v.SetDefault("tagging.retry_backoff_secs", 10)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000", "http://localhost:8501"})
	v.SetDefault("server.shutdown_timeout_secs", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("pricing.gemini", map[string]any{
		"gemini-2.5-flash": map[string]any{"input": 0.30, "output": 2.50},
	})
	v.SetDefault("pricing.anthropic", map[string]any{
		"claude-haiku-4-5-20251001": map[string]any{"input": 0.80, "output": 4.00},
	})

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command needs. mode is one of
// "recommend", "serve" or "tag"; every mode calls the model, so all of them
// require the selected provider's API key.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "recommend", "serve", "tag":
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	switch c.LLM.Provider {
	case "gemini":
		if c.Gemini.Key == "" {
			errs = append(errs, "gemini.key is required (set GEMINI_API_KEY)")
		}
		if c.Gemini.Model == "" {
			errs = append(errs, "gemini.model is required")
		}
	case "anthropic":
		if c.Anthropic.Key == "" {
			errs = append(errs, "anthropic.key is required (set ANTHROPIC_API_KEY)")
		}
		if c.Anthropic.Model == "" {
			errs = append(errs, "anthropic.model is required")
		}
		if c.Anthropic.MaxTokens <= 0 {
			errs = append(errs, "anthropic.max_tokens must be > 0")
		}
	default:
		errs = append(errs, fmt.Sprintf("llm.provider must be gemini or anthropic, got %q", c.LLM.Provider))
	}
	if c.LLM.TimeoutSecs <= 0 {
		errs = append(errs, "llm.timeout_secs must be > 0")
	}

	switch mode {
	case "recommend":
		if c.Catalog.Path == "" {
			errs = append(errs, "catalog.path is required")
		}
	case "serve":
		if c.Catalog.Path == "" {
			errs = append(errs, "catalog.path is required")
		}
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
	case "tag":
		if c.Tagging.BatchSize <= 0 {
			errs = append(errs, "tagging.batch_size must be > 0")
		}
		if c.Tagging.MaxProducts <= 0 {
			errs = append(errs, "tagging.max_products must be > 0")
		}
		if c.Tagging.BatchDelaySecs < 0 {
			errs = append(errs, "tagging.batch_delay_secs must be >= 0")
		}
		if c.Tagging.RetryAttempts < 1 {
			errs = append(errs, "tagging.retry_attempts must be >= 1")
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
