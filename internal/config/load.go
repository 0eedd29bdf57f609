package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable,
// e.g. TEAMBUILDER_LLM_PROVIDER for llm.provider.
const EnvPrefix = "TEAMBUILDER"

// Load configuration from defaults, an optional config file and environment
// variables. Environment variables take precedence over values from config
// files. An empty path searches for config.yaml in the working directory;
// a missing file is not an error unless path was given explicitly.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider SDK conventions work without the prefix too.
	for key, env := range map[string]string{
		"llm.openai_api_key": "OPENAI_API_KEY",
		"llm.gemini_api_key": "GEMINI_API_KEY",
	} {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_concurrent_requests", 100)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 2*time.Minute)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_model", "gpt-4.1-mini")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.gemini_model", "gemini-2.0-flash")
	v.SetDefault("llm.gemini_base_url", "")
	v.SetDefault("llm.request_timeout", 15*time.Second)
	v.SetDefault("llm.retry_backoff", time.Second)
	v.SetDefault("llm.strict_team_shape", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
