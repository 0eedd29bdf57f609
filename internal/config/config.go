package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins feeds the CORS policy; "*" allows any origin
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`

	// MaxConcurrentRequests caps requests in flight at once
	MaxConcurrentRequests int `mapstructure:"max_concurrent_requests" validate:"gt=0"`

	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the adapter: "openai" or "gemini"
	Provider string `mapstructure:"provider" validate:"required,oneof=openai gemini"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`
	OpenAIModel   string `mapstructure:"openai_model" validate:"required_if=Provider openai"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`

	GeminiAPIKey  string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	GeminiModel   string `mapstructure:"gemini_model" validate:"required_if=Provider gemini"`
	GeminiBaseURL string `mapstructure:"gemini_base_url" validate:"omitempty,url"`

	// RequestTimeout bounds every provider call
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`

	// RetryBackoff is the wait before the single retry of a transient failure
	RetryBackoff time.Duration `mapstructure:"retry_backoff" validate:"gte=0"`

	// StrictTeamShape rejects teams that are not 6 members with 4 moves each
	StrictTeamShape bool `mapstructure:"strict_team_shape"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
