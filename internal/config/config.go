package config

import (
	"strings"
	"time"
)

// Placeholder webhook URLs used when none are configured. The relay still
// starts with them so the editor can be tried out, but deliveries will fail.
const (
	PlaceholderEditWebhookURL   = "https://your-n8n-instance.com/webhook/your-webhook-id"
	PlaceholderActionWebhookURL = "https://your-n8n-instance.com/webhook/your-action-webhook-id"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Rewrite   RewriteConfig   `yaml:"rewrite"`
	Requests  RequestsConfig  `yaml:"requests"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET, POST, OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"PORT"        env-default:"3000"`
	// BaseURL is the externally reachable origin used to build edit links.
	// When empty it is derived from each request's Host header.
	BaseURL         string        `yaml:"base_url"         env:"BASE_URL"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// WebhookConfig holds the downstream workflow endpoints.
type WebhookConfig struct {
	EditURL   string        `yaml:"edit_url"   env:"N8N_WEBHOOK_URL"        env-default:"https://your-n8n-instance.com/webhook/your-webhook-id"`
	ActionURL string        `yaml:"action_url" env:"N8N_ACTION_WEBHOOK_URL" env-default:"https://your-n8n-instance.com/webhook/your-action-webhook-id"`
	Source    string        `yaml:"source"     env:"WEBHOOK_SOURCE"         env-default:"email-editor"`
	Timeout   time.Duration `yaml:"timeout"    env:"WEBHOOK_TIMEOUT"        env-default:"30s"`
}

// UsesPlaceholders reports whether either endpoint is still the documented placeholder.
func (c WebhookConfig) UsesPlaceholders() bool {
	return c.EditURL == PlaceholderEditWebhookURL || c.ActionURL == PlaceholderActionWebhookURL
}

// RewriteConfig holds AI rewrite provider settings.
type RewriteConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string        `yaml:"model"      env:"REWRITE_MODEL"      env-default:"claude-sonnet-4-5"`
	BaseURL   string        `yaml:"base_url"   env:"REWRITE_BASE_URL"`
	MaxTokens int64         `yaml:"max_tokens" env:"REWRITE_MAX_TOKENS" env-default:"2048"`
	Timeout   time.Duration `yaml:"timeout"    env:"REWRITE_TIMEOUT"    env-default:"30s"`
}

// Enabled reports whether an API key is configured.
func (c RewriteConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// RequestsConfig holds edit request lifecycle settings.
type RequestsConfig struct {
	TTL           time.Duration `yaml:"ttl"            env:"REQUEST_TTL"            env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"REQUEST_SWEEP_INTERVAL" env-default:"1h"`
}

// RateLimitConfig holds per-client sliding window settings.
type RateLimitConfig struct {
	MaxRequests   int           `yaml:"max_requests"   env:"RATE_LIMIT_MAX"            env-default:"10"`
	Window        time.Duration `yaml:"window"         env:"RATE_LIMIT_WINDOW"         env-default:"1m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"RATE_LIMIT_SWEEP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
