package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.BaseURL != "" {
		if err := validateHTTPURL(c.Server.BaseURL); err != nil {
			return fmt.Errorf("server.base_url: %w", err)
		}
		c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.Webhook.validate(); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	if err := c.Rewrite.validate(); err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}

	if c.Requests.TTL <= 0 {
		return fmt.Errorf("requests.ttl must be > 0 (got %v)", c.Requests.TTL)
	}
	if c.Requests.SweepInterval <= 0 {
		return fmt.Errorf("requests.sweep_interval must be > 0 (got %v)", c.Requests.SweepInterval)
	}

	if c.RateLimit.MaxRequests <= 0 {
		return fmt.Errorf("rate_limit.max_requests must be > 0 (got %d)", c.RateLimit.MaxRequests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be > 0 (got %v)", c.RateLimit.Window)
	}
	if c.RateLimit.SweepInterval <= 0 {
		return fmt.Errorf("rate_limit.sweep_interval must be > 0 (got %v)", c.RateLimit.SweepInterval)
	}

	return nil
}

func (w *WebhookConfig) validate() error {
	if err := validateHTTPURL(w.EditURL); err != nil {
		return fmt.Errorf("edit_url: %w", err)
	}
	if err := validateHTTPURL(w.ActionURL); err != nil {
		return fmt.Errorf("action_url: %w", err)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", w.Timeout)
	}
	return nil
}

func (r *RewriteConfig) validate() error {
	if r.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", r.MaxTokens)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", r.Timeout)
	}
	if r.BaseURL != "" {
		if err := validateHTTPURL(r.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	return nil
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
