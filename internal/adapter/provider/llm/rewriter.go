package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/tidwall/gjson"

	"github.com/heartmarshall/review-relay/internal/config"
	"github.com/heartmarshall/review-relay/internal/domain"
)

// Rewriter rewrites email bodies through the Anthropic Messages API.
type Rewriter struct {
	client    anthropic.Client
	enabled   bool
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewRewriter creates a Rewriter. A config without an API key yields a
// Rewriter whose every call fails with domain.ErrRewriteUnavailable.
func NewRewriter(cfg config.RewriteConfig, logger *slog.Logger) *Rewriter {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Rewriter{
		client:    anthropic.NewClient(opts...),
		enabled:   cfg.Enabled(),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "llm"),
	}
}

// Rewrite returns a new version of currentBody that applies the reviewer's feedback.
// Failures are always *domain.RewriteError.
func (r *Rewriter) Rewrite(ctx context.Context, currentBody, feedback string) (string, error) {
	if !r.enabled {
		return "", &domain.RewriteError{Kind: domain.ErrRewriteUnavailable}
	}

	start := time.Now()
	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(r.model),
		MaxTokens: r.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(currentBody, feedback))),
		},
	})
	if err != nil {
		rerr := classify(err)
		r.log.WarnContext(ctx, "rewrite failed",
			slog.String("kind", rerr.Kind.Error()),
			slog.Int("status", rerr.Status),
			slog.String("error", err.Error()),
		)
		return "", rerr
	}

	text := firstText(msg)
	if text == "" {
		r.log.WarnContext(ctx, "rewrite returned no text", slog.String("stop_reason", string(msg.StopReason)))
		return "", &domain.RewriteError{Kind: domain.ErrRewriteProtocol, Message: "response contained no text"}
	}

	r.log.InfoContext(ctx, "rewrite completed",
		slog.Duration("duration", time.Since(start)),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

// firstText returns the first non-empty text block of the response.
func firstText(msg *anthropic.Message) string {
	if msg == nil {
		return ""
	}
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		if text := strings.TrimSpace(block.Text); text != "" {
			return text
		}
	}
	return ""
}

// classify maps an SDK error onto a rewrite category.
func classify(err error) *domain.RewriteError {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		msg := providerMessage(apiErr.RawJSON())
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return &domain.RewriteError{Kind: domain.ErrRewriteAuth, Status: status, Message: msg}
		case status == http.StatusTooManyRequests:
			return &domain.RewriteError{Kind: domain.ErrRewriteRateLimit, Status: status, Message: msg}
		default:
			return &domain.RewriteError{Kind: domain.ErrRewriteProvider, Status: status, Message: msg}
		}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &domain.RewriteError{Kind: domain.ErrRewriteNetwork, Message: err.Error()}
	}

	return &domain.RewriteError{Kind: domain.ErrRewriteProtocol, Message: err.Error()}
}

// providerMessage extracts error.message from an API error body, if present.
func providerMessage(raw string) string {
	if raw == "" || !gjson.Valid(raw) {
		return ""
	}
	return gjson.Get(raw, "error.message").String()
}

func buildPrompt(currentBody, feedback string) string {
	return fmt.Sprintf(`You are editing an outgoing email on behalf of a human reviewer.

Current email body:
"""
%s
"""

Reviewer feedback:
"""
%s
"""

Rewrite the email body so that it follows the feedback. Keep the original intent, facts and
language unless the feedback says otherwise.

Output ONLY the rewritten email body, no subject line, no explanations, no markdown fences.`, currentBody, feedback)
}
