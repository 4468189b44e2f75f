package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/review-relay/internal/domain"
)

// maxResponseBytes caps how much of a workflow response is relayed back.
const maxResponseBytes = 1 << 20

// Forwarder delivers reviewer decisions to the workflow engine.
// Deliveries are attempted exactly once.
type Forwarder struct {
	editURL    string
	actionURL  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewForwarder creates a Forwarder for the given edit and action endpoints.
func NewForwarder(editURL, actionURL string, timeout time.Duration, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		editURL:    editURL,
		actionURL:  actionURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "webhook"),
	}
}

// Forward POSTs payload as JSON to the endpoint selected by target.
// Any HTTP response, including non-2xx, is returned verbatim; only a failure
// to obtain a response yields a *domain.DeliveryError.
func (f *Forwarder) Forward(ctx context.Context, target domain.WebhookTarget, payload domain.WebhookPayload) (*domain.Delivery, error) {
	reqURL, err := f.endpoint(target, payload)
	if err != nil {
		return nil, &domain.DeliveryError{Target: target, Err: err}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return nil, &domain.DeliveryError{Target: target, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.ErrorContext(ctx, "webhook request failed",
			slog.String("target", target.String()),
			slog.String("request_id", payload.RequestID),
			slog.String("error", err.Error()),
		)
		return nil, &domain.DeliveryError{Target: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.DeliveryError{Target: target, Err: fmt.Errorf("read body: %w", err)}
	}

	f.log.InfoContext(ctx, "webhook delivered",
		slog.String("target", target.String()),
		slog.String("request_id", payload.RequestID),
		slog.String("action", payload.Action.String()),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	return &domain.Delivery{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// endpoint resolves the URL for target. Action deliveries repeat the
// decision in the query string so the workflow can route without parsing JSON.
func (f *Forwarder) endpoint(target domain.WebhookTarget, payload domain.WebhookPayload) (string, error) {
	if target != domain.WebhookTargetAction {
		return f.editURL, nil
	}

	u, err := url.Parse(f.actionURL)
	if err != nil {
		return "", fmt.Errorf("parse action url: %w", err)
	}
	q := u.Query()
	q.Set("action", payload.Action.String())
	q.Set("requestId", payload.RequestID)
	q.Set("email", payload.Email)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
