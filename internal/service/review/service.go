// Package review orchestrates the edit request lifecycle: issuing links,
// finalizing reviewer decisions and relaying them to the workflow engine.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/review-relay/internal/domain"
)

//go:generate moq -out store_mock_test.go -pkg review . requestStore
//go:generate moq -out forwarder_mock_test.go -pkg review . forwarder
//go:generate moq -out rewriter_mock_test.go -pkg review . rewriter

type requestStore interface {
	Create(ctx context.Context, contactEmail, subject, body string) (*domain.EditRequest, error)
	Get(ctx context.Context, id string) (*domain.EditRequest, error)
	Finalize(ctx context.Context, id, subject, body string, action domain.Action) (*domain.EditRequest, bool, error)
	ClaimDelivery(ctx context.Context, id string) (*domain.EditRequest, bool, error)
	SettleDelivery(ctx context.Context, id string, delivered bool)
	TTL() time.Duration
}

type forwarder interface {
	Forward(ctx context.Context, target domain.WebhookTarget, payload domain.WebhookPayload) (*domain.Delivery, error)
}

type rewriter interface {
	Rewrite(ctx context.Context, currentBody, feedback string) (string, error)
}

// Config holds the service's policy knobs.
type Config struct {
	// Source tags every webhook payload that does not carry its own.
	Source         string
	WebhookTimeout time.Duration
	RewriteTimeout time.Duration
}

// Service provides the review workflow operations.
type Service struct {
	store     requestStore
	forwarder forwarder
	rewriter  rewriter
	clock     clockwork.Clock
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new review Service.
func NewService(
	log *slog.Logger,
	store requestStore,
	fwd forwarder,
	rw rewriter,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	return &Service{
		store:     store,
		forwarder: fwd,
		rewriter:  rw,
		clock:     clock,
		cfg:       cfg,
		log:       log.With("service", "review"),
	}
}

// detach returns a context that survives client disconnects but is bounded
// by timeout. Outbound calls use it so an issued call runs to completion.
func detach(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

// timestamp renders t the way payload consumers expect (UTC, millisecond precision).
func timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
