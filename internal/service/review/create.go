package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/review-relay/internal/domain"
)

// CreateResult is a freshly issued edit request.
type CreateResult struct {
	Request   *domain.EditRequest
	ExpiresIn time.Duration
}

// Create stores a new pending draft and returns it together with its lifetime.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.store.Create(ctx, strings.TrimSpace(input.Email), input.Subject, input.Body)
	if err != nil {
		return nil, fmt.Errorf("create edit request: %w", err)
	}

	s.log.InfoContext(ctx, "edit request created",
		slog.String("request_id", req.ID),
		slog.Bool("has_email", req.ContactEmail != ""),
		slog.Int("subject_len", len(req.Subject)),
		slog.Int("body_len", len(req.Body)),
	)

	return &CreateResult{Request: req, ExpiresIn: s.store.TTL()}, nil
}

// Get returns the edit request for id.
// Returns domain.ErrNotFound or domain.ErrExpired when it cannot be loaded.
func (s *Service) Get(ctx context.Context, id string) (*domain.EditRequest, error) {
	req, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get edit request %s: %w", id, err)
	}
	return req, nil
}
