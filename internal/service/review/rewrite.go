package review

import (
	"context"
	"fmt"
	"log/slog"
)

// Rewrite asks the AI provider for a new body that applies feedback.
// It never touches stored drafts. Provider failures are *domain.RewriteError.
func (s *Service) Rewrite(ctx context.Context, input RewriteInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	callCtx, cancel := detach(ctx, s.cfg.RewriteTimeout)
	defer cancel()

	body, err := s.rewriter.Rewrite(callCtx, input.CurrentBody, input.Feedback)
	if err != nil {
		return "", fmt.Errorf("rewrite: %w", err)
	}

	s.log.InfoContext(ctx, "draft rewritten",
		slog.Int("before_len", len(input.CurrentBody)),
		slog.Int("after_len", len(body)),
	)
	return body, nil
}
