package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/review-relay/internal/domain"
)

// SubmitResult describes the outcome of a reviewer decision.
type SubmitResult struct {
	// Request is the stored state after finalize; nil for ad-hoc drafts.
	Request *domain.EditRequest
	// Delivery is the workflow's verbatim response; nil when nothing was forwarded.
	Delivery *domain.Delivery
	// Duplicate is set when the request had already been submitted. The stored
	// record is left untouched.
	Duplicate bool
	// Redelivered is set when a duplicate found the first delivery missing and
	// the stored record was forwarded again. Delivery holds that response.
	Redelivered bool
}

// SubmitDirect finalizes id as an edit without notifying the workflow.
func (s *Service) SubmitDirect(ctx context.Context, id, subject, body string) (*SubmitResult, error) {
	input := SubmitInput{RequestID: id, Subject: subject, Body: body, Action: domain.ActionEdit}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, first, err := s.store.Finalize(ctx, id, subject, body, domain.ActionEdit)
	if err != nil {
		return nil, fmt.Errorf("finalize %s: %w", id, err)
	}

	if first {
		// Nothing is owed to the workflow for a direct submission.
		s.store.SettleDelivery(ctx, id, true)
	}

	s.log.InfoContext(ctx, "edit request submitted directly",
		slog.String("request_id", id),
		slog.Bool("duplicate", !first),
	)
	return &SubmitResult{Request: req, Duplicate: !first}, nil
}

// Submit handles a decision posted to the edit webhook. The action defaults
// to edit. Without a request id the draft is ad-hoc: it is forwarded as-is
// and no store entry is touched.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.RequestID == "" {
		return s.forwardAdHoc(ctx, input)
	}
	return s.finalizeAndForward(ctx, input)
}

// SubmitAction handles an approve or stop decision for a stored request.
func (s *Service) SubmitAction(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	var errs []domain.FieldError
	if input.RequestID == "" {
		errs = append(errs, domain.FieldError{Field: "requestId", Message: "required"})
	}
	if input.Action != domain.ActionApprove && input.Action != domain.ActionStop {
		errs = append(errs, domain.FieldError{Field: "action", Message: "must be one of: approve stop"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.finalizeAndForward(ctx, input)
}

// finalizeAndForward commits the decision locally, then delivers it.
// Local state stays submitted even when delivery fails. A later submission
// for the same id re-sends the stored record until the workflow accepts it;
// it never replaces the text committed first.
func (s *Service) finalizeAndForward(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	id := input.RequestID
	action := input.action()
	subject, body := input.Subject, input.Body

	// approve and stop without text carry the stored draft. Only Finalize
	// mutates a draft, so reading it first cannot lose an update.
	if blank(subject) && blank(body) {
		current, err := s.store.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load draft %s: %w", id, err)
		}
		subject, body = current.Subject, current.Body
	}

	_, first, err := s.store.Finalize(ctx, id, subject, body, action)
	if err != nil {
		return nil, fmt.Errorf("finalize %s: %w", id, err)
	}

	req, claimed, err := s.store.ClaimDelivery(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("claim delivery %s: %w", id, err)
	}
	if !claimed {
		s.log.InfoContext(ctx, "duplicate submission ignored",
			slog.String("request_id", id),
			slog.String("action", action.String()),
			slog.String("stored_action", req.Action.String()),
			slog.Bool("delivered", req.Delivered),
		)
		return &SubmitResult{Request: req, Duplicate: true}, nil
	}

	email := req.ContactEmail
	if email == "" {
		email = input.Email
	}
	payload := domain.WebhookPayload{
		RequestID: req.ID,
		Email:     email,
		Subject:   req.Subject,
		Body:      req.Body,
		Action:    req.Action,
		Timestamp: timestamp(*req.SubmittedAt),
		Source:    s.source(input.Source),
	}

	if !first {
		s.log.WarnContext(ctx, "re-sending undelivered decision",
			slog.String("request_id", id),
			slog.String("stored_action", req.Action.String()),
		)
	}

	delivery, err := s.forward(ctx, req.Action.Target(), payload)
	s.store.SettleDelivery(ctx, id, err == nil && accepted(delivery.StatusCode))
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Request: req, Delivery: delivery, Duplicate: !first, Redelivered: !first}, nil
}

// accepted reports whether the workflow took the decision.
func accepted(status int) bool {
	return status >= 200 && status < 300
}

func (s *Service) forwardAdHoc(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	action := input.action()
	payload := domain.WebhookPayload{
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		Action:    action,
		Timestamp: timestamp(s.clock.Now()),
		Source:    s.source(input.Source),
	}

	delivery, err := s.forward(ctx, action.Target(), payload)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Delivery: delivery}, nil
}

func (s *Service) forward(ctx context.Context, target domain.WebhookTarget, payload domain.WebhookPayload) (*domain.Delivery, error) {
	callCtx, cancel := detach(ctx, s.cfg.WebhookTimeout)
	defer cancel()

	delivery, err := s.forwarder.Forward(callCtx, target, payload)
	if err != nil {
		s.log.ErrorContext(ctx, "decision not delivered",
			slog.String("request_id", payload.RequestID),
			slog.String("target", target.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("forward decision: %w", err)
	}

	s.log.InfoContext(ctx, "decision forwarded",
		slog.String("request_id", payload.RequestID),
		slog.String("action", payload.Action.String()),
		slog.Int("remote_status", delivery.StatusCode),
	)
	return delivery, nil
}

func (s *Service) source(fromClient string) string {
	if fromClient != "" {
		return fromClient
	}
	return s.cfg.Source
}
