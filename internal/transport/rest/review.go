package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/review-relay/internal/domain"
	"github.com/heartmarshall/review-relay/internal/service/review"
)

//go:generate moq -out review_service_mock_test.go -pkg rest . reviewService

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	Create(ctx context.Context, input review.CreateInput) (*review.CreateResult, error)
	Get(ctx context.Context, id string) (*domain.EditRequest, error)
	SubmitDirect(ctx context.Context, id, subject, body string) (*review.SubmitResult, error)
	Submit(ctx context.Context, input review.SubmitInput) (*review.SubmitResult, error)
	SubmitAction(ctx context.Context, input review.SubmitInput) (*review.SubmitResult, error)
	Rewrite(ctx context.Context, input review.RewriteInput) (string, error)
}

// ReviewHandler serves the edit request endpoints.
type ReviewHandler struct {
	svc          reviewService
	baseURL      string
	maxBodyBytes int64
	log          *slog.Logger
}

// NewReviewHandler creates a ReviewHandler. An empty baseURL makes edit
// links follow the host the request arrived on.
func NewReviewHandler(svc reviewService, baseURL string, maxBodyBytes int64, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc:          svc,
		baseURL:      strings.TrimRight(baseURL, "/"),
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "review"),
	}
}

type createResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
	EditLink  string `json:"editLink"`
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

type statusMissingResponse struct {
	Found  bool   `json:"found"`
	Status string `json:"status"`
}

type statusResponse struct {
	Found       bool       `json:"found"`
	Status      string     `json:"status"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Action      string     `json:"action,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

type submitResponse struct {
	Success          bool   `json:"success"`
	AlreadySubmitted bool   `json:"alreadySubmitted,omitempty"`
	Message          string `json:"message,omitempty"`
}

type rewriteResponse struct {
	Success       bool   `json:"success"`
	RewrittenBody string `json:"rewrittenBody"`
}

type errorResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
	Details  string `json:"details,omitempty"`
}

// Create handles POST / and POST /create.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	in := decodeBody(w, r, h.maxBodyBytes)

	result, err := h.svc.Create(r.Context(), review.CreateInput{
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createResponse{
		Success:   true,
		RequestID: result.Request.ID,
		EditLink:  h.linkBase(r) + "/edit/" + result.Request.ID,
		Email:     result.Request.ContactEmail,
		ExpiresIn: humanizeDuration(result.ExpiresIn),
	})
}

// EditPage handles GET /edit/{id}.
func (h *ReviewHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	req, err := h.svc.Get(r.Context(), id)
	switch {
	case err == nil:
		h.renderPage(w, r, http.StatusOK, PageData{
			Status:    domain.PageStatusLoaded,
			RequestID: req.ID,
			Email:     req.ContactEmail,
			Subject:   req.Subject,
			Body:      req.Body,
			Submitted: req.Submitted,
		})
	case errors.Is(err, domain.ErrExpired):
		h.renderPage(w, r, http.StatusNotFound, PageData{Status: domain.PageStatusExpired})
	case errors.Is(err, domain.ErrNotFound):
		h.renderPage(w, r, http.StatusNotFound, PageData{Status: domain.PageStatusNotFound})
	default:
		h.handleError(w, r, err)
	}
}

// DraftPage handles GET /edit and POST /edit: the editor pre-filled from the
// query string or the posted body, without a stored request.
func (h *ReviewHandler) DraftPage(w http.ResponseWriter, r *http.Request) {
	var subject, body string
	if r.Method == http.MethodPost {
		in := decodeBody(w, r, h.maxBodyBytes)
		subject, body = in.Subject, in.Body
	} else {
		q := r.URL.Query()
		subject, body = q.Get("subject"), q.Get("body")
	}

	status := domain.PageStatusEmpty
	if subject != "" || body != "" {
		status = domain.PageStatusLoaded
	}
	h.renderPage(w, r, http.StatusOK, PageData{Status: status, Subject: subject, Body: body})
}

// Submit handles POST /submit/{id}, the legacy direct submission that does
// not notify the workflow.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	in := decodeBody(w, r, h.maxBodyBytes)

	result, err := h.svc.SubmitDirect(r.Context(), r.PathValue("id"), in.Subject, in.Body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Success: true, AlreadySubmitted: result.Duplicate})
}

// Status handles GET /status/{id}.
func (h *ReviewHandler) Status(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrExpired) {
		writeJSON(w, http.StatusNotFound, statusMissingResponse{Found: false, Status: domain.RequestStatusNotFound.String()})
		return
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	createdAt := req.CreatedAt.UTC()
	resp := statusResponse{
		Found:     true,
		Status:    req.Status().String(),
		Subject:   req.Subject,
		Body:      req.Body,
		Action:    req.Action.String(),
		CreatedAt: &createdAt,
	}
	if req.SubmittedAt != nil {
		submittedAt := req.SubmittedAt.UTC()
		resp.SubmittedAt = &submittedAt
	}
	writeJSON(w, http.StatusOK, resp)
}

// Webhook handles POST /webhook.
func (h *ReviewHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Submit(r.Context(), h.submitInput(w, r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSubmitResult(w, result)
}

// WebhookAction handles POST /webhook/action.
func (h *ReviewHandler) WebhookAction(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SubmitAction(r.Context(), h.submitInput(w, r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSubmitResult(w, result)
}

// Rewrite handles POST /api/rewrite.
func (h *ReviewHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	in := decodeBody(w, r, h.maxBodyBytes)

	body, err := h.svc.Rewrite(r.Context(), review.RewriteInput{
		CurrentBody: in.CurrentBody,
		Feedback:    in.Feedback,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rewriteResponse{Success: true, RewrittenBody: body})
}

func (h *ReviewHandler) submitInput(w http.ResponseWriter, r *http.Request) review.SubmitInput {
	in := decodeBody(w, r, h.maxBodyBytes)
	return review.SubmitInput{
		RequestID: strings.TrimSpace(in.RequestID),
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Body,
		Action:    domain.Action(strings.ToLower(strings.TrimSpace(in.Action))),
		Source:    in.Source,
	}
}

// writeSubmitResult relays the workflow response verbatim. A duplicate that
// did not reach the workflow gets a local acknowledgement.
func (h *ReviewHandler) writeSubmitResult(w http.ResponseWriter, result *review.SubmitResult) {
	if result.Delivery == nil {
		writeJSON(w, http.StatusOK, submitResponse{
			Success:          true,
			AlreadySubmitted: result.Duplicate,
			Message:          "This request was already submitted",
		})
		return
	}

	d := result.Delivery
	if d.ContentType != "" {
		w.Header().Set("Content-Type", d.ContentType)
	}
	w.WriteHeader(d.StatusCode)
	w.Write(d.Body) //nolint:errcheck
}

func (h *ReviewHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, data PageData) {
	var buf bytes.Buffer
	if err := RenderPage(&buf, data); err != nil {
		h.handleError(w, r, fmt.Errorf("render page: %w", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// linkBase returns the origin used in edit links.
func (h *ReviewHandler) linkBase(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		scheme = strings.TrimSpace(first)
	}
	return scheme + "://" + r.Host
}

func (h *ReviewHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve   *domain.ValidationError
		rerr *domain.RewriteError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Error()})
	case errors.Is(err, domain.ErrExpired):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "edit request has expired", Status: domain.PageStatusExpired.String()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "edit request not found", Status: domain.RequestStatusNotFound.String()})
	case errors.Is(err, domain.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests. Please try again later."})
	case errors.Is(err, domain.ErrDelivery):
		h.log.ErrorContext(r.Context(), "webhook delivery failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to forward to workflow", Details: err.Error()})
	case errors.As(err, &rerr):
		status, category := rewriteStatus(rerr.Kind)
		if status >= 500 {
			h.log.WarnContext(r.Context(), "rewrite failed", slog.String("error", err.Error()))
		}
		writeJSON(w, status, errorResponse{Error: rerr.Kind.Error(), Category: category, Details: rerr.Message})
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// rewriteStatus maps a rewrite category to its HTTP status and machine name.
func rewriteStatus(kind error) (int, string) {
	switch {
	case errors.Is(kind, domain.ErrRewriteUnavailable):
		return http.StatusServiceUnavailable, "configuration"
	case errors.Is(kind, domain.ErrRewriteAuth):
		return http.StatusBadGateway, "authentication"
	case errors.Is(kind, domain.ErrRewriteRateLimit):
		return http.StatusTooManyRequests, "rate_limit"
	case errors.Is(kind, domain.ErrRewriteProvider):
		return http.StatusBadGateway, "provider"
	case errors.Is(kind, domain.ErrRewriteProtocol):
		return http.StatusBadGateway, "protocol"
	case errors.Is(kind, domain.ErrRewriteNetwork):
		return http.StatusGatewayTimeout, "network"
	default:
		return http.StatusInternalServerError, "unknown"
	}
}

// humanizeDuration renders whole hours or minutes the way API clients
// display them ("24 hours"), falling back to Go notation.
func humanizeDuration(d time.Duration) string {
	plural := func(n int64, unit string) string {
		if n == 1 {
			return "1 " + unit
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return plural(int64(d/time.Hour), "hour")
	case d >= time.Minute && d%time.Minute == 0:
		return plural(int64(d/time.Minute), "minute")
	default:
		return d.String()
	}
}
