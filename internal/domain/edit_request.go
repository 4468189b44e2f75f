package domain

import "time"

// EditRequest is a single pending human-review unit identified by an opaque id.
type EditRequest struct {
	ID           string
	ContactEmail string
	Subject      string
	Body         string
	Action       Action
	CreatedAt    time.Time
	Submitted    bool
	SubmittedAt  *time.Time
	// Delivered is set once the workflow accepted the decision with a 2xx,
	// or when the decision was committed without owing a delivery.
	Delivered bool
}

// IsExpired reports whether the request is older than ttl at the given instant.
func (r *EditRequest) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(r.CreatedAt) > ttl
}

// Status returns the externally visible lifecycle state.
func (r *EditRequest) Status() RequestStatus {
	if r.Submitted {
		return RequestStatusSubmitted
	}
	return RequestStatusPending
}

// Clone returns a deep copy that callers may keep after the store lock is released.
func (r *EditRequest) Clone() *EditRequest {
	c := *r
	if r.SubmittedAt != nil {
		t := *r.SubmittedAt
		c.SubmittedAt = &t
	}
	return &c
}

// WebhookPayload is the JSON document delivered to the workflow engine.
type WebhookPayload struct {
	RequestID string `json:"requestId,omitempty"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Action    Action `json:"action"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Delivery is the verbatim response of a workflow webhook.
type Delivery struct {
	StatusCode  int
	ContentType string
	Body        []byte
}
