package domain

// Action is the reviewer's disposition of an edit request.
type Action string

const (
	ActionEdit    Action = "edit"
	ActionApprove Action = "approve"
	ActionStop    Action = "stop"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionEdit, ActionApprove, ActionStop:
		return true
	}
	return false
}

// Target returns the webhook endpoint a decision with this action is delivered to.
func (a Action) Target() WebhookTarget {
	if a == ActionApprove || a == ActionStop {
		return WebhookTargetAction
	}
	return WebhookTargetEdit
}

// RequestStatus is the externally reported lifecycle state of an edit request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusSubmitted RequestStatus = "submitted"
	RequestStatusNotFound  RequestStatus = "not_found"
)

func (s RequestStatus) String() string { return string(s) }

// PageStatus describes what the edit page shows for a link.
type PageStatus string

const (
	PageStatusLoaded   PageStatus = "loaded"
	PageStatusExpired  PageStatus = "expired"
	PageStatusNotFound PageStatus = "notfound"
	PageStatusEmpty    PageStatus = "empty"
)

func (s PageStatus) String() string { return string(s) }

// WebhookTarget selects one of the two configured workflow endpoints.
type WebhookTarget string

const (
	WebhookTargetEdit   WebhookTarget = "edit"
	WebhookTargetAction WebhookTarget = "action"
)

func (t WebhookTarget) String() string { return string(t) }
