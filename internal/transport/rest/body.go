package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// requestBody is the union of every field the POST endpoints accept.
type requestBody struct {
	RequestID   string `json:"requestId"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Action      string `json:"action"`
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	CurrentBody string `json:"currentBody"`
	Feedback    string `json:"feedback"`
}

// decodeBody reads a JSON or form-urlencoded body. The encoding comes from
// Content-Type, falling back to whether the payload starts with '{'.
// Unreadable or malformed bodies decode to the zero value; the empty input
// is rejected later by validation.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64) requestBody {
	var out requestBody
	if r.Body == nil {
		return out
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		return out
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return out
	}

	ct := r.Header.Get("Content-Type")
	switch {
	case strings.Contains(ct, "application/json"):
		decodeJSON(raw, &out)
	case strings.Contains(ct, "application/x-www-form-urlencoded"):
		decodeForm(text, &out)
	case strings.HasPrefix(text, "{"):
		decodeJSON(raw, &out)
	default:
		decodeForm(text, &out)
	}
	return out
}

func decodeJSON(raw []byte, out *requestBody) {
	if err := json.Unmarshal(raw, out); err != nil {
		*out = requestBody{}
	}
}

func decodeForm(text string, out *requestBody) {
	values, err := url.ParseQuery(text)
	if err != nil {
		return
	}
	*out = requestBody{
		RequestID:   values.Get("requestId"),
		Email:       values.Get("email"),
		Subject:     values.Get("subject"),
		Body:        values.Get("body"),
		Action:      values.Get("action"),
		Timestamp:   values.Get("timestamp"),
		Source:      values.Get("source"),
		CurrentBody: values.Get("currentBody"),
		Feedback:    values.Get("feedback"),
	}
}
