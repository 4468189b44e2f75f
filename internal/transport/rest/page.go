package rest

import (
	"html/template"
	"io"

	"github.com/heartmarshall/review-relay/internal/domain"
)

// PageData is everything the edit page shows.
type PageData struct {
	Status    domain.PageStatus
	RequestID string
	Email     string
	Subject   string
	Body      string
	Submitted bool
}

// Editable reports whether the form accepts input.
func (d PageData) Editable() bool {
	return d.Status != domain.PageStatusExpired && d.Status != domain.PageStatusNotFound && !d.Submitted
}

// StatusText is the badge caption.
func (d PageData) StatusText() string {
	switch d.Status {
	case domain.PageStatusLoaded:
		if d.Submitted {
			return "This email has already been submitted"
		}
		return "Email loaded - ready to edit"
	case domain.PageStatusExpired:
		return "This edit link has expired"
	case domain.PageStatusNotFound:
		return "Edit request not found"
	default:
		return "No data received - enter content manually"
	}
}

// RenderPage writes the edit page for d. It has no side effects besides
// writing to w; all user-supplied text is escaped by html/template.
func RenderPage(w io.Writer, d PageData) error {
	return pageTemplate.Execute(w, d)
}

var pageTemplate = template.Must(template.New("edit").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Email Editor</title>
<style>
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#0f0f1a;color:#f1f5f9;min-height:100vh;display:flex;align-items:center;justify-content:center;padding:2rem}
.card{width:100%;max-width:700px;background:#1a1a2e;border:1px solid #334155;border-radius:20px;padding:2.5rem}
h1{font-size:1.75rem;margin-bottom:.5rem}
.subtitle{color:#94a3b8;margin-bottom:1.5rem}
.badge{display:inline-block;background:#252542;color:#94a3b8;font-size:.8rem;padding:.5rem 1rem;border-radius:20px;margin-bottom:1.5rem}
.badge.loaded{background:rgba(16,185,129,.15);color:#10b981}
.badge.expired,.badge.notfound{background:rgba(239,68,68,.15);color:#ef4444}
label{display:block;font-weight:500;font-size:.9rem;margin-bottom:.5rem}
input,textarea{width:100%;background:#0f0f1a;border:1px solid #334155;border-radius:12px;padding:1rem;color:#f1f5f9;font:inherit;margin-bottom:1.25rem}
textarea{min-height:260px;resize:vertical;line-height:1.6}
.actions{display:flex;gap:.75rem}
.btn{flex:1;border:none;border-radius:12px;padding:1rem;font:inherit;font-weight:600;color:#fff;cursor:pointer;background:#6366f1}
.btn.approve{background:#10b981}.btn.stop{background:#ef4444}.btn.secondary{background:#252542}
.btn:disabled{opacity:.6;cursor:not-allowed}
.message{display:none;margin-top:1.25rem;padding:1rem;border-radius:12px}
.message.success{display:block;background:rgba(16,185,129,.15);color:#10b981}
.message.error{display:block;background:rgba(239,68,68,.15);color:#ef4444}
.rewrite{margin-top:2rem;border-top:1px solid #334155;padding-top:1.5rem}
</style>
</head>
<body data-status="{{.Status}}">
<div class="card">
  <h1>Edit Email</h1>
  <p class="subtitle">Review and edit the content below, then submit</p>
  <div class="badge {{.Status}}" id="statusBadge">{{.StatusText}}</div>
{{- if or (eq (print .Status) "expired") (eq (print .Status) "notfound")}}
  <p class="subtitle">Ask the sender for a new link.</p>
{{- else}}
  <form id="emailForm">
    {{- if .Email}}
    <label for="email">Recipient</label>
    <input type="text" id="email" name="email" value="{{.Email}}" readonly>
    {{- end}}
    <label for="subject">Subject</label>
    <input type="text" id="subject" name="subject" placeholder="Email subject will appear here..." value="{{.Subject}}"{{if not .Editable}} disabled{{end}}>
    <label for="body">Body</label>
    <textarea id="body" name="body" placeholder="Email body will appear here..."{{if not .Editable}} disabled{{end}}>{{.Body}}</textarea>
    <div class="actions">
      <button type="submit" class="btn" data-action="edit"{{if not .Editable}} disabled{{end}}>Submit Edit</button>
      {{- if .RequestID}}
      <button type="button" class="btn approve" data-action="approve"{{if not .Editable}} disabled{{end}}>Approve</button>
      <button type="button" class="btn stop" data-action="stop"{{if not .Editable}} disabled{{end}}>Stop</button>
      {{- end}}
    </div>
    {{- if .Editable}}
    <div class="rewrite">
      <label for="feedback">AI rewrite <span>(describe what to change)</span></label>
      <input type="text" id="feedback" name="feedback" placeholder="e.g. make it more formal">
      <button type="button" class="btn secondary" id="rewriteBtn">Rewrite with AI</button>
    </div>
    {{- end}}
    <div class="message" id="message"></div>
  </form>
{{- end}}
</div>
<script>
(function() {
  'use strict';
  var REQUEST_ID = {{.RequestID}};
  var EMAIL = {{.Email}};
  var form = document.getElementById('emailForm');
  if (!form) { return; }
  var subject = document.getElementById('subject');
  var body = document.getElementById('body');
  var message = document.getElementById('message');

  function show(text, ok) {
    message.className = 'message ' + (ok ? 'success' : 'error');
    message.textContent = text;
  }

  function post(url, payload) {
    return fetch(url, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(payload)
    });
  }

  function buttons(disabled) {
    form.querySelectorAll('button').forEach(function(b) { b.disabled = disabled; });
  }

  async function decide(action) {
    var s = subject.value.trim();
    var b = body.value.trim();
    if (action === 'edit' && !s && !b) {
      show('Please enter at least a subject or body', false);
      return;
    }
    buttons(true);
    try {
      var payload = {requestId: REQUEST_ID, email: EMAIL, subject: s, body: b, action: action,
        timestamp: new Date().toISOString(), source: 'email-editor'};
      var res = await post(action === 'edit' ? '/webhook' : '/webhook/action', payload);
      if (!res.ok) { throw new Error('HTTP ' + res.status); }
      var data = null;
      try { data = await res.json(); } catch (ignored) {}
      if (data && data.alreadySubmitted) {
        show(data.message || 'This request was already submitted', true);
        return;
      }
      show(action === 'stop' ? 'Email stopped.' : 'Email submitted successfully!', true);
    } catch (err) {
      show('Failed to send: ' + err.message, false);
      buttons(false);
    }
  }

  form.addEventListener('submit', function(e) { e.preventDefault(); decide('edit'); });
  form.querySelectorAll('button[data-action]').forEach(function(btn) {
    if (btn.type === 'button') {
      btn.addEventListener('click', function() { decide(btn.getAttribute('data-action')); });
    }
  });

  var rewriteBtn = document.getElementById('rewriteBtn');
  if (rewriteBtn) {
    rewriteBtn.addEventListener('click', async function() {
      var feedback = document.getElementById('feedback').value.trim();
      if (!feedback) { show('Describe what should change first', false); return; }
      rewriteBtn.disabled = true;
      try {
        var res = await post('/api/rewrite', {currentBody: body.value, feedback: feedback});
        var data = await res.json();
        if (!res.ok || !data.success) { throw new Error(data.error || ('HTTP ' + res.status)); }
        body.value = data.rewrittenBody;
        show('Draft rewritten. Review it before submitting.', true);
      } catch (err) {
        show(err.message, false);
      } finally {
        rewriteBtn.disabled = false;
      }
    });
  }
})();
</script>
</body>
</html>
`))
