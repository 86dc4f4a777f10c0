// Package acl implements the Anti-Corruption Layer between the remote todo
// service's wire format and domain types. Resource translators live in the
// todo subpackage; status and transport error mapping lives here.
package acl

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers the error shapes the service may send: a bare
// {"error": "..."} object, an RFC 7807 problem, or {"message": "..."}.
type errorBody struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// TranslateHTTPError maps a non-2xx response to a *domain.ServiceError. The
// detail is the service's own message when the body carries one, otherwise
// the status text.
func TranslateHTTPError(op string, resp *http.Response) error {
	return &domain.ServiceError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Detail:     parseErrorDetail(resp),
	}
}

// translateTransportError wraps a failure that produced no response.
func translateTransportError(op string, err error) error {
	return &domain.TransportError{Op: op, Err: err}
}

// translateDecodeError wraps a body that was unreadable or the wrong shape.
func translateDecodeError(op string, err error) error {
	return &domain.DecodeError{Op: op, Err: err}
}

// parseErrorDetail reads the body as JSON when possible. A plain-text body
// is used verbatim; an empty or unparseable one falls back to status text.
func parseErrorDetail(resp *http.Response) string {
	fallback := http.StatusText(resp.StatusCode)
	if resp.Body == nil {
		return fallback
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return fallback
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fallback
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
			return text
		}
		return fallback
	}

	for _, detail := range []string{eb.Error, eb.Detail, eb.Message} {
		if detail != "" {
			return detail
		}
	}
	return fallback
}
