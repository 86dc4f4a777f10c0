package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

func newResponse(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantDetail  string
	}{
		{
			name:        "error field",
			status:      http.StatusBadRequest,
			contentType: "application/json; charset=utf-8",
			body:        `{"error":"title required"}`,
			wantDetail:  "title required",
		},
		{
			name:        "problem detail",
			status:      http.StatusUnprocessableEntity,
			contentType: "application/problem+json",
			body:        `{"title":"Unprocessable","detail":"title too long"}`,
			wantDetail:  "title too long",
		},
		{
			name:        "message field",
			status:      http.StatusConflict,
			contentType: "application/json",
			body:        `{"message":"duplicate"}`,
			wantDetail:  "duplicate",
		},
		{
			name:        "plain text",
			status:      http.StatusBadGateway,
			contentType: "text/plain; charset=utf-8",
			body:        "upstream gone\n",
			wantDetail:  "upstream gone",
		},
		{
			name:       "empty body",
			status:     http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
		{
			name:        "html body",
			status:      http.StatusServiceUnavailable,
			contentType: "text/html",
			body:        "<h1>down</h1>",
			wantDetail:  "Service Unavailable",
		},
		{
			name:        "json without known fields",
			status:      http.StatusNotFound,
			contentType: "application/json",
			body:        `{"code":404}`,
			wantDetail:  "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError("todo.create", newResponse(tt.status, tt.contentType, tt.body))
			if !errors.Is(err, domain.ErrService) {
				t.Fatalf("error = %v, want ErrService", err)
			}

			var svcErr *domain.ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("error type = %T, want *domain.ServiceError", err)
			}
			if svcErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", svcErr.StatusCode, tt.status)
			}
			if svcErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", svcErr.Detail, tt.wantDetail)
			}
			if svcErr.Op != "todo.create" {
				t.Errorf("Op = %q, want %q", svcErr.Op, "todo.create")
			}
		})
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError("todo.list", &http.Response{StatusCode: http.StatusTeapot})

	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *domain.ServiceError", err)
	}
	if svcErr.Detail != "I'm a teapot" {
		t.Errorf("Detail = %q, want status text", svcErr.Detail)
	}
}

func TestTranslateTransportAndDecode(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	tr := translateTransportError("todo.list", cause)
	if !errors.Is(tr, domain.ErrTransport) || !errors.Is(tr, cause) {
		t.Errorf("transport error %v does not wrap sentinel and cause", tr)
	}

	dec := translateDecodeError("todo.list", cause)
	if !errors.Is(dec, domain.ErrDecode) || !errors.Is(dec, cause) {
		t.Errorf("decode error %v does not wrap sentinel and cause", dec)
	}
	if errors.Is(dec, domain.ErrTransport) {
		t.Error("decode error must not match ErrTransport")
	}
}
