package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/http/middleware"
)

func captureIDs(gotReq, gotCorr *string) http.Handler {
	return http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		*gotReq = middleware.RequestIDFromContext(r.Context())
		*gotCorr = middleware.CorrelationIDFromContext(r.Context())
	})
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	var gotID, unused string
	handler := middleware.RequestID()(captureIDs(&gotID, &unused))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	parsed, err := uuid.Parse(gotID)
	if err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", gotID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if respID := rec.Header().Get("X-Request-ID"); respID != gotID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, gotID)
	}
}

func TestRequestID_InboundHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "well formed", header: "incoming-123", reused: true},
		{name: "too long", header: strings.Repeat("a", 129), reused: false},
		{name: "control characters", header: "abc\x00def", reused: false},
		{name: "spaces", header: "has space", reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID, unused string
			handler := middleware.RequestID()(captureIDs(&gotID, &unused))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header["X-Request-Id"] = []string{tt.header}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got := gotID == tt.header; got != tt.reused {
				t.Errorf("reused = %v (id %q), want %v", got, gotID, tt.reused)
			}
			if gotID == "" {
				t.Error("request ID is empty")
			}
		})
	}
}

func TestCorrelationID_FallsBackToRequestID(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	handler := middleware.RequestID()(middleware.CorrelationID()(captureIDs(&gotReq, &gotCorr)))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if gotCorr != "req-1" {
		t.Errorf("correlation ID = %q, want %q", gotCorr, "req-1")
	}
	if rec.Header().Get("X-Correlation-ID") != "req-1" {
		t.Errorf("response X-Correlation-ID = %q, want %q", rec.Header().Get("X-Correlation-ID"), "req-1")
	}
}

func TestCorrelationID_ReusesInbound(t *testing.T) {
	t.Parallel()

	var gotReq, gotCorr string
	handler := middleware.RequestID()(middleware.CorrelationID()(captureIDs(&gotReq, &gotCorr)))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Correlation-ID", "flow-9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotCorr != "flow-9" {
		t.Errorf("correlation ID = %q, want %q", gotCorr, "flow-9")
	}
	if gotReq == gotCorr {
		t.Error("request ID should be generated independently of the correlation ID")
	}
}
