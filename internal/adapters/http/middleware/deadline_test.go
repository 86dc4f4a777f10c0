package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/http/middleware"
)

func TestDeadline_SetsContextDeadline(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var ok bool
	handler := middleware.Deadline(time.Minute)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	before := time.Now()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !ok {
		t.Fatal("request context has no deadline")
	}
	if d := deadline.Sub(before); d > time.Minute || d < 59*time.Second {
		t.Errorf("deadline in %v, want about 1m", d)
	}
}

func TestDeadline_DisabledWhenNonPositive(t *testing.T) {
	t.Parallel()

	var ok bool
	handler := middleware.Deadline(0)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok = r.Context().Deadline()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if ok {
		t.Error("request context has a deadline, want none")
	}
}
