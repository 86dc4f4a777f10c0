package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-frontend/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength caps an inbound ID header before it is trusted.
	maxIDLength = 128
)

type requestIDKey struct{}

// WithRequestID stores id in ctx and hands it to httpclient so the outbound
// call to the todo service carries the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID returns middleware that reuses a well-formed inbound
// X-Request-ID or generates a UUID v4, then echoes it in the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := acceptID(r.Header.Get(headerRequestID))
			if !ok {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// acceptID reports whether an inbound ID may be propagated: non-empty, at
// most maxIDLength bytes, printable ASCII only. Anything else would end up
// verbatim in logs and outbound headers.
func acceptID(id string) (string, bool) {
	if id == "" || len(id) > maxIDLength {
		return "", false
	}
	for i := range len(id) {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return "", false
		}
	}
	return id, true
}
