package middleware

import (
	"context"
	"net/http"
	"time"
)

// Deadline returns middleware that bounds each request's context by d.
// Handlers see expiry through the todo client, which reports it as a
// transport error and the page renders accordingly. A non-positive d
// disables the bound.
func Deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
