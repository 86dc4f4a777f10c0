package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

const recoveredPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>TODO manager</title></head>
<body><h2>TODO manager</h2><p>Something went wrong while rendering this page. Please reload.</p></body></html>
`

// Recovery returns middleware that recovers from panics in downstream
// handlers. The panic and stack are logged; the client gets a generic 500,
// as an HTML page when it accepts HTML and as plain text otherwise. Nothing
// is written when the handler already sent headers.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if rw.headerWritten {
					return
				}
				if strings.Contains(r.Header.Get("Accept"), "text/html") {
					rw.Header().Set("Content-Type", "text/html; charset=utf-8")
					rw.WriteHeader(http.StatusInternalServerError)
					_, _ = rw.Write([]byte(recoveredPage))
					return
				}
				http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
