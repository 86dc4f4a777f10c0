package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-frontend/internal/app"
	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

// maxFormBytes bounds the create form body.
const maxFormBytes = 64 << 10

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// submitStatus maps a failed submit to the page's status code. A rejected
// item (4xx from the service) is 422; a submit already running is 409;
// anything else means the service could not be used and is 502.
func submitStatus(err error) int {
	var svcErr *domain.ServiceError
	switch {
	case errors.Is(err, app.ErrSubmitInFlight):
		return http.StatusConflict
	case errors.As(err, &svcErr) && svcErr.IsClientError():
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
