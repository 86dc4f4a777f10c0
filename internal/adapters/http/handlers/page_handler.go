package handlers

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-frontend/internal/app"
	"github.com/jsamuelsen11/todo-frontend/internal/domain"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/logging"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// Compile-time interface check.
var _ ports.HealthChecker = (*PageHandler)(nil)

// pageData is what the page template renders. Title and Description refill
// the form after a failed submit so the user does not lose their input.
type pageData struct {
	View        ports.View
	Title       string
	Description string
	Busy        bool
}

// PageHandler serves the todo page: the table (or a message in its place)
// next to the create form.
type PageHandler struct {
	view   ports.TodoView
	tmpl   *template.Template
	logger *slog.Logger
}

// NewPageHandler parses the embedded templates. It fails only if they do
// not parse.
func NewPageHandler(view ports.TodoView, logger *slog.Logger) (*PageHandler, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &PageHandler{view: view, tmpl: tmpl, logger: logging.OrDiscard(logger)}, nil
}

// Index handles GET /. Every visit re-lists the collection.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	view := h.view.Load(r.Context())
	h.render(w, r, http.StatusOK, pageData{View: view, Busy: h.view.Phase() != ports.PhaseIdle})
}

// Create handles POST /todos with form fields title and description. On
// success it renders the refreshed list. On failure it renders the prior
// list with a notice and the form still filled in.
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		view := h.view.Snapshot()
		view.Notice = "Could not read the submitted form."
		h.render(w, r, http.StatusBadRequest, pageData{View: view})
		return
	}

	title := r.PostFormValue("title")
	description := r.PostFormValue("description")

	view, err := h.view.Submit(r.Context(), title, description)
	if err != nil {
		data := pageData{View: view, Title: title, Description: description}
		if errors.Is(err, app.ErrSubmitInFlight) {
			data.View.Notice = "An earlier todo is still being added. Please wait."
			data.Busy = true
		}
		h.logger.WarnContext(r.Context(), "create rejected",
			slog.String("operation", "PageHandler.Create"),
			slog.String("error_kind", domain.Kind(err)),
			slog.Any("error", err),
		)
		h.render(w, r, submitStatus(err), data)
		return
	}

	h.render(w, r, http.StatusOK, pageData{View: view})
}

// Name identifies the page renderer in readiness output.
func (h *PageHandler) Name() string {
	return "templates"
}

// HealthCheck renders a sample page into io.Discard.
func (h *PageHandler) HealthCheck(_ context.Context) error {
	sample := pageData{View: ports.View{
		State: ports.ViewTable,
		Items: domain.Collection{{ID: 1, Title: "probe"}},
	}}
	return h.tmpl.ExecuteTemplate(io.Discard, "page", sample)
}

// render executes into a buffer first so a template error still produces a
// clean 500 instead of a half-written page.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page",
			slog.String("operation", "PageHandler.render"),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
