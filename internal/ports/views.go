package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

// ViewState says what the render target should show.
type ViewState string

const (
	// ViewLoading is the state before the first list call completes.
	ViewLoading ViewState = "loading"
	// ViewTable shows one row per item.
	ViewTable ViewState = "table"
	// ViewEmpty replaces the table with a "no items" message after a
	// successful list returned nothing.
	ViewEmpty ViewState = "empty"
	// ViewError replaces the table with an error message after a failed list.
	ViewError ViewState = "error"
)

// Phase is the create-interaction state: Idle → Submitting →
// {Refreshing → Idle | Failed → Idle}.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseRefreshing Phase = "refreshing"
	PhaseFailed     Phase = "failed"
)

// View is the content of the render target. Items is populated only in
// ViewTable. Message explains ViewEmpty and ViewError. Notice carries a
// failed create and is shown alongside whatever the view already holds.
type View struct {
	State   ViewState
	Items   domain.Collection
	Message string
	Notice  string
}

// HasTable reports whether the view should render the data table.
func (v View) HasTable() bool {
	return v.State == ViewTable
}

// TodoView defines the service port driving a render target. Implemented by
// the application layer; called by inbound adapters (web handlers, TUI, CLI).
type TodoView interface {
	// Load fetches the collection and replaces the rendered view.
	Load(ctx context.Context) View

	// Submit creates an item and, only if that succeeds, reloads the view.
	// On failure the prior view is kept with Notice set, and the error is
	// returned. Returns app.ErrSubmitInFlight while another submit runs.
	Submit(ctx context.Context, title, description string) (View, error)

	// Snapshot returns the currently rendered view.
	Snapshot() View

	// Phase returns the current create-interaction phase.
	Phase() Phase
}
