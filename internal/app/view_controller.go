// Package app provides the application layer: the controller that drives a
// todo render target by coordinating the client port and the render cell.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/logging"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

// ErrSubmitInFlight is returned by Submit while an earlier submit has not
// finished. The client is not called.
var ErrSubmitInFlight = errors.New("a submit is already in progress")

// EmptyMessage replaces the table when the collection has no items.
const EmptyMessage = "No todos yet."

// Compile-time check that ViewController implements ports.TodoView.
var _ ports.TodoView = (*ViewController)(nil)

// ViewController implements ports.TodoView. It owns the render cell: every
// list result is written there and render targets only read it.
//
// Each list request takes a sequence number. A result is applied only when
// it is newer than the last applied one, so a slow response never overwrites
// a fresher view.
type ViewController struct {
	client  ports.TodoClient
	logger  *slog.Logger
	metrics *telemetry.Metrics

	cell    *Cell[ports.View]
	applied uint64 // guarded by cell's lock
	issued  atomic.Uint64

	submitting atomic.Bool
	phase      atomic.Value // ports.Phase
}

// NewViewController creates a ViewController. metrics and logger may be nil.
func NewViewController(client ports.TodoClient, metrics *telemetry.Metrics, logger *slog.Logger) *ViewController {
	c := &ViewController{
		client:  client,
		logger:  logging.OrDiscard(logger),
		metrics: metrics,
		cell:    NewCell(ports.View{State: ports.ViewLoading}),
	}
	c.phase.Store(ports.PhaseIdle)
	return c
}

// Load fetches the collection and replaces the rendered view. A failed list
// clears the items and shows an error message instead of the table. When the
// result is stale, the newer view is returned without its Notice.
func (c *ViewController) Load(ctx context.Context) ports.View {
	seq := c.issued.Add(1)

	items, err := c.client.List(ctx)

	var next ports.View
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "Load"),
			slog.Uint64("seq", seq),
			slog.Any("error", err),
		)
		next = ports.View{State: ports.ViewError, Message: domain.Describe(err)}
	} else {
		next = viewOf(items)
	}
	c.metrics.RecordRefresh(ctx, string(next.State))

	stale := false
	view := c.cell.Update(func(v *ports.View) {
		if seq <= c.applied {
			stale = true
			return
		}
		c.applied = seq
		*v = next
	})

	if stale {
		c.logger.DebugContext(ctx, "discarded stale list response",
			slog.Uint64("seq", seq),
		)
		// The notice belongs to whichever submit set it, not to this load.
		view.Notice = ""
	}

	return view
}

// Submit creates one item and then reloads. A failed create never triggers a
// reload; the prior view is kept and Notice describes the failure.
//
// A nil error means the create succeeded, even when the reload that follows
// fails; that failure is visible in the returned view.
func (c *ViewController) Submit(ctx context.Context, title, description string) (ports.View, error) {
	if !c.submitting.CompareAndSwap(false, true) {
		c.logger.WarnContext(ctx, "submit rejected while another is in flight")
		c.metrics.RecordCreate(ctx, "rejected_in_flight", "")
		return c.Snapshot(), ErrSubmitInFlight
	}
	defer c.submitting.Store(false)
	defer c.setPhase(ctx, ports.PhaseIdle)

	c.setPhase(ctx, ports.PhaseSubmitting)

	if err := c.client.Create(ctx, title, description); err != nil {
		c.setPhase(ctx, ports.PhaseFailed)
		c.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		c.metrics.RecordCreate(ctx, "failed", domain.Kind(err))

		notice := "Could not add the todo. " + domain.Describe(err)
		view := c.cell.Update(func(v *ports.View) {
			v.Notice = notice
		})
		return view, err
	}

	c.metrics.RecordCreate(ctx, "created", "")
	c.setPhase(ctx, ports.PhaseRefreshing)

	return c.Load(ctx), nil
}

// Snapshot returns the current contents of the render cell.
func (c *ViewController) Snapshot() ports.View {
	return c.cell.Get()
}

// Phase returns the current create-interaction phase.
func (c *ViewController) Phase() ports.Phase {
	p, _ := c.phase.Load().(ports.Phase)
	return p
}

func (c *ViewController) setPhase(ctx context.Context, p ports.Phase) {
	prev := c.phase.Swap(p)
	c.logger.DebugContext(ctx, "phase transition",
		slog.Any("from", prev),
		slog.String("to", string(p)),
	)
}

func viewOf(items domain.Collection) ports.View {
	if items.IsEmpty() {
		return ports.View{State: ports.ViewEmpty, Message: EmptyMessage}
	}
	return ports.View{State: ports.ViewTable, Items: items}
}
