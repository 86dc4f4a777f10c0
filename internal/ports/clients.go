package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

// TodoClient defines the client port for the remote todo collection.
// Implemented by the ACL adapter; called by the application layer.
//
// Every error returned wraps exactly one of domain.ErrTransport,
// domain.ErrService, or domain.ErrDecode.
type TodoClient interface {
	// List returns every item in the collection in service order.
	List(ctx context.Context) (domain.Collection, error)

	// Create asks the service to create one item. It is not idempotent and
	// is never retried automatically. The created item is not returned;
	// callers re-list to observe it.
	Create(ctx context.Context, title, description string) error
}
