package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/todo-frontend/internal/domain"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-frontend/internal/platform/logging"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

// Operation names carried by returned errors.
const (
	opList   = "todo.list"
	opCreate = "todo.create"
)

// Compile-time interface checks.
var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

// TodoClient is the outbound adapter for the remote todo collection. It
// implements [ports.TodoClient] against a single collection URL: GET lists
// the collection and POST creates one item.
//
// Every error it returns is a *domain.TransportError, *domain.ServiceError,
// or *domain.DecodeError. The underlying [httpclient.Client] provides the
// circuit breaker, the request timeout, tracing, and retries for GET only.
type TodoClient struct {
	client *httpclient.Client
	req    *Requester
	url    string
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient for the collection at
// client.BaseURL()+collectionPath, e.g. "http://localhost:8080/api/todos".
func NewTodoClient(client *httpclient.Client, collectionPath string, logger *slog.Logger) *TodoClient {
	logger = logging.OrDiscard(logger)
	return &TodoClient{
		client: client,
		req:    NewRequester(client, logger),
		url:    client.BaseURL() + collectionPath,
		logger: logger,
	}
}

// List fetches the whole collection. Service order is preserved. An element
// without id or title makes the response a decode error.
func (c *TodoClient) List(ctx context.Context) (domain.Collection, error) {
	var dtos []todo.ItemDTO
	if err := c.req.Do(ctx, opList, http.MethodGet, c.url, nil, &dtos); err != nil {
		return nil, err
	}

	items, err := todo.ToDomainCollection(dtos)
	if err != nil {
		return nil, translateDecodeError(opList, err)
	}
	return items, nil
}

// Create posts one item. Any 2xx is success and the response body is
// discarded; the caller re-lists to see the stored item.
func (c *TodoClient) Create(ctx context.Context, title, description string) error {
	body := todo.ToCreateItemRequest(title, description)
	return c.req.Do(ctx, opCreate, http.MethodPost, c.url, body, nil)
}
