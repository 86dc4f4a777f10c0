package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-frontend/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-frontend/internal/app"
	"github.com/jsamuelsen11/todo-frontend/internal/domain"
	"github.com/jsamuelsen11/todo-frontend/internal/ports"
	"github.com/jsamuelsen11/todo-frontend/mocks"
)

func newPageHandler(t *testing.T, view ports.TodoView) *handlers.PageHandler {
	t.Helper()
	h, err := handlers.NewPageHandler(view, nil)
	require.NoError(t, err)
	return h
}

// --- Index ---

func TestIndex_RendersTable(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Load(mock.Anything).Return(tableView())
	view.EXPECT().Phase().Return(ports.PhaseIdle)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "TODO manager")
	assert.Contains(t, body, "<th>id</th><th>title</th><th>description</th>")
	assert.Contains(t, body, "<td>1</td><td>Buy groceries</td><td>Milk, eggs, bread</td>")
	assert.Contains(t, body, "<td>2</td><td>Write report</td><td></td>")
	assert.Less(t, strings.Index(body, "Buy groceries"), strings.Index(body, "Write report"))
	assert.Contains(t, body, `name="title"`)
	assert.Contains(t, body, `name="description"`)
	assert.Contains(t, body, ">Add</button>")
	assert.NotContains(t, body, "disabled>Add")
}

func TestIndex_EmptyReplacesTable(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Load(mock.Anything).Return(ports.View{State: ports.ViewEmpty, Message: app.EmptyMessage})
	view.EXPECT().Phase().Return(ports.PhaseIdle)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "No todos yet.")
	assert.NotContains(t, body, "<table>")
}

func TestIndex_ErrorReplacesTable(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Load(mock.Anything).Return(ports.View{
		State:   ports.ViewError,
		Message: "The todo service sent a response that could not be read.",
	})
	view.EXPECT().Phase().Return(ports.PhaseIdle)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, `<p class="error">The todo service sent a response that could not be read.</p>`)
	assert.NotContains(t, body, "<table>")
}

func TestIndex_EscapesItemText(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Load(mock.Anything).Return(ports.View{
		State: ports.ViewTable,
		Items: domain.Collection{{ID: 7, Title: "<script>alert(1)</script>"}},
	})
	view.EXPECT().Phase().Return(ports.PhaseIdle)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := rec.Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestIndex_DisablesAddWhileBusy(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Load(mock.Anything).Return(tableView())
	view.EXPECT().Phase().Return(ports.PhaseSubmitting)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, rec.Body.String(), `<button type="submit" disabled>Add</button>`)
}

// --- Create ---

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	refreshed := tableView()
	refreshed.Items = append(refreshed.Items, domain.Item{ID: 3, Title: "Walk dog", Description: "Around the park"})

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Submit(mock.Anything, "Walk dog", "Around the park").Return(refreshed, nil)

	rec := httptest.NewRecorder()
	req := formRequest(url.Values{"title": {"Walk dog"}, "description": {"Around the park"}})
	newPageHandler(t, view).Create(rec, req)

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>3</td><td>Walk dog</td><td>Around the park</td>")
	// Form is cleared after a successful create.
	assert.Contains(t, body, `name="title" placeholder="What needs doing" value=""`)
}

func TestCreate_EmptyTitleIsForwarded(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Submit(mock.Anything, "", "").Return(tableView(), nil)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Create(rec, formRequest(url.Values{}))

	requireStatus(t, rec, http.StatusOK)
}

func TestCreate_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		notice     string
		wantStatus int
	}{
		{
			name:       "rejected by service",
			err:        &domain.ServiceError{Op: "todo.create", StatusCode: http.StatusBadRequest, Detail: "title required"},
			notice:     "Could not add the todo. rejected",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "service failure",
			err:        &domain.ServiceError{Op: "todo.create", StatusCode: http.StatusInternalServerError, Detail: "db down"},
			notice:     "Could not add the todo. failed",
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "transport failure",
			err:        &domain.TransportError{Op: "todo.create", Err: context.DeadlineExceeded},
			notice:     "Could not add the todo. unreachable",
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prior := tableView()
			prior.Notice = tt.notice

			view := mocks.NewMockTodoView(t)
			view.EXPECT().Submit(mock.Anything, "Walk dog", "later").Return(prior, tt.err)

			rec := httptest.NewRecorder()
			req := formRequest(url.Values{"title": {"Walk dog"}, "description": {"later"}})
			newPageHandler(t, view).Create(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			body := rec.Body.String()
			assert.Contains(t, body, tt.notice)
			// Prior table is still shown.
			assert.Contains(t, body, "<td>1</td><td>Buy groceries</td>")
			// Input survives the failure.
			assert.Contains(t, body, `value="Walk dog"`)
			assert.Contains(t, body, `value="later"`)
		})
	}
}

func TestCreate_InFlightConflict(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Submit(mock.Anything, "Second", "").Return(tableView(), app.ErrSubmitInFlight)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Create(rec, formRequest(url.Values{"title": {"Second"}}))

	requireStatus(t, rec, http.StatusConflict)
	body := rec.Body.String()
	assert.Contains(t, body, "still being added")
	assert.Contains(t, body, `<button type="submit" disabled>Add</button>`)
}

func TestCreate_OversizedForm(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	view.EXPECT().Snapshot().Return(tableView())

	rec := httptest.NewRecorder()
	big := url.Values{"title": {strings.Repeat("x", 128<<10)}}
	newPageHandler(t, view).Create(rec, formRequest(big))

	requireStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, rec.Body.String(), "Could not read the submitted form.")
}

// --- Health ---

func TestPageHandler_HealthCheck(t *testing.T) {
	t.Parallel()

	h := newPageHandler(t, mocks.NewMockTodoView(t))

	assert.Equal(t, "templates", h.Name())
	assert.NoError(t, h.HealthCheck(context.Background()))
}

func TestSubmitStatus_WrappedErrors(t *testing.T) {
	t.Parallel()

	view := mocks.NewMockTodoView(t)
	wrapped := errors.Join(errors.New("context"), &domain.ServiceError{StatusCode: http.StatusConflict})
	view.EXPECT().Submit(mock.Anything, "a", "").Return(tableView(), wrapped)

	rec := httptest.NewRecorder()
	newPageHandler(t, view).Create(rec, formRequest(url.Values{"title": {"a"}}))

	requireStatus(t, rec, http.StatusUnprocessableEntity)
}
