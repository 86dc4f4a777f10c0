package todo

import (
	"encoding/json"
	"errors"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestToDomainItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dto     ItemDTO
		wantErr error
	}{
		{
			name: "all fields present",
			dto:  ItemDTO{ID: ptr(int64(7)), Title: ptr("Buy milk"), Description: ptr("2%")},
		},
		{
			name: "empty strings are still present",
			dto:  ItemDTO{ID: ptr(int64(0)), Title: ptr(""), Description: ptr("")},
		},
		{
			name:    "missing description",
			dto:     ItemDTO{ID: ptr(int64(7)), Title: ptr("Buy milk")},
			wantErr: errMissingDescription,
		},
		{
			name:    "missing id",
			dto:     ItemDTO{Title: ptr("Buy milk")},
			wantErr: errMissingID,
		},
		{
			name:    "missing title",
			dto:     ItemDTO{ID: ptr(int64(1))},
			wantErr: errMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToDomainItem(&tt.dto)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToDomainItem() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got.ID != *tt.dto.ID || got.Title != *tt.dto.Title || got.Description != *tt.dto.Description {
				t.Errorf("ToDomainItem() = %+v, want fields copied from %+v", got, tt.dto)
			}
		})
	}
}

func TestToDomainCollection_PreservesOrderAndIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	raw := `[
		{"id": 3, "title": "c", "description": "", "done": true},
		{"id": 1, "title": "a", "description": "first"},
		{"id": 2, "title": "b", "description": "second", "priority": 9}
	]`

	var dtos []ItemDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	items, err := ToDomainCollection(dtos)
	if err != nil {
		t.Fatalf("ToDomainCollection() error = %v", err)
	}

	wantIDs := []int64{3, 1, 2}
	if len(items) != len(wantIDs) {
		t.Fatalf("len(items) = %d, want %d", len(items), len(wantIDs))
	}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, id)
		}
	}
	if items[0].Description != "" || items[1].Description != "first" {
		t.Errorf("descriptions = %q, %q, want \"\" and %q", items[0].Description, items[1].Description, "first")
	}
}

func TestToDomainCollection_RejectsWholeResponseOnBadItem(t *testing.T) {
	t.Parallel()

	dtos := []ItemDTO{
		{ID: ptr(int64(1)), Title: ptr("ok"), Description: ptr("")},
		{ID: ptr(int64(2))},
	}

	items, err := ToDomainCollection(dtos)
	if !errors.Is(err, errMissingTitle) {
		t.Fatalf("error = %v, want errMissingTitle", err)
	}
	if items != nil {
		t.Errorf("items = %v, want nil", items)
	}
}

func TestToDomainCollection_NullDescriptionRejected(t *testing.T) {
	t.Parallel()

	var dtos []ItemDTO
	if err := json.Unmarshal([]byte(`[{"id": 1, "title": "a", "description": null}]`), &dtos); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, err := ToDomainCollection(dtos); !errors.Is(err, errMissingDescription) {
		t.Fatalf("error = %v, want errMissingDescription", err)
	}
}

func TestToDomainCollection_NilIsEmpty(t *testing.T) {
	t.Parallel()

	items, err := ToDomainCollection(nil)
	if err != nil {
		t.Fatalf("ToDomainCollection(nil) error = %v", err)
	}
	if !items.IsEmpty() {
		t.Errorf("items = %v, want empty", items)
	}
}

func TestToCreateItemRequest_Wire(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(ToCreateItemRequest("", "no title"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"title":"","description":"no title"}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}
