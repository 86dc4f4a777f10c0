// Package todo implements the Anti-Corruption Layer translators for the
// remote todo collection resource.
package todo

// ItemDTO matches one element of the collection returned by GET.
// All three fields are pointers so a missing or null field can be told apart
// from a zero value. Unknown fields are ignored by encoding/json.
type ItemDTO struct {
	ID          *int64  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// CreateItemRequestDTO is the JSON body sent by POST.
type CreateItemRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
