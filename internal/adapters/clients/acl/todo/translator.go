package todo

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-frontend/internal/domain"
)

var (
	errMissingID          = errors.New("missing id")
	errMissingTitle       = errors.New("missing title")
	errMissingDescription = errors.New("missing description")
)

// ToDomainItem converts one ItemDTO. It fails when id, title, or
// description is absent or null. An empty string is still present.
func ToDomainItem(dto *ItemDTO) (domain.Item, error) {
	if dto.ID == nil {
		return domain.Item{}, errMissingID
	}
	if dto.Title == nil {
		return domain.Item{}, errMissingTitle
	}
	if dto.Description == nil {
		return domain.Item{}, errMissingDescription
	}
	return domain.Item{
		ID:          *dto.ID,
		Title:       *dto.Title,
		Description: *dto.Description,
	}, nil
}

// ToDomainCollection converts a list response, preserving order. A single
// malformed element rejects the whole response. A nil slice (JSON null)
// yields an empty collection.
func ToDomainCollection(dtos []ItemDTO) (domain.Collection, error) {
	items := make(domain.Collection, 0, len(dtos))
	for i := range dtos {
		item, err := ToDomainItem(&dtos[i])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// ToCreateItemRequest builds the POST body. Title is passed through as-is;
// the service owns validation.
func ToCreateItemRequest(title, description string) CreateItemRequestDTO {
	return CreateItemRequestDTO{Title: title, Description: description}
}
