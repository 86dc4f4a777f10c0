package domain

// Item is a single todo as returned by the remote service.
type Item struct {
	ID          int64
	Title       string
	Description string
}

// Collection is the ordered item set from one list call. Order is the
// service's order and is authoritative only for that call.
type Collection []Item

// IsEmpty reports whether the collection holds no items.
func (c Collection) IsEmpty() bool {
	return len(c) == 0
}
