// Package ports defines interfaces between layers in the hexagonal architecture.
// The view port is implemented by the application layer and called by render
// targets. The client port is implemented by the outbound adapter and called by
// the application layer.
package ports
