package ports

import "context"

// HealthChecker is implemented by components whose availability is reported
// on the readiness endpoint, such as the remote todo service client.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "todo-api").
	Name() string

	// HealthCheck returns nil when healthy or an error describing the problem.
	HealthCheck(ctx context.Context) error
}

// HealthReport is the outcome of one readiness probe. Checks is keyed by
// checker name; a nil value means healthy. Ready is false only when a
// gating checker failed.
type HealthReport struct {
	Ready  bool
	Checks map[string]error
}

// HealthRegistry collects checkers and runs them on demand.
type HealthRegistry interface {
	// Register adds a checker whose failure makes the service unready.
	Register(checker HealthChecker)

	// Observe adds a checker that is reported but never gates readiness.
	// The todo service client is observed: the front-end can still render
	// a page explaining that the service is down.
	Observe(checker HealthChecker)

	CheckAll(ctx context.Context) HealthReport
}
