package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It is the downstream service name the underlying
// client was built with.
func (c *TodoClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the remote service's availability from the circuit
// breaker state. No network call is made.
//
// This is reported on the readiness endpoint but does not gate it: the
// front-end can still serve a page that explains the service is down.
func (c *TodoClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
