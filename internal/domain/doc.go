// Package domain contains the client-side model of the remote todo
// collection and the error taxonomy shared by every layer. Items are
// ephemeral view-models rebuilt on each list call; identifiers are assigned
// by the remote service and never generated here.
package domain
