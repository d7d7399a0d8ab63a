// Package registry is the node factory.
//
// Every node kind lives in its own module package and registers a node.Spec
// here. The registry maps kind identifiers from the closed set of registered
// kinds to constructed nodes and refuses anything else with ErrUnknownKind.
//
// ValidateRegistry runs at startup and checks each Spec for internal
// consistency (unique socket names, param inputs backed by a backend node,
// defaults matching their socket type), so a broken kind fails fast instead
// of when a user first places it.
package registry
