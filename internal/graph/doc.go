// Package graph is the editing facade over the node model and the engine.
//
// A Graph owns the nodes of one patch by name and is the only place wires are
// created or removed. Connect validates before it mutates anything, replaces
// the wire an input already holds, refuses data cycles, registers the wire on
// both sockets and only then asks the engine to perform the backend routing.
// SetValue and Trigger are the widget-edit path: a pending announcement
// followed by the value itself.
//
// Graph is not safe for concurrent use. The app package funnels every
// external request through one goroutine.
package graph
