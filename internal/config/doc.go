// Package config defines the format-agnostic patch model: the nodes, wires
// and initial input values a graph is built from, along with the Loader
// interface implemented by each patch format.
//
// Concrete loaders live in separate packages (hcl, yamlpatch). The graph
// package applies a Patch without knowing which format it came from.
package config
