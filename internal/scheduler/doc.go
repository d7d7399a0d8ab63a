// Package scheduler holds the queue of nodes that became fully ready since
// the engine last drained it. It decides nothing about execution order beyond
// first-submitted, first-drained.
package scheduler
