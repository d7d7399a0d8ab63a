// Package engine is the propagation engine of the node graph.
//
// It owns the ready queue and a reference to the signal backend. The UI layer
// (or the graph package acting for it) registers wires and then calls Connect
// or Disconnect so the engine can perform the backend side effect; value
// propagation itself runs through the node package and ends in
// SubmitReadyNode.
//
// Update is called once per external tick. It drains the queue and runs a
// depth-first push from every drained node, executing each downstream node
// that is fully ready and stopping at nodes still pending on another input.
// Every node executes at most once per Update.
package engine
