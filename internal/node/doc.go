// Package node holds the dataflow data model: nodes, their typed input and
// output sockets, and the wires between them.
//
// # Pending/Ready protocol
//
// A value change is announced before it is delivered. PropagatePendingStatus
// marks an input, its node, and everything reachable downstream through
// non-signal outputs as Pending. Receive then delivers the value, moving the
// input to Ready; once no data input of a node is Pending the node becomes
// Ready and is handed to its Scheduler. Execute resets the inputs to Idle and
// runs the node's transform.
//
// Signal sockets never take part in this protocol. They only describe how
// backend nodes are routed into each other.
//
// # Kinds
//
// Behavior is declared, not subclassed: a Spec record lists the sockets, the
// backend node to create, a Reaction run whenever an input receives a value
// and a Transform run on execution. Both return Effects, plain data that the
// node applies (transmit on an output, start or stop the backend, set a
// parameter, schedule a ramp).
package node
