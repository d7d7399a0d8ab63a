// Package control carries edit requests from the network surfaces (the HTTP
// inspector and the socket.io link) to the goroutine that owns the graph.
//
// Requests are queued on a buffered channel and applied in arrival order by
// Drain, which the app's tick loop calls right before each engine update.
// Submit waits for the result; Post does not.
package control
