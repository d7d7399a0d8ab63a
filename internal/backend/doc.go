// Package backend defines the boundary between the node graph and the
// continuous-signal audio host.
//
// The graph never processes samples. It issues fire-and-forget commands
// (create, start, stop, set a parameter, schedule a ramp, connect, disconnect)
// through the Handle and Param capabilities and never reads results back.
//
// The concrete Client adapter turns every capability call into a Command and
// hands it to a Sink. The Recorder sink keeps commands in memory (offline mode
// and tests); the remote package forwards them to an audio host over socket.io.
package backend
