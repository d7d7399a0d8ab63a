// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the tick-driven lifecycle, decoupled from
// any specific entrypoint like a CLI.
//
// One goroutine owns the graph. Every tick it applies the edit requests
// queued by the network surfaces and then runs one engine update.
package app
