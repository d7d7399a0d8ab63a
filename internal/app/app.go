package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	queue    *control.Queue
	graph    *graph.Graph
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and registry. With no modules given, the core node
// kinds are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("Node kinds registered.", "count", len(modules), "kinds", reg.Kinds())

	if err := reg.ValidateRegistry(ctx); err != nil {
		// A broken kind is a programmer error.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		queue:    control.NewQueue(0),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Queue returns the control queue edit requests are posted to.
func (a *App) Queue() *control.Queue {
	return a.queue
}

// Graph returns the graph built by Run, nil before that.
func (a *App) Graph() *graph.Graph {
	return a.graph
}
