package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/specialistvlad/nodesynth/internal/engine"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/inspect"
)

// Run builds the graph from the configured patch and drives it until ctx is
// cancelled or the configured duration has elapsed.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Duration)
		defer cancel()
	}

	patch, err := a.LoadPatch(ctx)
	if err != nil {
		return err
	}

	sink, err := a.openSink(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect backend: %w", err)
	}
	eng := engine.New(backend.NewClient(sink, nil))
	if a.config.MaxSteps > 0 {
		eng.MaxSteps = a.config.MaxSteps
	}
	a.graph = graph.New(a.registry, eng)
	defer func() {
		if err := a.graph.Close(context.WithoutCancel(ctx)); err != nil {
			a.logger.Error("Graph teardown failed.", "error", err)
		}
	}()

	if err := a.graph.Apply(ctx, patch); err != nil {
		return fmt.Errorf("failed to apply patch: %w", err)
	}
	a.logger.Info("Patch applied.", "nodes", len(a.graph.Nodes()), "wires", len(a.graph.Wires()))

	if a.config.InspectPort > 0 {
		srv := inspect.New(a.queue, a.logger)
		go func() {
			if err := srv.Listen(fmt.Sprintf(":%d", a.config.InspectPort)); err != nil {
				a.logger.Error("Inspector failed.", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("Inspector shutdown failed.", "error", err)
			}
		}()
	}

	return a.loop(ctx)
}

// loop runs one tick per interval until ctx is done. Tick failures are
// logged and do not stop the loop.
func (a *App) loop(ctx context.Context) error {
	ticker := time.NewTicker(a.config.TickInterval())
	defer ticker.Stop()

	a.logger.Info("Tick loop started.", "rate", a.config.TickRate)
	var ticks int
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Tick loop stopped.", "ticks", ticks)
			return nil
		case <-ticker.C:
			ticks++
			if err := a.Tick(ctx); err != nil {
				a.logger.Warn("Tick failed.", "tick", ticks, "error", err)
			}
		}
	}
}

// Tick applies queued edit requests and runs one engine update.
func (a *App) Tick(ctx context.Context) error {
	if n := a.queue.Drain(ctx, a.graph); n > 0 {
		ctxlog.FromContext(ctx).Debug("Control requests applied.", "count", n)
	}
	return a.graph.Update(ctx)
}
