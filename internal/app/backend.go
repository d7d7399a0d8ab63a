package app

import (
	"context"
	"log/slog"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/backend/remote"
)

// openSink connects to the audio host, or returns a sink that only logs when
// no host is configured.
func (a *App) openSink(ctx context.Context) (backend.Sink, error) {
	if a.config.BackendURL == "" {
		a.logger.Warn("No backend configured, running offline.")
		return logSink(a.logger), nil
	}
	return remote.Dial(ctx, remote.Config{
		URL:       a.config.BackendURL,
		Namespace: a.config.BackendNamespace,
	}, a.queue)
}

func logSink(logger *slog.Logger) backend.Sink {
	return backend.SinkFunc(func(cmd backend.Command) {
		logger.Debug("Backend command.", "op", cmd.Op, "target", cmd.Target, "receiver", cmd.Receiver, "param", cmd.Param, "value", cmd.Value, "time", cmd.Time)
	})
}
