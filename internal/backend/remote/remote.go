// Package remote links the backend to an audio host over socket.io.
//
// Outbound, every backend.Command is emitted as a "command" event. Inbound,
// the host (or a control panel sharing the namespace) may emit "set",
// "trigger", "wire" and "unwire" events; these are turned into control
// requests for the graph goroutine.
package remote

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/nodesynth/internal/backend"
	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// CommandEvent is the event outbound commands are emitted under.
const CommandEvent = "command"

// Inbound event names.
const (
	EventSet     = "set"
	EventTrigger = "trigger"
	EventWire    = "wire"
	EventUnwire  = "unwire"
)

// DefaultConnectTimeout bounds how long Dial waits for the handshake.
const DefaultConnectTimeout = 15 * time.Second

// Config describes the audio host connection.
type Config struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// Poster accepts control requests without waiting for them.
type Poster interface {
	Post(cmd control.Command) error
}

// emitter is the part of the socket.io client the link writes to.
type emitter interface {
	Emit(ev string, args ...any) error
}

type emitFunc func(ev string, args ...any) error

func (f emitFunc) Emit(ev string, args ...any) error { return f(ev, args...) }

// Link is a backend.Sink writing to a socket.io connection.
type Link struct {
	io     *socket.Socket
	out    emitter
	logger *slog.Logger
}

// Dial connects to the audio host and subscribes inbound events to poster.
// A nil poster ignores inbound events.
func Dial(ctx context.Context, cfg Config, poster Poster) (*Link, error) {
	logger := ctxlog.FromContext(ctx).With("component", "remote", "url", cfg.URL)
	logger.Info("Connecting to audio host...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to audio host.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	if poster != nil {
		for _, event := range []string{EventSet, EventTrigger, EventWire, EventUnwire} {
			event := event
			io.On(types.EventName(event), func(args ...any) {
				cmd, err := DecodeEvent(event, args...)
				if err == nil {
					err = poster.Post(cmd)
				}
				if err != nil {
					logger.Warn("Inbound event rejected.", "event", event, "error", err)
				}
			})
		}
	}

	io.Connect()

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		out := emitFunc(func(ev string, args ...any) error {
			io.Emit(ev, args...)
			return nil
		})
		return &Link{io: io, out: out, logger: logger}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection")
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Send implements backend.Sink.
func (l *Link) Send(cmd backend.Command) {
	payload, err := commandPayload(cmd)
	if err != nil {
		l.logger.Error("Command could not be encoded.", "op", cmd.Op, "error", err)
		return
	}
	if err := l.out.Emit(CommandEvent, payload); err != nil {
		l.logger.Warn("Command not delivered.", "op", cmd.Op, "target", cmd.Target, "error", err)
	}
}

// Close disconnects from the audio host.
func (l *Link) Close() error {
	if l.io != nil {
		l.logger.Info("Disconnecting from audio host.", "sid", l.io.Id())
		l.io.Disconnect()
	}
	return nil
}

func commandPayload(cmd backend.Command) (map[string]any, error) {
	raw, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

type inbound struct {
	Address string          `json:"address"`
	Value   json.RawMessage `json:"value"`
	From    string          `json:"from"`
	To      string          `json:"to"`
}

// DecodeEvent turns an inbound event into a control request.
func DecodeEvent(event string, args ...any) (control.Command, error) {
	if len(args) == 0 {
		return control.Command{}, fmt.Errorf("%s: missing payload", event)
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return control.Command{}, fmt.Errorf("%s: %w", event, err)
	}
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		return control.Command{}, fmt.Errorf("%s: %w", event, err)
	}

	switch event {
	case EventSet:
		v, err := control.DecodeValue(msg.Value)
		if err != nil {
			return control.Command{}, fmt.Errorf("%s %s: %w", event, msg.Address, err)
		}
		return control.Command{Op: control.OpSet, Address: msg.Address, Value: v}, nil
	case EventTrigger:
		return control.Command{Op: control.OpTrigger, Address: msg.Address}, nil
	case EventWire:
		return control.Command{Op: control.OpConnect, From: msg.From, To: msg.To}, nil
	case EventUnwire:
		return control.Command{Op: control.OpDisconnect, From: msg.From, To: msg.To}, nil
	}
	return control.Command{}, fmt.Errorf("unknown event %q", event)
}
