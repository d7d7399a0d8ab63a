// Package inspect serves a small HTTP API for looking at and editing the
// running graph. Every request is forwarded to the graph goroutine through
// the control queue.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/specialistvlad/nodesynth/internal/control"
	"github.com/specialistvlad/nodesynth/internal/engine"
	"github.com/specialistvlad/nodesynth/internal/graph"
	"github.com/specialistvlad/nodesynth/internal/node"
	"github.com/specialistvlad/nodesynth/internal/registry"
)

// RequestTimeout bounds how long a request waits for the graph goroutine.
const RequestTimeout = 5 * time.Second

// Submitter hands a request to the graph goroutine and waits for its result.
type Submitter interface {
	Submit(ctx context.Context, cmd control.Command) (control.Result, error)
}

// Server is the inspector HTTP server.
type Server struct {
	app    *fiber.App
	submit Submitter
	logger *slog.Logger
}

type nodeRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type valueRequest struct {
	Value json.RawMessage `json:"value"`
}

type wireRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// New builds the server and its routes.
func New(submit Submitter, logger *slog.Logger) *Server {
	s := &Server{
		app:    fiber.New(),
		submit: submit,
		logger: logger,
	}

	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.SendString("OK")
	})

	s.app.Get("/graph", func(c fiber.Ctx) error {
		res, err := s.do(c, control.Command{Op: control.OpSnapshot})
		if err != nil {
			return s.fail(c, err)
		}
		return c.JSON(res.Value)
	})

	s.app.Post("/nodes", func(c fiber.Ctx) error {
		var req nodeRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		res, err := s.do(c, control.Command{Op: control.OpAddNode, Kind: req.Kind, Name: req.Name})
		if err != nil {
			return s.fail(c, err)
		}
		return c.Status(201).JSON(fiber.Map{"name": res.Value})
	})

	s.app.Delete("/nodes/:name", func(c fiber.Ctx) error {
		if _, err := s.do(c, control.Command{Op: control.OpRemoveNode, Name: c.Params("name")}); err != nil {
			return s.fail(c, err)
		}
		return c.SendStatus(204)
	})

	s.app.Put("/inputs/:address", func(c fiber.Ctx) error {
		addr, err := url.PathUnescape(c.Params("address"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid address"})
		}
		var req valueRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		v, err := control.DecodeValue(req.Value)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if _, err := s.do(c, control.Command{Op: control.OpSet, Address: addr, Value: v}); err != nil {
			return s.fail(c, err)
		}
		return c.SendStatus(204)
	})

	s.app.Post("/inputs/:address/trigger", func(c fiber.Ctx) error {
		addr, err := url.PathUnescape(c.Params("address"))
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid address"})
		}
		if _, err := s.do(c, control.Command{Op: control.OpTrigger, Address: addr}); err != nil {
			return s.fail(c, err)
		}
		return c.SendStatus(204)
	})

	s.app.Post("/wires", func(c fiber.Ctx) error {
		var req wireRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if _, err := s.do(c, control.Command{Op: control.OpConnect, From: req.From, To: req.To}); err != nil {
			return s.fail(c, err)
		}
		return c.SendStatus(201)
	})

	s.app.Delete("/wires", func(c fiber.Ctx) error {
		var req wireRequest
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if _, err := s.do(c, control.Command{Op: control.OpDisconnect, From: req.From, To: req.To}); err != nil {
			return s.fail(c, err)
		}
		return c.SendStatus(204)
	})

	return s
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("Inspector listening.", "address", fmt.Sprintf("http://localhost%s/graph", addr))
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// do submits cmd and folds a failed result into the returned error.
func (s *Server) do(c fiber.Ctx, cmd control.Command) (control.Result, error) {
	ctx, cancel := context.WithTimeout(c.Context(), RequestTimeout)
	defer cancel()
	res, err := s.submit.Submit(ctx, cmd)
	if err != nil {
		return res, err
	}
	return res, res.Err
}

func (s *Server) fail(c fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= 500 {
		s.logger.Error("Inspector request failed.", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, graph.ErrNodeNotFound), errors.Is(err, graph.ErrSocketNotFound):
		return 404
	case errors.Is(err, graph.ErrDuplicateNode):
		return 409
	case errors.Is(err, node.ErrCycleDetected):
		return 422
	case errors.Is(err, node.ErrInvalidConnection), errors.Is(err, node.ErrInvalidValue), errors.Is(err, registry.ErrUnknownKind):
		return 400
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), errors.Is(err, engine.ErrClosed):
		return 503
	}
	return 500
}
