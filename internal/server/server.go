// Package server exposes a Session over HTTP with fiber.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/generator"
	"github.com/katalvlaran/relaxviz/internal/config"
	"github.com/katalvlaran/relaxviz/session"
)

// Server wires HTTP routes onto a Session.
type Server struct {
	app    *fiber.App
	sess   *session.Session
	loader *config.Loader
	log    *slog.Logger
}

// New registers all routes. loader may be nil, which disables /config/reload.
func New(sess *session.Session, loader *config.Loader, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		app:    fiber.New(fiber.Config{AppName: "relaxviz"}),
		sess:   sess,
		loader: loader,
		log:    log,
	}

	s.app.Use(s.logRequests)

	s.app.Post("/graph", s.generate)
	s.app.Get("/graph", s.graph)
	s.app.Delete("/graph", s.reset)
	s.app.Get("/graph/order", s.order)
	s.app.Put("/graph/source", s.setSource)

	s.app.Post("/runs", s.run)
	s.app.Delete("/runs", s.cancel)
	s.app.Get("/status", s.status)

	s.app.Post("/config/reload", s.reload)
	s.app.Get("/healthz", func(c fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// App returns the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("server starting", "addr", addr)
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown cancels any active run and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.sess.Cancel()
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) logRequests(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	s.log.Debug("request",
		"method", c.Method(), "path", c.Path(),
		"status", c.Response().StatusCode(), "duration", time.Since(start))
	return err
}

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrNoGraph):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrRunInProgress), errors.Is(err, bellmanford.ErrCancelled):
		return fiber.StatusConflict
	case errors.Is(err, bellmanford.ErrInvalidSource),
		errors.Is(err, bellmanford.ErrWeightOverflow),
		errors.Is(err, generator.ErrConstraintUnsatisfiable),
		errors.Is(err, config.ErrInvalid):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
}
