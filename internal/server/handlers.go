package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/generator"
)

// graphView is the JSON shape of a generated graph.
type graphView struct {
	Seed      int64       `json:"seed"`
	Vertices  []string    `json:"vertices"`
	Cycle     []string    `json:"cycle"`
	Negatives int         `json:"negatives"`
	Source    string      `json:"source"`
	Edges     []core.Edge `json:"edges"`
}

func (s *Server) view(g *generator.Graph) graphView {
	return graphView{
		Seed:      g.Seed,
		Vertices:  g.Vertices(),
		Cycle:     g.Cycle,
		Negatives: g.Negatives,
		Source:    s.sess.Source(),
		Edges:     g.Edges(),
	}
}

// POST /graph?seed=N
func (s *Server) generate(c fiber.Ctx) error {
	var seed *int64
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "seed must be an integer"})
		}
		seed = &v
	}
	g, err := s.sess.Generate(c.Context(), seed)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s.view(g))
}

// GET /graph
func (s *Server) graph(c fiber.Ctx) error {
	g, err := s.sess.Graph()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(s.view(g))
}

// DELETE /graph
func (s *Server) reset(c fiber.Ctx) error {
	s.sess.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /graph/order?source=X
func (s *Server) order(c fiber.Ctx) error {
	src, order, err := s.sess.Order(c.Query("source"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"source": src, "order": order})
}

type sourceRequest struct {
	Source string `json:"source"`
}

// PUT /graph/source {"source":"B"}
func (s *Server) setSource(c fiber.Ctx) error {
	var req sourceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	order, err := s.sess.SetSource(req.Source)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"source": s.sess.Source(), "order": order})
}

type runRequest struct {
	Source  string `json:"source"`
	DelayMS int    `json:"delay_ms"`
}

// POST /runs {"source":"A","delay_ms":0}
func (s *Server) run(c fiber.Ctx) error {
	var req runRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
		}
	}
	if req.DelayMS < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "delay_ms must be non-negative"})
	}
	pacer := bellmanford.FixedDelay(time.Duration(req.DelayMS) * time.Millisecond)

	rep, err := s.sess.Run(c.Context(), req.Source, nil, pacer)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rep)
}

// DELETE /runs
func (s *Server) cancel(c fiber.Ctx) error {
	if !s.sess.Cancel() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active run"})
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// GET /status
func (s *Server) status(c fiber.Ctx) error {
	return c.JSON(s.sess.Status())
}

// POST /config/reload
func (s *Server) reload(c fiber.Ctx) error {
	if s.loader == nil || s.loader.Path() == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no config file"})
	}
	cfg, err := s.loader.Reload()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "config reloaded", "generator": cfg.Generator})
}
