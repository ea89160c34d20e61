package server

import (
	"github.com/thenninge/aware/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RegisterFunc mounts a resource's routes on the /api group.
type RegisterFunc func(fiber.Router)

type Server struct {
	App *fiber.App
	Cfg config.Config
}

// NewServer builds the fiber app for one resource service. Each binary
// passes its own resource registration; everything else is shared.
func NewServer(cfg config.Config, register RegisterFunc) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{App: app, Cfg: cfg}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if register != nil {
		register(app.Group("/api"))
	}
	return s
}
