package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	v1 "job-portal/internal/delivery/http/routes/v1"
)

type App struct {
	Fiber *fiber.App
}

// New assembles the request pipeline. The error middleware is mounted
// first: it wraps every later stage, so handler errors, panics and the
// unmatched-route fallthrough all leave through the same funnel.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:      "job-portal",
		ReadTimeout:  c.Config.App.ReadTimeout,
		WriteTimeout: c.Config.App.WriteTimeout,
		IdleTimeout:  c.Config.App.IdleTimeout,
		BodyLimit:    10 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	errMw := middleware.NewErrorMiddleware(c.Logger)
	f.Use(errMw.Middleware())

	f.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.App.FrontendURL},
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodPut, fiber.MethodPatch},
		AllowHeaders:     []string{fiber.HeaderContentType, fiber.HeaderAuthorization},
		AllowCredentials: true,
	}))

	accessLog := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(accessLog.Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	registry := routes.NewRegistry(v1.Deps{
		Config:       c.Config,
		Users:        c.Users,
		Jobs:         c.Jobs,
		Applications: c.Applications,
		Cache:        c.Cache,
		Media:        c.Media,
	})
	registry.Register(f)

	// Unmatched routes fall through to here and into the error funnel.
	f.Use(func(ctx fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusNotFound,
			fmt.Sprintf("Route %s not found", ctx.OriginalURL()), nil, nil)
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
