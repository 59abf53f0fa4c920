package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccessLogMiddleware struct {
	logger *zap.SugaredLogger
}

func NewAccessLogMiddleware(logger *zap.SugaredLogger) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		if m.logger != nil {
			m.logger.Infow("http access",
				"rid", rid,
				"ip", c.IP(),
				"method", c.Method(),
				"path", c.OriginalURL(),
				"status", c.Response().StatusCode(),
				"latency", time.Since(start),
				"ua", c.Get("User-Agent"),
			)
		}

		return err
	}
}
