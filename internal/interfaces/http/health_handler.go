package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker verifica la disponibilidad del almacenamiento (ping a la BD).
type HealthChecker interface {
	Check(ctx context.Context) error
}

// healthHandler GET /health: liveness + ping al almacenamiento. 503 si el ping falla.
func healthHandler(service string, checker HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storage := "ok"
		status := fiber.StatusOK
		if checker != nil {
			ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
			defer cancel()
			if err := checker.Check(ctx); err != nil {
				storage = "unavailable"
				status = fiber.StatusServiceUnavailable
			}
		}
		return c.Status(status).JSON(fiber.Map{"status": storage, "service": service})
	}
}
