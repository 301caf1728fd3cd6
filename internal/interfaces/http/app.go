package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// NewApp crea la aplicación Fiber con recover, request id y log de peticiones.
// Los errores que escapan de los handlers (404 de ruta, panics) responden con dto.ErrorResponse.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			msg := "error interno"
			if code < fiber.StatusInternalServerError {
				msg = err.Error()
			}
			label := strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(code), " ", "_"))
			return c.Status(code).JSON(dto.ErrorResponse{Code: label, Message: msg})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Component("http")))
	return app
}
