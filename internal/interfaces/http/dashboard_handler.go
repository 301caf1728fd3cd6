package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/fishstock-api/internal/application/analytics"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// DashboardHandler maneja el endpoint del tablero.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve el tablero del día.
// GET /api/dashboard?today=DD-MM-YYYY
//
// Sin parámetro, "hoy" se calcula en la zona horaria configurada (APP_TIMEZONE).
// todays_estimated_sales es null mientras no exista cierre nocturno de hoy.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), c.Query("today"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
