package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// StockLeftHandler cierre nocturno.
type StockLeftHandler struct {
	uc  *usecase.StockLeftUseCase
	log *logger.Logger
}

// NewStockLeftHandler construye el handler.
func NewStockLeftHandler(uc *usecase.StockLeftUseCase, log *logger.Logger) *StockLeftHandler {
	return &StockLeftHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar cierres nocturnos
// @Tags         stock-left
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "DD-MM-YYYY"
// @Success      200   {array}   dto.StockLeftResponse
// @Router       /api/stock-left [get]
func (h *StockLeftHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Planilla de cierre de una fecha (por defecto hoy)
// @Tags         stock-left
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "DD-MM-YYYY"
// @Success      200   {object}  dto.NightSheetResponse
// @Router       /api/stock-left/sheet [get]
func (h *StockLeftHandler) Sheet(c *fiber.Ctx) error {
	out, err := h.uc.Sheet(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Registrar cierre nocturno
// @Description  Un remanente por cada ítem pendiente de la fecha; todo se guarda en una transacción.
// @Tags         stock-left
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockLeftRequest  true  "date?, entries"
// @Success      201   {array}   dto.StockLeftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-left [post]
func (h *StockLeftHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateStockLeftRequest
	if e := bind(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Submit(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
