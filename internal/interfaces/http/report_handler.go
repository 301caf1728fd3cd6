package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/fishstock-api/internal/application/analytics"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// ReportHandler reportes de movimiento, antigüedad y ventas, y sus descargas.
type ReportHandler struct {
	uc  *appanalytics.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appanalytics.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Movement godoc
// @Summary      Reporte de movimiento de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "DD-MM-YYYY"
// @Success      200   {object}  dto.MovementReportResponse
// @Router       /api/reports/movement [get]
func (h *ReportHandler) Movement(c *fiber.Ctx) error {
	out, err := h.uc.Movement(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Aging godoc
// @Summary      Reporte de antigüedad por lote
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        today  query  string  false  "DD-MM-YYYY"
// @Success      200    {object}  dto.AgingReportResponse
// @Router       /api/reports/aging [get]
func (h *ReportHandler) Aging(c *fiber.Ctx) error {
	out, err := h.uc.Aging(c.Context(), c.Query("today"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Sales godoc
// @Summary      Ventas estimadas y costo por ítem
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "DD-MM-YYYY"
// @Success      200   {array}  dto.SalesPointDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.Context(), c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ExportMovement godoc
// @Summary      Descargar reporte de movimiento
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param        format  query  string  true   "xlsx | pdf"
// @Param        date    query  string  false  "DD-MM-YYYY"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movement/export [get]
func (h *ReportHandler) ExportMovement(c *fiber.Ctx) error {
	file, err := h.uc.ExportMovement(c.Context(), c.Query("format", "xlsx"), c.Query("date"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendFile(c, file)
}

// ExportAging godoc
// @Summary      Descargar reporte de antigüedad
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param        format  query  string  true   "xlsx | pdf"
// @Param        today   query  string  false  "DD-MM-YYYY"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/aging/export [get]
func (h *ReportHandler) ExportAging(c *fiber.Ctx) error {
	file, err := h.uc.ExportAging(c.Context(), c.Query("format", "xlsx"), c.Query("today"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *dto.ExportFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}
