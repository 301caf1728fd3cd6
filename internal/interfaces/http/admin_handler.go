package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fishstock-api/internal/application/dto"
	"github.com/jhoicas/fishstock-api/internal/application/usecase"
	"github.com/jhoicas/fishstock-api/pkg/logger"
)

// AdminHandler acciones administrativas y listado de usuarios.
type AdminHandler struct {
	admin *usecase.AdminUseCase
	users *usecase.UserUseCase
	log   *logger.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(admin *usecase.AdminUseCase, users *usecase.UserUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, users: users, log: log}
}

// Reset godoc
// @Summary      Eliminar todas las compras y cierres (solo admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResetResponse
// @Router       /api/admin/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	out, err := h.admin.ResetAll(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if e := check(&page); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.users.List(c.Context(), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
