package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-pro/internal/application/dto"
	"github.com/tu-usuario/clientes-pro/internal/application/usecase"
	"github.com/tu-usuario/clientes-pro/internal/domain"
)

// ExecutiveHandler maneja las peticiones HTTP del catálogo de ejecutivos.
type ExecutiveHandler struct {
	uc *usecase.ExecutiveUseCase
}

// NewExecutiveHandler construye el handler.
func NewExecutiveHandler(uc *usecase.ExecutiveUseCase) *ExecutiveHandler {
	return &ExecutiveHandler{uc: uc}
}

// Create POST /api/executives
func (h *ExecutiveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExecutiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	exec, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un ejecutivo con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(exec)
}

// List GET /api/executives?limit=20&offset=0
func (h *ExecutiveHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
