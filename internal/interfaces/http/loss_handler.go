package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// LossHandler maneja el registro y listado de pérdidas operativas.
type LossHandler struct {
	uc *usecase.LossUseCase
}

// NewLossHandler construye el handler de pérdidas.
func NewLossHandler(uc *usecase.LossUseCase) *LossHandler {
	return &LossHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pérdida (auto-aprobada si la registra el owner)
// @Tags         losses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateLossRequest  true  "monto y motivo"
// @Success      201   {object}  dto.LossResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/losses [post]
func (h *LossHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLossRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(entity.Role(GetRole(c)), GetEmployeeID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reason es requerido y amount debe ser positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pérdidas con el total acumulado
// @Tags         losses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.LossListResponse
// @Router       /api/losses [get]
func (h *LossHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
