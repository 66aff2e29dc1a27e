package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/auth"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// AdvanceHandler maneja adelantos de salario: solicitud del empleado y
// decisión (aprobar/rechazar) del owner.
type AdvanceHandler struct {
	uc     *usecase.AdvanceUseCase
	authUC *auth.AuthUseCase
}

// NewAdvanceHandler construye el handler de adelantos.
func NewAdvanceHandler(uc *usecase.AdvanceUseCase, authUC *auth.AuthUseCase) *AdvanceHandler {
	return &AdvanceHandler{uc: uc, authUC: authUC}
}

// Request godoc
// @Summary      Solicitar adelanto de salario (queda en pending)
// @Tags         advances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RequestAdvanceRequest  true  "monto y motivo"
// @Success      201   {object}  dto.AdvanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/advances [post]
func (h *AdvanceHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestAdvanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.authUC.Current(GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no activa"})
	}
	out, err := h.uc.Request(GetEmployeeID(c), user.Name, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reason es requerido y amount debe ser positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Approve godoc
// @Summary      Aprobar un adelanto pendiente (idempotente sobre approved)
// @Tags         advances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "advance id"
// @Success      200  {object}  dto.AdvanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/advances/{id}/approve [post]
func (h *AdvanceHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"), GetEmployeeID(c))
	return h.respondDecision(c, out, err)
}

// Reject godoc
// @Summary      Rechazar un adelanto pendiente (idempotente sobre rejected)
// @Tags         advances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "advance id"
// @Success      200  {object}  dto.AdvanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/advances/{id}/reject [post]
func (h *AdvanceHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Params("id"), GetEmployeeID(c))
	return h.respondDecision(c, out, err)
}

func (h *AdvanceHandler) respondDecision(c *fiber.Ctx, out *dto.AdvanceResponse, err error) error {
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el adelanto no existe"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el adelanto ya fue decidido en sentido contrario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar adelantos (el owner ve todos o los pendientes; el resto, los suyos)
// @Tags         advances
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "pending para filtrar pendientes (solo owner)"
// @Success      200  {array}  dto.AdvanceResponse
// @Router       /api/advances [get]
func (h *AdvanceHandler) List(c *fiber.Ctx) error {
	role := entity.Role(GetRole(c))
	if role == entity.RoleOwner {
		if c.Query("status") == entity.StatusPending {
			out, err := h.uc.ListPending()
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
			}
			return c.JSON(out)
		}
		out, err := h.uc.ListAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListByEmployee(GetEmployeeID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
