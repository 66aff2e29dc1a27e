package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/auth"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// AttendanceHandler maneja punch, entrada manual, listados y resúmenes de
// asistencia. authUC resuelve el nombre del empleado autenticado para el punch.
type AttendanceHandler struct {
	uc     *usecase.AttendanceUseCase
	authUC *auth.AuthUseCase
}

// NewAttendanceHandler construye el handler de asistencia.
func NewAttendanceHandler(uc *usecase.AttendanceUseCase, authUC *auth.AuthUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, authUC: authUC}
}

// Punch godoc
// @Summary      Marcar asistencia (check-in o check-out según el estado del día)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PunchRequest  false  "coordenadas opcionales"
// @Success      200   {object}  dto.PunchResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/attendance/punch [post]
func (h *AttendanceHandler) Punch(c *fiber.Ctx) error {
	var in dto.PunchRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.authUC.Current(GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no activa"})
	}
	out, err := h.uc.Punch(c.Context(), GetEmployeeID(c), user.Name, in)
	if err != nil {
		if err == domain.ErrAttendanceClosed {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ATTENDANCE_CLOSED", Message: "la jornada de hoy ya está completa"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el usuario no tiene employee_id"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ManualEntry godoc
// @Summary      Registrar asistencia manual (supervisor / owner)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ManualAttendanceRequest  true  "empleado, fecha y horas"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/attendance/manual [post]
func (h *AttendanceHandler) ManualEntry(c *fiber.Ctx) error {
	var in dto.ManualAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ManualEntry(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id, employee_name, date (YYYY-MM-DD) y check_in son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asistencia (los administradores ven todo; el dsm, lo suyo)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AttendanceResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	role := entity.Role(GetRole(c))
	if role == entity.RoleOwner || role == entity.RoleSupervisor {
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

// Summary godoc
// @Summary      Resumen de asistencia por fecha o por mes
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        date   query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Param        month  query  string  false  "YYYY-MM; si viene, gana sobre date"
// @Success      200    {object}  dto.AttendanceSummaryResponse
// @Router       /api/attendance/summary [get]
func (h *AttendanceHandler) Summary(c *fiber.Ctx) error {
	if month := c.Query("month"); month != "" {
		out, err := h.uc.MonthlySummary(month)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.DailySummary(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
