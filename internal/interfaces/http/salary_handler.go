package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// SalaryHandler maneja liquidaciones mensuales: registro, listados, totales
// de nómina y desprendible de pago en PDF.
type SalaryHandler struct {
	uc *usecase.SalaryUseCase
}

// NewSalaryHandler construye el handler de liquidaciones.
func NewSalaryHandler(uc *usecase.SalaryUseCase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar liquidación mensual (net_pay lo calcula el servidor)
// @Tags         salaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSalaryRequest  true  "empleado, mes y conceptos"
// @Success      201   {object}  dto.SalaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/salaries [post]
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "employee_id, employee_name y month (YYYY-MM) son requeridos; los montos no pueden ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar liquidaciones (el owner ve todas; el resto, las suyas)
// @Tags         salaries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SalaryResponse
// @Router       /api/salaries [get]
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	if entity.Role(GetRole(c)) == entity.RoleOwner {
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

// PayrollTotals godoc
// @Summary      Totales de nómina: bruto, deducciones y neto
// @Tags         salaries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.PayrollTotalsResponse
// @Router       /api/salaries/totals [get]
func (h *SalaryHandler) PayrollTotals(c *fiber.Ctx) error {
	out, err := h.uc.PayrollTotals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadPayslip godoc
// @Summary      Descargar el desprendible de pago de una liquidación en PDF
// @Tags         salaries
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "salary id"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salaries/{id}/payslip [get]
func (h *SalaryHandler) DownloadPayslip(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadPayslip(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la liquidación no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
