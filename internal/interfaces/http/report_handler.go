package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// ReportHandler maneja el resumen del dashboard y el reporte mensual.
type ReportHandler struct {
	dashboardUC *analytics.DashboardUseCase
	reportUC    *analytics.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(dashboardUC *analytics.DashboardUseCase, reportUC *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{dashboardUC: dashboardUC, reportUC: reportUC}
}

// DashboardSummary godoc
// @Summary      Resumen del dashboard (la forma depende del rol del token)
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *ReportHandler) DashboardSummary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(analytics.Viewer{
		Role:       entity.Role(GetRole(c)),
		EmployeeID: GetEmployeeID(c),
		CustomerID: GetCustomerID(c),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Reporte mensual consolidado de la estación
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        month  query  string  false  "YYYY-MM (por defecto el mes en curso)"
// @Success      200  {object}  dto.MonthlyReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.reportUC.Monthly(c.Query("month"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe tener formato YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el reporte mensual a hoja de cálculo (.xlsx)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        month  query  string  false  "YYYY-MM (por defecto el mes en curso)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.reportUC.Export(c.Context(), c.Query("month"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "month debe tener formato YYYY-MM"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
