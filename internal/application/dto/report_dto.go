package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// La forma depende del rol: el backend decide qué bloques llenar
// (dispatch por rol, no el cliente).
type DashboardSummaryDTO struct {
	Role      string `json:"role"`
	DateLabel string `json:"date_label"` // ej: "Enero 2025"

	// Bloque de estación (owner / supervisor)
	Station *StationSummaryDTO `json:"station,omitempty"`

	// Bloque personal (supervisor / dsm)
	Personal *PersonalSummaryDTO `json:"personal,omitempty"`

	// Bloque de crédito (customer)
	Credit *CreditSummaryDTO `json:"credit,omitempty"`
}

// StationSummaryDTO KPIs del día para quien administra la estación.
type StationSummaryDTO struct {
	TodayAttendance  int             `json:"today_attendance"`  // empleados con registro hoy
	TotalOutstanding decimal.Decimal `json:"total_outstanding"` // saldo de débitos de clientes
	TotalLosses      decimal.Decimal `json:"total_losses"`
	PendingAdvances  int             `json:"pending_advances"`
}

// PersonalSummaryDTO resumen propio de un empleado.
type PersonalSummaryDTO struct {
	PresentDays   int             `json:"present_days"`
	TotalAdvances decimal.Decimal `json:"total_advances"`
}

// CreditSummaryDTO resumen propio de un cliente.
type CreditSummaryDTO struct {
	Balance         decimal.Decimal `json:"balance"`
	DebitsThisMonth int             `json:"debits_this_month"`
}

// MonthlyReportDTO respuesta de GET /api/reports/monthly.
// Totales acumulados + recorte del mes; siempre recalculado desde las
// colecciones crudas (sin mantenimiento incremental).
type MonthlyReportDTO struct {
	Month string `json:"month"` // YYYY-MM

	TotalSalaryPaid  decimal.Decimal `json:"total_salary_paid"`
	TotalLosses      decimal.Decimal `json:"total_losses"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalAdvances    decimal.Decimal `json:"total_advances"`

	MonthAttendance AttendanceSummaryResponse `json:"month_attendance"`
	MonthLosses     decimal.Decimal           `json:"month_losses"`
	MonthDebits     decimal.Decimal           `json:"month_debits"`
	MonthDebitCount int                       `json:"month_debit_count"`
}
