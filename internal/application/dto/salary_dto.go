package dto

import "github.com/shopspring/decimal"

// CreateSalaryRequest body para POST /api/salaries.
// NetPay no se recibe: el servidor lo calcula como
// TotalEarnings - Advances - Losses.
type CreateSalaryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Month         string          `json:"month"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	PresentDays   int             `json:"present_days"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Advances      decimal.Decimal `json:"advances"`
	Losses        decimal.Decimal `json:"losses"`
}

// SalaryResponse liquidación en respuestas.
type SalaryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Month         string          `json:"month"`
	DailyWage     decimal.Decimal `json:"daily_wage"`
	PresentDays   int             `json:"present_days"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	Advances      decimal.Decimal `json:"advances"`
	Losses        decimal.Decimal `json:"losses"`
	NetPay        decimal.Decimal `json:"net_pay"`
}

// PayrollTotalsResponse agregados de nómina (vista del owner).
type PayrollTotalsResponse struct {
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	TotalDeductions decimal.Decimal `json:"total_deductions"` // adelantos + pérdidas
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}
