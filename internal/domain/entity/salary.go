package entity

import "github.com/shopspring/decimal"

// SalaryRecord liquidación mensual de un empleado.
// NetPay = TotalEarnings - Advances - Losses; el caso de uso lo recalcula
// siempre en el servidor, nunca confía en el valor enviado por el cliente.
type SalaryRecord struct {
	ID            string
	EmployeeID    string
	EmployeeName  string
	Month         string // YYYY-MM
	DailyWage     decimal.Decimal
	PresentDays   int
	TotalEarnings decimal.Decimal
	Advances      decimal.Decimal
	Losses        decimal.Decimal
	NetPay        decimal.Decimal
}
