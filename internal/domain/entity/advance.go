package entity

import "github.com/shopspring/decimal"

// AdvanceRecord adelanto contra el salario futuro de un empleado.
// Transiciones de estado: pending → approved | rejected, nunca en reversa.
type AdvanceRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string // YYYY-MM-DD
	Amount       decimal.Decimal
	Reason       string
	Status       string // pending | approved | rejected
	ApprovedBy   string // employee id del aprobador; vacío mientras pending
}
