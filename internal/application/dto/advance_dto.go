package dto

import "github.com/shopspring/decimal"

// RequestAdvanceRequest body para POST /api/advances.
type RequestAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// AdvanceResponse adelanto en respuestas.
type AdvanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Reason       string          `json:"reason"`
	Status       string          `json:"status"`
	ApprovedBy   string          `json:"approved_by,omitempty"`
}
