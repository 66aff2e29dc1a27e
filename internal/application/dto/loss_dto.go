package dto

import "github.com/shopspring/decimal"

// CreateLossRequest body para POST /api/losses.
type CreateLossRequest struct {
	Date                string          `json:"date,omitempty"` // por defecto hoy
	Amount              decimal.Decimal `json:"amount"`
	Reason              string          `json:"reason"`
	ResponsibleEmployee string          `json:"responsible_employee,omitempty"`
}

// LossResponse pérdida en respuestas.
type LossResponse struct {
	ID                  string          `json:"id"`
	Date                string          `json:"date"`
	Amount              decimal.Decimal `json:"amount"`
	Reason              string          `json:"reason"`
	ResponsibleEmployee string          `json:"responsible_employee,omitempty"`
	ApprovedBy          string          `json:"approved_by"`
	Status              string          `json:"status"`
}

// LossListResponse listado más el total acumulado.
type LossListResponse struct {
	Losses []LossResponse  `json:"losses"`
	Total  decimal.Decimal `json:"total"`
}
