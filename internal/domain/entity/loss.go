package entity

import "github.com/shopspring/decimal"

// Estados de aprobación compartidos por pérdidas y adelantos.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LossRecord pérdida operativa (derrame, faltante de caja, etc.).
// El estado se decide al crear: approved si quien registra es el owner,
// pending en cualquier otro caso. No existe mutador de aprobación posterior
// para pérdidas (brecha heredada del producto, ver DESIGN.md).
type LossRecord struct {
	ID                  string
	Date                string // YYYY-MM-DD
	Amount              decimal.Decimal
	Reason              string
	ResponsibleEmployee string // opcional
	ApprovedBy          string // employee id de quien registró / aprobó
	Status              string // pending | approved | rejected
}
