package credit

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// StatementData todo lo que necesita el generador para armar el estado de
// cuenta de un cliente.
type StatementData struct {
	CustomerID   string
	CustomerName string
	Phone        string
	Balance      decimal.Decimal
	Debits       []*entity.CustomerDebit
}

// StatementPDFGenerator puerto del generador de estados de cuenta en PDF
// (implementado con Maroto en infrastructure/pdf).
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data StatementData) ([]byte, error)
}
