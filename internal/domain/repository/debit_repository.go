package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// DebitRepository puerto de persistencia de débitos de clientes.
// TotalBalanceByCustomer devuelve cero (no error) para clientes sin registros.
type DebitRepository interface {
	Create(record *entity.CustomerDebit) error
	GetByID(id string) (*entity.CustomerDebit, error)
	ListByCustomer(customerID string) ([]*entity.CustomerDebit, error)
	ListByMonth(month string) ([]*entity.CustomerDebit, error)
	List() ([]*entity.CustomerDebit, error)
	TotalBalanceByCustomer(customerID string) (decimal.Decimal, error)
}
