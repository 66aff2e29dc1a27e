package memory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.DebitRepository = (*DebitRepo)(nil)

// DebitRepo implementación en memoria de DebitRepository.
type DebitRepo struct {
	store *Store
}

// NewDebitRepository construye el adaptador sobre el Store compartido.
func NewDebitRepository(store *Store) *DebitRepo {
	return &DebitRepo{store: store}
}

// Create agrega un débito.
func (r *DebitRepo) Create(record *entity.CustomerDebit) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *record
	r.store.debits = append(r.store.debits, &c)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *DebitRepo) GetByID(id string) (*entity.CustomerDebit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, d := range r.store.debits {
		if d.ID == id {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

// ListByCustomer devuelve los débitos de un cliente.
func (r *DebitRepo) ListByCustomer(customerID string) ([]*entity.CustomerDebit, error) {
	return r.filter(func(d *entity.CustomerDebit) bool { return d.CustomerID == customerID })
}

// ListByMonth devuelve los débitos cuyo Date empieza por month (YYYY-MM).
func (r *DebitRepo) ListByMonth(month string) ([]*entity.CustomerDebit, error) {
	return r.filter(func(d *entity.CustomerDebit) bool { return strings.HasPrefix(d.Date, month) })
}

// List devuelve todos los débitos.
func (r *DebitRepo) List() ([]*entity.CustomerDebit, error) {
	return r.filter(func(*entity.CustomerDebit) bool { return true })
}

// TotalBalanceByCustomer suma Balance de los débitos del cliente.
// Cliente sin registros → cero, nunca error.
func (r *DebitRepo) TotalBalanceByCustomer(customerID string) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	total := decimal.Zero
	for _, d := range r.store.debits {
		if d.CustomerID == customerID {
			total = total.Add(d.Balance)
		}
	}
	return total, nil
}

func (r *DebitRepo) filter(keep func(*entity.CustomerDebit) bool) ([]*entity.CustomerDebit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.CustomerDebit, 0)
	for _, d := range r.store.debits {
		if keep(d) {
			c := *d
			out = append(out, &c)
		}
	}
	return out, nil
}
