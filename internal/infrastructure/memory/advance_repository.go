package memory

import (
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.AdvanceRepository = (*AdvanceRepo)(nil)

// AdvanceRepo implementación en memoria de AdvanceRepository.
type AdvanceRepo struct {
	store *Store
}

// NewAdvanceRepository construye el adaptador sobre el Store compartido.
func NewAdvanceRepository(store *Store) *AdvanceRepo {
	return &AdvanceRepo{store: store}
}

// Create agrega un adelanto.
func (r *AdvanceRepo) Create(record *entity.AdvanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *record
	r.store.advances = append(r.store.advances, &c)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *AdvanceRepo) GetByID(id string) (*entity.AdvanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.advances {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

// ListByEmployee devuelve los adelantos de un empleado.
func (r *AdvanceRepo) ListByEmployee(employeeID string) ([]*entity.AdvanceRecord, error) {
	return r.filter(func(a *entity.AdvanceRecord) bool { return a.EmployeeID == employeeID })
}

// ListByStatus devuelve los adelantos con el estado indicado.
func (r *AdvanceRepo) ListByStatus(status string) ([]*entity.AdvanceRecord, error) {
	return r.filter(func(a *entity.AdvanceRecord) bool { return a.Status == status })
}

// List devuelve todos los adelantos.
func (r *AdvanceRepo) List() ([]*entity.AdvanceRecord, error) {
	return r.filter(func(*entity.AdvanceRecord) bool { return true })
}

// Update reemplaza el adelanto con el mismo ID.
// Devuelve domain.ErrNotFound si el id no existe.
func (r *AdvanceRepo) Update(record *entity.AdvanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, a := range r.store.advances {
		if a.ID == record.ID {
			c := *record
			r.store.advances[i] = &c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *AdvanceRepo) filter(keep func(*entity.AdvanceRecord) bool) ([]*entity.AdvanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.AdvanceRecord, 0)
	for _, a := range r.store.advances {
		if keep(a) {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}
