package memory

import (
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo implementación en memoria de SalaryRepository.
type SalaryRepo struct {
	store *Store
}

// NewSalaryRepository construye el adaptador sobre el Store compartido.
func NewSalaryRepository(store *Store) *SalaryRepo {
	return &SalaryRepo{store: store}
}

// Create agrega una liquidación mensual.
func (r *SalaryRepo) Create(record *entity.SalaryRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *record
	r.store.salaries = append(r.store.salaries, &c)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *SalaryRepo) GetByID(id string) (*entity.SalaryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.salaries {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

// ListByEmployee devuelve las liquidaciones de un empleado.
func (r *SalaryRepo) ListByEmployee(employeeID string) ([]*entity.SalaryRecord, error) {
	return r.filter(func(s *entity.SalaryRecord) bool { return s.EmployeeID == employeeID })
}

// ListByMonth devuelve las liquidaciones de un mes (YYYY-MM).
func (r *SalaryRepo) ListByMonth(month string) ([]*entity.SalaryRecord, error) {
	return r.filter(func(s *entity.SalaryRecord) bool { return s.Month == month })
}

// List devuelve todas las liquidaciones.
func (r *SalaryRepo) List() ([]*entity.SalaryRecord, error) {
	return r.filter(func(*entity.SalaryRecord) bool { return true })
}

func (r *SalaryRepo) filter(keep func(*entity.SalaryRecord) bool) ([]*entity.SalaryRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.SalaryRecord, 0)
	for _, s := range r.store.salaries {
		if keep(s) {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}
