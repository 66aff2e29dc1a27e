package memory

import (
	"strings"

	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación en memoria de AttendanceRepository.
// Es la única colección con mutación post-creación (check-out).
type AttendanceRepo struct {
	store *Store
}

// NewAttendanceRepository construye el adaptador sobre el Store compartido.
func NewAttendanceRepository(store *Store) *AttendanceRepo {
	return &AttendanceRepo{store: store}
}

// Create agrega un registro de asistencia.
func (r *AttendanceRepo) Create(record *entity.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *record
	r.store.attendance = append(r.store.attendance, &c)
	return nil
}

// GetByID busca por id. Devuelve (nil, nil) si no existe.
func (r *AttendanceRepo) GetByID(id string) (*entity.AttendanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.attendance {
		if a.ID == id {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

// GetByEmployeeAndDate busca el registro del empleado para la fecha.
// Devuelve (nil, nil) si no existe (aún no hay check-in ese día).
func (r *AttendanceRepo) GetByEmployeeAndDate(employeeID, date string) (*entity.AttendanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.attendance {
		if a.EmployeeID == employeeID && a.Date == date {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

// ListByEmployee devuelve el historial de un empleado.
func (r *AttendanceRepo) ListByEmployee(employeeID string) ([]*entity.AttendanceRecord, error) {
	return r.filter(func(a *entity.AttendanceRecord) bool { return a.EmployeeID == employeeID })
}

// ListByDate devuelve los registros de una fecha.
func (r *AttendanceRepo) ListByDate(date string) ([]*entity.AttendanceRecord, error) {
	return r.filter(func(a *entity.AttendanceRecord) bool { return a.Date == date })
}

// ListByMonth devuelve los registros cuyo Date empieza por month (YYYY-MM).
func (r *AttendanceRepo) ListByMonth(month string) ([]*entity.AttendanceRecord, error) {
	return r.filter(func(a *entity.AttendanceRecord) bool { return strings.HasPrefix(a.Date, month) })
}

// List devuelve todos los registros.
func (r *AttendanceRepo) List() ([]*entity.AttendanceRecord, error) {
	return r.filter(func(*entity.AttendanceRecord) bool { return true })
}

// Update reemplaza el registro con el mismo ID.
// Devuelve domain.ErrNotFound si ningún registro coincide: el no-op
// silencioso del cliente original se promueve a fallo señalizado.
func (r *AttendanceRepo) Update(record *entity.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, a := range r.store.attendance {
		if a.ID == record.ID {
			c := *record
			r.store.attendance[i] = &c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *AttendanceRepo) filter(keep func(*entity.AttendanceRecord) bool) ([]*entity.AttendanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.AttendanceRecord, 0)
	for _, a := range r.store.attendance {
		if keep(a) {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}
