package repository

import "github.com/jhoicas/Estacion-api/internal/domain/entity"

// AttendanceRepository puerto de persistencia de asistencia.
// Update devuelve domain.ErrNotFound si el id no corresponde a ningún
// registro (nunca no-op silencioso).
type AttendanceRepository interface {
	Create(record *entity.AttendanceRecord) error
	GetByID(id string) (*entity.AttendanceRecord, error)
	GetByEmployeeAndDate(employeeID, date string) (*entity.AttendanceRecord, error)
	ListByEmployee(employeeID string) ([]*entity.AttendanceRecord, error)
	ListByDate(date string) ([]*entity.AttendanceRecord, error)
	ListByMonth(month string) ([]*entity.AttendanceRecord, error)
	List() ([]*entity.AttendanceRecord, error)
	Update(record *entity.AttendanceRecord) error
}
