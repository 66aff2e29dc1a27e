package repository

import "github.com/jhoicas/Estacion-api/internal/domain/entity"

// AdvanceRepository puerto de persistencia de adelantos de salario.
// Update devuelve domain.ErrNotFound si el id no existe.
type AdvanceRepository interface {
	Create(record *entity.AdvanceRecord) error
	GetByID(id string) (*entity.AdvanceRecord, error)
	ListByEmployee(employeeID string) ([]*entity.AdvanceRecord, error)
	ListByStatus(status string) ([]*entity.AdvanceRecord, error)
	List() ([]*entity.AdvanceRecord, error)
	Update(record *entity.AdvanceRecord) error
}
