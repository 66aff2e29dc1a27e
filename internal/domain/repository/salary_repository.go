package repository

import "github.com/jhoicas/Estacion-api/internal/domain/entity"

// SalaryRepository puerto de persistencia de liquidaciones mensuales.
type SalaryRepository interface {
	Create(record *entity.SalaryRecord) error
	GetByID(id string) (*entity.SalaryRecord, error)
	ListByEmployee(employeeID string) ([]*entity.SalaryRecord, error)
	ListByMonth(month string) ([]*entity.SalaryRecord, error)
	List() ([]*entity.SalaryRecord, error)
}
