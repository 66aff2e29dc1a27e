package repository

import "github.com/jhoicas/Estacion-api/internal/domain/entity"

// LossRepository puerto de persistencia de pérdidas operativas.
type LossRepository interface {
	Create(record *entity.LossRecord) error
	GetByID(id string) (*entity.LossRecord, error)
	ListByMonth(month string) ([]*entity.LossRecord, error)
	List() ([]*entity.LossRecord, error)
}
