package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

// LossUseCase casos de uso de pérdidas operativas.
// La autoridad de aprobación se decide al crear según el rol del creador;
// no existe paso de aprobación posterior para pérdidas (brecha heredada
// del producto, documentada en DESIGN.md).
type LossUseCase struct {
	repo repository.LossRepository
}

// NewLossUseCase construye el caso de uso.
func NewLossUseCase(repo repository.LossRepository) *LossUseCase {
	return &LossUseCase{repo: repo}
}

// Create registra una pérdida. Estado: approved si el creador es el owner,
// pending en cualquier otro caso. ApprovedBy queda con el employee id del
// creador (quien la registró, y en el caso del owner, quien la aprobó).
func (uc *LossUseCase) Create(creatorRole entity.Role, creatorEmployeeID string, in dto.CreateLossRequest) (*dto.LossResponse, error) {
	if in.Reason == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	status := entity.StatusPending
	if creatorRole == entity.RoleOwner {
		status = entity.StatusApproved
	}

	record := &entity.LossRecord{
		ID:                  uuid.New().String(),
		Date:                date,
		Amount:              in.Amount,
		Reason:              in.Reason,
		ResponsibleEmployee: in.ResponsibleEmployee,
		ApprovedBy:          creatorEmployeeID,
		Status:              status,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	resp := toLossResponse(record)
	return &resp, nil
}

// List devuelve todas las pérdidas más el total acumulado.
func (uc *LossUseCase) List() (*dto.LossListResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.LossListResponse{Losses: make([]dto.LossResponse, 0, len(records)), Total: decimal.Zero}
	for _, r := range records {
		out.Losses = append(out.Losses, toLossResponse(r))
		out.Total = out.Total.Add(r.Amount)
	}
	return out, nil
}

func toLossResponse(r *entity.LossRecord) dto.LossResponse {
	return dto.LossResponse{
		ID:                  r.ID,
		Date:                r.Date,
		Amount:              r.Amount,
		Reason:              r.Reason,
		ResponsibleEmployee: r.ResponsibleEmployee,
		ApprovedBy:          r.ApprovedBy,
		Status:              r.Status,
	}
}
