package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

// AdvanceUseCase casos de uso de adelantos de salario: solicitud del
// empleado y aprobación/rechazo del owner. Las transiciones de estado solo
// avanzan: pending → approved | rejected.
type AdvanceUseCase struct {
	repo repository.AdvanceRepository
}

// NewAdvanceUseCase construye el caso de uso.
func NewAdvanceUseCase(repo repository.AdvanceRepository) *AdvanceUseCase {
	return &AdvanceUseCase{repo: repo}
}

// Request crea una solicitud de adelanto en estado pending.
func (uc *AdvanceUseCase) Request(employeeID, employeeName string, in dto.RequestAdvanceRequest) (*dto.AdvanceResponse, error) {
	if employeeID == "" || in.Reason == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	record := &entity.AdvanceRecord{
		ID:           uuid.New().String(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Date:         time.Now().Format("2006-01-02"),
		Amount:       in.Amount,
		Reason:       in.Reason,
		Status:       entity.StatusPending,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	resp := toAdvanceResponse(record)
	return &resp, nil
}

// Approve pasa un adelanto pending a approved y registra el aprobador.
// Aprobar un adelanto ya aprobado es idempotente (reafirma approved sin
// cambiar el aprobador original). Aprobar uno rechazado es ErrConflict:
// los estados nunca retroceden.
func (uc *AdvanceUseCase) Approve(id, approvedBy string) (*dto.AdvanceResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	switch record.Status {
	case entity.StatusApproved:
		resp := toAdvanceResponse(record)
		return &resp, nil
	case entity.StatusRejected:
		return nil, domain.ErrConflict
	}
	record.Status = entity.StatusApproved
	record.ApprovedBy = approvedBy
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	resp := toAdvanceResponse(record)
	return &resp, nil
}

// Reject pasa un adelanto pending a rejected y registra quién lo rechazó.
// Simétrico a Approve: idempotente sobre rejected, ErrConflict sobre approved.
func (uc *AdvanceUseCase) Reject(id, rejectedBy string) (*dto.AdvanceResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	switch record.Status {
	case entity.StatusRejected:
		resp := toAdvanceResponse(record)
		return &resp, nil
	case entity.StatusApproved:
		return nil, domain.ErrConflict
	}
	record.Status = entity.StatusRejected
	record.ApprovedBy = rejectedBy
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	resp := toAdvanceResponse(record)
	return &resp, nil
}

// ListByEmployee devuelve los adelantos de un empleado.
func (uc *AdvanceUseCase) ListByEmployee(employeeID string) ([]dto.AdvanceResponse, error) {
	records, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toAdvanceResponses(records), nil
}

// ListPending devuelve los adelantos pendientes de decisión (vista del owner).
func (uc *AdvanceUseCase) ListPending() ([]dto.AdvanceResponse, error) {
	records, err := uc.repo.ListByStatus(entity.StatusPending)
	if err != nil {
		return nil, err
	}
	return toAdvanceResponses(records), nil
}

// ListAll devuelve todos los adelantos.
func (uc *AdvanceUseCase) ListAll() ([]dto.AdvanceResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toAdvanceResponses(records), nil
}

func toAdvanceResponse(r *entity.AdvanceRecord) dto.AdvanceResponse {
	return dto.AdvanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Date:         r.Date,
		Amount:       r.Amount,
		Reason:       r.Reason,
		Status:       r.Status,
		ApprovedBy:   r.ApprovedBy,
	}
}

func toAdvanceResponses(records []*entity.AdvanceRecord) []dto.AdvanceResponse {
	out := make([]dto.AdvanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toAdvanceResponse(r))
	}
	return out
}
