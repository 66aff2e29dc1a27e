package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SalaryUseCase casos de uso de liquidaciones mensuales.
type SalaryUseCase struct {
	repo      repository.SalaryRepository
	generator PayslipPDFGenerator
}

// NewSalaryUseCase construye el caso de uso. generator puede ser nil si la
// descarga de desprendibles no está habilitada.
func NewSalaryUseCase(repo repository.SalaryRepository, generator PayslipPDFGenerator) *SalaryUseCase {
	return &SalaryUseCase{repo: repo, generator: generator}
}

// Create registra la liquidación de un mes. NetPay se calcula aquí como
// TotalEarnings - Advances - Losses; el valor del cliente no se acepta.
func (uc *SalaryUseCase) Create(in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	if in.EmployeeID == "" || in.EmployeeName == "" || !monthRe.MatchString(in.Month) {
		return nil, domain.ErrInvalidInput
	}
	if in.PresentDays < 0 || in.DailyWage.IsNegative() || in.TotalEarnings.IsNegative() ||
		in.Advances.IsNegative() || in.Losses.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	record := &entity.SalaryRecord{
		ID:            uuid.New().String(),
		EmployeeID:    in.EmployeeID,
		EmployeeName:  in.EmployeeName,
		Month:         in.Month,
		DailyWage:     in.DailyWage,
		PresentDays:   in.PresentDays,
		TotalEarnings: in.TotalEarnings,
		Advances:      in.Advances,
		Losses:        in.Losses,
		NetPay:        in.TotalEarnings.Sub(in.Advances).Sub(in.Losses),
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	resp := toSalaryResponse(record)
	return &resp, nil
}

// GetByID devuelve una liquidación, o domain.ErrNotFound.
func (uc *SalaryUseCase) GetByID(id string) (*dto.SalaryResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSalaryResponse(record)
	return &resp, nil
}

// ListByEmployee devuelve las liquidaciones de un empleado.
func (uc *SalaryUseCase) ListByEmployee(employeeID string) ([]dto.SalaryResponse, error) {
	records, err := uc.repo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	return toSalaryResponses(records), nil
}

// ListAll devuelve todas las liquidaciones.
func (uc *SalaryUseCase) ListAll() ([]dto.SalaryResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSalaryResponses(records), nil
}

// DownloadPayslip genera el desprendible de pago de una liquidación en PDF.
// Retorna (bytes, filename, error); domain.ErrNotFound si el id no existe.
func (uc *SalaryUseCase) DownloadPayslip(ctx context.Context, id string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("payslip: generador PDF no configurado")
	}
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("payslip: obtener liquidación: %w", err)
	}
	if record == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err := uc.generator.GeneratePayslipPDF(ctx, record)
	if err != nil {
		return nil, "", fmt.Errorf("payslip: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("nomina_%s_%s.pdf", record.EmployeeID, record.Month)
	return pdfBytes, filename, nil
}

// PayrollTotals agrega la nómina completa: bruto, deducciones
// (adelantos + pérdidas) y neto. Recalculado en cada consulta.
func (uc *SalaryUseCase) PayrollTotals() (*dto.PayrollTotalsResponse, error) {
	records, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.PayrollTotalsResponse{
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}
	for _, r := range records {
		out.TotalEarnings = out.TotalEarnings.Add(r.TotalEarnings)
		out.TotalDeductions = out.TotalDeductions.Add(r.Advances).Add(r.Losses)
		out.TotalNetPay = out.TotalNetPay.Add(r.NetPay)
	}
	return out, nil
}

func toSalaryResponse(r *entity.SalaryRecord) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		Month:         r.Month,
		DailyWage:     r.DailyWage,
		PresentDays:   r.PresentDays,
		TotalEarnings: r.TotalEarnings,
		Advances:      r.Advances,
		Losses:        r.Losses,
		NetPay:        r.NetPay,
	}
}

func toSalaryResponses(records []*entity.SalaryRecord) []dto.SalaryResponse {
	out := make([]dto.SalaryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toSalaryResponse(r))
	}
	return out
}
