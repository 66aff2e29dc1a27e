package analytics

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/domain/repository"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ReportExporter puerto del exportador del reporte mensual a hoja de
// cálculo (implementado con excelize en infrastructure/excel).
type ReportExporter interface {
	ExportMonthlyReport(ctx context.Context, report *dto.MonthlyReportDTO) ([]byte, error)
}

// ReportUseCase arma el reporte mensual consolidado de la estación.
type ReportUseCase struct {
	attendanceRepo repository.AttendanceRepository
	salaryRepo     repository.SalaryRepository
	lossRepo       repository.LossRepository
	debitRepo      repository.DebitRepository
	advanceRepo    repository.AdvanceRepository
	exporter       ReportExporter
}

// NewReportUseCase construye el caso de uso. exporter puede ser nil si la
// exportación a hoja de cálculo no está habilitada.
func NewReportUseCase(
	attendanceRepo repository.AttendanceRepository,
	salaryRepo repository.SalaryRepository,
	lossRepo repository.LossRepository,
	debitRepo repository.DebitRepository,
	advanceRepo repository.AdvanceRepository,
	exporter ReportExporter,
) *ReportUseCase {
	return &ReportUseCase{
		attendanceRepo: attendanceRepo,
		salaryRepo:     salaryRepo,
		lossRepo:       lossRepo,
		debitRepo:      debitRepo,
		advanceRepo:    advanceRepo,
		exporter:       exporter,
	}
}

// Monthly arma el reporte del mes indicado (el mes en curso si viene vacío):
// totales acumulados de toda la historia + recorte del mes.
func (uc *ReportUseCase) Monthly(month string) (*dto.MonthlyReportDTO, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !monthRe.MatchString(month) {
		return nil, domain.ErrInvalidInput
	}

	salaries, err := uc.salaryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: salarios: %w", err)
	}
	losses, err := uc.lossRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: pérdidas: %w", err)
	}
	debits, err := uc.debitRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: débitos: %w", err)
	}
	advances, err := uc.advanceRepo.List()
	if err != nil {
		return nil, fmt.Errorf("report: adelantos: %w", err)
	}
	monthAttendance, err := uc.attendanceRepo.ListByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("report: asistencia del mes: %w", err)
	}

	out := &dto.MonthlyReportDTO{
		Month:            month,
		TotalSalaryPaid:  decimal.Zero,
		TotalLosses:      decimal.Zero,
		TotalOutstanding: decimal.Zero,
		TotalAdvances:    decimal.Zero,
		MonthLosses:      decimal.Zero,
		MonthDebits:      decimal.Zero,
	}

	for _, s := range salaries {
		out.TotalSalaryPaid = out.TotalSalaryPaid.Add(s.NetPay)
	}
	for _, l := range losses {
		out.TotalLosses = out.TotalLosses.Add(l.Amount)
		if hasMonthPrefix(l.Date, month) {
			out.MonthLosses = out.MonthLosses.Add(l.Amount)
		}
	}
	for _, d := range debits {
		out.TotalOutstanding = out.TotalOutstanding.Add(d.Balance)
		if hasMonthPrefix(d.Date, month) {
			out.MonthDebits = out.MonthDebits.Add(d.Amount)
			out.MonthDebitCount++
		}
	}
	for _, a := range advances {
		out.TotalAdvances = out.TotalAdvances.Add(a.Amount)
	}

	out.MonthAttendance = dto.AttendanceSummaryResponse{Month: month}
	for _, a := range monthAttendance {
		switch a.Status {
		case entity.AttendancePresent:
			out.MonthAttendance.Present++
		case entity.AttendanceAbsent:
			out.MonthAttendance.Absent++
		case entity.AttendanceLate:
			out.MonthAttendance.Late++
		}
	}

	return out, nil
}

// Export genera el reporte mensual y lo exporta a hoja de cálculo.
// Retorna (bytes, filename, error).
func (uc *ReportUseCase) Export(ctx context.Context, month string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", fmt.Errorf("report: exportador no configurado")
	}
	report, err := uc.Monthly(month)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportMonthlyReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("report: exportación fallida: %w", err)
	}
	filename := fmt.Sprintf("reporte_%s.xlsx", report.Month)
	return data, filename, nil
}

func hasMonthPrefix(date, month string) bool {
	return len(date) >= 7 && date[:7] == month
}
