package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
	"github.com/jhoicas/Estacion-api/internal/domain"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
	"github.com/jhoicas/Estacion-api/internal/infrastructure/memory"
)

// fakeExporter exportador determinista para tests.
type fakeExporter struct {
	lastReport *dto.MonthlyReportDTO
}

func (f *fakeExporter) ExportMonthlyReport(ctx context.Context, report *dto.MonthlyReportDTO) ([]byte, error) {
	f.lastReport = report
	return []byte("xlsx-fake"), nil
}

func buildReportUC(exporter analytics.ReportExporter) (*analytics.ReportUseCase, *memory.Store) {
	store := memory.NewStore()
	uc := analytics.NewReportUseCase(
		memory.NewAttendanceRepository(store),
		memory.NewSalaryRepository(store),
		memory.NewLossRepository(store),
		memory.NewDebitRepository(store),
		memory.NewAdvanceRepository(store),
		exporter,
	)
	return uc, store
}

// El reporte mezcla acumulados históricos con el recorte del mes pedido.
// SeedDemo carga los datos de ejemplo de enero 2025.
func TestMonthly_TotalesConDatosDemo(t *testing.T) {
	uc, store := buildReportUC(nil)
	store.SeedDemo()

	out, err := uc.Monthly("2025-01")
	require.NoError(t, err)

	assert.True(t, out.TotalSalaryPaid.Equal(decimal.NewFromInt(6240)), "3400 + 2840, got %s", out.TotalSalaryPaid)
	assert.True(t, out.TotalLosses.Equal(decimal.NewFromInt(150)), "100 + 50, got %s", out.TotalLosses)
	assert.True(t, out.TotalOutstanding.Equal(decimal.NewFromInt(4300)), "2500 + 1800, got %s", out.TotalOutstanding)
	assert.True(t, out.TotalAdvances.Equal(decimal.NewFromInt(800)), "300 + 500, got %s", out.TotalAdvances)

	// Recorte de enero: todo el dataset demo es de ese mes.
	assert.True(t, out.MonthLosses.Equal(decimal.NewFromInt(150)))
	assert.True(t, out.MonthDebits.Equal(decimal.NewFromInt(4300)))
	assert.Equal(t, 2, out.MonthDebitCount)
	assert.Equal(t, 2, out.MonthAttendance.Present)
	assert.Zero(t, out.MonthAttendance.Late)
}

// Un mes sin movimientos conserva los acumulados históricos pero con el
// recorte mensual en cero.
func TestMonthly_MesSinMovimientos(t *testing.T) {
	uc, store := buildReportUC(nil)
	store.SeedDemo()

	out, err := uc.Monthly("2025-06")
	require.NoError(t, err)

	assert.True(t, out.TotalLosses.Equal(decimal.NewFromInt(150)), "los acumulados no dependen del mes")
	assert.True(t, out.MonthLosses.IsZero())
	assert.True(t, out.MonthDebits.IsZero())
	assert.Zero(t, out.MonthDebitCount)
	assert.Zero(t, out.MonthAttendance.Present)
}

func TestMonthly_MesInvalido(t *testing.T) {
	uc, _ := buildReportUC(nil)

	for _, month := range []string{"2025-13", "enero", "2025-1", "2025-00"} {
		_, err := uc.Monthly(month)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "mes %q debe rechazarse", month)
	}
}

func TestExport_GeneraArchivoConNombre(t *testing.T) {
	exporter := &fakeExporter{}
	uc, store := buildReportUC(exporter)
	store.SeedDemo()

	data, filename, err := uc.Export(context.Background(), "2025-01")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "reporte_2025-01.xlsx", filename)
	require.NotNil(t, exporter.lastReport)
	assert.Equal(t, "2025-01", exporter.lastReport.Month)
}

func TestExport_SinExportadorConfigurado(t *testing.T) {
	uc, _ := buildReportUC(nil)
	_, _, err := uc.Export(context.Background(), "2025-01")
	assert.Error(t, err)
}

// Cubre de paso el conteo de asistencia por estado dentro del reporte.
func TestMonthly_AsistenciaPorEstado(t *testing.T) {
	uc, store := buildReportUC(nil)
	repo := memory.NewAttendanceRepository(store)

	for _, r := range []*entity.AttendanceRecord{
		{ID: "a1", EmployeeID: "EMP002", Date: "2025-02-01", Status: entity.AttendancePresent},
		{ID: "a2", EmployeeID: "EMP002", Date: "2025-02-02", Status: entity.AttendanceLate},
		{ID: "a3", EmployeeID: "EMP003", Date: "2025-02-02", Status: entity.AttendanceAbsent},
		{ID: "a4", EmployeeID: "EMP003", Date: "2025-03-01", Status: entity.AttendancePresent}, // otro mes
	} {
		require.NoError(t, repo.Create(r))
	}

	out, err := uc.Monthly("2025-02")
	require.NoError(t, err)
	assert.Equal(t, 1, out.MonthAttendance.Present)
	assert.Equal(t, 1, out.MonthAttendance.Late)
	assert.Equal(t, 1, out.MonthAttendance.Absent)
}
