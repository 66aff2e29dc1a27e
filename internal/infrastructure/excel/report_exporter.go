// Package excel exporta el reporte mensual consolidado a hoja de cálculo
// usando excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Estacion-api/internal/application/analytics"
	"github.com/jhoicas/Estacion-api/internal/application/dto"
)

var _ analytics.ReportExporter = (*ReportExporter)(nil)

const sheetName = "Reporte"

// ReportExporter genera el .xlsx del reporte mensual.
type ReportExporter struct {
	stationName string
}

// NewReportExporter construye el exportador.
func NewReportExporter(stationName string) *ReportExporter {
	return &ReportExporter{stationName: stationName}
}

// ExportMonthlyReport vuelca el reporte en una hoja con tres bloques:
// encabezado, totales acumulados y recorte del mes.
func (e *ReportExporter) ExportMonthlyReport(ctx context.Context, report *dto.MonthlyReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de título: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E2F3"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de sección: %w", err)
	}

	set := func(cell string, value interface{}) {
		_ = f.SetCellValue(sheetName, cell, value)
	}

	set("A1", e.stationName)
	set("A2", "Reporte mensual "+report.Month)
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	set("A4", "Acumulados")
	_ = f.SetCellStyle(sheetName, "A4", "B4", sectionStyle)
	set("A5", "Nómina pagada")
	set("B5", report.TotalSalaryPaid.InexactFloat64())
	set("A6", "Pérdidas registradas")
	set("B6", report.TotalLosses.InexactFloat64())
	set("A7", "Saldo de clientes pendiente")
	set("B7", report.TotalOutstanding.InexactFloat64())
	set("A8", "Adelantos otorgados")
	set("B8", report.TotalAdvances.InexactFloat64())

	set("A10", "Mes "+report.Month)
	_ = f.SetCellStyle(sheetName, "A10", "B10", sectionStyle)
	set("A11", "Pérdidas del mes")
	set("B11", report.MonthLosses.InexactFloat64())
	set("A12", "Cargos a crédito del mes")
	set("B12", report.MonthDebits.InexactFloat64())
	set("A13", "Número de cargos")
	set("B13", report.MonthDebitCount)
	set("A14", "Asistencia: presentes")
	set("B14", report.MonthAttendance.Present)
	set("A15", "Asistencia: tardes")
	set("B15", report.MonthAttendance.Late)
	set("A16", "Asistencia: ausentes")
	set("B16", report.MonthAttendance.Absent)

	_ = f.SetColWidth(sheetName, "A", "A", 32)
	_ = f.SetColWidth(sheetName, "B", "B", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
