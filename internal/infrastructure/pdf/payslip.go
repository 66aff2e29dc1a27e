package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// GeneratePayslipPDF arma el desprendible de pago de una liquidación mensual:
// encabezado, datos del empleado, devengados, deducciones y neto a pagar.
func (g *MarotoGenerator) GeneratePayslipPDF(ctx context.Context, salary *entity.SalaryRecord) ([]byte, error) {
	cfg := g.pageConfig(fmt.Sprintf("Nómina %s %s", salary.EmployeeID, salary.Month))
	m := maroto.New(cfg)

	m.AddRows(g.headerRow("DESPRENDIBLE DE PAGO", salary.Month))
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Empleado: "+salary.EmployeeName, props.Text{Size: 9, Top: 1}),
			),
			col.New(6).Add(
				text.New("Código: "+salary.EmployeeID, props.Text{
					Size: 9, Align: align.Right, Top: 1,
				}),
			),
		),
	)

	m.AddRows(
		payslipConceptRow("Días trabajados", fmt.Sprintf("%d", salary.PresentDays), false),
		payslipConceptRow("Jornal diario", money(salary.DailyWage), false),
		payslipConceptRow("Total devengado", money(salary.TotalEarnings), false),
		payslipConceptRow("(-) Adelantos", money(salary.Advances), false),
		payslipConceptRow("(-) Pérdidas a cargo", money(salary.Losses), false),
	)
	m.AddRows(line.NewRow(3, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(payslipConceptRow("NETO A PAGAR", money(salary.NetPay), true))

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar desprendible: %w", err)
	}
	return document.GetBytes(), nil
}

// payslipConceptRow una línea concepto/valor; bold resalta el neto.
func payslipConceptRow(label, value string, bold bool) core.Row {
	style := fontstyle.Normal
	color := &props.Color{}
	if bold {
		style = fontstyle.Bold
		color = colorPrimary
	}
	return row.New(7).Add(
		col.New(8).Add(
			text.New(label, props.Text{Size: 9, Style: style, Top: 1.5, Color: color}),
		),
		col.New(4).Add(
			text.New(value, props.Text{
				Size: 9, Style: style, Align: align.Right, Top: 1.5, Color: color,
			}),
		),
	)
}

func money(d decimal.Decimal) string {
	return "$" + formatMoney(d.StringFixed(0))
}
