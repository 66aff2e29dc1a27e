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

	appcredit "github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/domain/entity"
)

// GenerateStatementPDF arma el estado de cuenta de un cliente a crédito:
// encabezado, datos del cliente, tabla de cargos y saldo pendiente.
func (g *MarotoGenerator) GenerateStatementPDF(ctx context.Context, data appcredit.StatementData) ([]byte, error) {
	cfg := g.pageConfig(fmt.Sprintf("Estado de cuenta %s", data.CustomerID))
	m := maroto.New(cfg)

	m.AddRows(g.headerRow("ESTADO DE CUENTA", data.CustomerID))
	m.AddRows(line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(statementCustomerRows(data)...)
	m.AddRows(statementTableHeaderRow())
	m.AddRows(statementDetailRows(data.Debits)...)
	m.AddRows(statementBalanceRow(data))

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de cuenta: %w", err)
	}
	return document.GetBytes(), nil
}

// statementCustomerRows bloque de identificación del cliente.
func statementCustomerRows(data appcredit.StatementData) []core.Row {
	return []core.Row{
		row.New(6).Add(
			col.New(6).Add(
				text.New("Cliente: "+data.CustomerName, props.Text{Size: 9, Top: 1}),
			),
			col.New(6).Add(
				text.New("Código: "+data.CustomerID, props.Text{
					Size: 9, Align: align.Right, Top: 1,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Teléfono: "+nonEmpty(data.Phone, "N/A"), props.Text{
					Size: 9, Top: 1, Color: colorGray,
				}),
			),
		),
	}
}

func statementTableHeaderRow() core.Row {
	header := func(size int, label string, alignment align.Type) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: alignment,
				Color: colorWhite, Top: 1.5,
			}),
		)
	}
	r := row.New(7).Add(
		header(2, "Fecha", align.Left),
		header(2, "Combustible", align.Left),
		header(3, "Descripción", align.Left),
		header(1, "Litros", align.Right),
		header(2, "Precio", align.Right),
		header(2, "Valor", align.Right),
	)
	r.WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	return r
}

func statementDetailRows(debits []*entity.CustomerDebit) []core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(
			text.New(value, props.Text{Size: 8, Align: alignment, Top: 1.5}),
		)
	}
	rows := make([]core.Row, 0, len(debits))
	for _, d := range debits {
		rows = append(rows, row.New(6).Add(
			cell(2, d.Date, align.Left),
			cell(2, d.FuelType, align.Left),
			cell(3, nonEmpty(d.Description, "-"), align.Left),
			cell(1, d.Quantity.StringFixed(1), align.Right),
			cell(2, formatMoney(d.Rate.StringFixed(0)), align.Right),
			cell(2, formatMoney(d.Amount.StringFixed(0)), align.Right),
		))
	}
	return rows
}

func statementBalanceRow(data appcredit.StatementData) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(
			text.New("SALDO", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3,
			}),
		),
		col.New(2).Add(
			text.New("$"+formatMoney(data.Balance.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Top: 3, Color: colorPrimary,
			}),
		),
	)
}
