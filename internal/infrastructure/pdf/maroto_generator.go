// Package pdf implementa los documentos descargables de la estación con
// Maroto v2: el estado de cuenta de un cliente a crédito y el desprendible
// de pago de una liquidación mensual.
package pdf

import (
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcredit "github.com/jhoicas/Estacion-api/internal/application/credit"
	"github.com/jhoicas/Estacion-api/internal/application/usecase"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificación en tiempo de compilación de ambos puertos.
var (
	_ appcredit.StatementPDFGenerator = (*MarotoGenerator)(nil)
	_ usecase.PayslipPDFGenerator     = (*MarotoGenerator)(nil)
)

// MarotoGenerator implementa los generadores de PDF usando Maroto v2.
// StationName encabeza ambos documentos.
type MarotoGenerator struct {
	stationName string
}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator(stationName string) *MarotoGenerator {
	return &MarotoGenerator{stationName: stationName}
}

func (g *MarotoGenerator) pageConfig(title string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.stationName, true).
		Build()
}

// headerRows: nombre de la estación (izq) + título del documento (der).
func (g *MarotoGenerator) headerRow(docTitle, subtitle string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.stationName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(docTitle, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney agrega separador de miles a un número ya formateado sin decimales.
func formatMoney(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
