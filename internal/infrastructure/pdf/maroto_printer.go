// Package pdf imprime los documentos de almacén (WZ y ZW) con maroto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO + OKA S.C. / Hurtownia Budowlana │ TÍTULO + NÚMERO    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Klient / Budowa o WZ de origen / Fecha                     │
//	│  TABLA: Lp. | Nazwa | Ilość | J.m. [| Powód zwrotu]          │
//	│  Uwagi (solo WZ, si hay)                                    │
//	│  FIRMAS: emisor/receptor                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

var _ ports.DocumentPrinter = (*MarotoPrinter)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 213, Green: 43, Blue: 30} // rojo corporativo d52b1e
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoPrinter implementa ports.DocumentPrinter usando Maroto v2.
type MarotoPrinter struct {
	company  string
	tagline  string
	logoPath string
}

// NewMarotoPrinter construye la impresora. logoPath vacío o inexistente = sin logo.
func NewMarotoPrinter(company, tagline, logoPath string) *MarotoPrinter {
	return &MarotoPrinter{company: company, tagline: tagline, logoPath: logoPath}
}

// PrintWarehouseRelease imprime un WZ.
func (p *MarotoPrinter) PrintWarehouseRelease(doc *entity.WarehouseRelease) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento WZ vacío")
	}
	return p.render(warehouseReleaseLayout(doc))
}

// PrintCustomerReturn imprime un protocolo ZW.
func (p *MarotoPrinter) PrintCustomerReturn(doc *entity.CustomerReturn) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento ZW vacío")
	}
	return p.render(customerReturnLayout(doc))
}

func (p *MarotoPrinter) render(l layout) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(pdfText(l.Title+" "+l.Code), true).
		WithAuthor(pdfText(p.company), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(p.headerRow(l))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(row.New(4))
	for _, f := range l.Fields {
		m.AddRows(fieldRow(f))
	}
	m.AddRows(row.New(4))

	m.AddRows(tableHeaderRow(l.Columns))
	for _, r := range tableRows(l.Columns, l.Rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	if l.Notes != "" {
		m.AddRows(notesRows(l.Notes)...)
	}

	m.AddRows(row.New(20))
	m.AddRows(signatureRow(l.Signatures))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + empresa (izq) y título + número (der).
func (p *MarotoPrinter) headerRow(l layout) core.Row {
	company := col.New(5).Add(
		text.New(pdfText(p.company), props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		text.New(pdfText(p.tagline), props.Text{Size: 9, Top: 10, Color: colorGray}),
	)
	title := col.New(5).Add(
		text.New(pdfText(l.Title), props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2}),
		text.New(pdfText(l.Code), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 10, Color: colorPrimary}),
	)
	if p.hasLogo() {
		return row.New(22).Add(
			image.NewFromFileCol(2, p.logoPath, props.Rect{Center: true, Percent: 90}),
			company,
			title,
		)
	}
	return row.New(22).Add(col.New(2), company, title)
}

func (p *MarotoPrinter) hasLogo() bool {
	if p.logoPath == "" {
		return false
	}
	_, err := os.Stat(p.logoPath)
	return err == nil
}

func fieldRow(f field) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(pdfText(f.Label), props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(9).Add(text.New(pdfText(f.Value), props.Text{Size: 9, Top: 1})),
	)
}

func tableHeaderRow(cols []column) core.Row {
	cells := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cells = append(cells, col.New(c.Size).Add(text.New(pdfText(c.Label), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.Align, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cells...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableRows(cols []column, rows [][]string) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		cells := make([]core.Col, 0, len(cols))
		for i, c := range cols {
			value := ""
			if i < len(r) {
				value = r[i]
			}
			cells = append(cells, col.New(c.Size).Add(text.New(pdfText(value), props.Text{
				Size: 8, Align: c.Align, Top: 1.5, Left: 1, Right: 1,
			})))
		}
		out = append(out, row.New(7).Add(cells...))
	}
	return out
}

func notesRows(notes string) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(6).Add(col.New(12).Add(text.New("Uwagi:", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}))),
		row.New(12).Add(col.New(12).Add(text.New(pdfText(notes), props.Text{Size: 8, Top: 1, Color: colorGray}))),
	}
}

// signatureRow: dos bloques con línea de firma y nombre opcional debajo.
func signatureRow(sigs [2]signature) core.Row {
	block := func(s signature) core.Col {
		return col.New(5).Add(
			text.New("..............................................", props.Text{Size: 9, Align: align.Center}),
			text.New(pdfText(s.Label), props.Text{Size: 8, Align: align.Center, Top: 5, Color: colorGray}),
			text.New(pdfText(s.Name), props.Text{Size: 8, Align: align.Center, Top: 10}),
		)
	}
	return row.New(18).Add(block(sigs[0]), col.New(2), block(sigs[1]))
}
