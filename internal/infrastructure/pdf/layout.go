package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"

	"github.com/okasc/intranet-api/internal/domain/entity"
)

const printDateLayout = "02.01.2006"

// field par etiqueta/valor del bloque de datos del documento.
type field struct {
	Label string
	Value string
}

// column columna de la tabla de posiciones; Size en unidades de la rejilla de 12.
type column struct {
	Label string
	Size  int
	Align align.Type
}

// signature bloque de firma: etiqueta y nombre impreso (puede ir vacío).
type signature struct {
	Label string
	Name  string
}

// layout contenido imprimible de un documento de almacén, independiente de maroto.
// Los bloques opcionales vacíos no se imprimen.
type layout struct {
	Title      string
	Code       string
	Fields     []field
	Columns    []column
	Rows       [][]string
	Notes      string
	Signatures [2]signature
}

var lineColumns = []column{
	{Label: "Lp.", Size: 1, Align: align.Center},
	{Label: "Nazwa towaru / usługi", Size: 7, Align: align.Left},
	{Label: "Ilość", Size: 2, Align: align.Right},
	{Label: "J.m.", Size: 2, Align: align.Center},
}

var returnColumns = []column{
	{Label: "Lp.", Size: 1, Align: align.Center},
	{Label: "Nazwa towaru / usługi", Size: 5, Align: align.Left},
	{Label: "Ilość", Size: 1, Align: align.Right},
	{Label: "J.m.", Size: 1, Align: align.Center},
	{Label: "Powód zwrotu", Size: 4, Align: align.Left},
}

func warehouseReleaseLayout(w *entity.WarehouseRelease) layout {
	fields := []field{{Label: "Klient:", Value: w.Client}}
	if s := strings.TrimSpace(w.ConstructionSite); s != "" {
		fields = append(fields, field{Label: "Budowa:", Value: s})
	}
	fields = append(fields, field{Label: "Data wystawienia:", Value: w.IssueDate.Format(printDateLayout)})

	rows := make([][]string, 0, len(w.Items))
	for _, it := range w.Items {
		rows = append(rows, []string{strconv.Itoa(it.Lp), it.Name, it.Quantity.String(), it.Unit})
	}
	return layout{
		Title:      "WYDANIE MAGAZYNOWE",
		Code:       w.DocNumber,
		Fields:     fields,
		Columns:    lineColumns,
		Rows:       rows,
		Notes:      strings.TrimSpace(w.Notes),
		Signatures: [2]signature{{Label: "Wystawił(a)", Name: w.IssuedBy}, {Label: "Odebrał(a)"}},
	}
}

func customerReturnLayout(r *entity.CustomerReturn) layout {
	fields := []field{{Label: "Klient:", Value: r.Client}}
	if s := strings.TrimSpace(r.OriginalWzNumber); s != "" {
		fields = append(fields, field{Label: "Dotyczy dokumentu WZ:", Value: s})
	}
	fields = append(fields, field{Label: "Data zwrotu:", Value: r.ReturnDate.Format(printDateLayout)})

	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{strconv.Itoa(it.Lp), it.Name, it.Quantity.String(), it.Unit, it.Reason})
	}
	return layout{
		Title:      "PROTOKÓŁ ZWROTU TOWARU",
		Code:       r.DocNumber,
		Fields:     fields,
		Columns:    returnColumns,
		Rows:       rows,
		Signatures: [2]signature{{Label: "Przyjął(a)", Name: r.ReceivedBy}, {Label: "Zwrócił(a)"}},
	}
}

// Las fuentes estándar del PDF (helvetica) solo cubren Latin-1; las letras polacas
// que quedan fuera se transliteran. "ó" sí existe en Latin-1.
var latin1Replacer = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "A", "Ć", "C", "Ę", "E", "Ł", "L", "Ń", "N", "Ś", "S", "Ź", "Z", "Ż", "Z",
)

func pdfText(s string) string { return latin1Replacer.Replace(s) }
