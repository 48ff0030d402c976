// Package erpxml exporta WZ y ZW al XML que el ERP importa a mano.
// No hay integración directa: el fichero se descarga y se carga en el ERP.
package erpxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

var _ ports.ERPExporter = (*Exporter)(nil)

// Tipos de documento del atributo Dokument/@typ.
const (
	TypeWarehouseRelease = "WZ"
	TypeCustomerReturn   = "ZW"
)

const dateLayout = "2006-01-02"

// Exporter serializa documentos de almacén con etree.
type Exporter struct {
	company string
}

// NewExporter construye el exportador; company va en Dokument/@wystawca.
func NewExporter(company string) *Exporter {
	return &Exporter{company: company}
}

// ExportWarehouseRelease XML de un WZ.
func (e *Exporter) ExportWarehouseRelease(doc *entity.WarehouseRelease) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("erpxml: documento WZ vacío")
	}
	d, root := e.newDocument(TypeWarehouseRelease, doc.DocNumber, doc.IssueDate.Format(dateLayout), string(doc.Status))
	root.CreateElement("Kontrahent").CreateAttr("nazwa", doc.Client)
	optional(root, "Budowa", doc.ConstructionSite)

	items := root.CreateElement("Pozycje")
	for _, it := range doc.Items {
		p := items.CreateElement("Pozycja")
		p.CreateAttr("lp", strconv.Itoa(it.Lp))
		p.CreateElement("Nazwa").SetText(it.Name)
		p.CreateElement("Ilosc").SetText(it.Quantity.String())
		p.CreateElement("Jm").SetText(it.Unit)
	}
	optional(root, "Uwagi", doc.Notes)
	root.CreateElement("Wystawil").SetText(doc.IssuedBy)
	return write(d)
}

// ExportCustomerReturn XML de un ZW.
func (e *Exporter) ExportCustomerReturn(doc *entity.CustomerReturn) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("erpxml: documento ZW vacío")
	}
	d, root := e.newDocument(TypeCustomerReturn, doc.DocNumber, doc.ReturnDate.Format(dateLayout), string(doc.Status))
	root.CreateElement("Kontrahent").CreateAttr("nazwa", doc.Client)
	optional(root, "DotyczyWZ", doc.OriginalWzNumber)

	items := root.CreateElement("Pozycje")
	for _, it := range doc.Items {
		p := items.CreateElement("Pozycja")
		p.CreateAttr("lp", strconv.Itoa(it.Lp))
		p.CreateElement("Nazwa").SetText(it.Name)
		p.CreateElement("Ilosc").SetText(it.Quantity.String())
		p.CreateElement("Jm").SetText(it.Unit)
		p.CreateElement("Powod").SetText(it.Reason)
	}
	root.CreateElement("Przyjal").SetText(doc.ReceivedBy)
	return write(d)
}

func (e *Exporter) newDocument(typ, number, date, status string) (*etree.Document, *etree.Element) {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := d.CreateElement("Dokument")
	root.CreateAttr("typ", typ)
	root.CreateAttr("numer", number)
	root.CreateAttr("data", date)
	root.CreateAttr("status", status)
	if e.company != "" {
		root.CreateAttr("wystawca", e.company)
	}
	return d, root
}

// optional añade el elemento solo si value no está vacío.
func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		parent.CreateElement(tag).SetText(value)
	}
}

func write(d *etree.Document) ([]byte, error) {
	d.Indent(2)
	b, err := d.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("erpxml: serializar: %w", err)
	}
	return b, nil
}
