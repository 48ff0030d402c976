package entity

import "time"

// DocumentType tipo de archivo del registro de documentos.
type DocumentType string

const (
	DocumentPDF          DocumentType = "PDF"
	DocumentWord         DocumentType = "Word"
	DocumentSpreadsheet  DocumentType = "Spreadsheet"
	DocumentPresentation DocumentType = "Presentation"
)

// Document entrada del registro de documentos de la empresa (solo metadatos).
type Document struct {
	ID           string
	Name         string
	Type         DocumentType
	LastModified time.Time
	Size         string // texto libre, p.ej. "2.5 MB"
}

// Announcement comunicado del panel principal.
type Announcement struct {
	ID      int
	Title   string
	Date    string // fecha ya formateada en polaco, p.ej. "15 Lipca, 2024"
	Content string
}
