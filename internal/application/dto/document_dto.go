package dto

// CreateDocumentRequest alta de un documento en el registro.
type CreateDocumentRequest struct {
	Name string `json:"name" validate:"notblank,max=255"`
	Type string `json:"type" validate:"required,oneof=PDF Word Spreadsheet Presentation"`
	Size string `json:"size" validate:"omitempty,max=32"`
}

// DocumentResponse salida del registro de documentos.
type DocumentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	LastModified string `json:"last_modified"`
	Size         string `json:"size"`
}
