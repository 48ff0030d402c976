package ports

import "github.com/okasc/intranet-api/internal/domain/entity"

// DocumentPrinter genera la versión imprimible (PDF) de los documentos de almacén.
type DocumentPrinter interface {
	PrintWarehouseRelease(doc *entity.WarehouseRelease) ([]byte, error)
	PrintCustomerReturn(doc *entity.CustomerReturn) ([]byte, error)
}

// ERPExporter serializa documentos al formato XML de importación del ERP.
type ERPExporter interface {
	ExportWarehouseRelease(doc *entity.WarehouseRelease) ([]byte, error)
	ExportCustomerReturn(doc *entity.CustomerReturn) ([]byte, error)
}
