package usecase

import (
	"strings"

	"github.com/okasc/intranet-api/internal/application/ports"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

// PrintedDocument fichero listo para descargar.
type PrintedDocument struct {
	Filename string
	Content  []byte
}

// PrintUseCase versiones imprimibles (PDF) y exportables (XML ERP) de WZ y ZW.
type PrintUseCase struct {
	releases repository.WarehouseReleaseRepository
	returns  repository.CustomerReturnRepository
	printer  ports.DocumentPrinter
	exporter ports.ERPExporter
}

// NewPrintUseCase construye el caso de uso.
func NewPrintUseCase(
	releases repository.WarehouseReleaseRepository,
	returns repository.CustomerReturnRepository,
	printer ports.DocumentPrinter,
	exporter ports.ERPExporter,
) *PrintUseCase {
	return &PrintUseCase{releases: releases, returns: returns, printer: printer, exporter: exporter}
}

// WarehouseReleasePDF imprime un WZ.
func (uc *PrintUseCase) WarehouseReleasePDF(id string) (*PrintedDocument, error) {
	wz, err := uc.releases.GetByID(id)
	if err != nil {
		return nil, err
	}
	b, err := uc.printer.PrintWarehouseRelease(wz)
	if err != nil {
		return nil, err
	}
	return &PrintedDocument{Filename: fileName(wz.DocNumber, "pdf"), Content: b}, nil
}

// CustomerReturnPDF imprime un ZW.
func (uc *PrintUseCase) CustomerReturnPDF(id string) (*PrintedDocument, error) {
	zw, err := uc.returns.GetByID(id)
	if err != nil {
		return nil, err
	}
	b, err := uc.printer.PrintCustomerReturn(zw)
	if err != nil {
		return nil, err
	}
	return &PrintedDocument{Filename: fileName(zw.DocNumber, "pdf"), Content: b}, nil
}

// WarehouseReleaseXML exporta un WZ para importarlo a mano en el ERP.
func (uc *PrintUseCase) WarehouseReleaseXML(id string) (*PrintedDocument, error) {
	wz, err := uc.releases.GetByID(id)
	if err != nil {
		return nil, err
	}
	b, err := uc.exporter.ExportWarehouseRelease(wz)
	if err != nil {
		return nil, err
	}
	return &PrintedDocument{Filename: fileName(wz.DocNumber, "xml"), Content: b}, nil
}

// CustomerReturnXML exporta un ZW.
func (uc *PrintUseCase) CustomerReturnXML(id string) (*PrintedDocument, error) {
	zw, err := uc.returns.GetByID(id)
	if err != nil {
		return nil, err
	}
	b, err := uc.exporter.ExportCustomerReturn(zw)
	if err != nil {
		return nil, err
	}
	return &PrintedDocument{Filename: fileName(zw.DocNumber, "xml"), Content: b}, nil
}

// fileName "WZ/2024/07/001" -> "WZ_2024_07_001.pdf".
func fileName(docNumber, ext string) string {
	return strings.ReplaceAll(docNumber, "/", "_") + "." + ext
}
