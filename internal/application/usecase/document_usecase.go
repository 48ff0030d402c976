package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

// DocumentUseCase registro de documentos (solo metadatos, sin ficheros).
type DocumentUseCase struct {
	repo repository.DocumentRepository
	now  func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, now: time.Now}
}

// Create añade una entrada al registro.
func (uc *DocumentUseCase) Create(in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	doc := &entity.Document{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Type:         entity.DocumentType(in.Type),
		LastModified: today(uc.now),
		Size:         strings.TrimSpace(in.Size),
	}
	if err := uc.repo.Add(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// GetByID obtiene un documento por ID.
func (uc *DocumentUseCase) GetByID(id string) (*dto.DocumentResponse, error) {
	doc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// List devuelve el registro completo.
func (uc *DocumentUseCase) List() ([]dto.DocumentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDocumentResponse(d))
	}
	return out, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Type:         string(d.Type),
		LastModified: dto.FormatDate(d.LastModified),
		Size:         d.Size,
	}
}
