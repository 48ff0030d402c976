package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

// ServiceUseCase registro de servicios en obra.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create registra un servicio pendiente de liquidar.
func (uc *ServiceUseCase) Create(actor dto.Actor, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	date, err := dto.ParseDate(in.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha de servicio %q", domain.ErrInvalidInput, in.ServiceDate)
	}
	if !in.DurationHours.IsPositive() {
		return nil, fmt.Errorf("%w: la duración debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.AgreedPrice != nil && in.AgreedPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio pactado no puede ser negativo", domain.ErrInvalidInput)
	}
	svc := &entity.Service{
		ID:            uuid.New().String(),
		ClientName:    strings.TrimSpace(in.ClientName),
		Location:      strings.TrimSpace(in.Location),
		ServiceDate:   date,
		DurationHours: in.DurationHours,
		Kilometers:    in.Kilometers,
		Description:   strings.TrimSpace(in.Description),
		AgreedPrice:   in.AgreedPrice,
		CreatedBy:     actor.Name,
	}
	if err := uc.repo.Add(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServiceUseCase) GetByID(id string) (*dto.ServiceResponse, error) {
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// List devuelve los servicios, el más reciente primero.
func (uc *ServiceUseCase) List() ([]dto.ServiceResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toServiceResponse(s))
	}
	return out, nil
}

// ToggleSettled alterna "Do rozliczenia" / "Rozliczone".
func (uc *ServiceUseCase) ToggleSettled(id string) (*dto.ServiceResponse, error) {
	svc, err := uc.repo.UpdateSettled(id, func(settled bool) (bool, error) {
		return !settled, nil
	})
	if err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:              s.ID,
		ClientName:      s.ClientName,
		Location:        s.Location,
		ServiceDate:     dto.FormatDate(s.ServiceDate),
		DurationHours:   s.DurationHours,
		Kilometers:      s.Kilometers,
		Description:     s.Description,
		AgreedPrice:     s.AgreedPrice,
		IsSettled:       s.IsSettled,
		SettlementLabel: s.SettlementLabel(),
		CreatedBy:       s.CreatedBy,
	}
}
