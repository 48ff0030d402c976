package usecase

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
	"github.com/okasc/intranet-api/internal/domain/sequence"
)

// ProductionUseCase órdenes de tintado (PROD).
type ProductionUseCase struct {
	repo repository.ProductionOrderRepository
	now  func() time.Time
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionOrderRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, now: time.Now}
}

// Create registra una orden "Do zrobienia" creada por actor.
func (uc *ProductionUseCase) Create(actor dto.Actor, in dto.CreateProductionOrderRequest) (*dto.ProductionOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la orden necesita al menos una línea", domain.ErrInvalidInput)
	}
	items := make([]entity.ProductionItem, 0, len(in.Items))
	for i, it := range in.Items {
		switch {
		case it.Quantity < 1:
			return nil, fmt.Errorf("%w: la cantidad de la línea %d debe ser al menos 1", domain.ErrInvalidInput, i+1)
		case !slices.Contains(entity.Palettes, it.Palette):
			return nil, fmt.Errorf("%w: paleta desconocida %q", domain.ErrInvalidInput, it.Palette)
		case !slices.Contains(entity.ProductTypes, it.ProductType):
			return nil, fmt.Errorf("%w: tipo de producto desconocido %q", domain.ErrInvalidInput, it.ProductType)
		}
		items = append(items, entity.ProductionItem{
			Lp:          i + 1,
			Palette:     it.Palette,
			ProductType: it.ProductType,
			Base:        strings.TrimSpace(it.Base),
			Color:       strings.TrimSpace(it.Color),
			Capacity:    strings.TrimSpace(it.Capacity),
			Quantity:    it.Quantity,
		})
	}
	created := today(uc.now)
	order, err := uc.repo.Add(func(seq int) *entity.ProductionOrder {
		return &entity.ProductionOrder{
			ID:           uuid.New().String(),
			OrderNumber:  sequence.Format(sequence.PrefixProductionOrder, created, seq),
			CreationDate: created,
			Client:       strings.TrimSpace(in.Client),
			Items:        items,
			CreatedBy:    actor.Name,
			Notes:        strings.TrimSpace(in.Notes),
			Status:       entity.ProductionToDo,
		}
	})
	if err != nil {
		return nil, err
	}
	return toProductionOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *ProductionUseCase) GetByID(id string) (*dto.ProductionOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductionOrderResponse(order), nil
}

// List devuelve las órdenes, la más reciente primero.
func (uc *ProductionUseCase) List() ([]dto.ProductionOrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toProductionOrderResponse(o))
	}
	return out, nil
}

// ToggleStatus alterna entre "Do zrobienia" y "Zrobione".
func (uc *ProductionUseCase) ToggleStatus(id string) (*dto.ProductionOrderResponse, error) {
	order, err := uc.repo.UpdateStatus(id, func(cur entity.ProductionOrderStatus) (entity.ProductionOrderStatus, error) {
		return cur.Toggled(), nil
	})
	if err != nil {
		return nil, err
	}
	return toProductionOrderResponse(order), nil
}

func toProductionOrderResponse(o *entity.ProductionOrder) *dto.ProductionOrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.ProductionItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.ProductionItemResponse{
			Lp:          it.Lp,
			Palette:     it.Palette,
			ProductType: it.ProductType,
			Base:        it.Base,
			Color:       it.Color,
			Capacity:    it.Capacity,
			Quantity:    it.Quantity,
		})
	}
	return &dto.ProductionOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		CreationDate: dto.FormatDate(o.CreationDate),
		Client:       o.Client,
		Items:        items,
		CreatedBy:    o.CreatedBy,
		Notes:        o.Notes,
		Status:       string(o.Status),
	}
}
