package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
	"github.com/okasc/intranet-api/internal/domain/sequence"
)

// WarehouseReleaseUseCase casos de uso de los documentos WZ.
type WarehouseReleaseUseCase struct {
	repo repository.WarehouseReleaseRepository
	now  func() time.Time
}

// NewWarehouseReleaseUseCase construye el caso de uso.
func NewWarehouseReleaseUseCase(repo repository.WarehouseReleaseRepository) *WarehouseReleaseUseCase {
	return &WarehouseReleaseUseCase{repo: repo, now: time.Now}
}

// Create registra un WZ temporal emitido por actor. El número WZ/AAAA/MM/NNN lo asigna el repositorio.
func (uc *WarehouseReleaseUseCase) Create(actor dto.Actor, in dto.CreateWarehouseReleaseRequest) (*dto.WarehouseReleaseResponse, error) {
	items := make([]entity.LineItem, 0, len(in.Items))
	for i, it := range in.Items {
		if !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: la cantidad de la posición %d debe ser mayor que cero", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.LineItem{
			Lp:       i + 1,
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Unit:     strings.TrimSpace(it.Unit),
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: el documento necesita al menos una posición", domain.ErrInvalidInput)
	}
	issued := today(uc.now)
	wz, err := uc.repo.Add(func(seq int) *entity.WarehouseRelease {
		return &entity.WarehouseRelease{
			ID:               uuid.New().String(),
			DocNumber:        sequence.Format(sequence.PrefixWarehouseRelease, issued, seq),
			IssueDate:        issued,
			Client:           strings.TrimSpace(in.Client),
			ConstructionSite: strings.TrimSpace(in.ConstructionSite),
			Items:            items,
			IssuedBy:         actor.Name,
			Notes:            strings.TrimSpace(in.Notes),
			Status:           entity.ReleaseTemporary,
		}
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseReleaseResponse(wz), nil
}

// GetByID obtiene un WZ por ID.
func (uc *WarehouseReleaseUseCase) GetByID(id string) (*dto.WarehouseReleaseResponse, error) {
	wz, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toWarehouseReleaseResponse(wz), nil
}

// List devuelve los WZ, el más reciente primero.
func (uc *WarehouseReleaseUseCase) List() ([]dto.WarehouseReleaseResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseReleaseResponse, 0, len(list))
	for _, wz := range list {
		out = append(out, *toWarehouseReleaseResponse(wz))
	}
	return out, nil
}

// MarkEntered marca el WZ como introducido en el ERP. Si ya lo estaba no cambia nada.
func (uc *WarehouseReleaseUseCase) MarkEntered(id string) (*dto.WarehouseReleaseResponse, error) {
	wz, err := uc.repo.UpdateStatus(id, func(entity.WarehouseReleaseStatus) (entity.WarehouseReleaseStatus, error) {
		return entity.ReleaseEntered, nil
	})
	if err != nil {
		return nil, err
	}
	return toWarehouseReleaseResponse(wz), nil
}

func toWarehouseReleaseResponse(w *entity.WarehouseRelease) *dto.WarehouseReleaseResponse {
	if w == nil {
		return nil
	}
	items := make([]dto.LineItemResponse, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, dto.LineItemResponse{Lp: it.Lp, Name: it.Name, Quantity: it.Quantity, Unit: it.Unit})
	}
	return &dto.WarehouseReleaseResponse{
		ID:               w.ID,
		DocNumber:        w.DocNumber,
		IssueDate:        dto.FormatDate(w.IssueDate),
		Client:           w.Client,
		ConstructionSite: w.ConstructionSite,
		Items:            items,
		IssuedBy:         w.IssuedBy,
		Notes:            w.Notes,
		Status:           string(w.Status),
	}
}

// CustomerReturnUseCase casos de uso de los protocolos de devolución ZW.
type CustomerReturnUseCase struct {
	repo repository.CustomerReturnRepository
	now  func() time.Time
}

// NewCustomerReturnUseCase construye el caso de uso.
func NewCustomerReturnUseCase(repo repository.CustomerReturnRepository) *CustomerReturnUseCase {
	return &CustomerReturnUseCase{repo: repo, now: time.Now}
}

// Create registra una devolución pendiente de verificación recibida por actor.
func (uc *CustomerReturnUseCase) Create(actor dto.Actor, in dto.CreateCustomerReturnRequest) (*dto.CustomerReturnResponse, error) {
	items := make([]entity.ReturnItem, 0, len(in.Items))
	for i, it := range in.Items {
		if !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: la cantidad de la posición %d debe ser mayor que cero", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.ReturnItem{
			Lp:       i + 1,
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Unit:     strings.TrimSpace(it.Unit),
			Reason:   strings.TrimSpace(it.Reason),
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: el protocolo necesita al menos una posición", domain.ErrInvalidInput)
	}
	wzRef := strings.TrimSpace(in.OriginalWzNumber)
	if wzRef != "" && !sequence.Valid(sequence.PrefixWarehouseRelease, wzRef) {
		return nil, fmt.Errorf("%w: número de WZ %q no sigue el formato WZ/AAAA/MM/NNN", domain.ErrInvalidInput, wzRef)
	}
	date := today(uc.now)
	zw, err := uc.repo.Add(func(seq int) *entity.CustomerReturn {
		return &entity.CustomerReturn{
			ID:               uuid.New().String(),
			DocNumber:        sequence.Format(sequence.PrefixCustomerReturn, date, seq),
			ReturnDate:       date,
			Client:           strings.TrimSpace(in.Client),
			OriginalWzNumber: wzRef,
			Items:            items,
			ReceivedBy:       actor.Name,
			Status:           entity.ReturnPending,
		}
	})
	if err != nil {
		return nil, err
	}
	return toCustomerReturnResponse(zw), nil
}

// GetByID obtiene una devolución por ID.
func (uc *CustomerReturnUseCase) GetByID(id string) (*dto.CustomerReturnResponse, error) {
	zw, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerReturnResponse(zw), nil
}

// List devuelve las devoluciones, la más reciente primero.
func (uc *CustomerReturnUseCase) List() ([]dto.CustomerReturnResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerReturnResponse, 0, len(list))
	for _, zw := range list {
		out = append(out, *toCustomerReturnResponse(zw))
	}
	return out, nil
}

// Accept acepta la devolución. Idempotente sobre una ya aceptada.
func (uc *CustomerReturnUseCase) Accept(id string) (*dto.CustomerReturnResponse, error) {
	zw, err := uc.repo.UpdateStatus(id, func(entity.CustomerReturnStatus) (entity.CustomerReturnStatus, error) {
		return entity.ReturnAccepted, nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerReturnResponse(zw), nil
}

func toCustomerReturnResponse(r *entity.CustomerReturn) *dto.CustomerReturnResponse {
	if r == nil {
		return nil
	}
	items := make([]dto.ReturnItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ReturnItemResponse{
			Lp: it.Lp, Name: it.Name, Quantity: it.Quantity, Unit: it.Unit, Reason: it.Reason,
		})
	}
	return &dto.CustomerReturnResponse{
		ID:               r.ID,
		DocNumber:        r.DocNumber,
		ReturnDate:       dto.FormatDate(r.ReturnDate),
		Client:           r.Client,
		OriginalWzNumber: r.OriginalWzNumber,
		Items:            items,
		ReceivedBy:       r.ReceivedBy,
		Status:           string(r.Status),
	}
}
