package memory

import (
	"fmt"

	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/entity"
	"github.com/okasc/intranet-api/internal/domain/repository"
)

var (
	_ repository.DocumentRepository         = (*DocumentRepository)(nil)
	_ repository.WarehouseReleaseRepository = (*WarehouseReleaseRepository)(nil)
	_ repository.CustomerReturnRepository   = (*CustomerReturnRepository)(nil)
	_ repository.ProductionOrderRepository  = (*ProductionOrderRepository)(nil)
	_ repository.ServiceRepository          = (*ServiceRepository)(nil)
	_ repository.LeaveRequestRepository     = (*LeaveRequestRepository)(nil)
	_ repository.TimeOffRequestRepository   = (*TimeOffRequestRepository)(nil)
)

var errNilRecord = fmt.Errorf("%w: registro vacío", domain.ErrInvalidInput)

// transition pasa el campo de estado que devuelve field por next bajo el lock del store.
// Si next falla el registro queda como estaba.
func transition[T, S any](s *store[string, T], id string, field func(*T) *S, next func(S) (S, error)) (*T, error) {
	v, ok, err := s.update(id, func(rec *T) error {
		f := field(rec)
		to, err := next(*f)
		if err != nil {
			return err
		}
		*f = to
		return nil
	})
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ── Documentos ────────────────────────────────────────────────────────────────

// DocumentRepository registro de documentos en memoria.
type DocumentRepository struct {
	s *store[string, entity.Document]
}

// NewDocumentRepository crea el repositorio con la semilla dada.
func NewDocumentRepository(seed ...entity.Document) *DocumentRepository {
	return &DocumentRepository{s: newStore(func(d *entity.Document) string { return d.ID }, seed)}
}

func (r *DocumentRepository) Add(doc *entity.Document) error {
	if doc == nil {
		return errNilRecord
	}
	r.s.prepend(func(int) *entity.Document { return doc })
	return nil
}

func (r *DocumentRepository) GetByID(id string) (*entity.Document, error) {
	if d, ok := r.s.get(id); ok {
		return d, nil
	}
	return nil, domain.ErrNotFound
}

func (r *DocumentRepository) List() ([]*entity.Document, error) {
	return r.s.list(nil), nil
}

// ── Wydania magazynowe (WZ) ───────────────────────────────────────────────────

// WarehouseReleaseRepository WZ en memoria.
type WarehouseReleaseRepository struct {
	s *store[string, entity.WarehouseRelease]
}

// NewWarehouseReleaseRepository crea el repositorio con la semilla dada.
func NewWarehouseReleaseRepository(seed ...entity.WarehouseRelease) *WarehouseReleaseRepository {
	return &WarehouseReleaseRepository{s: newStore(func(w *entity.WarehouseRelease) string { return w.ID }, seed)}
}

func (r *WarehouseReleaseRepository) Add(build func(seq int) *entity.WarehouseRelease) (*entity.WarehouseRelease, error) {
	if w, ok := r.s.prepend(build); ok {
		return w, nil
	}
	return nil, errNilRecord
}

func (r *WarehouseReleaseRepository) GetByID(id string) (*entity.WarehouseRelease, error) {
	if w, ok := r.s.get(id); ok {
		return w, nil
	}
	return nil, domain.ErrNotFound
}

func (r *WarehouseReleaseRepository) List() ([]*entity.WarehouseRelease, error) {
	return r.s.list(nil), nil
}

func (r *WarehouseReleaseRepository) UpdateStatus(id string, next func(entity.WarehouseReleaseStatus) (entity.WarehouseReleaseStatus, error)) (*entity.WarehouseRelease, error) {
	return transition(r.s, id, func(w *entity.WarehouseRelease) *entity.WarehouseReleaseStatus { return &w.Status }, next)
}

// ── Zwroty (ZW) ───────────────────────────────────────────────────────────────

// CustomerReturnRepository ZW en memoria.
type CustomerReturnRepository struct {
	s *store[string, entity.CustomerReturn]
}

// NewCustomerReturnRepository crea el repositorio con la semilla dada.
func NewCustomerReturnRepository(seed ...entity.CustomerReturn) *CustomerReturnRepository {
	return &CustomerReturnRepository{s: newStore(func(c *entity.CustomerReturn) string { return c.ID }, seed)}
}

func (r *CustomerReturnRepository) Add(build func(seq int) *entity.CustomerReturn) (*entity.CustomerReturn, error) {
	if c, ok := r.s.prepend(build); ok {
		return c, nil
	}
	return nil, errNilRecord
}

func (r *CustomerReturnRepository) GetByID(id string) (*entity.CustomerReturn, error) {
	if c, ok := r.s.get(id); ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (r *CustomerReturnRepository) List() ([]*entity.CustomerReturn, error) {
	return r.s.list(nil), nil
}

func (r *CustomerReturnRepository) UpdateStatus(id string, next func(entity.CustomerReturnStatus) (entity.CustomerReturnStatus, error)) (*entity.CustomerReturn, error) {
	return transition(r.s, id, func(c *entity.CustomerReturn) *entity.CustomerReturnStatus { return &c.Status }, next)
}

// ── Produkcja (PROD) ──────────────────────────────────────────────────────────

// ProductionOrderRepository órdenes en memoria.
type ProductionOrderRepository struct {
	s *store[string, entity.ProductionOrder]
}

// NewProductionOrderRepository crea el repositorio con la semilla dada.
func NewProductionOrderRepository(seed ...entity.ProductionOrder) *ProductionOrderRepository {
	return &ProductionOrderRepository{s: newStore(func(p *entity.ProductionOrder) string { return p.ID }, seed)}
}

func (r *ProductionOrderRepository) Add(build func(seq int) *entity.ProductionOrder) (*entity.ProductionOrder, error) {
	if p, ok := r.s.prepend(build); ok {
		return p, nil
	}
	return nil, errNilRecord
}

func (r *ProductionOrderRepository) GetByID(id string) (*entity.ProductionOrder, error) {
	if p, ok := r.s.get(id); ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (r *ProductionOrderRepository) List() ([]*entity.ProductionOrder, error) {
	return r.s.list(nil), nil
}

func (r *ProductionOrderRepository) UpdateStatus(id string, next func(entity.ProductionOrderStatus) (entity.ProductionOrderStatus, error)) (*entity.ProductionOrder, error) {
	return transition(r.s, id, func(p *entity.ProductionOrder) *entity.ProductionOrderStatus { return &p.Status }, next)
}

// ── Usługi ────────────────────────────────────────────────────────────────────

// ServiceRepository servicios en memoria.
type ServiceRepository struct {
	s *store[string, entity.Service]
}

// NewServiceRepository crea el repositorio con la semilla dada.
func NewServiceRepository(seed ...entity.Service) *ServiceRepository {
	return &ServiceRepository{s: newStore(func(s *entity.Service) string { return s.ID }, seed)}
}

func (r *ServiceRepository) Add(svc *entity.Service) error {
	if svc == nil {
		return errNilRecord
	}
	r.s.prepend(func(int) *entity.Service { return svc })
	return nil
}

func (r *ServiceRepository) GetByID(id string) (*entity.Service, error) {
	if s, ok := r.s.get(id); ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *ServiceRepository) List() ([]*entity.Service, error) {
	return r.s.list(nil), nil
}

func (r *ServiceRepository) UpdateSettled(id string, next func(bool) (bool, error)) (*entity.Service, error) {
	return transition(r.s, id, func(v *entity.Service) *bool { return &v.IsSettled }, next)
}

// ── Urlopy ────────────────────────────────────────────────────────────────────

// LeaveRequestRepository solicitudes de vacaciones en memoria.
type LeaveRequestRepository struct {
	s *store[string, entity.LeaveRequest]
}

// NewLeaveRequestRepository crea el repositorio con la semilla dada.
func NewLeaveRequestRepository(seed ...entity.LeaveRequest) *LeaveRequestRepository {
	return &LeaveRequestRepository{s: newStore(func(l *entity.LeaveRequest) string { return l.ID }, seed)}
}

func (r *LeaveRequestRepository) Add(req *entity.LeaveRequest) error {
	if req == nil {
		return errNilRecord
	}
	r.s.prepend(func(int) *entity.LeaveRequest { return req })
	return nil
}

func (r *LeaveRequestRepository) GetByID(id string) (*entity.LeaveRequest, error) {
	if l, ok := r.s.get(id); ok {
		return l, nil
	}
	return nil, domain.ErrNotFound
}

func (r *LeaveRequestRepository) List() ([]*entity.LeaveRequest, error) {
	return r.s.list(nil), nil
}

func (r *LeaveRequestRepository) ListByUser(userID int64) ([]*entity.LeaveRequest, error) {
	return r.s.list(func(l *entity.LeaveRequest) bool { return l.UserID == userID }), nil
}

func (r *LeaveRequestRepository) UpdateStatus(id string, next func(entity.RequestStatus) (entity.RequestStatus, error)) (*entity.LeaveRequest, error) {
	return transition(r.s, id, func(l *entity.LeaveRequest) *entity.RequestStatus { return &l.Status }, next)
}

// ── Wyjścia/Wejścia ───────────────────────────────────────────────────────────

// TimeOffRequestRepository solicitudes de salida/entrada en memoria.
type TimeOffRequestRepository struct {
	s *store[string, entity.TimeOffRequest]
}

// NewTimeOffRequestRepository crea el repositorio con la semilla dada.
func NewTimeOffRequestRepository(seed ...entity.TimeOffRequest) *TimeOffRequestRepository {
	return &TimeOffRequestRepository{s: newStore(func(t *entity.TimeOffRequest) string { return t.ID }, seed)}
}

func (r *TimeOffRequestRepository) Add(req *entity.TimeOffRequest) error {
	if req == nil {
		return errNilRecord
	}
	r.s.prepend(func(int) *entity.TimeOffRequest { return req })
	return nil
}

func (r *TimeOffRequestRepository) GetByID(id string) (*entity.TimeOffRequest, error) {
	if t, ok := r.s.get(id); ok {
		return t, nil
	}
	return nil, domain.ErrNotFound
}

func (r *TimeOffRequestRepository) List() ([]*entity.TimeOffRequest, error) {
	return r.s.list(nil), nil
}

func (r *TimeOffRequestRepository) ListByUser(userID int64) ([]*entity.TimeOffRequest, error) {
	return r.s.list(func(t *entity.TimeOffRequest) bool { return t.UserID == userID }), nil
}

func (r *TimeOffRequestRepository) UpdateStatus(id string, next func(entity.RequestStatus) (entity.RequestStatus, error)) (*entity.TimeOffRequest, error) {
	return transition(r.s, id, func(t *entity.TimeOffRequest) *entity.RequestStatus { return &t.Status }, next)
}
