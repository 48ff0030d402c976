package repository

import "github.com/okasc/intranet-api/internal/domain/entity"

// Los repositorios de registros comparten contrato:
//   - Add inserta al principio (más reciente primero). Los documentos numerados
//     reciben en build el tamaño previo + 1 para su código PREFIJO/AAAA/MM/NNN.
//   - UpdateStatus pasa el estado actual a next y guarda lo que devuelve, todo bajo
//     el mismo lock; si next devuelve error el registro no cambia. Las reglas de flujo
//     viven en next, que escribe el caso de uso.
//   - GetByID devuelve domain.ErrNotFound si no existe.
//   - List devuelve copias en orden de inserción inverso.

// DocumentRepository registro de documentos.
type DocumentRepository interface {
	Add(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	List() ([]*entity.Document, error)
}

// WarehouseReleaseRepository documentos WZ.
type WarehouseReleaseRepository interface {
	Add(build func(seq int) *entity.WarehouseRelease) (*entity.WarehouseRelease, error)
	GetByID(id string) (*entity.WarehouseRelease, error)
	List() ([]*entity.WarehouseRelease, error)
	UpdateStatus(id string, next func(entity.WarehouseReleaseStatus) (entity.WarehouseReleaseStatus, error)) (*entity.WarehouseRelease, error)
}

// CustomerReturnRepository protocolos ZW.
type CustomerReturnRepository interface {
	Add(build func(seq int) *entity.CustomerReturn) (*entity.CustomerReturn, error)
	GetByID(id string) (*entity.CustomerReturn, error)
	List() ([]*entity.CustomerReturn, error)
	UpdateStatus(id string, next func(entity.CustomerReturnStatus) (entity.CustomerReturnStatus, error)) (*entity.CustomerReturn, error)
}

// ProductionOrderRepository órdenes PROD.
type ProductionOrderRepository interface {
	Add(build func(seq int) *entity.ProductionOrder) (*entity.ProductionOrder, error)
	GetByID(id string) (*entity.ProductionOrder, error)
	List() ([]*entity.ProductionOrder, error)
	UpdateStatus(id string, next func(entity.ProductionOrderStatus) (entity.ProductionOrderStatus, error)) (*entity.ProductionOrder, error)
}

// ServiceRepository registros de servicios (sin código de documento).
type ServiceRepository interface {
	Add(svc *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	List() ([]*entity.Service, error)
	UpdateSettled(id string, next func(settled bool) (bool, error)) (*entity.Service, error)
}

// LeaveRequestRepository solicitudes de vacaciones.
type LeaveRequestRepository interface {
	Add(req *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	List() ([]*entity.LeaveRequest, error)
	ListByUser(userID int64) ([]*entity.LeaveRequest, error)
	UpdateStatus(id string, next func(entity.RequestStatus) (entity.RequestStatus, error)) (*entity.LeaveRequest, error)
}

// TimeOffRequestRepository solicitudes de salida/entrada.
type TimeOffRequestRepository interface {
	Add(req *entity.TimeOffRequest) error
	GetByID(id string) (*entity.TimeOffRequest, error)
	List() ([]*entity.TimeOffRequest, error)
	ListByUser(userID int64) ([]*entity.TimeOffRequest, error)
	UpdateStatus(id string, next func(entity.RequestStatus) (entity.RequestStatus, error)) (*entity.TimeOffRequest, error)
}
