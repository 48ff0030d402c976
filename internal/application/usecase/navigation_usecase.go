package usecase

import (
	"fmt"
	"sync"

	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/domain"
	"github.com/okasc/intranet-api/internal/domain/access"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

// NavigationService guarda la página activa de cada usuario y es el único punto
// de la aplicación que consulta la tabla de permisos por página.
type NavigationService struct {
	mu      sync.Mutex
	routers map[int64]*access.Router
}

// NewNavigationService construye el servicio sin estado previo.
func NewNavigationService() *NavigationService {
	return &NavigationService{routers: make(map[int64]*access.Router)}
}

// HasPageAccess informa si el rol puede abrir la página (lo usa el middleware RequirePage).
func (s *NavigationService) HasPageAccess(role entity.Role, page entity.Page) bool {
	return access.IsAllowed(role, page)
}

// Menu devuelve el menú lateral filtrado para el rol.
func (s *NavigationService) Menu(role entity.Role) []dto.NavItemResponse {
	return toNavItems(access.NavigationFor(role))
}

// Activate cambia la página activa del usuario. Solo se rechazan páginas inexistentes;
// el permiso se evalúa en el siguiente Render.
func (s *NavigationService) Activate(userID int64, page string) error {
	p := entity.Page(page)
	if !p.Known() {
		return fmt.Errorf("%w: página desconocida %q", domain.ErrInvalidInput, page)
	}
	s.router(userID).Activate(p)
	return nil
}

// Render evalúa la página activa del usuario para su rol.
func (s *NavigationService) Render(userID int64, role entity.Role) dto.ActivePageResponse {
	v := s.router(userID).Render(role)
	return dto.ActivePageResponse{
		Page:      string(v.Page),
		Label:     v.Page.Label(),
		Denied:    v.Denied,
		Requested: string(v.Requested),
	}
}

// Reset vuelve al panel principal (login y logout).
func (s *NavigationService) Reset(userID int64) {
	s.mu.Lock()
	s.routers[userID] = access.NewRouter()
	s.mu.Unlock()
}

func (s *NavigationService) router(userID int64) *access.Router {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.routers[userID]
	if !ok {
		r = access.NewRouter()
		s.routers[userID] = r
	}
	return r
}

func toNavItems(items []entity.NavItem) []dto.NavItemResponse {
	out := make([]dto.NavItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NavItemResponse{
			Page:     string(it.Page),
			Group:    it.Group,
			Label:    it.Label,
			Icon:     it.Icon,
			Children: toNavItems(it.Children),
		})
	}
	return out
}
