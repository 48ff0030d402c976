package access

import (
	"sync"

	"github.com/okasc/intranet-api/internal/domain/entity"
)

// View resultado de un render del enrutador.
type View struct {
	// Page página efectivamente activa tras el render.
	Page entity.Page
	// Denied true cuando este render muestra "acceso denegado" en lugar de Requested.
	Denied bool
	// Requested página que estaba activa al entrar en el render.
	Requested entity.Page
}

// Router guarda la página activa de un usuario.
//
// Si la página activa no está permitida, Render cambia el estado a la primera
// página permitida y devuelve una vista de acceso denegado; el siguiente Render
// ya muestra la página de retorno.
type Router struct {
	mu     sync.Mutex
	active entity.Page
}

// NewRouter arranca en DefaultPage.
func NewRouter() *Router {
	return &Router{active: DefaultPage}
}

// Activate fija la página solicitada sin comprobar permisos; la comprobación ocurre en Render.
func (r *Router) Activate(p entity.Page) {
	r.mu.Lock()
	r.active = p
	r.mu.Unlock()
}

// Active página activa actual.
func (r *Router) Active() entity.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Render evalúa la página activa para el rol.
func (r *Router) Render(role entity.Role) View {
	r.mu.Lock()
	defer r.mu.Unlock()

	requested := r.active
	if IsAllowed(role, requested) {
		return View{Page: requested, Requested: requested}
	}
	// Rol sin páginas: DefaultPage se muestra igualmente para no entrar en bucle.
	if requested == DefaultPage && len(AllowedPages(role)) == 0 {
		return View{Page: requested, Requested: requested}
	}
	r.active = FirstAllowedPage(role)
	return View{Page: r.active, Denied: true, Requested: requested}
}
