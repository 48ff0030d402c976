// Package access contiene la tabla de permisos por rol, el menú filtrado
// y el enrutador de página activa con su retorno a una página permitida.
package access

import "github.com/okasc/intranet-api/internal/domain/entity"

type pageSet map[entity.Page]struct{}

func setOf(pages ...entity.Page) pageSet {
	s := make(pageSet, len(pages))
	for _, p := range pages {
		s[p] = struct{}{}
	}
	return s
}

// Tabla fija Rol -> páginas. Admin ⊇ Manager ⊇ Pracownik.
var permissions = map[entity.Role]pageSet{
	entity.RoleAdmin: setOf(
		entity.PageDashboard, entity.PageDocuments, entity.PageAssistant,
		entity.PageWarehouseReleases, entity.PageServices, entity.PageCustomerReturns,
		entity.PageProduction, entity.PageLeave, entity.PageTimeOff,
		entity.PageUserManagement,
	),
	entity.RoleManager: setOf(
		entity.PageDashboard, entity.PageDocuments, entity.PageAssistant,
		entity.PageWarehouseReleases, entity.PageServices, entity.PageCustomerReturns,
		entity.PageProduction, entity.PageLeave, entity.PageTimeOff,
	),
	entity.RoleEmployee: setOf(
		entity.PageDashboard, entity.PageDocuments, entity.PageAssistant,
		entity.PageServices, entity.PageLeave, entity.PageTimeOff,
		entity.PageProduction,
	),
}

// IsAllowed indica si el rol puede ver la página. Un rol desconocido no ve nada.
func IsAllowed(role entity.Role, page entity.Page) bool {
	_, ok := permissions[role][page]
	return ok
}

// IsPrivileged: Admin y Manager ven y deciden todas las solicitudes de personal.
func IsPrivileged(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleManager
}

// AllowedPages páginas permitidas al rol en el orden del menú.
func AllowedPages(role entity.Role) []entity.Page {
	var out []entity.Page
	for _, p := range flatten(navigation) {
		if IsAllowed(role, p) {
			out = append(out, p)
		}
	}
	return out
}
