package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okasc/intranet-api/internal/domain/access"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

var allPages = []entity.Page{
	entity.PageDashboard, entity.PageDocuments, entity.PageAssistant,
	entity.PageWarehouseReleases, entity.PageServices, entity.PageCustomerReturns,
	entity.PageProduction, entity.PageLeave, entity.PageTimeOff, entity.PageUserManagement,
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestIsAllowed_TablaFija(t *testing.T) {
	employee := map[entity.Page]bool{
		entity.PageDashboard: true, entity.PageDocuments: true, entity.PageAssistant: true,
		entity.PageServices: true, entity.PageLeave: true, entity.PageTimeOff: true,
		entity.PageProduction: true,
	}
	for _, p := range allPages {
		assert.True(t, access.IsAllowed(entity.RoleAdmin, p), "Admin -> %s", p)
		assert.Equal(t, p != entity.PageUserManagement, access.IsAllowed(entity.RoleManager, p), "Manager -> %s", p)
		assert.Equal(t, employee[p], access.IsAllowed(entity.RoleEmployee, p), "Pracownik -> %s", p)
	}
}

func TestIsAllowed_CadenaDeSuperconjuntos(t *testing.T) {
	for _, p := range allPages {
		if access.IsAllowed(entity.RoleEmployee, p) {
			assert.True(t, access.IsAllowed(entity.RoleManager, p), "Manager ⊇ Pracownik en %s", p)
		}
		if access.IsAllowed(entity.RoleManager, p) {
			assert.True(t, access.IsAllowed(entity.RoleAdmin, p), "Admin ⊇ Manager en %s", p)
		}
	}
}

func TestIsAllowed_RolDesconocido(t *testing.T) {
	for _, p := range allPages {
		assert.False(t, access.IsAllowed(entity.Role("Gość"), p))
	}
}

func TestIsPrivileged(t *testing.T) {
	assert.True(t, access.IsPrivileged(entity.RoleAdmin))
	assert.True(t, access.IsPrivileged(entity.RoleManager))
	assert.False(t, access.IsPrivileged(entity.RoleEmployee))
	assert.False(t, access.IsPrivileged(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Menú filtrado
// ──────────────────────────────────────────────────────────────────────────────

func labels(items []entity.NavItem) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestNavigationFor_AdminVeTodoEnOrden(t *testing.T) {
	nav := access.NavigationFor(entity.RoleAdmin)
	assert.Equal(t, []string{
		"Panel Główny", "Kadry", "Dokumenty", "Wydania Magazynowe",
		"Zwroty od Klientów", "Usługi", "Produkcja", "Asystent AI",
	}, labels(nav))
	assert.Equal(t, []string{"Urlopy", "Wyjścia/Wejścia", "Zarządzanie użytkownikami"}, labels(nav[1].Children))
}

func TestNavigationFor_PracownikSinAlmacen(t *testing.T) {
	nav := access.NavigationFor(entity.RoleEmployee)
	assert.Equal(t, []string{
		"Panel Główny", "Kadry", "Dokumenty", "Usługi", "Produkcja", "Asystent AI",
	}, labels(nav))
	assert.Equal(t, []string{"Urlopy", "Wyjścia/Wejścia"}, labels(nav[1].Children))
}

func TestNavigationFor_RolSinPaginasNoMuestraGrupos(t *testing.T) {
	assert.Empty(t, access.NavigationFor(entity.Role("Gość")))
}

func TestFirstAllowedPage(t *testing.T) {
	assert.Equal(t, entity.PageDashboard, access.FirstAllowedPage(entity.RoleEmployee))
	assert.Equal(t, access.DefaultPage, access.FirstAllowedPage(entity.Role("Gość")))
}

func TestAllowedPages_OrdenDelMenu(t *testing.T) {
	assert.Equal(t, []entity.Page{
		entity.PageDashboard, entity.PageLeave, entity.PageTimeOff,
		entity.PageDocuments, entity.PageServices, entity.PageProduction, entity.PageAssistant,
	}, access.AllowedPages(entity.RoleEmployee))
}

// ──────────────────────────────────────────────────────────────────────────────
// Router
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_PaginaPermitidaSeMuestra(t *testing.T) {
	r := access.NewRouter()
	r.Activate(entity.PageProduction)

	v := r.Render(entity.RoleEmployee)
	assert.False(t, v.Denied)
	assert.Equal(t, entity.PageProduction, v.Page)
}

func TestRouter_PaginaNoPermitida_DenegadoUnaVezLuegoRetorno(t *testing.T) {
	r := access.NewRouter()
	r.Activate(entity.PageWarehouseReleases)

	first := r.Render(entity.RoleEmployee)
	require.True(t, first.Denied, "el primer render muestra acceso denegado")
	assert.Equal(t, entity.PageWarehouseReleases, first.Requested)

	second := r.Render(entity.RoleEmployee)
	assert.False(t, second.Denied)
	assert.True(t, access.IsAllowed(entity.RoleEmployee, second.Page))
	assert.Equal(t, entity.PageDashboard, second.Page)
}

func TestRouter_CualquierPaginaResuelveEnUnRenderExtra(t *testing.T) {
	for _, role := range entity.Roles {
		for _, p := range allPages {
			r := access.NewRouter()
			r.Activate(p)
			r.Render(role)
			v := r.Render(role)
			assert.False(t, v.Denied, "%s -> %s", role, p)
			assert.True(t, access.IsAllowed(role, v.Page), "%s -> %s", role, p)
		}
	}
}

func TestRouter_RolSinPaginas_UsaPaginaPorDefecto(t *testing.T) {
	r := access.NewRouter()
	r.Activate(entity.PageDocuments)

	first := r.Render(entity.Role("Gość"))
	assert.True(t, first.Denied)
	assert.Equal(t, access.DefaultPage, first.Page)

	second := r.Render(entity.Role("Gość"))
	assert.False(t, second.Denied)
	assert.Equal(t, access.DefaultPage, second.Page)
}
