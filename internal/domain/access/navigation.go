package access

import "github.com/okasc/intranet-api/internal/domain/entity"

// DefaultPage destino cuando un rol no tiene ninguna página permitida.
const DefaultPage = entity.PageDashboard

// GroupHR grupo "Kadry" del menú.
const GroupHR = "hr"

func leaf(p entity.Page, icon string) entity.NavItem {
	return entity.NavItem{Page: p, Label: p.Label(), Icon: icon}
}

// Menú en orden de declaración; el filtrado nunca lo reordena.
var navigation = []entity.NavItem{
	leaf(entity.PageDashboard, "home"),
	{
		Group: GroupHR,
		Label: "Kadry",
		Icon:  "users",
		Children: []entity.NavItem{
			leaf(entity.PageLeave, "calendar"),
			leaf(entity.PageTimeOff, "clock"),
			leaf(entity.PageUserManagement, "cog"),
		},
	},
	leaf(entity.PageDocuments, "file-text"),
	leaf(entity.PageWarehouseReleases, "archive-box"),
	leaf(entity.PageCustomerReturns, "undo"),
	leaf(entity.PageServices, "wrench"),
	leaf(entity.PageProduction, "beaker"),
	leaf(entity.PageAssistant, "sparkles"),
}

// NavigationFor devuelve el menú visible para el rol:
// hojas permitidas, grupos con al menos un hijo permitido.
func NavigationFor(role entity.Role) []entity.NavItem {
	out := make([]entity.NavItem, 0, len(navigation))
	for _, item := range navigation {
		if !item.IsGroup() {
			if IsAllowed(role, item.Page) {
				out = append(out, item)
			}
			continue
		}
		var children []entity.NavItem
		for _, ch := range item.Children {
			if IsAllowed(role, ch.Page) {
				children = append(children, ch)
			}
		}
		if len(children) == 0 {
			continue
		}
		group := item
		group.Children = children
		out = append(out, group)
	}
	return out
}

// FirstAllowedPage primera página permitida en el orden del menú (grupos expandidos).
// Sin ninguna permitida devuelve DefaultPage.
func FirstAllowedPage(role entity.Role) entity.Page {
	if pages := AllowedPages(role); len(pages) > 0 {
		return pages[0]
	}
	return DefaultPage
}

func flatten(items []entity.NavItem) []entity.Page {
	var out []entity.Page
	for _, it := range items {
		if it.IsGroup() {
			out = append(out, flatten(it.Children)...)
			continue
		}
		out = append(out, it.Page)
	}
	return out
}
