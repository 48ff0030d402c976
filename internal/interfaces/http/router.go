package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/okasc/intranet-api/internal/application/analytics"
	"github.com/okasc/intranet-api/internal/application/assistant"
	"github.com/okasc/intranet-api/internal/application/auth"
	"github.com/okasc/intranet-api/internal/application/usecase"
	"github.com/okasc/intranet-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	Navigation   *usecase.NavigationService
	DashboardUC  *appanalytics.DashboardUseCase
	DocumentUC   *usecase.DocumentUseCase
	ReleaseUC    *usecase.WarehouseReleaseUseCase
	ReturnUC     *usecase.CustomerReturnUseCase
	ProductionUC *usecase.ProductionUseCase
	ServiceUC    *usecase.ServiceUseCase
	LeaveUC      *usecase.LeaveUseCase
	TimeOffUC    *usecase.TimeOffUseCase
	PrintUC      *usecase.PrintUseCase
	Assistant    *assistant.SessionRegistry
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	nav := deps.Navigation
	page := func(p entity.Page) fiber.Handler { return RequirePage(p, nav) }
	privileged := RequireRole(entity.RoleAdmin, entity.RoleManager)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, nav)
	authGroup := api.Group("/auth")
	authGroup.Get("/users", authHandler.Users)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadActor(deps.UserUC))
	protected.Post("/auth/logout", authHandler.Logout)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/me", userHandler.Me)

	navHandler := NewNavigationHandler(nav)
	protected.Get("/navigation", navHandler.Menu)
	protected.Get("/navigation/active", navHandler.Active)
	protected.Put("/navigation/active", navHandler.Activate)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", page(entity.PageDashboard), dashboardHandler.GetSummary)

	// Documentos
	documents := protected.Group("/documents", page(entity.PageDocuments))
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Create)
	documents.Get("/:id", documentHandler.GetByID)

	// WZ
	releases := protected.Group("/warehouse-releases", page(entity.PageWarehouseReleases))
	warehouseHandler := NewWarehouseHandler(deps.ReleaseUC, deps.PrintUC)
	releases.Get("/", warehouseHandler.List)
	releases.Post("/", warehouseHandler.Create)
	releases.Get("/:id", warehouseHandler.GetByID)
	releases.Post("/:id/enter", warehouseHandler.MarkEntered)
	releases.Get("/:id/pdf", warehouseHandler.PDF)
	releases.Get("/:id/erp.xml", warehouseHandler.ERPXML)

	// ZW
	returns := protected.Group("/customer-returns", page(entity.PageCustomerReturns))
	returnHandler := NewCustomerReturnHandler(deps.ReturnUC, deps.PrintUC)
	returns.Get("/", returnHandler.List)
	returns.Post("/", returnHandler.Create)
	returns.Get("/:id", returnHandler.GetByID)
	returns.Post("/:id/accept", returnHandler.Accept)
	returns.Get("/:id/pdf", returnHandler.PDF)
	returns.Get("/:id/erp.xml", returnHandler.ERPXML)

	// Produkcja
	production := protected.Group("/production-orders", page(entity.PageProduction))
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Get("/", productionHandler.List)
	production.Post("/", productionHandler.Create)
	production.Get("/:id", productionHandler.GetByID)
	production.Post("/:id/toggle", productionHandler.Toggle)

	// Serwis
	services := protected.Group("/services", page(entity.PageServices))
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Post("/:id/toggle-settled", serviceHandler.ToggleSettled)

	// Kadry: la decisión queda para Admin y Manager
	requestHandler := NewRequestHandler(deps.LeaveUC, deps.TimeOffUC)
	leave := protected.Group("/leave-requests", page(entity.PageLeave))
	leave.Get("/", requestHandler.ListLeave)
	leave.Post("/", requestHandler.CreateLeave)
	leave.Post("/:id/approve", privileged, requestHandler.ApproveLeave)
	leave.Post("/:id/reject", privileged, requestHandler.RejectLeave)

	timeOff := protected.Group("/time-off-requests", page(entity.PageTimeOff))
	timeOff.Get("/", requestHandler.ListTimeOff)
	timeOff.Post("/", requestHandler.CreateTimeOff)
	timeOff.Post("/:id/approve", privileged, requestHandler.ApproveTimeOff)
	timeOff.Post("/:id/reject", privileged, requestHandler.RejectTimeOff)

	// Zarządzanie Użytkownikami
	users := protected.Group("/users", page(entity.PageUserManagement))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id/role", userHandler.ChangeRole)
	users.Put("/:id/password", userHandler.ResetPassword)

	// Asystent AI
	assistantHandler := NewAssistantHandler(deps.Assistant)
	chat := protected.Group("/assistant", page(entity.PageAssistant))
	chat.Get("/messages", assistantHandler.Messages)
	chat.Post("/messages", assistantHandler.Send)
	chat.Delete("/session", assistantHandler.Dispose)

	app.Get("/ws/assistant",
		RequireUpgrade,
		AuthMiddleware(deps.JWTSecret),
		LoadActor(deps.UserUC),
		page(entity.PageAssistant),
		assistantHandler.Stream(),
	)
}
