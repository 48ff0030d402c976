package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/okasc/intranet-api/docs"
	appanalytics "github.com/okasc/intranet-api/internal/application/analytics"
	"github.com/okasc/intranet-api/internal/application/assistant"
	"github.com/okasc/intranet-api/internal/application/auth"
	"github.com/okasc/intranet-api/internal/application/dto"
	"github.com/okasc/intranet-api/internal/application/usecase"
	infraai "github.com/okasc/intranet-api/internal/infrastructure/ai"
	"github.com/okasc/intranet-api/internal/infrastructure/erpxml"
	"github.com/okasc/intranet-api/internal/infrastructure/memory"
	infrapdf "github.com/okasc/intranet-api/internal/infrastructure/pdf"
	httpRouter "github.com/okasc/intranet-api/internal/interfaces/http"
	"github.com/okasc/intranet-api/pkg/config"
	"github.com/okasc/intranet-api/pkg/logger"
	"github.com/okasc/intranet-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	// Registros en memoria con los datos iniciales; se pierden al reiniciar.
	seedHash, err := password.Hash(memory.DefaultPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de la contraseña inicial")
	}
	userRepo := memory.NewUserRepository(memory.SeedUsers(seedHash)...)
	documentRepo := memory.NewDocumentRepository(memory.SeedDocuments()...)
	releaseRepo := memory.NewWarehouseReleaseRepository(memory.SeedWarehouseReleases()...)
	returnRepo := memory.NewCustomerReturnRepository(memory.SeedCustomerReturns()...)
	productionRepo := memory.NewProductionOrderRepository(memory.SeedProductionOrders()...)
	serviceRepo := memory.NewServiceRepository(memory.SeedServices()...)
	leaveRepo := memory.NewLeaveRequestRepository(memory.SeedLeaveRequests()...)
	timeOffRepo := memory.NewTimeOffRequestRepository(memory.SeedTimeOffRequests()...)

	chatProvider, err := infraai.NewChatProvider(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de IA")
	}
	sessions := assistant.NewSessionRegistry(chatProvider, cfg.Company.Name, log)

	// Impresión WZ/ZW y exportación al ERP
	printer := infrapdf.NewMarotoPrinter(cfg.Company.Name, cfg.Company.Tagline, cfg.Company.LogoPath)
	exporter := erpxml.NewExporter(cfg.Company.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "OKA Intranet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "ok",
			"service":         cfg.App.Name,
			"ai_provider":     cfg.AI.Provider,
			"active_sessions": sessions.Active(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(userRepo),
		Navigation:   usecase.NewNavigationService(),
		DashboardUC:  appanalytics.NewDashboardUseCase(releaseRepo, returnRepo, leaveRepo, timeOffRepo, memory.Announcements()),
		DocumentUC:   usecase.NewDocumentUseCase(documentRepo),
		ReleaseUC:    usecase.NewWarehouseReleaseUseCase(releaseRepo),
		ReturnUC:     usecase.NewCustomerReturnUseCase(returnRepo),
		ProductionUC: usecase.NewProductionUseCase(productionRepo),
		ServiceUC:    usecase.NewServiceUseCase(serviceRepo),
		LeaveUC:      usecase.NewLeaveUseCase(leaveRepo),
		TimeOffUC:    usecase.NewTimeOffUseCase(timeOffRepo),
		PrintUC:      usecase.NewPrintUseCase(releaseRepo, returnRepo, printer, exporter),
		Assistant:    sessions,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
