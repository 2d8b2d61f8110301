package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/josecarlosjccf/crud-clientes/internal/api/handler"
	"github.com/josecarlosjccf/crud-clientes/internal/core/service"
	"github.com/josecarlosjccf/crud-clientes/internal/infrastructure/asset"
	"github.com/josecarlosjccf/crud-clientes/internal/infrastructure/jsonstore"
	"github.com/josecarlosjccf/crud-clientes/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every service is constructed here and handed to its handlers; there are no
// package-level service singletons.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("registry"))

	// --- Dependencies ---
	store := jsonstore.New(cfg.Storage.DataDir)
	clientRepo := jsonstore.NewClientRepository(store)
	userRepo := jsonstore.NewUserRepository(store)
	refRepo := jsonstore.NewReferenceRepository(store)
	assets := asset.NewStore(cfg.Storage.IconDir, cfg.Upload.MaxBytes)

	clientService := service.NewClientService(clientRepo, refRepo, assets, log)
	userService := service.NewUserService(userRepo, log)
	refService := service.NewReferenceService(refRepo)

	clientHandler := handler.NewClientHandler(clientService)
	userHandler := handler.NewUserHandler(userService)
	refHandler := handler.NewReferenceHandler(refService)
	assetHandler := handler.NewAssetHandler(assets)

	// --- Client routes ---
	e.GET("/clients", clientHandler.List)
	e.GET("/clients/:id", clientHandler.Get)
	e.POST("/clients", clientHandler.Create)
	e.PUT("/clients/:id", clientHandler.Update)
	e.DELETE("/clients/:id", clientHandler.Delete)

	// --- Reference lookups ---
	e.GET("/states", refHandler.States)
	e.GET("/cities/:stateId", refHandler.Cities)

	// --- Icon housekeeping ---
	e.POST("/upload-image/:id", assetHandler.Upload)
	e.POST("/rename-image", assetHandler.Rename)

	// --- User routes ---
	e.POST("/signup", userHandler.Signup)
	e.POST("/login", userHandler.Login)
	e.PUT("/users", userHandler.Update)
	e.GET("/users/current", userHandler.Current)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Storage.DataDir, cfg.Storage.IconDir)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
