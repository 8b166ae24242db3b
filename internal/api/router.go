package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/careledger/clinic-api/docs"
	"github.com/careledger/clinic-api/internal/api/handler"
	"github.com/careledger/clinic-api/internal/api/middleware"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// Deps is everything the router needs. Construction of the concrete
// adapters happens in cmd/api.
type Deps struct {
	Log      zerolog.Logger
	Auth     ports.AuthService
	Registry ports.RegistryService
	Outcomes ports.OutcomeService
	Activity ports.ActivityService
	Tokens   ports.TokenManager
	Revoker  ports.TokenRevoker
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.DependencyCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(d.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	clientHandler := handler.NewClientHandler(d.Registry)
	programHandler := handler.NewProgramHandler(d.Registry)
	enrollmentHandler := handler.NewEnrollmentHandler(d.Registry)
	outcomeHandler := handler.NewOutcomeHandler(d.Outcomes)
	activityHandler := handler.NewActivityHandler(d.Activity)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	// Attached per route so unknown paths still answer 404, not 401.
	requireAuth := middleware.Auth(d.Tokens, d.Revoker)
	e.POST("/logout", authHandler.Logout, requireAuth)
	e.POST("/clients", clientHandler.Create, requireAuth)
	e.GET("/clients", clientHandler.List, requireAuth)
	e.GET("/clients/:id", clientHandler.Get, requireAuth)
	e.POST("/programs", programHandler.Create, requireAuth)
	e.GET("/programs", programHandler.List, requireAuth)
	e.POST("/enroll", enrollmentHandler.Enroll, requireAuth)
	e.POST("/outcomes", outcomeHandler.Add, requireAuth)
	e.GET("/logs", activityHandler.List, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
