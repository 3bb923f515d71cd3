package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/clinicdesk/clinic-portal/internal/api/handler"
	"github.com/clinicdesk/clinic-portal/internal/api/metrics"
	"github.com/clinicdesk/clinic-portal/internal/api/middleware"
	"github.com/clinicdesk/clinic-portal/internal/core/domain"
	"github.com/clinicdesk/clinic-portal/internal/core/guard"
	"github.com/clinicdesk/clinic-portal/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Sessions ports.SessionService
	Tokens   middleware.TokenCodec
	Guard    *guard.Guard
	Pages    handler.PageRenderer
	LabTests ports.LabTestService
	Audit    ports.AuditPublisher
	// Checks feed the readiness probe.
	Checks []handler.DependencyCheck
	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
	// NewSessionID overrides session id generation (tests).
	NewSessionID func() string
	// Metrics receives the HTTP collectors and backs /metrics. Nil selects
	// the default registry, where the custom metrics live.
	Metrics *prometheus.Registry
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Recovery(deps.Logger))
	e.Use(middleware.RequestLogger(deps.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	registerer.MustRegister(metrics.NewAuthenticatedSessions(func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		n, err := deps.Sessions.Authenticated(ctx)
		if err != nil {
			deps.Logger.Warn().Err(err).Msg("count authenticated sessions")
			return 0
		}
		return float64(n)
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "clinic_portal",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no session) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Checks...).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	withSession := middleware.Session(middleware.SessionConfig{
		Sessions: deps.Sessions,
		Tokens:   deps.Tokens,
		Secure:   deps.SecureCookie,
		NewID:    deps.NewSessionID,
	})

	// --- Session API ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions)
	apiGroup := e.Group("/api", withSession)
	apiGroup.POST("/session", sessionHandler.Login)
	apiGroup.DELETE("/session", sessionHandler.Logout)
	apiGroup.GET("/session", sessionHandler.Current)

	// --- Lab tests ---
	labTestHandler := handler.NewLabTestHandler(deps.LabTests)
	labTests := apiGroup.Group("/lab-tests", middleware.RequireAuthenticated())
	labTests.GET("", labTestHandler.Board)
	labTests.GET("/:id", labTestHandler.Get)
	labTests.POST("/:id/start", labTestHandler.Start, middleware.RBAC(domain.RoleLaboratory))
	labTests.POST("/:id/result", labTestHandler.UploadResult, middleware.RBAC(domain.RoleLaboratory))

	// --- Page navigation (everything else) ---
	navigationHandler := handler.NewNavigationHandler(deps.Guard, deps.Pages, deps.Audit)
	e.GET("/*", navigationHandler.Navigate, withSession)

	return e
}
