package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/repairdesk/support-api/docs"
	"github.com/repairdesk/support-api/internal/api/handler"
	"github.com/repairdesk/support-api/internal/api/middleware"
	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

// Deps carries everything the router needs. Services are built by the caller.
type Deps struct {
	Log          zerolog.Logger
	AccessSecret string
	CORSOrigins  []string

	Auth        ports.AuthService
	Sessions    ports.SessionService
	Users       ports.UserService
	Requests    ports.SupportRequestService
	Knowledge   ports.KnowledgeBaseService
	Parts       ports.SparePartService
	Jobs        ports.JobService
	Technicians ports.TechnicianService

	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handler.Check

	// Registry isolates HTTP metrics. Nil uses the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: d.CORSOrigins}))
	e.Use(requestLogger(d.Log))
	e.Use(httpMetrics(d.Registry))

	// --- Health, metrics and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Checks).Readiness)
	e.GET("/metrics", metricsHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	authed := []echo.MiddlewareFunc{middleware.Auth(d.AccessSecret), middleware.Session(d.Sessions)}
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Users ---
	users := handler.NewUserHandler(d.Users)
	ug := e.Group("/user", authed...)
	ug.GET("", users.List, adminOnly)
	ug.GET("/:id", users.Get)
	ug.PUT("/:id", users.Update)
	ug.DELETE("/:id", users.Delete, adminOnly)

	// --- Support requests ---
	requests := handler.NewSupportRequestHandler(d.Requests)
	rg := e.Group("/request", authed...)
	rg.GET("", requests.List, adminOnly)
	rg.GET("/user", requests.Mine)
	rg.GET("/my-requests", requests.Mine)
	rg.POST("", requests.Create)
	rg.POST("/create", requests.Create)
	rg.GET("/:id", requests.Get)
	rg.GET("/:id/history", requests.History, adminOnly)
	rg.PUT("/:id", requests.Update)
	rg.DELETE("/:id", requests.Delete)

	// --- Catalog resources: any caller reads, admins write ---
	mountCatalog(e, "/knowledge", authed, adminOnly, handler.NewKnowledgeBaseHandler(d.Knowledge))
	mountCatalog(e, "/parts", authed, adminOnly, handler.NewSparePartHandler(d.Parts))
	mountCatalog(e, "/job", authed, adminOnly, handler.NewJobHandler(d.Jobs))
	mountCatalog(e, "/tech", authed, adminOnly, handler.NewTechnicianHandler(d.Technicians))

	return e
}

type crudHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

func mountCatalog(e *echo.Echo, prefix string, authed []echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc, h crudHandler) {
	g := e.Group(prefix, authed...)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, adminOnly)
	g.PUT("/:id", h.Update, adminOnly)
	g.DELETE("/:id", h.Delete, adminOnly)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/health") || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

func httpMetrics(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Namespace: "repairdesk",
		Subsystem: "http",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
