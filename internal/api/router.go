package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/venha/invitations-api/internal/api/docs"
	"github.com/venha/invitations-api/internal/api/handler"
	"github.com/venha/invitations-api/internal/api/middleware"
	"github.com/venha/invitations-api/internal/core/ports"
)

// rsvpScope namespaces the RSVP rate-limit counters.
const rsvpScope = "rsvp"

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Auth   ports.AuthService
	Events ports.EventService
	RSVPs  ports.RSVPService

	JWTSecret   string
	RSVPLimiter middleware.Limiter
	Checks      map[string]handler.HealthCheck
	Log         zerolog.Logger
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
	e.Use(middleware.Metrics())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.CORS())

	authHandler := handler.NewAuthHandler(d.Auth)
	eventHandler := handler.NewEventHandler(d.Events)
	rsvpHandler := handler.NewRSVPHandler(d.RSVPs)
	healthHandler := handler.NewHealthHandler(d.Checks)
	requireHost := middleware.Auth(d.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Event routes ---
	events := e.Group("/api/events")
	events.GET("/:slug", eventHandler.Get)
	events.POST("", eventHandler.Create, requireHost)
	events.GET("", eventHandler.List, requireHost)
	events.PUT("/:slug", eventHandler.Update, requireHost)
	events.GET("/:slug/attendees", eventHandler.Attendees, requireHost)

	// --- Guest RSVP routes (no auth) ---
	attendees := e.Group("/api/attendees")
	rsvpCreate := []echo.MiddlewareFunc{}
	if d.RSVPLimiter != nil {
		rsvpCreate = append(rsvpCreate, middleware.RateLimit(d.RSVPLimiter, rsvpScope, d.Log))
	}
	attendees.POST("/rsvp", rsvpHandler.Create, rsvpCreate...)
	attendees.POST("/find", rsvpHandler.Find)
	attendees.PUT("/modify", rsvpHandler.Modify)
	attendees.POST("/cancel", rsvpHandler.Cancel)

	// --- Health probes, metrics and docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/api/docs/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			switch {
			case v.Status >= 500:
				evt = log.Error().Err(v.Error)
			case v.Status >= 400:
				evt = log.Warn()
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
