// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler *handler.CustomerHandler
	SessionLimiter  *middleware.RateLimitMiddleware `optional:"true"`
	Config          *config.Config
	Metrics         http.Handler `name:"metrics" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler *handler.CustomerHandler
	sessionLimiter  *middleware.RateLimitMiddleware
	metrics         http.Handler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler: params.CustomerHandler,
		sessionLimiter:  params.SessionLimiter,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.customerHandler.List)
		usersGroup.POST("", r.customerHandler.Register)
		usersGroup.POST("/session", r.customerHandler.CreateSession, r.sessionMiddleware()...)
	}
}

func (r *router) sessionMiddleware() []echo.MiddlewareFunc {
	if r.sessionLimiter == nil {
		return nil
	}

	return []echo.MiddlewareFunc{r.sessionLimiter.Limit}
}

// RegisterMetricsRoute exposes the Prometheus handler when metrics are enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics))
}
