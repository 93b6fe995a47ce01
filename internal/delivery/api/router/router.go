// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pillmate/config"
	"pillmate/internal/delivery/api/middleware"
	"pillmate/internal/delivery/api/router/handler"
	"pillmate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler        *handler.DeviceHandler
	CommandHandler       *handler.CommandHandler
	DoseHandler          *handler.DoseHandler
	NotificationHandler  *handler.NotificationHandler
	HealthHandler        *handler.HealthHandler
	AuthMiddleware       *middleware.AuthMiddleware
	DeviceAuthMiddleware *middleware.DeviceAuthMiddleware
	Metrics              *metrics.Recorder
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler        *handler.DeviceHandler
	commandHandler       *handler.CommandHandler
	doseHandler          *handler.DoseHandler
	notificationHandler  *handler.NotificationHandler
	healthHandler        *handler.HealthHandler
	authMiddleware       *middleware.AuthMiddleware
	deviceAuthMiddleware *middleware.DeviceAuthMiddleware
	metrics              *metrics.Recorder
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:        params.DeviceHandler,
		commandHandler:       params.CommandHandler,
		doseHandler:          params.DoseHandler,
		notificationHandler:  params.NotificationHandler,
		healthHandler:        params.HealthHandler,
		authMiddleware:       params.AuthMiddleware,
		deviceAuthMiddleware: params.DeviceAuthMiddleware,
		metrics:              params.Metrics,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck, r.authMiddleware.Optional)

	apiV1 := e.Group("/api/v1")

	// Firmware routes, authenticated by device serial and secret
	deviceAuth := r.deviceAuthMiddleware.Authenticate
	{
		apiV1.POST("/alarm-start", r.notificationHandler.StartAlarm, deviceAuth)
		apiV1.GET("/commands/poll", r.commandHandler.PollCommands, deviceAuth)
		apiV1.POST("/commands/ack", r.commandHandler.AckCommand, deviceAuth)
		apiV1.POST("/events/dose", r.doseHandler.RecordDose, deviceAuth)
		apiV1.POST("/weights/bulk", r.doseHandler.IngestWeights, deviceAuth)
	}

	// Either the device itself or its owner may read the configuration
	apiV1.GET("/devices/config", r.deviceHandler.GetDeviceConfig, r.userOrDevice)

	// User routes that require authentication
	userAuth := r.authMiddleware.Authenticate

	commandsGroup := apiV1.Group("/commands", userAuth)
	{
		commandsGroup.POST("", r.commandHandler.CreateCommand)
	}

	devicesGroup := apiV1.Group("/devices", userAuth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.PUT("/:id/secret", r.deviceHandler.ReprovisionDevice)
		devicesGroup.GET("/:id/upcoming", r.deviceHandler.GetUpcomingDoses)
		devicesGroup.GET("/:id/adherence", r.deviceHandler.GetAdherence)
	}

	pushGroup := apiV1.Group("/push", userAuth)
	{
		pushGroup.POST("/subscriptions", r.notificationHandler.Subscribe)
		pushGroup.DELETE("/subscriptions", r.notificationHandler.Unsubscribe)
		pushGroup.POST("/self-test", r.notificationHandler.SelfTest)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled || r.metrics == nil {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}

// userOrDevice authenticates with the user token when one is presented and with
// the device credentials otherwise.
func (r *router) userOrDevice(next echo.HandlerFunc) echo.HandlerFunc {
	asUser := r.authMiddleware.Authenticate(next)
	asDevice := r.deviceAuthMiddleware.Authenticate(next)

	return func(c echo.Context) error {
		if c.Request().Header.Get(echo.HeaderAuthorization) != "" {
			return asUser(c)
		}

		return asDevice(c)
	}
}
