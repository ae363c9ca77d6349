// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cepcache/internal/delivery/api/middleware"
	"cepcache/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	addressesGroup := apiV1.Group("/addresses")
	{
		read := r.authMiddleware.RequireScope(middleware.ScopeAddressRead)
		write := r.authMiddleware.RequireScope(middleware.ScopeAddressWrite)

		addressesGroup.GET("", r.addressHandler.LookupAddresses, read)
		addressesGroup.GET("/:zipcode", r.addressHandler.GetAddressByZipcode, read)
		addressesGroup.POST("", r.addressHandler.InsertAddress, write)
	}
}
