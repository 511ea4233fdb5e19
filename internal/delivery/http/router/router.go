// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kaelo/internal/delivery/http/middleware"
	"kaelo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	RouteHandler    *handler.RouteHandler
	PurchaseHandler *handler.PurchaseHandler
	BusinessHandler *handler.BusinessHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	routeHandler    *handler.RouteHandler
	purchaseHandler *handler.PurchaseHandler
	businessHandler *handler.BusinessHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		routeHandler:    params.RouteHandler,
		purchaseHandler: params.PurchaseHandler,
		businessHandler: params.BusinessHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/user", r.userHandler.RegisterUser)
		authGroup.POST("/register/creator", r.userHandler.RegisterCreator)
		authGroup.POST("/register/business-owner", r.userHandler.RegisterBusinessOwner)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Marketplace reads are public; the viewer identity, when present,
	// decides how much of each route is visible.
	routeGroup := e.Group("/routes")
	routeGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		routeGroup.GET("", r.routeHandler.ListPublished)
		routeGroup.GET("/:id", r.routeHandler.GetRoute)
		routeGroup.GET("/:id/qr", r.routeHandler.ShareQR)
	}

	// Purchases accept anonymous callers so the flow can answer with its
	// own NOT_AUTHENTICATED result envelope.
	purchaseGroup := e.Group("/purchases")
	purchaseGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		purchaseGroup.POST("", r.purchaseHandler.Purchase)
		purchaseGroup.GET("", r.purchaseHandler.ListPurchases)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/devices", r.deviceHandler.RegisterDevice)
	}

	// Creator routes that require authentication and the "creator" role
	creatorGroup := e.Group("/creator")
	creatorGroup.Use(r.authMiddleware.Authenticate)
	creatorGroup.Use(r.authMiddleware.RequireRole("creator"))
	{
		creatorGroup.POST("/routes", r.routeHandler.CreateRoute)
		creatorGroup.GET("/routes", r.routeHandler.ListMine)
		creatorGroup.PUT("/routes/:id", r.routeHandler.UpdateRoute)
		creatorGroup.POST("/routes/:id/submit", r.routeHandler.SubmitForReview)
		creatorGroup.POST("/routes/:id/archive", r.routeHandler.Archive)
		creatorGroup.POST("/routes/:id/waypoints", r.routeHandler.AppendWaypoint)
	}

	// Moderation routes. Admin tokens are minted out of band; no public
	// registration path grants this role.
	moderationGroup := e.Group("/moderation")
	moderationGroup.Use(r.authMiddleware.Authenticate)
	moderationGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		moderationGroup.POST("/routes/:id/publish", r.routeHandler.Publish)
		moderationGroup.POST("/routes/:id/reject", r.routeHandler.Reject)
	}

	// Business listing routes
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("", r.businessHandler.ListActive)
		businessGroup.GET("/nearby", r.businessHandler.FindNearby)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
	}

	// Business management requires the "business_owner" role
	ownerGroup := e.Group("/owner")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole("business_owner"))
	{
		ownerGroup.POST("/businesses", r.businessHandler.CreateBusiness)
	}
}
