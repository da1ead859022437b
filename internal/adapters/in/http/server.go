// Package http exposes the application's use cases over a REST API.
// It coordinates between HTTP handlers and application commands/queries;
// authentication resolves a Principal once per request and route groups
// are gated by role.
package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the REST API.
type Server struct {
	// Command handlers
	requestOTPHandler           commands.RequestOTPCommandHandler
	registerVendorHandler       commands.RegisterVendorCommandHandler
	updateVendorLocationHandler commands.UpdateVendorLocationCommandHandler
	setVendorPresenceHandler    commands.SetVendorPresenceCommandHandler
	addCatalogItemHandler       commands.AddCatalogItemCommandHandler
	updateCatalogItemHandler    commands.UpdateCatalogItemCommandHandler
	removeCatalogItemHandler    commands.RemoveCatalogItemCommandHandler
	placeOrderHandler           commands.PlaceOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	changeOrderStatusHandler    commands.ChangeOrderStatusCommandHandler
	verifyVendorHandler         commands.VerifyVendorCommandHandler
	changeVendorPlanHandler     commands.ChangeVendorPlanCommandHandler

	// Query handlers
	discoverVendorsHandler      queries.DiscoverVendorsQueryHandler
	getVendorCatalogHandler     queries.GetVendorCatalogQueryHandler
	getCustomerOrdersHandler    queries.GetCustomerOrdersQueryHandler
	getVendorOrdersHandler      queries.GetVendorOrdersQueryHandler
	getOwnedVendorHandler       queries.GetOwnedVendorQueryHandler
	getPendingVerificationsHdlr queries.GetPendingVerificationsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	requestOTPHandler commands.RequestOTPCommandHandler,
	registerVendorHandler commands.RegisterVendorCommandHandler,
	updateVendorLocationHandler commands.UpdateVendorLocationCommandHandler,
	setVendorPresenceHandler commands.SetVendorPresenceCommandHandler,
	addCatalogItemHandler commands.AddCatalogItemCommandHandler,
	updateCatalogItemHandler commands.UpdateCatalogItemCommandHandler,
	removeCatalogItemHandler commands.RemoveCatalogItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	verifyVendorHandler commands.VerifyVendorCommandHandler,
	changeVendorPlanHandler commands.ChangeVendorPlanCommandHandler,
	discoverVendorsHandler queries.DiscoverVendorsQueryHandler,
	getVendorCatalogHandler queries.GetVendorCatalogQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	getOwnedVendorHandler queries.GetOwnedVendorQueryHandler,
	getPendingVerificationsHandler queries.GetPendingVerificationsQueryHandler,
) *Server {
	return &Server{
		requestOTPHandler:           requestOTPHandler,
		registerVendorHandler:       registerVendorHandler,
		updateVendorLocationHandler: updateVendorLocationHandler,
		setVendorPresenceHandler:    setVendorPresenceHandler,
		addCatalogItemHandler:       addCatalogItemHandler,
		updateCatalogItemHandler:    updateCatalogItemHandler,
		removeCatalogItemHandler:    removeCatalogItemHandler,
		placeOrderHandler:           placeOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		verifyVendorHandler:         verifyVendorHandler,
		changeVendorPlanHandler:     changeVendorPlanHandler,
		discoverVendorsHandler:      discoverVendorsHandler,
		getVendorCatalogHandler:     getVendorCatalogHandler,
		getCustomerOrdersHandler:    getCustomerOrdersHandler,
		getVendorOrdersHandler:      getVendorOrdersHandler,
		getOwnedVendorHandler:       getOwnedVendorHandler,
		getPendingVerificationsHdlr: getPendingVerificationsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
// Discovery and public catalogs need no credentials; everything else sits
// behind JWT auth with role-gated groups.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.Validator = NewRequestValidator()

	public := e.Group("/api/v1")
	public.POST("/auth/otp", s.RequestOTP)
	public.GET("/vendors/discover", s.DiscoverVendors)
	public.GET("/vendors/:id/catalog", s.GetVendorCatalog)

	authed := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	customer := authed.Group("", RequireRole(RoleCustomer))
	customer.POST("/orders", s.PlaceOrder)
	customer.GET("/orders", s.GetCustomerOrders)
	customer.POST("/orders/:id/cancel", s.CancelOrder)

	vendor := authed.Group("", RequireRole(RoleVendor))
	vendor.POST("/vendors", s.RegisterVendor)
	vendor.GET("/me/vendor", s.GetOwnedVendor)
	vendor.GET("/me/vendor/orders", s.GetOwnedVendorOrders)
	vendor.GET("/me/vendor/catalog", s.GetOwnedVendorCatalog)
	vendor.PUT("/vendors/:id/location", s.UpdateVendorLocation)
	vendor.PUT("/vendors/:id/presence", s.SetVendorPresence)
	vendor.POST("/vendors/:id/items", s.AddCatalogItem)
	vendor.PUT("/items/:id", s.UpdateCatalogItem)
	vendor.DELETE("/items/:id", s.RemoveCatalogItem)
	vendor.POST("/orders/:id/status", s.ChangeOrderStatusAsVendor)

	admin := authed.Group("/admin", RequireRole(RoleAdmin))
	admin.GET("/verifications", s.GetPendingVerifications)
	admin.POST("/vendors/:id/verify", s.VerifyVendor)
	admin.PUT("/vendors/:id/plan", s.ChangeVendorPlan)
	admin.POST("/orders/:id/status", s.ChangeOrderStatusAsAdmin)
}
