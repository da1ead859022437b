package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	paymentMode, err := order.PaymentModeFromString(request.PaymentMode)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.PlaceOrderItem, len(request.Items))
	for i, requested := range request.Items {
		itemID, err := kernel.UUIDFromString(requested.ItemID)
		if err != nil {
			return respondBadRequest(ctx, "Invalid item id")
		}
		items[i] = commands.PlaceOrderItem{ItemID: itemID, Quantity: requested.Quantity}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, principal.UserID, request.Phone, vendorID, paymentMode, items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders - the customer's order history.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	query, err := queries.NewGetCustomerOrdersQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - customer cancellation.
func (s *Server) CancelOrder(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOwnedVendorOrders handles GET /api/v1/me/vendor/orders - the incoming
// order queue for the vendor owned by the caller.
func (s *Server) GetOwnedVendorOrders(ctx echo.Context) error {
	profile, err := s.resolveOwnedVendor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetVendorOrdersQuery(profile.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// ChangeOrderStatusAsVendor handles POST /api/v1/orders/:id/status - the
// vendor advancing an order through its lifecycle. The transition is scoped
// to the caller's own vendor.
func (s *Server) ChangeOrderStatusAsVendor(ctx echo.Context) error {
	orderID, next, err := s.bindStatusChange(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.resolveOwnedVendor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommandForVendor(orderID, next, profile.VendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindStatusChange parses the order id and requested status from the request.
func (s *Server) bindStatusChange(ctx echo.Context) (kernel.UUID, order.Status, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, order.Unknown, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	var request ChangeOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return kernel.UUID{}, order.Unknown, errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(&request); err != nil {
		return kernel.UUID{}, order.Unknown, errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	next, err := order.StatusFromString(request.Status)
	if err != nil {
		return kernel.UUID{}, order.Unknown, err
	}

	return orderID, next, nil
}
