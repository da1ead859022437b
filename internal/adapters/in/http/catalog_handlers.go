package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetVendorCatalog handles GET /api/v1/vendors/:id/catalog - the public
// catalog view. Unavailable items are hidden from customers.
func (s *Server) GetVendorCatalog(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	query, err := queries.NewGetVendorCatalogQuery(vendorID, false)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getVendorCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalogItems(items))
}

// GetOwnedVendorCatalog handles GET /api/v1/me/vendor/catalog - the owner's
// catalog view including unavailable items.
func (s *Server) GetOwnedVendorCatalog(ctx echo.Context) error {
	profile, err := s.resolveOwnedVendor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetVendorCatalogQuery(profile.VendorID, true)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.getVendorCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCatalogItems(items))
}

// AddCatalogItem handles POST /api/v1/vendors/:id/items.
func (s *Server) AddCatalogItem(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	var request AddCatalogItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddCatalogItemCommand(
		itemID, vendorID, principal.UserID, request.Title, request.Unit, request.PricePaise,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.addCatalogItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID.String()})
}

// UpdateCatalogItem handles PUT /api/v1/items/:id.
func (s *Server) UpdateCatalogItem(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item id")
	}

	var request UpdateCatalogItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateCatalogItemCommand(
		itemID, principal.UserID, request.Title, request.Unit,
		request.PricePaise, request.Available,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateCatalogItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCatalogItem handles DELETE /api/v1/items/:id.
func (s *Server) RemoveCatalogItem(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveCatalogItemCommand(itemID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeCatalogItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// resolveOwnedVendor loads the vendor profile owned by the authenticated user.
func (s *Server) resolveOwnedVendor(ctx echo.Context) (queries.VendorProfileResponse, error) {
	principal, _ := principalFromContext(ctx)

	query, err := queries.NewGetOwnedVendorQuery(principal.UserID)
	if err != nil {
		return queries.VendorProfileResponse{}, err
	}

	return s.getOwnedVendorHandler.Handle(ctx.Request().Context(), query)
}
