package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/labstack/echo/v4"
)

// RequestOTP handles POST /api/v1/auth/otp - issues a phone verification code.
func (s *Server) RequestOTP(ctx echo.Context) error {
	var request RequestOTPRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewRequestOTPCommand(request.Phone)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestOTPHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RegisterVendor handles POST /api/v1/vendors - creates a vendor profile
// for the authenticated owner after OTP verification.
func (s *Server) RegisterVendor(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	var request RegisterVendorRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	vendorType, err := vendor.TypeFromString(request.VendorType)
	if err != nil {
		return respondError(ctx, err)
	}

	var location *kernel.GeoPoint
	if request.Location != nil {
		point, err := kernel.NewGeoPoint(request.Location.Latitude, request.Location.Longitude)
		if err != nil {
			return respondError(ctx, err)
		}
		location = &point
	}

	vendorID := kernel.NewUUID()
	cmd, err := commands.NewRegisterVendorCommand(
		vendorID, principal.UserID, request.Name, request.Category,
		vendorType, request.Phone, request.OTPCode, location,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: vendorID.String()})
}

// GetOwnedVendor handles GET /api/v1/me/vendor - the owner's profile view.
func (s *Server) GetOwnedVendor(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	query, err := queries.NewGetOwnedVendorQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.getOwnedVendorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVendorProfile(profile))
}

// UpdateVendorLocation handles PUT /api/v1/vendors/:id/location.
func (s *Server) UpdateVendorLocation(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	var request LocationPayload
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	point, err := kernel.NewGeoPoint(request.Latitude, request.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateVendorLocationCommand(vendorID, principal.UserID, point)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateVendorLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetVendorPresence handles PUT /api/v1/vendors/:id/presence.
func (s *Server) SetVendorPresence(ctx echo.Context) error {
	principal, _ := principalFromContext(ctx)

	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	var request SetPresenceRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	cmd, err := commands.NewSetVendorPresenceCommand(
		vendorID, principal.UserID, request.Online, request.OpeningNote,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.setVendorPresenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DiscoverVendors handles GET /api/v1/vendors/discover - the proximity feed.
// Query parameters: lat, lng, radius_km, category, online_only, q.
func (s *Server) DiscoverVendors(ctx echo.Context) error {
	var origin *kernel.GeoPoint
	latParam, lngParam := ctx.QueryParam("lat"), ctx.QueryParam("lng")
	if latParam != "" || lngParam != "" {
		lat, err := strconv.ParseFloat(latParam, 64)
		if err != nil {
			return respondBadRequest(ctx, "Invalid lat")
		}
		lng, err := strconv.ParseFloat(lngParam, 64)
		if err != nil {
			return respondBadRequest(ctx, "Invalid lng")
		}
		point, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			return respondError(ctx, err)
		}
		origin = &point
	}

	radiusKm := 0.0
	if radiusParam := ctx.QueryParam("radius_km"); radiusParam != "" {
		parsed, err := strconv.ParseFloat(radiusParam, 64)
		if err != nil {
			return respondBadRequest(ctx, "Invalid radius_km")
		}
		radiusKm = parsed
	}

	onlineOnly := ctx.QueryParam("online_only") == "true"

	query, err := queries.NewDiscoverVendorsQuery(
		origin, radiusKm, ctx.QueryParam("category"), onlineOnly, ctx.QueryParam("q"),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	vendors, err := s.discoverVendorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDiscoveredVendors(vendors))
}
