package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/labstack/echo/v4"
)

// GetPendingVerifications handles GET /api/v1/admin/verifications - the
// back-office queue of unverified vendor registrations.
func (s *Server) GetPendingVerifications(ctx echo.Context) error {
	query := queries.NewGetPendingVerificationsQuery()

	profiles, err := s.getPendingVerificationsHdlr.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toVendorProfiles(profiles))
}

// VerifyVendor handles POST /api/v1/admin/vendors/:id/verify.
func (s *Server) VerifyVendor(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	cmd, err := commands.NewVerifyVendorCommand(vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyVendorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeVendorPlan handles PUT /api/v1/admin/vendors/:id/plan.
func (s *Server) ChangeVendorPlan(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid vendor id")
	}

	var request ChangeVendorPlanRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	plan, err := vendor.PlanFromString(request.Plan)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeVendorPlanCommand(vendorID, plan)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeVendorPlanHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatusAsAdmin handles POST /api/v1/admin/orders/:id/status -
// an unscoped transition for support interventions.
func (s *Server) ChangeOrderStatusAsAdmin(ctx echo.Context) error {
	orderID, next, err := s.bindStatusChange(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, next)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
