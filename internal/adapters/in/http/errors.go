package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors onto HTTP status codes.
// Unrecognized errors become an opaque 500 so internals never leak.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = "Object not found"
	case errors.Is(err, commands.ErrVendorBelongsToAnotherOwner),
		errors.Is(err, commands.ErrOrderBelongsToAnotherVendor),
		errors.Is(err, commands.ErrOrderBelongsToAnotherCustomer):
		code = http.StatusForbidden
		message = "Operation not permitted for this caller"
	case errors.Is(err, commands.ErrPhoneIsAlreadyRegistered),
		errors.Is(err, commands.ErrCatalogLimitReached):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, commands.ErrOTPCodeIsInvalid),
		errors.Is(err, commands.ErrVendorIsNotAvailable),
		errors.Is(err, commands.ErrItemIsNotOrderable):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
