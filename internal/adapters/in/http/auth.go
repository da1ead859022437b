package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Caller roles carried in the JWT "role" claim.
const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

const principalContextKey = "principal"

// Principal represents the authenticated caller from JWT.
type Principal struct {
	UserID kernel.UUID
	Role   string
}

// principalFromContext retrieves the principal stored by the auth middleware.
func principalFromContext(ctx echo.Context) (Principal, bool) {
	p, ok := ctx.Get(principalContextKey).(Principal)
	return p, ok
}

// AuthMiddleware validates the Bearer JWT on every request of the group and
// stores the resolved principal in the request context.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := parseBearer(ctx.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or missing credentials",
				})
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// RequireRole rejects callers whose principal carries a different role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, ok := principalFromContext(ctx)
			if !ok || principal.Role != role {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "Insufficient role",
				})
			}
			return next(ctx)
		}
	}
}

// parseBearer extracts and validates a Bearer JWT and returns a Principal.
func parseBearer(header string, secret string) (Principal, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errors.New("invalid authorization header")
	}
	return parseJWT(strings.TrimSpace(parts[1]), secret)
}

// parseJWT validates and extracts claims from a JWT token.
func parseJWT(tokenStr string, secret string) (Principal, error) {
	if secret == "" {
		return Principal{}, errors.New("jwt secret is empty")
	}

	type claims struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Principal{}, err
	}

	c, _ := tok.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Role == "" {
		return Principal{}, errors.New("invalid claims")
	}

	userID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return Principal{}, err
	}

	role := strings.ToLower(c.Role)
	switch role {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return Principal{UserID: userID, Role: role}, nil
	default:
		return Principal{}, errors.New("unknown role")
	}
}
