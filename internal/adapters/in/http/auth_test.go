package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, subject string, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func Test_ParseJWT_ValidToken(t *testing.T) {
	userID := kernel.NewUUID()
	token := signToken(t, testSecret, userID.String(), "vendor")

	principal, err := parseJWT(token, testSecret)

	require.NoError(t, err)
	assert.True(t, userID.IsEqual(principal.UserID))
	assert.Equal(t, RoleVendor, principal.Role)
}

func Test_ParseJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "another-secret", kernel.NewUUID().String(), "customer")

	_, err := parseJWT(token, testSecret)

	require.Error(t, err)
}

func Test_ParseJWT_UnknownRole(t *testing.T) {
	token := signToken(t, testSecret, kernel.NewUUID().String(), "superuser")

	_, err := parseJWT(token, testSecret)

	require.Error(t, err)
}

func Test_ParseJWT_MissingClaims(t *testing.T) {
	token := signToken(t, testSecret, "", "")

	_, err := parseJWT(token, testSecret)

	require.Error(t, err)
}

func Test_AuthMiddleware_StoresPrincipal(t *testing.T) {
	userID := kernel.NewUUID()
	token := signToken(t, testSecret, userID.String(), "customer")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var seen Principal
	next := func(c echo.Context) error {
		seen, _ = principalFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	err := AuthMiddleware(testSecret)(next)(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, userID.IsEqual(seen.UserID))
	assert.Equal(t, RoleCustomer, seen.Role)
}

func Test_AuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run without credentials")
		return nil
	}

	err := AuthMiddleware(testSecret)(next)(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_RequireRole_RejectsOtherRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(principalContextKey, Principal{UserID: kernel.NewUUID(), Role: RoleCustomer})

	next := func(c echo.Context) error {
		t.Fatal("next handler must not run for a mismatched role")
		return nil
	}

	err := RequireRole(RoleAdmin)(next)(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func Test_RequireRole_AllowsMatchingRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set(principalContextKey, Principal{UserID: kernel.NewUUID(), Role: RoleAdmin})

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	err := RequireRole(RoleAdmin)(next)(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
