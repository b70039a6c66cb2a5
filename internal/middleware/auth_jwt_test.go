package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/apiclient"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authz string, next echo.HandlerFunc) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	assert.NoError(t, mw(next)(c))
	return rec, c
}

func TestAuthJWT_ValidTokenSetsContext(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{"sub": "u1", "role": "CUSTOMER"})

	called := false
	_, c := invoke(t, middleware.AuthJWT(testConfig()), "Bearer "+signed, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	assert.True(t, called)
	assert.Equal(t, "u1", c.Get(middleware.CtxUserIDKey))
	assert.Equal(t, "CUSTOMER", c.Get(middleware.CtxUserRoleKey))

	//外部API転送用に生トークンがrequest contextへ載る
	tok, ok := apiclient.TokenFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, signed, tok)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := invoke(t, middleware.AuthJWT(testConfig()), "", func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearerScheme(t *testing.T) {
	rec, _ := invoke(t, middleware.AuthJWT(testConfig()), "Basic abc", func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": "CUSTOMER"})
	signed, err := token.SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	rec, _ := invoke(t, middleware.AuthJWT(testConfig()), "Bearer "+signed, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MissingRoleClaim(t *testing.T) {
	signed := signToken(t, jwt.MapClaims{"sub": "u1"})

	rec, _ := invoke(t, middleware.AuthJWT(testConfig()), "Bearer "+signed, func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuard_AllowsListedRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserRoleKey, "ADMIN")

	called := false
	mw := middleware.RoleGuard(model.RoleAdmin)
	assert.NoError(t, mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c))
	assert.True(t, called)
}

func TestRoleGuard_RejectsOtherRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserRoleKey, "CUSTOMER")

	mw := middleware.RoleGuard(model.RoleProvider, model.RoleAdmin)
	assert.NoError(t, mw(func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleGuard_MissingRoleIsUnauthorized(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := middleware.RoleGuard(model.RoleAdmin)
	assert.NoError(t, mw(func(c echo.Context) error {
		t.Fatal("next should not be called")
		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
