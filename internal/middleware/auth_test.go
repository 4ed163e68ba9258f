package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"backoffice-service/pkg/config"
	"backoffice-service/pkg/jwtutil"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "middleware-test-key", ExpirationHours: 1})
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "middlewaretest"},
	})
	os.Exit(m.Run())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	c, rec := newAuthContext(t, "")

	require.NoError(t, AuthMiddleware(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	c, rec := newAuthContext(t, "Token abc")

	require.NoError(t, AuthMiddleware(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	c, rec := newAuthContext(t, "Bearer not-a-jwt")

	require.NoError(t, AuthMiddleware(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareExtractsTenantContext(t *testing.T) {
	tenantID := uint(42)
	token, err := jwtutil.GenerateTokenWithTenant("owner@example.com", 3, &tenantID, "Acme", "owner")
	require.NoError(t, err)

	c, rec := newAuthContext(t, "Bearer "+token)
	require.NoError(t, AuthMiddleware(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(3), c.Get("user_id"))
	assert.Equal(t, "owner@example.com", c.Get("email"))
	assert.Equal(t, uint(42), c.Get("tenant_id"))
	assert.Equal(t, "Acme", c.Get("tenant_name"))
	assert.Equal(t, "owner", c.Get("user_role"))
}

func newTenantGuardContext(t *testing.T, tokenTenant interface{}, pathTenant string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("tenant_id")
	c.SetParamValues(pathTenant)
	if tokenTenant != nil {
		c.Set("tenant_id", tokenTenant)
	}
	return c, rec
}

func TestTenantGuardAllowsMatchingTenant(t *testing.T) {
	c, rec := newTenantGuardContext(t, uint(42), "42")

	require.NoError(t, TenantGuard(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTenantGuardRejectsMismatchedTenant(t *testing.T) {
	c, rec := newTenantGuardContext(t, uint(42), "7")

	require.NoError(t, TenantGuard(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTenantGuardRejectsMissingClaim(t *testing.T) {
	c, rec := newTenantGuardContext(t, nil, "42")

	require.NoError(t, TenantGuard(okHandler)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTenantGuardRejectsBadPathParam(t *testing.T) {
	c, rec := newTenantGuardContext(t, uint(42), "abc")

	require.NoError(t, TenantGuard(okHandler)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSuperadminOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_role", "owner")

	require.NoError(t, SuperadminOnly(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec2 := httptest.NewRecorder()
	c2 := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec2)
	c2.Set("user_role", "superadmin")

	require.NoError(t, SuperadminOnly(okHandler)(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}
