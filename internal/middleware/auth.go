package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"backoffice-service/pkg/jwtutil"
	"backoffice-service/pkg/logger"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token and extracts the tenant context
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or expired token"})
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)

		if claims.TenantID != nil {
			c.Set("tenant_id", *claims.TenantID)
			c.Set("tenant_name", claims.TenantName)
		}

		return next(c)
	}
}

// TenantGuard ensures the :tenant_id path parameter matches the tenant in
// the caller's token. Every /tenants/:tenant_id/... route sits behind it.
func TenantGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		tenantID, ok := c.Get("tenant_id").(uint)
		if !ok {
			log.Warn("JWT token does not contain tenant_id")
			prometheus.TenantContextMissingCounter.Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "tenant_id is required in the token"})
		}

		pathTenant, err := strconv.ParseUint(c.Param("tenant_id"), 10, 32)
		if err != nil {
			log.Warn("Invalid tenant_id path parameter", zap.String("value", c.Param("tenant_id")))
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid tenant id"})
		}

		if uint(pathTenant) != tenantID {
			log.Warn("Tenant mismatch between token and path",
				zap.Uint("token_tenant", tenantID),
				zap.Uint64("path_tenant", pathTenant))
			return c.JSON(http.StatusForbidden, echo.Map{"message": "you don't have access to this tenant"})
		}

		return next(c)
	}
}

// SuperadminOnly restricts a route to platform administrators
func SuperadminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		role, _ := c.Get("user_role").(string)
		if role != "superadmin" {
			log.Warn("Non-superadmin attempted admin operation", zap.String("role", role))
			return c.JSON(http.StatusForbidden, echo.Map{"message": "superadmin access required"})
		}

		return next(c)
	}
}

// GetTenantIDFromContext retrieves the tenant ID from the context.
// Returns 0, false if tenant ID is not found.
func GetTenantIDFromContext(c echo.Context) (uint, bool) {
	tenantID, ok := c.Get("tenant_id").(uint)
	return tenantID, ok
}
