package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"cepcache/config"
	"cepcache/internal/delivery/api/response"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Scopes granted to service tokens.
const (
	ScopeAddressRead  = "addresses:read"
	ScopeAddressWrite = "addresses:write"
)

const scopesKey = "scopes"

// AuthMiddleware guards the address API with bearer tokens when enabled in configuration.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enabled  bool
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
		enabled:  cfg.Auth.Enabled,
		logger:   logger,
	}
}

// Authenticate validates the bearer token and stores its subject and scopes on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.String("error", err.Error()))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetSubject(c, claims.Subject)
		c.Set(scopesKey, claims.Scopes)

		return next(c)
	}
}

// RequireScope rejects tokens lacking scope. It must be used after Authenticate.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.enabled {
				return next(c)
			}

			scopes, _ := c.Get(scopesKey).([]string)
			if !slices.Contains(scopes, scope) {
				return response.Forbidden(c, "INSUFFICIENT_SCOPE", "Permission denied: require '"+scope+"' scope")
			}

			return next(c)
		}
	}
}
