package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cepcache/config"
	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/service"
	servicemocks "cepcache/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(enabled bool) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{Enabled: enabled}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	err := mw(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, c, reached
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("disabled guard lets every request through", func(t *testing.T) {
		m := NewAuthMiddleware(servicemocks.NewMockTokenService(t), newAuthConfig(false), discardLogger())

		rec, _, reached := serve(t, m.Authenticate, "")
		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects missing and malformed headers", func(t *testing.T) {
		m := NewAuthMiddleware(servicemocks.NewMockTokenService(t), newAuthConfig(true), discardLogger())

		for _, header := range []string{"", "Basic abc", "Bearer "} {
			rec, _, reached := serve(t, m.Authenticate, header)
			assert.False(t, reached, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		}
	})

	t.Run("rejects invalid tokens", func(t *testing.T) {
		tokenSvc := servicemocks.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
		m := NewAuthMiddleware(tokenSvc, newAuthConfig(true), discardLogger())

		rec, _, reached := serve(t, m.Authenticate, "Bearer expired")
		assert.False(t, reached)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("stores subject and scopes", func(t *testing.T) {
		tokenSvc := servicemocks.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
			Scopes:           []string{ScopeAddressRead},
			RegisteredClaims: jwt.RegisteredClaims{Subject: "billing"},
		}, nil).Once()
		m := NewAuthMiddleware(tokenSvc, newAuthConfig(true), discardLogger())

		rec, c, reached := serve(t, m.Authenticate, "Bearer good")
		assert.True(t, reached)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		subject, ok := deliverycontext.GetSubject(c)
		require.True(t, ok)
		assert.Equal(t, "billing", subject)
		assert.Equal(t, []string{ScopeAddressRead}, c.Get(scopesKey))
	})
}

func TestAuthMiddleware_RequireScope(t *testing.T) {
	chain := func(m *AuthMiddleware, scope string) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return m.Authenticate(m.RequireScope(scope)(next))
		}
	}

	t.Run("grants a held scope", func(t *testing.T) {
		tokenSvc := servicemocks.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("reader").
			Return(&service.Claims{Scopes: []string{ScopeAddressRead}}, nil).Once()
		m := NewAuthMiddleware(tokenSvc, newAuthConfig(true), discardLogger())

		_, _, reached := serve(t, chain(m, ScopeAddressRead), "Bearer reader")
		assert.True(t, reached)
	})

	t.Run("forbids a missing scope", func(t *testing.T) {
		tokenSvc := servicemocks.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("reader").
			Return(&service.Claims{Scopes: []string{ScopeAddressRead}}, nil).Once()
		m := NewAuthMiddleware(tokenSvc, newAuthConfig(true), discardLogger())

		rec, _, reached := serve(t, chain(m, ScopeAddressWrite), "Bearer reader")
		assert.False(t, reached)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "INSUFFICIENT_SCOPE")
	})

	t.Run("disabled guard skips scope checks", func(t *testing.T) {
		m := NewAuthMiddleware(servicemocks.NewMockTokenService(t), newAuthConfig(false), discardLogger())

		_, _, reached := serve(t, chain(m, ScopeAddressWrite), "")
		assert.True(t, reached)
	})
}
