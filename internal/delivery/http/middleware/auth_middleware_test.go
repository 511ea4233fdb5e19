package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kaelo/internal/domain/service"
	mockSvc "kaelo/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(m *AuthMiddleware, wrap func(echo.HandlerFunc) echo.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	probe := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	_ = wrap(probe)(c)

	return rec, c
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateAccessToken("valid-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"user", "creator"}, Type: "access"}, nil)

	m := NewAuthMiddleware(tokenSvc)
	rec, c := performRequest(m, m.Authenticate, "Bearer valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{"user", "creator"}, c.Get("roles"))
}

func TestAuthMiddleware_Authenticate_RejectsMissingAndMalformedHeaders(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	rec, _ := performRequest(m, m.Authenticate, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = performRequest(m, m.Authenticate, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsInvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateAccessToken("expired-token").
		Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc)
	rec, c := performRequest(m, m.Authenticate, "Bearer expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, c.Get("userID"))
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	// Anonymous requests pass through with no identity.
	rec, c := performRequest(m, m.OptionalAuthenticate, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get("userID"))

	// A supplied but invalid token is still rejected.
	tokenSvc.EXPECT().
		ValidateAccessToken("garbage").
		Return(nil, errors.New("token is malformed"))

	rec, _ = performRequest(m, m.OptionalAuthenticate, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	probe := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	run := func(roles any) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/creator/routes", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if roles != nil {
			c.Set("roles", roles)
		}
		_ = m.RequireRole("creator")(probe)(c)

		return rec
	}

	assert.Equal(t, http.StatusOK, run([]string{"user", "creator"}).Code)
	assert.Equal(t, http.StatusForbidden, run([]string{"user"}).Code)
	assert.Equal(t, http.StatusForbidden, run(nil).Code)
}
