package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-identity-secret")

func signSession(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString(secret)
	require.NoError(t, err)
	return raw
}

func runAuth(t *testing.T, decorate func(*http.Request)) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := &Identity{Secret: testSecret}
	handler := m.RequireAuth(func(c echo.Context) error {
		id, err := ClerkID(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, id)
	})
	return rec, handler(c)
}

func TestRequireAuth_BearerToken(t *testing.T) {
	t.Parallel()

	raw := signSession(t, testSecret, jwt.MapClaims{
		"sub": "clerk_user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, err := runAuth(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "clerk_user_1", rec.Body.String())
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	t.Parallel()

	raw := signSession(t, testSecret, jwt.MapClaims{
		"sub": "clerk_user_2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, err := runAuth(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "__session", Value: raw})
	})
	require.NoError(t, err)
	assert.Equal(t, "clerk_user_2", rec.Body.String())
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	expired := signSession(t, testSecret, jwt.MapClaims{
		"sub": "clerk_user_3",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signSession(t, []byte("other-secret"), jwt.MapClaims{
		"sub": "clerk_user_3",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubject := signSession(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name     string
		decorate func(*http.Request)
	}{
		{"no token", nil},
		{"expired", func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer "+expired) }},
		{"wrong key", func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer "+wrongKey) }},
		{"no subject", func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer "+noSubject) }},
		{"garbage", func(req *http.Request) { req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runAuth(t, tc.decorate)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	e := echo.New()
	run := func(apiKey, header string) error {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/coupons", nil)
		if header != "" {
			req.Header.Set("X-API-Key", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		m := &AdminOnly{APIKey: apiKey}
		return m.Require(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c)
	}

	require.NoError(t, run("secret-key", "secret-key"))

	var httpErr *echo.HTTPError
	require.ErrorAs(t, run("secret-key", "wrong"), &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	require.ErrorAs(t, run("secret-key", ""), &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	// unconfigured key locks the surface entirely
	require.ErrorAs(t, run("", "anything"), &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
