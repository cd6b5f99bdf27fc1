package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

var (
	testJWTSecret = []byte("route-test-jwt-secret")
	testAdminKey  = "route-test-admin-key"
)

type routeEnv struct {
	E    *echo.Echo
	Repo *repo.GormRepo
}

func newRouteEnv(t *testing.T) *routeEnv {
	t.Helper()

	r := newTestRepo(t)

	users := &service.UserService{Repo: r}
	carts := &service.CartService{Repo: r}
	coupons := &service.CouponService{Repo: r}
	orders := &service.OrderService{Repo: r}
	checkout := service.NewCheckoutService(r, coupons, orders, nil)
	catalog := &service.CatalogService{Repo: r}
	content := &service.ContentService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		CartHandler:     &CartHTTP{Svc: carts, Users: users},
		CheckoutHandler: &CheckoutHTTP{Svc: checkout, Users: users},
		OrderHandler:    &OrderHTTP{Svc: orders},
		CatalogHandler:  &CatalogHTTP{Svc: catalog},
		ContentHandler:  &ContentHTTP{Svc: content},
		CouponHandler:   &CouponHTTP{Repo: r},
		WebhookHandler:  &WebhookHTTP{Users: users, Secret: []byte("wh")},
		IdentitySecret:  testJWTSecret,
		AdminAPIKey:     testAdminKey,
	})

	return &routeEnv{E: e, Repo: r}
}

func (env *routeEnv) seedUser(t *testing.T, clerkID string) *models.User {
	t.Helper()
	user := &models.User{ClerkID: clerkID, Email: clerkID + "@example.com"}
	require.NoError(t, env.Repo.DB.Create(user).Error)
	return user
}

func (env *routeEnv) bearer(t *testing.T, clerkID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": clerkID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString(testJWTSecret)
	require.NoError(t, err)
	return "Bearer " + raw
}

func (env *routeEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_HealthAndPublicSurface(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)

	rec := env.do(t, http.MethodGet, "/health/live", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/products", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/topbars", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_CartRequiresAuth(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart", transport.SaveCartRequest{}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_SaveCartAuthenticated(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)
	env.seedUser(t, "clerk_route_1")

	product := &models.Product{
		Name: "Tee", Slug: "route-tee", Category: "shirts",
		SubProducts: []models.SubProduct{{
			Color: "white",
			Sizes: []models.SizePrice{{Size: "M", Qty: 5, Price: 30}},
		}},
	}
	require.NoError(t, env.Repo.DB.Create(product).Error)

	rec := env.do(t, http.MethodPost, "/api/v1/cart", transport.SaveCartRequest{
		Items: []transport.CartSelection{{ProductID: product.ID, Style: 0, Size: "M", Qty: 2}},
	}, map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_1")})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp transport.SaveCartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Cart)
	assert.Equal(t, 60.0, resp.Cart.CartTotal)
}

func TestRoutes_CheckoutSession(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)
	env.seedUser(t, "clerk_route_2")
	headers := map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_2")}

	rec := env.do(t, http.MethodGet, "/api/v1/checkout", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var sess transport.CheckoutSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, 1, sess.Step)
}

func TestRoutes_AdminSurface(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)
	body := transport.CreateCouponRequest{Code: "ROUTE10", Discount: 10}

	// no key
	rec := env.do(t, http.MethodPost, "/api/v1/admin/coupons", body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// wrong key
	rec = env.do(t, http.MethodPost, "/api/v1/admin/coupons", body, map[string]string{"X-API-Key": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// right key
	rec = env.do(t, http.MethodPost, "/api/v1/admin/coupons", body, map[string]string{"X-API-Key": testAdminKey})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// invalid discount
	rec = env.do(t, http.MethodPost, "/api/v1/admin/coupons",
		transport.CreateCouponRequest{Code: "BAD", Discount: 150},
		map[string]string{"X-API-Key": testAdminKey})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_SearchUnconfigured(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/search?q=tee", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_OrdersScopedToCaller(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)
	alice := env.seedUser(t, "clerk_route_3a")
	env.seedUser(t, "clerk_route_3b")

	require.NoError(t, env.Repo.DB.Create(&models.Order{
		UserID: alice.ID, PaymentMethod: "cod", Total: 42, Status: models.OrderStatusNew,
	}).Error)

	rec := env.do(t, http.MethodGet, "/api/v1/orders", nil,
		map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_3a")})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var mine []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	rec = env.do(t, http.MethodGet, "/api/v1/orders", nil,
		map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_3b")})
	require.Equal(t, http.StatusOK, rec.Code)

	var theirs []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theirs))
	assert.Len(t, theirs, 0)
}

func TestRoutes_GetOrderHiddenFromOtherUsers(t *testing.T) {
	t.Parallel()

	env := newRouteEnv(t)
	alice := env.seedUser(t, "clerk_route_4a")
	env.seedUser(t, "clerk_route_4b")

	order := models.Order{
		UserID: alice.ID, PaymentMethod: "cod", Total: 42, Status: models.OrderStatusNew,
	}
	require.NoError(t, env.Repo.DB.Create(&order).Error)

	rec := env.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), nil,
		map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_4a")})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/v1/orders/"+order.ID.String(), nil,
		map[string]string{echo.HeaderAuthorization: env.bearer(t, "clerk_route_4b")})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
