package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/middleware/auth"
)

type Deps struct {
	CartHandler     *CartHTTP
	CheckoutHandler *CheckoutHTTP
	OrderHandler    *OrderHTTP
	CatalogHandler  *CatalogHTTP
	ContentHandler  *ContentHTTP
	CouponHandler   *CouponHTTP
	WebhookHandler  *WebhookHTTP

	IdentitySecret []byte
	AdminAPIKey    string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.POST("/webhooks/identity", d.WebhookHandler.IdentityWebhook)

	v1 := e.Group("/api/v1")

	v1.GET("/products", d.CatalogHandler.GetProducts)
	v1.GET("/products/:slug", d.CatalogHandler.GetProduct)
	v1.GET("/search", d.CatalogHandler.Search)
	v1.GET("/topbars", d.ContentHandler.ListTopBars)
	v1.GET("/banners/website", d.ContentHandler.WebsiteBanners)
	v1.GET("/banners/app", d.ContentHandler.AppBanners)

	identity := &auth.Identity{Secret: d.IdentitySecret}

	user := v1.Group("", identity.RequireAuth)
	user.POST("/cart", d.CartHandler.SaveCart)

	user.GET("/checkout", d.CheckoutHandler.GetSession)
	user.POST("/checkout/address", d.CheckoutHandler.SaveAddress)
	user.PUT("/checkout/address/:id/active", d.CheckoutHandler.ChangeActiveAddress)
	user.DELETE("/checkout/address/:id", d.CheckoutHandler.DeleteAddress)
	user.POST("/checkout/coupon", d.CheckoutHandler.ApplyCoupon)
	user.POST("/checkout/coupon/skip", d.CheckoutHandler.SkipCoupon)
	user.POST("/checkout/back", d.CheckoutHandler.Back)
	user.POST("/checkout/payment", d.CheckoutHandler.SelectPayment)
	user.POST("/checkout/order", d.CheckoutHandler.PlaceOrder)

	user.GET("/orders", d.OrderHandler.ListOrders)
	user.GET("/orders/:id", d.OrderHandler.GetOrder)

	adminMW := &auth.AdminOnly{APIKey: d.AdminAPIKey}
	admin := v1.Group("/admin", adminMW.Require)

	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PATCH("/products/:id", d.CatalogHandler.PatchProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)

	admin.GET("/coupons", d.CouponHandler.ListCoupons)
	admin.POST("/coupons", d.CouponHandler.CreateCoupon)
	admin.DELETE("/coupons/:id", d.CouponHandler.DeleteCoupon)

	admin.POST("/topbars", d.ContentHandler.CreateTopBar)
	admin.PATCH("/topbars/:id", d.ContentHandler.PatchTopBar)
	admin.DELETE("/topbars/:id", d.ContentHandler.DeleteTopBar)
}
