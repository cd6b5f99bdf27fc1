package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

// CouponHTTP is the admin surface for coupon codes; applying a coupon
// happens in the checkout handlers.
type CouponHTTP struct {
	Repo *repo.GormRepo
}

func (h *CouponHTTP) ListCoupons(c echo.Context) error {
	coupons, err := h.Repo.ListCoupons(c.Request().Context())
	if err != nil {
		return respondError(c, "coupons.list", err)
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *CouponHTTP) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupons.create")

	var req transport.CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}
	if req.Code == "" || req.Discount < 0 || req.Discount > 100 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "code required and discount must be within 0..100"})
	}

	coupon := models.Coupon{Code: req.Code, Discount: req.Discount}
	if err := h.Repo.CreateCoupon(ctx, &coupon); err != nil {
		return respondError(c, "coupons.create", err)
	}

	l.Info("coupon_created", "code", coupon.Code, "discount", coupon.Discount)
	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponHTTP) DeleteCoupon(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid coupon id"})
	}

	if err := h.Repo.DeleteCoupon(c.Request().Context(), id); err != nil {
		return respondError(c, "coupons.delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
