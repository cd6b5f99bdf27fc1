package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/middleware/auth"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

type CheckoutHTTP struct {
	Svc   *service.CheckoutService
	Users *service.UserService
}

func (h *CheckoutHTTP) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	session, err := h.Svc.LoadSession(ctx, clerkID)
	if err != nil {
		return respondError(c, "checkout.session", err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *CheckoutHTTP) SaveAddress(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.save_address")

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	var req transport.SaveAddressRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("save_address_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	addresses, err := h.Svc.SaveAddress(ctx, clerkID, req)
	if err != nil {
		return respondError(c, "checkout.save_address", err)
	}

	l.Info("address_saved")
	return c.JSON(http.StatusOK, transport.SaveAddressResponse{Addresses: addresses})
}

func (h *CheckoutHTTP) ChangeActiveAddress(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid address id"})
	}

	addresses, err := h.Users.ChangeActiveAddress(ctx, clerkID, addressID)
	if err != nil {
		return respondError(c, "checkout.change_active_address", err)
	}
	return c.JSON(http.StatusOK, transport.SaveAddressResponse{Addresses: addresses})
}

func (h *CheckoutHTTP) DeleteAddress(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid address id"})
	}

	addresses, err := h.Users.DeleteAddress(ctx, clerkID, addressID)
	if err != nil {
		return respondError(c, "checkout.delete_address", err)
	}
	return c.JSON(http.StatusOK, transport.SaveAddressResponse{Addresses: addresses})
}

func (h *CheckoutHTTP) ApplyCoupon(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.apply_coupon")

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	var req transport.ApplyCouponRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("apply_coupon_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	resp, err := h.Svc.ApplyCoupon(ctx, clerkID, req.Coupon)
	if err != nil {
		return respondError(c, "checkout.apply_coupon", err)
	}

	l.Info("coupon_applied", "discount", resp.Discount)
	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHTTP) SkipCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	step, err := h.Svc.SkipCoupon(ctx, clerkID)
	if err != nil {
		return respondError(c, "checkout.skip_coupon", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"step": int(step)})
}

func (h *CheckoutHTTP) Back(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	step, err := h.Svc.Back(ctx, clerkID)
	if err != nil {
		return respondError(c, "checkout.back", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"step": int(step)})
}

func (h *CheckoutHTTP) SelectPayment(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	var req transport.SelectPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if err := h.Svc.SelectPayment(ctx, clerkID, req.PaymentMethod); err != nil {
		return respondError(c, "checkout.select_payment", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"payment_method": req.PaymentMethod})
}

// PlaceOrder is the terminal checkout action: on success the cart is
// already emptied and the client navigates to the confirmation view
// keyed by the returned order id.
func (h *CheckoutHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.place_order")

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	orderID, err := h.Svc.PlaceOrder(ctx, clerkID)
	if err != nil {
		return respondError(c, "checkout.place_order", err)
	}

	l.Info("order_placed", "order_id", orderID)
	return c.JSON(http.StatusCreated, transport.PlaceOrderResponse{
		Success: true,
		OrderID: orderID,
	})
}
