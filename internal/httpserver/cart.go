package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/middleware/auth"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
)

type CartHTTP struct {
	Svc   *service.CartService
	Users *service.UserService
}

// SaveCart prices the submitted selections and replaces the caller's
// saved cart.
func (h *CartHTTP) SaveCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.save")

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	var req transport.SaveCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("save_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	user, err := h.Users.GetByClerkID(ctx, clerkID)
	if err != nil {
		return respondError(c, "cart.save", err)
	}

	cart, err := h.Svc.SaveCart(ctx, user.ID, req.Items)
	if err != nil {
		return respondError(c, "cart.save", err)
	}

	l.Info("cart_saved", "lines", len(cart.Lines), "cart_total", cart.CartTotal)
	return c.JSON(http.StatusOK, transport.SaveCartResponse{Cart: cart})
}
