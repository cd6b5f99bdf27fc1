package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/middleware/auth"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	orders, err := h.Svc.List(ctx, clerkID, c.QueryParam("filter"))
	if err != nil {
		return respondError(c, "orders.list", err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	clerkID, err := auth.ClerkID(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid order id"})
	}

	order, err := h.Svc.Get(ctx, clerkID, id)
	if err != nil {
		return respondError(c, "orders.get", err)
	}
	return c.JSON(http.StatusOK, order)
}
