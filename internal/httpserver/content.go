package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/models"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

type ContentHTTP struct {
	Svc *service.ContentService
}

func (h *ContentHTTP) ListTopBars(c echo.Context) error {
	topbars, err := h.Svc.ListTopBars(c.Request().Context())
	if err != nil {
		return respondError(c, "content.topbars", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"topbars": topbars, "success": true})
}

func (h *ContentHTTP) WebsiteBanners(c echo.Context) error {
	banners, err := h.Svc.WebsiteBanners(c.Request().Context())
	if err != nil {
		return respondError(c, "content.website_banners", err)
	}
	return c.JSON(http.StatusOK, banners)
}

func (h *ContentHTTP) AppBanners(c echo.Context) error {
	banners, err := h.Svc.AppBanners(c.Request().Context())
	if err != nil {
		return respondError(c, "content.app_banners", err)
	}
	return c.JSON(http.StatusOK, banners)
}

func (h *ContentHTTP) CreateTopBar(c echo.Context) error {
	ctx := c.Request().Context()

	var topbar models.TopBar
	if err := c.Bind(&topbar); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if err := h.Svc.CreateTopBar(ctx, &topbar); err != nil {
		return respondError(c, "content.create_topbar", err)
	}
	return c.JSON(http.StatusCreated, topbar)
}

func (h *ContentHTTP) PatchTopBar(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid topbar id"})
	}

	var req transport.PatchTopBarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	topbar, err := h.Svc.PatchTopBar(ctx, req, id)
	if err != nil {
		return respondError(c, "content.patch_topbar", err)
	}
	return c.JSON(http.StatusOK, topbar)
}

func (h *ContentHTTP) DeleteTopBar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid topbar id"})
	}

	if err := h.Svc.DeleteTopBar(c.Request().Context(), id); err != nil {
		return respondError(c, "content.delete_topbar", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
