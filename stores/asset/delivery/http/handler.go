package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/middleware"
	authMiddleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	asset asset.UseCase
}

func New(e *echo.Echo, assetUC asset.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{assetUC}

	g := e.Group("/assets")

	g.GET("", h.list, middleware.CacheHttp(1*time.Minute))

	g.POST("", h.add, authMiddleware.Auth())

	g.GET("/:assetId", h.get)

	g.DELETE("/:assetId", h.remove, authMiddleware.Auth())
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.asset.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.asset.Get(ctx, domain.AssetId(c.Param("assetId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := asset.Asset{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if p.Id == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.asset.Add(ctx, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.asset.Remove(ctx, domain.AssetId(c.Param("assetId"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
