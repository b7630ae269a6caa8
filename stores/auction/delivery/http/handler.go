package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/base/metrics"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/auction"
	"github.com/mintbay/marketapi/middleware"
	authMiddleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auctionUC auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("auction")

	h := &handler{auctionUC}

	g := e.Group("/auctions/:auctionId")

	g.GET("", h.getAuction, middleware.CacheHttp(10*time.Second))

	g.GET("/buyer", h.currentBuyer)

	g.GET("/in-progress", h.checkInProgress)

	g.POST("/bids", h.placeBid, authMiddleware.Auth())

	g.POST("/finalize", h.finalize, authMiddleware.Auth())
}

func auctionId(c echo.Context) (uint64, error) {
	p := struct {
		AuctionId uint64 `param:"auctionId"`
	}{}
	if err := c.Bind(&p); err != nil {
		return 0, err
	}
	return p.AuctionId, nil
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.auction.GetAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) currentBuyer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	buyer, err := h.auction.CurrentBuyer(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Buyer *domain.AccountId `json:"buyer"`
	}{buyer})
}

func (h *handler) checkInProgress(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	inProgress, err := h.auction.CheckInProgress(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		InProgress bool `json:"inProgress"`
	}{inProgress})
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.PlaceBid(ctx, cc, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("bid.placed", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) finalize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.Finalize(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("finalized", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
