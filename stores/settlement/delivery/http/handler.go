package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/base/metrics"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/domain/settlement"
	authMiddleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	settlement settlement.UseCase
}

func New(e *echo.Echo, settlementUC settlement.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("settlement")

	h := &handler{settlementUC}

	e.POST("/series-sales/:contract/:seriesId/mint", h.mintPurchase, authMiddleware.Auth())

	g := e.Group("/callbacks")

	g.POST("/purchase-result", h.resolvePurchase, authMiddleware.Auth())

	g.POST("/mint-result", h.resolveTokenBuy, authMiddleware.Auth())
}

func (h *handler) mintPurchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	p := struct {
		Contract domain.AccountId `param:"contract" validate:"required"`
		SeriesId string           `param:"seriesId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.SeriesId{Contract: p.Contract, SeriesId: p.SeriesId}
	callId, err := h.settlement.ProcessMintPurchase(ctx, cc, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("mint.issued", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		CallId string `json:"callId"`
	}{callId})
}

func (h *handler) resolvePurchase(c echo.Context) error {
	return h.resolve(c, h.settlement.ResolvePurchase, "purchase.resolved")
}

func (h *handler) resolveTokenBuy(c echo.Context) error {
	return h.resolve(c, h.settlement.ResolveTokenBuy, "mint.resolved")
}

func (h *handler) resolve(c echo.Context, fn func(ctx.Ctx, settlement.CallResult) (domain.Amount, error), metKey string) error {
	context := c.Get("ctx").(ctx.Ctx)

	p := settlement.CallResult{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	remainder, err := fn(context, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum(metKey, 1)
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Remainder domain.Amount `json:"remainder"`
	}{remainder})
}
