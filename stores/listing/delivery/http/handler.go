package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/base/metrics"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/middleware"
	authMiddleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing listing.UseCase
	asset   asset.UseCase
}

func New(e *echo.Echo, listingUC listing.UseCase, assetUC asset.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("listing")

	h := &handler{listingUC, assetUC}

	e.POST("/approvals/token", h.onApprove, authMiddleware.Auth())
	e.POST("/approvals/series", h.onSeriesApprove, authMiddleware.Auth())

	gs := e.Group("/sales")

	gs.GET("", h.getSales, middleware.CacheHttp(10*time.Second))

	g := e.Group("/sales/:contract/:tokenId")

	g.GET("", h.getSale)

	g.DELETE("", h.removeSale, authMiddleware.Auth())

	g.POST("/offers", h.offer, authMiddleware.Auth())

	g.POST("/accept", h.acceptOffer, authMiddleware.Auth())

	g.PUT("/price", h.updatePrice, authMiddleware.Auth())

	g.DELETE("/bids", h.removeBid, authMiddleware.Auth())

	g.POST("/bids/cancel", h.cancelBid, authMiddleware.Auth())

	g.POST("/bids/cancel-expired", h.cancelExpiredBids, authMiddleware.Auth())

	e.GET("/series-sales/:contract/:seriesId", h.getSeriesSale, middleware.CacheHttp(10*time.Second))
}

func saleId(c echo.Context) (listing.Id, error) {
	p := struct {
		Contract domain.AccountId `param:"contract" validate:"required"`
		TokenId  domain.TokenId   `param:"tokenId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return listing.Id{}, err
	}
	if err := c.Validate(&p); err != nil {
		return listing.Id{}, err
	}
	return listing.Id{Contract: p.Contract, TokenId: p.TokenId}, nil
}

func (h *handler) onApprove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	p := struct {
		TokenId    domain.TokenId     `json:"tokenId" validate:"required"`
		Owner      domain.AccountId   `json:"owner" validate:"required"`
		ApprovalId uint64             `json:"approvalId"`
		Msg        listing.ApproveMsg `json:"msg"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	auctionId, err := h.listing.OnApprove(ctx, cc, p.TokenId, p.Owner, p.ApprovalId, p.Msg)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("approval.token", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		AuctionId *uint64 `json:"auctionId,omitempty"`
	}{auctionId})
}

func (h *handler) onSeriesApprove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	p := listing.SeriesApproveArgs{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.OnSeriesApprove(ctx, cc, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("approval.series", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getSales(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Owner     *domain.AccountId `query:"owner"`
		Contract  *domain.AccountId `query:"contract"`
		TokenType *string           `query:"tokenType"`
		Offset    int32             `query:"offset"`
		Limit     int32             `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.Owner != nil {
		opts = append(opts, listing.WithOwner(*p.Owner))
	}
	if p.Contract != nil {
		opts = append(opts, listing.WithContract(*p.Contract))
	}
	if p.TokenType != nil {
		opts = append(opts, listing.WithTokenType(*p.TokenType))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.listing.GetSales(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.GetSale(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, saleView{res, h.displayConditions(ctx, res.Conditions)})
}

type saleView struct {
	*listing.Sale
	DisplayConditions map[domain.AssetId]string `json:"displayConditions,omitempty"`
}

type seriesSaleView struct {
	*listing.SeriesSale
	DisplayConditions map[domain.AssetId]string `json:"displayConditions,omitempty"`
}

// displayConditions renders each asking price in its asset's display
// denomination. Assets not registered on the platform are left out.
func (h *handler) displayConditions(ctx ctx.Ctx, conditions map[domain.AssetId]domain.Amount) map[domain.AssetId]string {
	res := map[domain.AssetId]string{}
	for assetId, price := range conditions {
		a, err := h.asset.Get(ctx, assetId)
		if err != nil {
			continue
		}
		display, err := a.DisplayPrice(price)
		if err != nil {
			continue
		}
		res[assetId] = display
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

func (h *handler) offer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		Start *time.Time `json:"start"`
		End   *time.Time `json:"end"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.listing.Offer(ctx, cc, id, p.Start, p.End); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("offer", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		Asset domain.AssetId `json:"asset" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.AcceptOffer(ctx, cc, id, p.Asset); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("offer.accepted", 1)
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) removeSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.RemoveSale(ctx, cc, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updatePrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		Asset domain.AssetId `json:"asset" validate:"required"`
		Price domain.Amount  `json:"price" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.UpdatePrice(ctx, cc, id, p.Asset, p.Price); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

type bidParams struct {
	Asset domain.AssetId   `json:"asset" validate:"required"`
	Owner domain.AccountId `json:"owner"`
	Price domain.Amount    `json:"price"`
	Start *time.Time       `json:"start"`
	End   *time.Time       `json:"end"`
}

func (p *bidParams) toBid() listing.Bid {
	return listing.Bid{Owner: p.Owner, Price: p.Price, Start: p.Start, End: p.End}
}

func (h *handler) removeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := bidParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.RemoveBid(ctx, cc, id, p.Asset, p.toBid()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancelBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := bidParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.CancelBid(ctx, cc, id, p.Asset, p.toBid()); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) cancelExpiredBids(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	id, err := saleId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := struct {
		Asset domain.AssetId `json:"asset" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.listing.CancelExpiredBids(ctx, cc, id, p.Asset); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getSeriesSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

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

	res, err := h.listing.GetSeriesSale(ctx, listing.SeriesId{Contract: p.Contract, SeriesId: p.SeriesId})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, seriesSaleView{res, h.displayConditions(ctx, res.Conditions)})
}
