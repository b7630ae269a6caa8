package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/middleware"
)

type handler struct {
	transfers escrow.Repo
}

// New exposes the queued outbound transfers for inspection. Queuing is the
// source of truth for every refund and payout leg, so this is the audit
// surface of the settlement flow.
func New(e *echo.Echo, transfers escrow.Repo) {
	h := &handler{transfers}

	e.GET("/transfers", h.list, middleware.CacheHttp(10*time.Second))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Recipient *domain.AccountId `query:"recipient"`
		Unsent    *bool             `query:"unsent"`
		Limit     *int32            `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []escrow.FindAllOptionsFunc{}
	if p.Recipient != nil {
		opts = append(opts, escrow.WithRecipient(*p.Recipient))
	}
	if p.Unsent != nil {
		opts = append(opts, escrow.WithUnsent(*p.Unsent))
	}
	if p.Limit != nil {
		opts = append(opts, escrow.WithLimit(*p.Limit))
	}

	res, err := h.transfers.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
