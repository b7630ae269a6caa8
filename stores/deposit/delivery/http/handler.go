package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/deposit"
	"github.com/mintbay/marketapi/middleware"
	authMiddleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	depositUC deposit.UseCase
}

func New(e *echo.Echo, depositUC deposit.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{depositUC}

	g := e.Group("/storage")

	g.POST("/deposit", h.deposit, authMiddleware.Auth())

	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())

	g.GET("/price-per-sale", h.storageAmount)

	g.GET("/:account", h.balance, middleware.IsValidAccountId("account"))
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	p := struct {
		Account domain.AccountId `json:"account"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.depositUC.Deposit(ctx, cc, p.Account); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	cc := c.Get("callContext").(domain.CallContext)

	if err := h.depositUC.Withdraw(ctx, cc); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) storageAmount(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Amount domain.Amount `json:"amount"`
	}{h.depositUC.StorageAmount()})
}

func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account := domain.AccountId(c.Param("account"))

	balance, err := h.depositUC.Balance(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Balance domain.Amount `json:"balance"`
	}{balance})
}
