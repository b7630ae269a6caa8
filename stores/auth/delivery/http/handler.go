package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/delivery"
	"github.com/mintbay/marketapi/domain"
)

type handler struct {
	auth    domain.AuthUsecase
	hostKey string
}

// New registers the call-token endpoint. Only the host gateway holds the api
// key, so only it can mint tokens carrying a predecessor and deposit.
func New(e *echo.Echo, auth domain.AuthUsecase, hostKey string) {
	h := &handler{auth: auth, hostKey: hostKey}

	e.POST("/auth/call-token", h.signCallToken, middleware.KeyAuth(h.validateHostKey))
}

func (h *handler) validateHostKey(key string, c echo.Context) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(key), []byte(h.hostKey)) == 1, nil
}

func (h *handler) signCallToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.CallContext{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	token, err := h.auth.SignToken(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Token string `json:"token"`
	}{token})
}
