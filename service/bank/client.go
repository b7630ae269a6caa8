package bank

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// TransferReq moves native balance held by the market to a receiver.
type TransferReq struct {
	Receiver domain.AccountId `json:"receiverId"`
	Amount   domain.Amount    `json:"amount"`
}

type Client interface {
	Transfer(bCtx.Ctx, *TransferReq) error
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Apikey     string
}
