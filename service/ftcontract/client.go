package ftcontract

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

const (
	GasForFtTransfer = uint64(5_000_000_000_000)
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// TransferReq moves fungible tokens held by the market to a receiver.
// One unit is attached to the underlying call.
type TransferReq struct {
	Asset    domain.AssetId   `json:"asset"`
	Receiver domain.AccountId `json:"receiverId"`
	Amount   domain.Amount    `json:"amount"`
	Gas      uint64           `json:"gas"`
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
