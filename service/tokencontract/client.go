package tokencontract

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

// gas budgets attached to outbound token contract calls
const (
	GasForNftTransfer = uint64(15_000_000_000_000)
	GasForMint        = uint64(20_000_000_000_000)
	// covers the payout fan-out performed while resolving the result callback
	GasForRoyalties = uint64(115_000_000_000_000)
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// TransferPayoutReq asks the token contract to move a token and compute the
// royalty split for the sale price. CallbackId correlates the eventual
// purchase-result callback with the pending settlement.
type TransferPayoutReq struct {
	CallbackId   string           `json:"callbackId"`
	Contract     domain.AccountId `json:"contract"`
	TokenId      domain.TokenId   `json:"tokenId"`
	Receiver     domain.AccountId `json:"receiverId"`
	ApprovalId   uint64           `json:"approvalId"`
	Balance      domain.Amount    `json:"balance"`
	MaxLenPayout uint32           `json:"maxLenPayout"`
	Gas          uint64           `json:"gas"`
	CallbackGas  uint64           `json:"callbackGas"`
}

// MintReq asks the token contract to mint the next copy of a series for the
// receiver, with royalty payout computed against the attached price.
type MintReq struct {
	CallbackId string           `json:"callbackId"`
	Contract   domain.AccountId `json:"contract"`
	SeriesId   string           `json:"seriesId"`
	Receiver   domain.AccountId `json:"receiverId"`
	Balance    domain.Amount    `json:"balance"`
	Gas        uint64           `json:"gas"`
}

type Client interface {
	TransferPayout(bCtx.Ctx, *TransferPayoutReq) error
	Mint(bCtx.Ctx, *MintReq) error
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	BaseUrl    string
	Apikey     string
}
