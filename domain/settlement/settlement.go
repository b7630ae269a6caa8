package settlement

import (
	"math/big"
	"time"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/listing"
)

// MaxPayoutRecipients bounds the royalty fanout so the payout and bid-refund
// transfers of one settlement fit in the royalty gas budget.
const MaxPayoutRecipients = 10

// Payout is the royalty split returned by the token contract for one sale
type Payout map[domain.AccountId]domain.Amount

// Validate checks the payout against the sale price: it must be non-empty,
// must not fan out to more than maxRecipients transfers (including the
// refunds of the listing's outstanding bids), and its amounts must sum to the
// price within a one-unit rounding tolerance.
func (p Payout) Validate(price domain.Amount, outstandingBids int) error {
	if len(p) == 0 {
		return domain.ErrInvalidPayout
	}
	if len(p)+outstandingBids > MaxPayoutRecipients {
		return domain.ErrInvalidPayout
	}
	remainder, err := price.BigInt()
	if err != nil {
		return domain.ErrInvalidPayout
	}
	for _, amount := range p {
		a, err := amount.BigInt()
		if err != nil {
			return domain.ErrInvalidPayout
		}
		remainder = new(big.Int).Sub(remainder, a)
		if remainder.Sign() < 0 {
			return domain.ErrInvalidPayout
		}
	}
	if remainder.Cmp(big.NewInt(1)) > 0 {
		return domain.ErrInvalidPayout
	}
	return nil
}

type PendingKind string

const (
	// PendingKindPurchase awaits a transfer-with-payout result
	PendingKindPurchase PendingKind = "purchase"
	// PendingKindMint awaits a series mint-and-payout result
	PendingKindMint PendingKind = "mint"
)

// Pending is the removed-record snapshot persisted between the two phases of
// a settlement, keyed by the correlation id of the outbound call.
type Pending struct {
	CallId    string            `json:"callId" bson:"callId"`
	Kind      PendingKind       `json:"kind" bson:"kind"`
	Sale      *listing.Sale     `json:"sale,omitempty" bson:"sale,omitempty"`
	Buyer     domain.AccountId  `json:"buyer" bson:"buyer"`
	Asset     domain.AssetId    `json:"asset" bson:"asset"`
	Price     domain.Amount     `json:"price" bson:"price"`
	Deposit   domain.Amount     `json:"deposit,omitempty" bson:"deposit,omitempty"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}

// PendingRepo persists in-flight settlements. Take pops the record so each
// callback resolves at most once.
type PendingRepo interface {
	Insert(ctx ctx.Ctx, pending *Pending) error
	// Take atomically removes and returns the pending settlement.
	// Returns domain.ErrSettlementNotFound if the call id is unknown.
	Take(ctx ctx.Ctx, callId string) (*Pending, error)
}

// CallResult is the host-reported outcome of an outbound asynchronous call
type CallResult struct {
	CallId  string `json:"callId" validate:"required"`
	Success bool   `json:"success"`
	Payout  Payout `json:"payout,omitempty"`
}

type UseCase interface {
	// ProcessPurchase is settlement phase 1 for a listed sale: it atomically
	// removes the listing and issues the transfer-with-payout call. Returns
	// the correlation id of the issued call.
	ProcessPurchase(ctx ctx.Ctx, id listing.Id, asset domain.AssetId, price domain.Amount, buyer domain.AccountId) (string, error)
	// SettleRemoved is phase 1 for a record its caller already removed from
	// the store (an accepted offer or a finalized auction); the snapshot is
	// handed forward explicitly.
	SettleRemoved(ctx ctx.Ctx, sale *listing.Sale, asset domain.AssetId, price domain.Amount, buyer domain.AccountId) (string, error)
	// ResolvePurchase is phase 2, invoked by the host callback. It returns
	// the unspent remainder: the full price when the failure path already
	// refunded the buyer (or left funds on the fungible refund path), zero
	// when a valid payout was disbursed.
	ResolvePurchase(ctx ctx.Ctx, result CallResult) (domain.Amount, error)
	// ProcessMintPurchase buys one copy out of a series sale. Payable; the
	// attached deposit must cover the native asking price.
	ProcessMintPurchase(ctx ctx.Ctx, cc domain.CallContext, id listing.SeriesId) (string, error)
	// ResolveTokenBuy resolves a mint purchase: a valid payout is disbursed,
	// anything else refunds the buyer's full attached deposit.
	ResolveTokenBuy(ctx ctx.Ctx, result CallResult) (domain.Amount, error)
}
