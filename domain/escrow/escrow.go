package escrow

import (
	"time"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

type TransferKind string

const (
	TransferKindNative   TransferKind = "native"
	TransferKindFungible TransferKind = "fungible"
)

// Transfer is one queued best-effort outbound transfer. The core's
// correctness does not depend on its delivery; it is recorded before
// dispatch so every refund and payout leg is observable.
type Transfer struct {
	Id        string           `json:"id" bson:"id"`
	Kind      TransferKind     `json:"kind" bson:"kind"`
	Asset     domain.AssetId   `json:"asset" bson:"asset"`
	Recipient domain.AccountId `json:"recipient" bson:"recipient"`
	Amount    domain.Amount    `json:"amount" bson:"amount"`
	Gas       uint64           `json:"gas" bson:"gas"`
	QueuedAt  time.Time        `json:"queuedAt" bson:"queuedAt"`
	SentAt    *time.Time       `json:"sentAt,omitempty" bson:"sentAt,omitempty"`
}

type FindAllOptions struct {
	Recipient *domain.AccountId
	Unsent    *bool
	Limit     *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithRecipient(recipient domain.AccountId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Recipient = &recipient
		return nil
	}
}

func WithUnsent(unsent bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Unsent = &unsent
		return nil
	}
}

func WithLimit(limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	Insert(ctx ctx.Ctx, transfer *Transfer) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Transfer, error)
	MarkSent(ctx ctx.Ctx, id string, at time.Time) error
}

// Wallet queues outbound value transfers backed by the contract balance.
// Queuing is authoritative, delivery is fire-and-forget.
type Wallet interface {
	TransferNative(ctx ctx.Ctx, to domain.AccountId, amount domain.Amount) error
	TransferFungible(ctx ctx.Ctx, asset domain.AssetId, to domain.AccountId, amount domain.Amount) error
}

// Dispatcher drains queued transfers onto the outbound service clients
type Dispatcher interface {
	Dispatch(ctx ctx.Ctx, transfer *Transfer)
	Close()
}
