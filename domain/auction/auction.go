package auction

import (
	"time"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/listing"
)

// Auction is a single-slot, time-boxed ascending-bid sale. It holds at most
// one current bid; a higher bid replaces it and the replaced bid is refunded
// immediately.
type Auction struct {
	Id          uint64            `json:"id" bson:"id"`
	Contract    domain.AccountId  `json:"contract" bson:"contract"`
	TokenId     domain.TokenId    `json:"tokenId" bson:"tokenId"`
	Owner       domain.AccountId  `json:"owner" bson:"owner"`
	ApprovalId  uint64            `json:"approvalId" bson:"approvalId"`
	TokenType   *string           `json:"tokenType,omitempty" bson:"tokenType,omitempty"`
	StartPrice  domain.Amount     `json:"startPrice" bson:"startPrice"`
	MinimalStep domain.Amount     `json:"minimalStep" bson:"minimalStep"`
	BuyOutPrice *domain.Amount    `json:"buyOutPrice,omitempty" bson:"buyOutPrice,omitempty"`
	Start       time.Time         `json:"start" bson:"start"`
	Duration    time.Duration     `json:"duration" bson:"duration"`
	End         *time.Time        `json:"end,omitempty" bson:"end,omitempty"`
	Bid         *listing.Bid      `json:"bid,omitempty" bson:"bid,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// InProgress reports whether a bid may be accepted at `now`,
// i.e. start <= now < end
func (a *Auction) InProgress(now time.Time) bool {
	if now.Before(a.Start) {
		return false
	}
	if a.End != nil && !now.Before(*a.End) {
		return false
	}
	return true
}

func (a *Auction) Ended(now time.Time) bool {
	return a.End != nil && !now.Before(*a.End)
}

// Extend pushes the end out by `period`. Returns false without effect when
// the auction has no end configured.
func (a *Auction) Extend(period time.Duration) bool {
	if a.End == nil {
		return false
	}
	end := a.End.Add(period)
	a.End = &end
	return true
}

// MinimalNextPrice is the lowest acceptable next bid: start price when no bid
// stands, otherwise current bid plus the minimal step.
func (a *Auction) MinimalNextPrice() (domain.Amount, error) {
	if a.Bid == nil {
		return a.StartPrice, nil
	}
	return a.Bid.Price.Add(a.MinimalStep)
}

// ReachesBuyOut reports whether `price` meets or exceeds the buy-out price
func (a *Auction) ReachesBuyOut(price domain.Amount) (bool, error) {
	if a.BuyOutPrice == nil {
		return false, nil
	}
	cmp, err := price.Cmp(*a.BuyOutPrice)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

type FindAllOptions struct {
	Owner    *domain.AccountId
	Contract *domain.AccountId
	Offset   *int32
	Limit    *int32
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

func WithOwner(owner domain.AccountId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = &owner
		return nil
	}
}

func WithContract(contract domain.AccountId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Contract = &contract
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// Repo owns all Auction records, keyed by an incrementing integer id
type Repo interface {
	NextId(ctx ctx.Ctx) (uint64, error)
	FindOne(ctx ctx.Ctx, id uint64) (*Auction, error)
	Upsert(ctx ctx.Ctx, auction *Auction) error
	// Remove atomically removes and returns the auction.
	// Returns domain.ErrAuctionNotFound if the id is absent.
	Remove(ctx ctx.Ctx, id uint64) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
}

type UseCase interface {
	// Start creates an auction from forwarded approval arguments
	Start(ctx ctx.Ctx, contract domain.AccountId, tokenId domain.TokenId, owner domain.AccountId, approvalId uint64, args listing.AuctionArgs) (*Auction, error)
	// PlaceBid is payable, the attached deposit is the bid price
	PlaceBid(ctx ctx.Ctx, cc domain.CallContext, id uint64) error
	// Finalize closes an ended auction: settles with the highest bidder, or
	// just closes when no bid was ever placed
	Finalize(ctx ctx.Ctx, id uint64) error
	GetAuction(ctx ctx.Ctx, id uint64) (*Auction, error)
	CurrentBuyer(ctx ctx.Ctx, id uint64) (*domain.AccountId, error)
	CheckInProgress(ctx ctx.Ctx, id uint64) (bool, error)
}
