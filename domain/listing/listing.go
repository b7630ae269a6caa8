package listing

import (
	"time"

	"github.com/mintbay/marketapi/domain"
)

// Bid is one outstanding bid on a sale's ladder. Start and End bound its
// validity window; both are open-ended when absent.
type Bid struct {
	Owner domain.AccountId `json:"owner" bson:"owner"`
	Price domain.Amount    `json:"price" bson:"price"`
	Start *time.Time       `json:"start,omitempty" bson:"start,omitempty"`
	End   *time.Time       `json:"end,omitempty" bson:"end,omitempty"`
}

// InLimits reports whether the bid is valid at `now`, i.e. start <= now < end
func (b *Bid) InLimits(now time.Time) bool {
	if b.Start != nil && now.Before(*b.Start) {
		return false
	}
	if b.End != nil && !now.Before(*b.End) {
		return false
	}
	return true
}

// Expired reports whether the bid's end has elapsed. A bid without an end
// never expires.
func (b *Bid) Expired(now time.Time) bool {
	return b.End != nil && !now.Before(*b.End)
}

// Matches reports whether the bid is the exact (owner, price) entry
func (b *Bid) Matches(owner domain.AccountId, price domain.Amount) bool {
	return b.Owner == owner && b.Price == price
}

type Id struct {
	Contract domain.AccountId `json:"contract" bson:"contract"`
	TokenId  domain.TokenId   `json:"tokenId" bson:"tokenId"`
}

func (id Id) Key() domain.ListingKey {
	return domain.MakeListingKey(id.Contract, id.TokenId)
}

// Sale is a fixed-price or bid-accepting listing for one token
type Sale struct {
	Contract   domain.AccountId                 `json:"contract" bson:"contract"`
	TokenId    domain.TokenId                   `json:"tokenId" bson:"tokenId"`
	Owner      domain.AccountId                 `json:"owner" bson:"owner"`
	ApprovalId uint64                           `json:"approvalId" bson:"approvalId"`
	Conditions map[domain.AssetId]domain.Amount `json:"saleConditions" bson:"saleConditions"`
	Bids       map[domain.AssetId][]Bid         `json:"bids" bson:"bids"`
	TokenType  *string                          `json:"tokenType,omitempty" bson:"tokenType,omitempty"`
	CreatedAt  time.Time                        `json:"createdAt" bson:"createdAt"`
	Start      *time.Time                       `json:"start,omitempty" bson:"start,omitempty"`
	End        *time.Time                       `json:"end,omitempty" bson:"end,omitempty"`
}

func (s *Sale) ToId() Id {
	return Id{Contract: s.Contract, TokenId: s.TokenId}
}

// InLimits reports whether offers may be accepted at `now`
func (s *Sale) InLimits(now time.Time) bool {
	if s.Start != nil && now.Before(*s.Start) {
		return false
	}
	if s.End != nil && !now.Before(*s.End) {
		return false
	}
	return true
}

// TopBid returns the current highest bid for the asset, nil when the ladder
// is empty. Ladders are ordered by insertion, prices strictly increasing, so
// the last entry is the highest.
func (s *Sale) TopBid(asset domain.AssetId) *Bid {
	ladder := s.Bids[asset]
	if len(ladder) == 0 {
		return nil
	}
	return &ladder[len(ladder)-1]
}

// SeriesSale is a listing for minting copies out of a token series
type SeriesSale struct {
	Contract   domain.AccountId                 `json:"contract" bson:"contract"`
	SeriesId   string                           `json:"seriesId" bson:"seriesId"`
	Owner      domain.AccountId                 `json:"owner" bson:"owner"`
	Conditions map[domain.AssetId]domain.Amount `json:"saleConditions" bson:"saleConditions"`
	Copies     uint64                           `json:"copies" bson:"copies"`
	CreatedAt  time.Time                        `json:"createdAt" bson:"createdAt"`
}

type SeriesId struct {
	Contract domain.AccountId `json:"contract" bson:"contract"`
	SeriesId string           `json:"seriesId" bson:"seriesId"`
}

func (s *SeriesSale) ToId() SeriesId {
	return SeriesId{Contract: s.Contract, SeriesId: s.SeriesId}
}

// SaleArgs are the sale arguments carried in a forwarded approval message
type SaleArgs struct {
	Conditions map[domain.AssetId]domain.Amount `json:"saleConditions" validate:"required,min=1"`
	TokenType  *string                          `json:"tokenType,omitempty"`
	Start      *time.Time                       `json:"start,omitempty"`
	End        *time.Time                       `json:"end,omitempty"`
}

// AuctionArgs are the auction arguments carried in a forwarded approval message
type AuctionArgs struct {
	TokenType   *string        `json:"tokenType,omitempty"`
	MinimalStep domain.Amount  `json:"minimalStep" validate:"required"`
	StartPrice  domain.Amount  `json:"startPrice" validate:"required"`
	Start       time.Time      `json:"start" validate:"required"`
	Duration    time.Duration  `json:"duration" validate:"required"`
	BuyOutPrice *domain.Amount `json:"buyOutPrice,omitempty"`
}

// ApproveMsg is the tagged union inside an approval message. Exactly one
// branch must be set.
type ApproveMsg struct {
	Sale    *SaleArgs    `json:"sale,omitempty"`
	Auction *AuctionArgs `json:"auction,omitempty"`
}

func (m *ApproveMsg) Validate() error {
	if (m.Sale == nil) == (m.Auction == nil) {
		return domain.ErrBadParamInput
	}
	if m.Sale != nil && len(m.Sale.Conditions) == 0 {
		return domain.ErrBadParamInput
	}
	return nil
}

// SeriesApproveArgs is the payload of a forwarded series approval
type SeriesApproveArgs struct {
	SeriesId   string                           `json:"seriesId" validate:"required"`
	Owner      domain.AccountId                 `json:"owner" validate:"required"`
	Conditions map[domain.AssetId]domain.Amount `json:"saleConditions" validate:"required,min=1"`
	Copies     uint64                           `json:"copies" validate:"required"`
}
