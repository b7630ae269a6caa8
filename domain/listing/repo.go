package listing

import (
	"time"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

type FindAllOptions struct {
	Owner     *domain.AccountId
	Contract  *domain.AccountId
	TokenType *string
	Offset    *int32
	Limit     *int32
	SortBy    *string
	SortDir   *domain.SortDir
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

func WithTokenType(tokenType string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TokenType = &tokenType
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

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

// Repo owns all Sale records. Remove is the only way a record leaves the
// store and hands the removed record back so outstanding bids can be
// refunded.
type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Sale, error)
	Upsert(ctx ctx.Ctx, sale *Sale) error
	// Remove atomically removes and returns the sale.
	// Returns domain.ErrListingNotFound if the key is absent.
	Remove(ctx ctx.Ctx, id Id) (*Sale, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Sale, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}

type SeriesRepo interface {
	FindOne(ctx ctx.Ctx, id SeriesId) (*SeriesSale, error)
	Upsert(ctx ctx.Ctx, sale *SeriesSale) error
	Remove(ctx ctx.Ctx, id SeriesId) (*SeriesSale, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*SeriesSale, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}

// UseCase covers every sale entrypoint. State-mutating operations carry a
// host-verified CallContext.
type UseCase interface {
	// OnApprove handles a forwarded token approval. Returns the started
	// auction id when the message carries auction arguments, nil otherwise.
	OnApprove(ctx ctx.Ctx, cc domain.CallContext, tokenId domain.TokenId, owner domain.AccountId, approvalId uint64, msg ApproveMsg) (*uint64, error)
	OnSeriesApprove(ctx ctx.Ctx, cc domain.CallContext, args SeriesApproveArgs) error
	// Offer is payable. An attached deposit equal to the native asking price
	// settles immediately, anything else becomes a bid.
	Offer(ctx ctx.Ctx, cc domain.CallContext, id Id, start, end *time.Time) error
	AcceptOffer(ctx ctx.Ctx, cc domain.CallContext, id Id, asset domain.AssetId) error
	RemoveSale(ctx ctx.Ctx, cc domain.CallContext, id Id) error
	UpdatePrice(ctx ctx.Ctx, cc domain.CallContext, id Id, asset domain.AssetId, price domain.Amount) error
	RemoveBid(ctx ctx.Ctx, cc domain.CallContext, id Id, asset domain.AssetId, bid Bid) error
	CancelBid(ctx ctx.Ctx, cc domain.CallContext, id Id, asset domain.AssetId, bid Bid) error
	CancelExpiredBids(ctx ctx.Ctx, cc domain.CallContext, id Id, asset domain.AssetId) error
	GetSale(ctx ctx.Ctx, id Id) (*Sale, error)
	GetSales(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Sale, error)
	GetSeriesSale(ctx ctx.Ctx, id SeriesId) (*SeriesSale, error)
}
