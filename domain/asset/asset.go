package asset

import (
	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/shopspring/decimal"
)

// Asset is a payment asset accepted by the market
type Asset struct {
	Id       domain.AssetId `json:"id" bson:"id"`
	Symbol   string         `json:"symbol" bson:"symbol"`
	Decimals int32          `json:"decimals" bson:"decimals"`
	Enabled  bool           `json:"enabled" bson:"enabled"`
}

// DisplayPrice renders an indivisible-unit amount in the asset's display
// denomination
func (a *Asset) DisplayPrice(amount domain.Amount) (string, error) {
	i, err := amount.BigInt()
	if err != nil {
		return "", err
	}
	return decimal.NewFromBigInt(i, -a.Decimals).String(), nil
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id domain.AssetId) (*Asset, error)
	FindAll(ctx ctx.Ctx) ([]*Asset, error)
	Upsert(ctx ctx.Ctx, asset *Asset) error
	Remove(ctx ctx.Ctx, id domain.AssetId) error
}

type UseCase interface {
	// IsSupported is the hot path, every bid and every approval checks it
	IsSupported(ctx ctx.Ctx, id domain.AssetId) (bool, error)
	Get(ctx ctx.Ctx, id domain.AssetId) (*Asset, error)
	List(ctx ctx.Ctx) ([]*Asset, error)
	Add(ctx ctx.Ctx, asset *Asset) error
	Remove(ctx ctx.Ctx, id domain.AssetId) error
}
