package usecase

import (
	"time"

	"github.com/benbjohnson/clock"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/auction"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/domain/settlement"
)

const (
	// DefaultExtensionWindow is how close to the end a bid must land to
	// trigger an anti-sniping extension.
	DefaultExtensionWindow = 15 * time.Minute
	// DefaultExtensionPeriod is how far the end is pushed out.
	DefaultExtensionPeriod = 15 * time.Minute
)

type AuctionUseCaseCfg struct {
	Repo            auction.Repo
	SettlementUC    settlement.UseCase
	Wallet          escrow.Wallet
	Clock           clock.Clock
	ExtensionWindow time.Duration
	ExtensionPeriod time.Duration
}

type impl struct {
	repo            auction.Repo
	settlementUC    settlement.UseCase
	wallet          escrow.Wallet
	clock           clock.Clock
	extensionWindow time.Duration
	extensionPeriod time.Duration
}

func New(cfg *AuctionUseCaseCfg) auction.UseCase {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	window := cfg.ExtensionWindow
	if window == 0 {
		window = DefaultExtensionWindow
	}
	period := cfg.ExtensionPeriod
	if period == 0 {
		period = DefaultExtensionPeriod
	}
	return &impl{
		repo:            cfg.Repo,
		settlementUC:    cfg.SettlementUC,
		wallet:          cfg.Wallet,
		clock:           c,
		extensionWindow: window,
		extensionPeriod: period,
	}
}

func (im *impl) Start(ctx bCtx.Ctx, contract domain.AccountId, tokenId domain.TokenId, owner domain.AccountId, approvalId uint64, args listing.AuctionArgs) (*auction.Auction, error) {
	if !args.StartPrice.Valid() || !args.MinimalStep.Valid() {
		return nil, domain.ErrInvalidAmountFormat
	}
	if args.Duration <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if args.BuyOutPrice != nil {
		if !args.BuyOutPrice.Valid() {
			return nil, domain.ErrInvalidAmountFormat
		}
		if cmp, err := args.BuyOutPrice.Cmp(args.StartPrice); err != nil {
			return nil, err
		} else if cmp < 0 {
			return nil, domain.ErrBadParamInput
		}
	}

	id, err := im.repo.NextId(ctx)
	if err != nil {
		return nil, err
	}

	end := args.Start.Add(args.Duration)
	a := &auction.Auction{
		Id:          id,
		Contract:    contract,
		TokenId:     tokenId,
		Owner:       owner,
		ApprovalId:  approvalId,
		TokenType:   args.TokenType,
		StartPrice:  args.StartPrice,
		MinimalStep: args.MinimalStep,
		BuyOutPrice: args.BuyOutPrice,
		Start:       args.Start,
		Duration:    args.Duration,
		End:         &end,
		CreatedAt:   im.clock.Now(),
	}
	if err := im.repo.Upsert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to repo.Upsert")
		return nil, err
	}
	return a, nil
}

func (im *impl) PlaceBid(ctx bCtx.Ctx, cc domain.CallContext, id uint64) error {
	if err := cc.RequireDeposit(); err != nil {
		return err
	}

	a, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	now := im.clock.Now()
	if !a.InProgress(now) {
		return domain.ErrAuctionNotInProgress
	}
	if cc.Predecessor == a.Owner {
		return domain.ErrSelfPurchase
	}

	min, err := a.MinimalNextPrice()
	if err != nil {
		return err
	}
	if cmp, err := cc.Deposit.Cmp(min); err != nil {
		return err
	} else if cmp < 0 {
		return domain.ErrBidTooLow
	}

	previous := a.Bid
	a.Bid = &listing.Bid{Owner: cc.Predecessor, Price: cc.Deposit}

	if reaches, err := a.ReachesBuyOut(cc.Deposit); err != nil {
		return err
	} else if reaches {
		removed, err := im.repo.Remove(ctx, id)
		if err != nil {
			return err
		}
		removed.Bid = a.Bid
		if err := im.refundBid(ctx, previous); err != nil {
			return err
		}
		return im.settle(ctx, removed)
	}

	if a.End != nil && a.End.Sub(now) < im.extensionWindow {
		a.Extend(im.extensionPeriod)
	}

	if err := im.repo.Upsert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to repo.Upsert")
		return err
	}
	return im.refundBid(ctx, previous)
}

func (im *impl) Finalize(ctx bCtx.Ctx, id uint64) error {
	a, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if !a.Ended(im.clock.Now()) {
		return domain.ErrAuctionNotEnded
	}

	removed, err := im.repo.Remove(ctx, id)
	if err != nil {
		return err
	}
	if removed.Bid == nil {
		return nil
	}
	return im.settle(ctx, removed)
}

func (im *impl) GetAuction(ctx bCtx.Ctx, id uint64) (*auction.Auction, error) {
	return im.repo.FindOne(ctx, id)
}

func (im *impl) CurrentBuyer(ctx bCtx.Ctx, id uint64) (*domain.AccountId, error) {
	a, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Bid == nil {
		return nil, nil
	}
	return &a.Bid.Owner, nil
}

func (im *impl) CheckInProgress(ctx bCtx.Ctx, id uint64) (bool, error) {
	a, err := im.repo.FindOne(ctx, id)
	if err != nil {
		return false, err
	}
	return a.InProgress(im.clock.Now()), nil
}

// settle hands the removed auction to the settlement flow as a listing
// snapshot with an empty ladder; the winner's funds are the only deposit the
// auction holds once the displaced bid was refunded.
func (im *impl) settle(ctx bCtx.Ctx, a *auction.Auction) error {
	sale := &listing.Sale{
		Contract:   a.Contract,
		TokenId:    a.TokenId,
		Owner:      a.Owner,
		ApprovalId: a.ApprovalId,
		Conditions: map[domain.AssetId]domain.Amount{domain.AssetNative: a.Bid.Price},
		Bids:       map[domain.AssetId][]listing.Bid{},
		TokenType:  a.TokenType,
		CreatedAt:  a.CreatedAt,
	}
	_, err := im.settlementUC.SettleRemoved(ctx, sale, domain.AssetNative, a.Bid.Price, a.Bid.Owner)
	return err
}

func (im *impl) refundBid(ctx bCtx.Ctx, bid *listing.Bid) error {
	if bid == nil {
		return nil
	}
	return im.wallet.TransferNative(ctx, bid.Owner, bid.Price)
}
