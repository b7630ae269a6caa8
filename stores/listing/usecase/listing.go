package usecase

import (
	"time"

	"github.com/benbjohnson/clock"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/domain/auction"
	"github.com/mintbay/marketapi/domain/deposit"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/domain/settlement"
)

// DefaultBidHistoryLength bounds every bid ladder. Adding a bid beyond the
// bound evicts and refunds the lowest one.
const DefaultBidHistoryLength = 10

type ListingUseCaseCfg struct {
	SaleRepo         listing.Repo
	SeriesRepo       listing.SeriesRepo
	AssetUC          asset.UseCase
	DepositUC        deposit.UseCase
	AuctionUC        auction.UseCase
	SettlementUC     settlement.UseCase
	Wallet           escrow.Wallet
	Clock            clock.Clock
	BidHistoryLength int
}

type impl struct {
	saleRepo         listing.Repo
	seriesRepo       listing.SeriesRepo
	assetUC          asset.UseCase
	depositUC        deposit.UseCase
	auctionUC        auction.UseCase
	settlementUC     settlement.UseCase
	wallet           escrow.Wallet
	clock            clock.Clock
	bidHistoryLength int
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	hl := cfg.BidHistoryLength
	if hl == 0 {
		hl = DefaultBidHistoryLength
	}
	return &impl{
		saleRepo:         cfg.SaleRepo,
		seriesRepo:       cfg.SeriesRepo,
		assetUC:          cfg.AssetUC,
		depositUC:        cfg.DepositUC,
		auctionUC:        cfg.AuctionUC,
		settlementUC:     cfg.SettlementUC,
		wallet:           cfg.Wallet,
		clock:            c,
		bidHistoryLength: hl,
	}
}

func (im *impl) OnApprove(ctx bCtx.Ctx, cc domain.CallContext, tokenId domain.TokenId, owner domain.AccountId, approvalId uint64, msg listing.ApproveMsg) (*uint64, error) {
	if err := cc.RequireCrossContract(); err != nil {
		return nil, err
	}
	if owner != cc.Signer {
		return nil, domain.ErrOwnerSignerMismatch
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	contract := cc.Predecessor

	if err := im.requireListingSlot(ctx, owner); err != nil {
		return nil, err
	}

	if msg.Auction != nil {
		a, err := im.auctionUC.Start(ctx, contract, tokenId, owner, approvalId, *msg.Auction)
		if err != nil {
			return nil, err
		}
		return &a.Id, nil
	}

	if err := im.requireSupported(ctx, msg.Sale.Conditions); err != nil {
		return nil, err
	}

	sale := &listing.Sale{
		Contract:   contract,
		TokenId:    tokenId,
		Owner:      owner,
		ApprovalId: approvalId,
		Conditions: msg.Sale.Conditions,
		Bids:       map[domain.AssetId][]listing.Bid{},
		TokenType:  msg.Sale.TokenType,
		CreatedAt:  im.clock.Now(),
		Start:      msg.Sale.Start,
		End:        msg.Sale.End,
	}
	if err := im.saleRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  sale.ToId(),
		}).Error("failed to saleRepo.Upsert")
		return nil, err
	}
	return nil, nil
}

func (im *impl) OnSeriesApprove(ctx bCtx.Ctx, cc domain.CallContext, args listing.SeriesApproveArgs) error {
	if err := cc.RequireCrossContract(); err != nil {
		return err
	}
	if args.Owner != cc.Signer {
		return domain.ErrOwnerSignerMismatch
	}
	if len(args.Conditions) == 0 {
		return domain.ErrBadParamInput
	}

	if err := im.requireListingSlot(ctx, args.Owner); err != nil {
		return err
	}
	if err := im.requireSupported(ctx, args.Conditions); err != nil {
		return err
	}

	sale := &listing.SeriesSale{
		Contract:   cc.Predecessor,
		SeriesId:   args.SeriesId,
		Owner:      args.Owner,
		Conditions: args.Conditions,
		Copies:     args.Copies,
		CreatedAt:  im.clock.Now(),
	}
	if err := im.seriesRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  sale.ToId(),
		}).Error("failed to seriesRepo.Upsert")
		return err
	}
	return nil
}

func (im *impl) Offer(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, start, end *time.Time) error {
	if err := cc.RequireDeposit(); err != nil {
		return err
	}

	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	buyer := cc.Predecessor
	if buyer == sale.Owner {
		return domain.ErrSelfPurchase
	}
	if !sale.InLimits(im.clock.Now()) {
		return domain.ErrOutOfTimeWindow
	}

	price, ok := sale.Conditions[domain.AssetNative]
	if !ok {
		return domain.ErrNotForSale
	}

	if cmp, err := cc.Deposit.Cmp(price); err != nil {
		return err
	} else if cmp == 0 && !price.IsZero() {
		_, err := im.settlementUC.ProcessPurchase(ctx, id, domain.AssetNative, price, buyer)
		return err
	}

	return im.addBid(ctx, sale, domain.AssetNative, listing.Bid{
		Owner: buyer,
		Price: cc.Deposit,
		Start: start,
		End:   end,
	})
}

// addBid appends the bid onto the asset's ladder. Ladders are strictly
// increasing, and the lowest bid is evicted with a refund once the ladder
// outgrows the history bound.
func (im *impl) addBid(ctx bCtx.Ctx, sale *listing.Sale, assetId domain.AssetId, bid listing.Bid) error {
	if ok, err := im.assetUC.IsSupported(ctx, assetId); err != nil {
		return err
	} else if !ok {
		return domain.ErrAssetNotSupported
	}
	if sale.Bids == nil {
		sale.Bids = map[domain.AssetId][]listing.Bid{}
	}
	ladder := sale.Bids[assetId]

	if len(ladder) > 0 {
		last := ladder[len(ladder)-1]
		if cmp, err := bid.Price.Cmp(last.Price); err != nil {
			return err
		} else if cmp <= 0 {
			return domain.ErrBidTooLow
		}
	}

	ladder = append(ladder, bid)
	if len(ladder) > im.bidHistoryLength {
		evicted := ladder[0]
		ladder = ladder[1:]
		if err := im.refundBid(ctx, assetId, evicted); err != nil {
			return err
		}
	}
	sale.Bids[assetId] = ladder

	if err := im.saleRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  sale.ToId(),
		}).Error("failed to saleRepo.Upsert")
		return err
	}
	return nil
}

func (im *impl) AcceptOffer(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, assetId domain.AssetId) error {
	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if cc.Predecessor != sale.Owner {
		return domain.ErrNotOwner
	}
	if !sale.InLimits(im.clock.Now()) {
		return domain.ErrOutOfTimeWindow
	}

	top := sale.TopBid(assetId)
	if top == nil {
		return domain.ErrBidNotFound
	}
	if !top.InLimits(im.clock.Now()) {
		return domain.ErrOutOfTimeWindow
	}

	removed, err := im.saleRepo.Remove(ctx, id)
	if err != nil {
		return err
	}

	// the accepted bid leaves the ladder before settlement so the refund
	// pass cannot touch the winner's funds
	ladder := removed.Bids[assetId]
	winner := ladder[len(ladder)-1]
	removed.Bids[assetId] = ladder[:len(ladder)-1]

	_, err = im.settlementUC.SettleRemoved(ctx, removed, assetId, winner.Price, winner.Owner)
	return err
}

func (im *impl) RemoveSale(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id) error {
	if err := cc.RequireOneUnit(); err != nil {
		return err
	}

	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if cc.Predecessor != sale.Owner {
		return domain.ErrNotOwner
	}

	removed, err := im.saleRepo.Remove(ctx, id)
	if err != nil {
		return err
	}

	for assetId, ladder := range removed.Bids {
		for _, bid := range ladder {
			if err := im.refundBid(ctx, assetId, bid); err != nil {
				return err
			}
		}
	}
	return nil
}

func (im *impl) UpdatePrice(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, assetId domain.AssetId, price domain.Amount) error {
	if err := cc.RequireOneUnit(); err != nil {
		return err
	}
	if !price.Valid() {
		return domain.ErrInvalidAmountFormat
	}

	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if cc.Predecessor != sale.Owner {
		return domain.ErrNotOwner
	}

	if ok, err := im.assetUC.IsSupported(ctx, assetId); err != nil {
		return err
	} else if !ok {
		return domain.ErrAssetNotSupported
	}

	if sale.Conditions == nil {
		sale.Conditions = map[domain.AssetId]domain.Amount{}
	}
	sale.Conditions[assetId] = price

	if err := im.saleRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to saleRepo.Upsert")
		return err
	}
	return nil
}

func (im *impl) RemoveBid(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, assetId domain.AssetId, bid listing.Bid) error {
	if err := cc.RequireOneUnit(); err != nil {
		return err
	}
	if cc.Predecessor != bid.Owner {
		return domain.ErrNotOwner
	}

	return im.takeBid(ctx, id, assetId, bid)
}

func (im *impl) CancelBid(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, assetId domain.AssetId, bid listing.Bid) error {
	if bid.End == nil {
		return domain.ErrBidNotExpirable
	}
	if im.clock.Now().Before(*bid.End) {
		return domain.ErrBidNotExpired
	}

	return im.takeBid(ctx, id, assetId, bid)
}

func (im *impl) CancelExpiredBids(ctx bCtx.Ctx, cc domain.CallContext, id listing.Id, assetId domain.AssetId) error {
	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	now := im.clock.Now()
	kept := []listing.Bid{}
	expired := []listing.Bid{}
	for _, b := range sale.Bids[assetId] {
		if b.Expired(now) {
			expired = append(expired, b)
		} else {
			kept = append(kept, b)
		}
	}
	if len(expired) == 0 {
		return nil
	}

	sale.Bids[assetId] = kept
	if err := im.saleRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to saleRepo.Upsert")
		return err
	}

	for _, b := range expired {
		if err := im.refundBid(ctx, assetId, b); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) GetSale(ctx bCtx.Ctx, id listing.Id) (*listing.Sale, error) {
	return im.saleRepo.FindOne(ctx, id)
}

func (im *impl) GetSales(ctx bCtx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Sale, error) {
	res, err := im.saleRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to saleRepo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) GetSeriesSale(ctx bCtx.Ctx, id listing.SeriesId) (*listing.SeriesSale, error) {
	return im.seriesRepo.FindOne(ctx, id)
}

// takeBid removes the exact (owner, price) entry from the ladder and
// refunds it
func (im *impl) takeBid(ctx bCtx.Ctx, id listing.Id, assetId domain.AssetId, bid listing.Bid) error {
	sale, err := im.saleRepo.FindOne(ctx, id)
	if err != nil {
		return err
	}

	ladder := sale.Bids[assetId]
	idx := -1
	for i, b := range ladder {
		if b.Matches(bid.Owner, bid.Price) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrBidNotFound
	}

	found := ladder[idx]
	sale.Bids[assetId] = append(ladder[:idx:idx], ladder[idx+1:]...)

	if err := im.saleRepo.Upsert(ctx, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to saleRepo.Upsert")
		return err
	}

	return im.refundBid(ctx, assetId, found)
}

func (im *impl) refundBid(ctx bCtx.Ctx, assetId domain.AssetId, bid listing.Bid) error {
	if assetId.IsNative() {
		return im.wallet.TransferNative(ctx, bid.Owner, bid.Price)
	}
	return im.wallet.TransferFungible(ctx, assetId, bid.Owner, bid.Price)
}

func (im *impl) requireListingSlot(ctx bCtx.Ctx, owner domain.AccountId) error {
	sales, err := im.saleRepo.Count(ctx, listing.WithOwner(owner))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to saleRepo.Count")
		return err
	}
	series, err := im.seriesRepo.Count(ctx, listing.WithOwner(owner))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to seriesRepo.Count")
		return err
	}

	return im.depositUC.RequireCoverage(ctx, owner, sales+series+1)
}

func (im *impl) requireSupported(ctx bCtx.Ctx, conditions map[domain.AssetId]domain.Amount) error {
	for assetId, price := range conditions {
		if !price.Valid() {
			return domain.ErrInvalidAmountFormat
		}
		if ok, err := im.assetUC.IsSupported(ctx, assetId); err != nil {
			return err
		} else if !ok {
			return domain.ErrAssetNotSupported
		}
	}
	return nil
}
