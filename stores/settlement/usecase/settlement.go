package usecase

import (
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/domain/settlement"
	"github.com/mintbay/marketapi/service/tokencontract"
)

// DefaultFeeBps is the protocol fee in basis points, taken out of the
// owner's payout share.
const DefaultFeeBps = 200

type SettlementUseCaseCfg struct {
	PendingRepo   settlement.PendingRepo
	SaleRepo      listing.Repo
	SeriesRepo    listing.SeriesRepo
	TokenContract tokencontract.Client
	Wallet        escrow.Wallet
	Clock         clock.Clock
	FeeBps        int64
	// FeeRecipient receives the protocol fee as its own transfer leg.
	// The fee stays on the contract balance when empty.
	FeeRecipient domain.AccountId
}

type impl struct {
	pendingRepo   settlement.PendingRepo
	saleRepo      listing.Repo
	seriesRepo    listing.SeriesRepo
	tokenContract tokencontract.Client
	wallet        escrow.Wallet
	clock         clock.Clock
	feeBps        int64
	feeRecipient  domain.AccountId
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	feeBps := cfg.FeeBps
	if feeBps == 0 {
		feeBps = DefaultFeeBps
	}
	return &impl{
		pendingRepo:   cfg.PendingRepo,
		saleRepo:      cfg.SaleRepo,
		seriesRepo:    cfg.SeriesRepo,
		tokenContract: cfg.TokenContract,
		wallet:        cfg.Wallet,
		clock:         c,
		feeBps:        feeBps,
		feeRecipient:  cfg.FeeRecipient,
	}
}

func (im *impl) ProcessPurchase(ctx bCtx.Ctx, id listing.Id, asset domain.AssetId, price domain.Amount, buyer domain.AccountId) (string, error) {
	removed, err := im.saleRepo.Remove(ctx, id)
	if err != nil {
		return "", err
	}
	return im.SettleRemoved(ctx, removed, asset, price, buyer)
}

func (im *impl) SettleRemoved(ctx bCtx.Ctx, sale *listing.Sale, asset domain.AssetId, price domain.Amount, buyer domain.AccountId) (string, error) {
	pending := &settlement.Pending{
		CallId:    uuid.New().String(),
		Kind:      settlement.PendingKindPurchase,
		Sale:      sale,
		Buyer:     buyer,
		Asset:     asset,
		Price:     price,
		CreatedAt: im.clock.Now(),
	}
	if err := im.pendingRepo.Insert(ctx, pending); err != nil {
		return "", err
	}

	err := im.tokenContract.TransferPayout(ctx, &tokencontract.TransferPayoutReq{
		CallbackId:   pending.CallId,
		Contract:     sale.Contract,
		TokenId:      sale.TokenId,
		Receiver:     buyer,
		ApprovalId:   sale.ApprovalId,
		Balance:      price,
		MaxLenPayout: settlement.MaxPayoutRecipients,
		Gas:          tokencontract.GasForNftTransfer,
		CallbackGas:  tokencontract.GasForRoyalties,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"callId": pending.CallId,
		}).Error("failed to tokenContract.TransferPayout")
		return "", err
	}
	return pending.CallId, nil
}

func (im *impl) ResolvePurchase(ctx bCtx.Ctx, result settlement.CallResult) (domain.Amount, error) {
	pending, err := im.pendingRepo.Take(ctx, result.CallId)
	if err != nil {
		return "", err
	}
	if pending.Kind != settlement.PendingKindPurchase {
		return "", domain.ErrSettlementNotFound
	}

	// the record left the store in phase 1, so its ladder must be refunded
	// on every outcome
	if err := im.refundBids(ctx, pending.Sale); err != nil {
		return "", err
	}

	if !result.Success || result.Payout.Validate(pending.Price, outstandingBids(pending.Sale)) != nil {
		if pending.Asset.IsNative() {
			if err := im.wallet.TransferNative(ctx, pending.Buyer, pending.Price); err != nil {
				return "", err
			}
		}
		return pending.Price, nil
	}

	if err := im.disburse(ctx, pending, result.Payout); err != nil {
		return "", err
	}
	return domain.AmountZero, nil
}

func (im *impl) ProcessMintPurchase(ctx bCtx.Ctx, cc domain.CallContext, id listing.SeriesId) (string, error) {
	if err := cc.RequireDeposit(); err != nil {
		return "", err
	}

	sale, err := im.seriesRepo.FindOne(ctx, id)
	if err != nil {
		return "", err
	}

	buyer := cc.Predecessor
	if buyer == sale.Owner {
		return "", domain.ErrSelfPurchase
	}

	price, ok := sale.Conditions[domain.AssetNative]
	if !ok {
		return "", domain.ErrNotForSale
	}
	if cmp, err := cc.Deposit.Cmp(price); err != nil {
		return "", err
	} else if cmp != 0 {
		return "", domain.ErrDepositNotAsking
	}

	if sale.Copies <= 1 {
		if _, err := im.seriesRepo.Remove(ctx, id); err != nil {
			return "", err
		}
	} else {
		sale.Copies--
		if err := im.seriesRepo.Upsert(ctx, sale); err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to seriesRepo.Upsert")
			return "", err
		}
	}

	pending := &settlement.Pending{
		CallId: uuid.New().String(),
		Kind:   settlement.PendingKindMint,
		Sale: &listing.Sale{
			Contract:   sale.Contract,
			Owner:      sale.Owner,
			Conditions: sale.Conditions,
			Bids:       map[domain.AssetId][]listing.Bid{},
			CreatedAt:  sale.CreatedAt,
		},
		Buyer:     buyer,
		Asset:     domain.AssetNative,
		Price:     price,
		Deposit:   cc.Deposit,
		CreatedAt: im.clock.Now(),
	}
	if err := im.pendingRepo.Insert(ctx, pending); err != nil {
		return "", err
	}

	err = im.tokenContract.Mint(ctx, &tokencontract.MintReq{
		CallbackId: pending.CallId,
		Contract:   sale.Contract,
		SeriesId:   sale.SeriesId,
		Receiver:   buyer,
		Balance:    price,
		Gas:        tokencontract.GasForMint,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"callId": pending.CallId,
		}).Error("failed to tokenContract.Mint")
		return "", err
	}
	return pending.CallId, nil
}

func (im *impl) ResolveTokenBuy(ctx bCtx.Ctx, result settlement.CallResult) (domain.Amount, error) {
	pending, err := im.pendingRepo.Take(ctx, result.CallId)
	if err != nil {
		return "", err
	}
	if pending.Kind != settlement.PendingKindMint {
		return "", domain.ErrSettlementNotFound
	}

	if !result.Success || result.Payout.Validate(pending.Price, 0) != nil {
		if err := im.wallet.TransferNative(ctx, pending.Buyer, pending.Deposit); err != nil {
			return "", err
		}
		return pending.Price, nil
	}

	if err := im.disburse(ctx, pending, result.Payout); err != nil {
		return "", err
	}
	return domain.AmountZero, nil
}

// disburse queues one transfer per payout entry, with the protocol fee taken
// out of the owner's share
func (im *impl) disburse(ctx bCtx.Ctx, pending *settlement.Pending, payout settlement.Payout) error {
	owner := pending.Sale.Owner
	ownerShare, ok := payout[owner]
	if !ok {
		ctx.WithFields(log.Fields{
			"callId": pending.CallId,
			"owner":  owner,
		}).Error("payout has no owner entry")
		return domain.ErrOwnerPayoutMissing
	}

	fee, err := im.protocolFee(pending.Price, ownerShare)
	if err != nil {
		return err
	}
	ownerShare, err = ownerShare.Sub(fee)
	if err != nil {
		return err
	}

	for account, amount := range payout {
		if account == owner {
			amount = ownerShare
		}
		if err := im.transfer(ctx, pending.Asset, account, amount); err != nil {
			return err
		}
	}

	if !im.feeRecipient.IsEmpty() {
		return im.transfer(ctx, pending.Asset, im.feeRecipient, fee)
	}
	return nil
}

// protocolFee is price * feeBps / 10000, capped at the owner's share so the
// deduction can never underflow
func (im *impl) protocolFee(price, ownerShare domain.Amount) (domain.Amount, error) {
	p, err := price.BigInt()
	if err != nil {
		return "", err
	}
	o, err := ownerShare.BigInt()
	if err != nil {
		return "", err
	}
	fee := new(big.Int).Mul(p, big.NewInt(im.feeBps))
	fee = fee.Quo(fee, big.NewInt(10000))
	if fee.Cmp(o) > 0 {
		fee = o
	}
	return domain.AmountFromBigInt(fee), nil
}

func (im *impl) refundBids(ctx bCtx.Ctx, sale *listing.Sale) error {
	for assetId, ladder := range sale.Bids {
		for _, bid := range ladder {
			if err := im.transfer(ctx, assetId, bid.Owner, bid.Price); err != nil {
				return err
			}
		}
	}
	return nil
}

func (im *impl) transfer(ctx bCtx.Ctx, assetId domain.AssetId, to domain.AccountId, amount domain.Amount) error {
	if assetId.IsNative() {
		return im.wallet.TransferNative(ctx, to, amount)
	}
	return im.wallet.TransferFungible(ctx, assetId, to, amount)
}

func outstandingBids(sale *listing.Sale) int {
	n := 0
	for _, ladder := range sale.Bids {
		n += len(ladder)
	}
	return n
}
