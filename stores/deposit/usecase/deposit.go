package usecase

import (
	"math/big"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/deposit"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/domain/listing"
)

type DepositUseCaseCfg struct {
	Repo       deposit.Repo
	SaleRepo   listing.Repo
	SeriesRepo listing.SeriesRepo
	Wallet     escrow.Wallet
}

type impl struct {
	repo       deposit.Repo
	saleRepo   listing.Repo
	seriesRepo listing.SeriesRepo
	wallet     escrow.Wallet
}

func New(cfg *DepositUseCaseCfg) deposit.UseCase {
	return &impl{
		repo:       cfg.Repo,
		saleRepo:   cfg.SaleRepo,
		seriesRepo: cfg.SeriesRepo,
		wallet:     cfg.Wallet,
	}
}

func (im *impl) Deposit(ctx bCtx.Ctx, cc domain.CallContext, account domain.AccountId) error {
	if err := cc.RequireDeposit(); err != nil {
		return err
	}

	target := account
	if target.IsEmpty() {
		target = cc.Predecessor
	}

	d, err := im.repo.FindOne(ctx, target)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": target,
		}).Error("failed to repo.FindOne")
		return err
	}

	balance, err := d.Balance.Add(cc.Deposit)
	if err != nil {
		return err
	}
	d.Balance = balance

	if err := im.repo.Upsert(ctx, d); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": target,
		}).Error("failed to repo.Upsert")
		return err
	}
	return nil
}

func (im *impl) Withdraw(ctx bCtx.Ctx, cc domain.CallContext) error {
	if err := cc.RequireOneUnit(); err != nil {
		return err
	}

	owner := cc.Predecessor

	d, err := im.repo.FindOne(ctx, owner)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": owner,
		}).Error("failed to repo.FindOne")
		return err
	}

	occupied, err := im.occupiedSlots(ctx, owner)
	if err != nil {
		return err
	}

	required, err := slotsAmount(occupied)
	if err != nil {
		return err
	}

	refund, err := d.Balance.Sub(required)
	if err == domain.ErrAmountUnderflow {
		// everything is locked by live listings
		return nil
	} else if err != nil {
		return err
	}

	if refund.IsZero() {
		return nil
	}

	d.Balance = required
	if err := im.repo.Upsert(ctx, d); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": owner,
		}).Error("failed to repo.Upsert")
		return err
	}

	if err := im.wallet.TransferNative(ctx, owner, refund); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": owner,
			"refund":  refund,
		}).Error("failed to wallet.TransferNative")
		return err
	}
	return nil
}

func (im *impl) Balance(ctx bCtx.Ctx, account domain.AccountId) (domain.Amount, error) {
	d, err := im.repo.FindOne(ctx, account)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("failed to repo.FindOne")
		return domain.AmountZero, err
	}
	return d.Balance, nil
}

func (im *impl) StorageAmount() domain.Amount {
	return deposit.StoragePerSale
}

func (im *impl) RequireCoverage(ctx bCtx.Ctx, owner domain.AccountId, slots int) error {
	d, err := im.repo.FindOne(ctx, owner)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": owner,
		}).Error("failed to repo.FindOne")
		return err
	}

	required, err := slotsAmount(slots)
	if err != nil {
		return err
	}

	if cmp, err := d.Balance.Cmp(required); err != nil {
		return err
	} else if cmp < 0 {
		return domain.ErrInsufficientStorage
	}
	return nil
}

func (im *impl) occupiedSlots(ctx bCtx.Ctx, owner domain.AccountId) (int, error) {
	sales, err := im.saleRepo.Count(ctx, listing.WithOwner(owner))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to saleRepo.Count")
		return 0, err
	}
	series, err := im.seriesRepo.Count(ctx, listing.WithOwner(owner))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to seriesRepo.Count")
		return 0, err
	}
	return sales + series, nil
}

func slotsAmount(slots int) (domain.Amount, error) {
	per, err := deposit.StoragePerSale.BigInt()
	if err != nil {
		return domain.AmountZero, err
	}
	return domain.AmountFromBigInt(new(big.Int).Mul(per, big.NewInt(int64(slots)))), nil
}
