package usecase

import (
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/service/bank"
	"github.com/mintbay/marketapi/service/ftcontract"
)

type WalletCfg struct {
	Repo       escrow.Repo
	Dispatcher escrow.Dispatcher
	Clock      clock.Clock
}

type walletImpl struct {
	repo       escrow.Repo
	dispatcher escrow.Dispatcher
	clock      clock.Clock
}

func NewWallet(cfg *WalletCfg) escrow.Wallet {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &walletImpl{
		repo:       cfg.Repo,
		dispatcher: cfg.Dispatcher,
		clock:      c,
	}
}

func (im *walletImpl) TransferNative(ctx bCtx.Ctx, to domain.AccountId, amount domain.Amount) error {
	return im.queue(ctx, &escrow.Transfer{
		Id:        uuid.New().String(),
		Kind:      escrow.TransferKindNative,
		Asset:     domain.AssetNative,
		Recipient: to,
		Amount:    amount,
		QueuedAt:  im.clock.Now(),
	})
}

func (im *walletImpl) TransferFungible(ctx bCtx.Ctx, asset domain.AssetId, to domain.AccountId, amount domain.Amount) error {
	return im.queue(ctx, &escrow.Transfer{
		Id:        uuid.New().String(),
		Kind:      escrow.TransferKindFungible,
		Asset:     asset,
		Recipient: to,
		Amount:    amount,
		Gas:       ftcontract.GasForFtTransfer,
		QueuedAt:  im.clock.Now(),
	})
}

func (im *walletImpl) queue(ctx bCtx.Ctx, transfer *escrow.Transfer) error {
	if transfer.Amount.IsZero() {
		return nil
	}
	if !transfer.Amount.Valid() {
		return domain.ErrInvalidAmountFormat
	}

	if err := im.repo.Insert(ctx, transfer); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": transfer.Id,
		}).Error("failed to repo.Insert")
		return err
	}

	im.dispatcher.Dispatch(ctx, transfer)
	return nil
}

type DispatcherCfg struct {
	Repo    escrow.Repo
	Bank    bank.Client
	Ft      ftcontract.Client
	Clock   clock.Clock
	Workers int
}

type dispatcherImpl struct {
	repo  escrow.Repo
	bank  bank.Client
	ft    ftcontract.Client
	clock clock.Clock

	workerPool *goroutines.Pool
}

func NewDispatcher(cfg *DispatcherCfg) escrow.Dispatcher {
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = 32
	}
	return &dispatcherImpl{
		repo:       cfg.Repo,
		bank:       cfg.Bank,
		ft:         cfg.Ft,
		clock:      c,
		workerPool: goroutines.NewPool(workers, goroutines.WithTaskQueueLength(1024)),
	}
}

func (im *dispatcherImpl) Dispatch(ctx bCtx.Ctx, transfer *escrow.Transfer) {
	t := *transfer
	if err := im.workerPool.Schedule(func() {
		im.send(ctx, &t)
	}); err != nil {
		// stays queued, redelivered on next sweep
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": transfer.Id,
		}).Warn("failed to workerPool.Schedule")
	}
}

func (im *dispatcherImpl) Close() {
	im.workerPool.Release()
}

func (im *dispatcherImpl) send(ctx bCtx.Ctx, transfer *escrow.Transfer) {
	var err error
	switch transfer.Kind {
	case escrow.TransferKindNative:
		err = im.bank.Transfer(ctx, &bank.TransferReq{
			Receiver: transfer.Recipient,
			Amount:   transfer.Amount,
		})
	case escrow.TransferKindFungible:
		err = im.ft.Transfer(ctx, &ftcontract.TransferReq{
			Asset:    transfer.Asset,
			Receiver: transfer.Recipient,
			Amount:   transfer.Amount,
			Gas:      transfer.Gas,
		})
	default:
		ctx.WithField("kind", transfer.Kind).Error("unknown transfer kind")
		return
	}

	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": transfer.Id,
		}).Warn("transfer delivery failed")
		return
	}

	if err := im.repo.MarkSent(ctx, transfer.Id, im.clock.Now()); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"transfer": transfer.Id,
		}).Error("failed to repo.MarkSent")
	}
}
