package repository

import (
	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/database/mongoclient"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/deposit"
	"github.com/mintbay/marketapi/service/query"
)

type storageDepositMongoRepo struct {
	q query.Mongo
}

func NewStorageDepositRepo(q query.Mongo) deposit.Repo {
	return &storageDepositMongoRepo{
		q: q,
	}
}

func (r *storageDepositMongoRepo) FindOne(ctx bCtx.Ctx, account domain.AccountId) (*deposit.StorageDeposit, error) {
	res := &deposit.StorageDeposit{}
	qry, err := mongoclient.MakeBsonM(&deposit.StorageDeposit{Account: account})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TableStorageDeposits, qry, res); err == query.ErrNotFound {
		// unknown accounts hold a zero balance
		return &deposit.StorageDeposit{Account: account, Balance: domain.AmountZero}, nil
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *storageDepositMongoRepo) Upsert(ctx bCtx.Ctx, d *deposit.StorageDeposit) error {
	selector, err := mongoclient.MakeBsonM(&deposit.StorageDeposit{Account: d.Account})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableStorageDeposits, selector, d); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": d.Account,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
