package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/service/query"
)

type transferMongoRepo struct {
	q query.Mongo
}

func NewTransferRepo(q query.Mongo) escrow.Repo {
	return &transferMongoRepo{
		q: q,
	}
}

func (r *transferMongoRepo) Insert(ctx bCtx.Ctx, transfer *escrow.Transfer) error {
	if err := r.q.Insert(ctx, domain.TableTransfers, transfer); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  transfer.Id,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *transferMongoRepo) FindAll(ctx bCtx.Ctx, optFns ...escrow.FindAllOptionsFunc) ([]*escrow.Transfer, error) {
	opts, err := escrow.GetFindAllOptions(optFns...)
	if err != nil {
		ctx.WithField("err", err).Error("escrow.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if opts.Recipient != nil {
		qry["recipient"] = *opts.Recipient
	}
	if opts.Unsent != nil {
		qry["sentAt"] = bson.M{"$exists": !*opts.Unsent}
	}

	limit := int32(0)
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	res := []*escrow.Transfer{}
	if err := r.q.Search(ctx, domain.TableTransfers, 0, int(limit), "queuedAt", qry, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *transferMongoRepo) MarkSent(ctx bCtx.Ctx, id string, at time.Time) error {
	if err := r.q.Patch(ctx, domain.TableTransfers, bson.M{"id": id}, bson.M{"sentAt": at}); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
