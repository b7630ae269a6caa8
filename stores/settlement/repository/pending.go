package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/settlement"
	"github.com/mintbay/marketapi/service/query"
)

type pendingRepoImpl struct {
	q query.Mongo
}

func NewPendingRepo(q query.Mongo) settlement.PendingRepo {
	return &pendingRepoImpl{q}
}

func (im *pendingRepoImpl) Insert(ctx ctx.Ctx, pending *settlement.Pending) error {
	if err := im.q.Insert(ctx, domain.TableSettlements, pending); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"callId": pending.CallId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *pendingRepoImpl) Take(ctx ctx.Ctx, callId string) (*settlement.Pending, error) {
	pending := &settlement.Pending{}
	if err := im.q.FindOneAndRemove(ctx, domain.TableSettlements, bson.M{"callId": callId}, pending); err == query.ErrNotFound {
		return nil, domain.ErrSettlementNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"callId": callId,
		}).Error("q.FindOneAndRemove failed")
		return nil, err
	}
	return pending, nil
}
