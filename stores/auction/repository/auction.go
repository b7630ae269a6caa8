package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/auction"
	"github.com/mintbay/marketapi/service/query"
)

type auctionRepoImpl struct {
	q query.Mongo
}

func NewAuctionRepo(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

type counter struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

func (im *auctionRepoImpl) NextId(ctx ctx.Ctx) (uint64, error) {
	cnt := &counter{}
	selector := bson.M{"name": "auction"}
	if err := im.q.Increment(ctx, domain.TableCounters, selector, cnt, "seq", int64(1)); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return cnt.Seq, nil
}

func (im *auctionRepoImpl) FindOne(ctx ctx.Ctx, id uint64) (*auction.Auction, error) {
	a := &auction.Auction{}
	if err := im.q.FindOne(ctx, domain.TableAuctions, bson.M{"id": id}, a); err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return a, nil
}

func (im *auctionRepoImpl) Upsert(ctx ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Upsert(ctx, domain.TableAuctions, bson.M{"id": a.Id}, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Remove(ctx ctx.Ctx, id uint64) (*auction.Auction, error) {
	a := &auction.Auction{}
	if err := im.q.FindOneAndRemove(ctx, domain.TableAuctions, bson.M{"id": id}, a); err == query.ErrNotFound {
		return nil, domain.ErrAuctionNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOneAndRemove failed")
		return nil, err
	}
	return a, nil
}

func (im *auctionRepoImpl) FindAll(ctx ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	options, err := auction.GetFindAllOptions(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if options.Owner != nil {
		qry["owner"] = *options.Owner
	}
	if options.Contract != nil {
		qry["contract"] = *options.Contract
	}

	offset, limit := int32(0), int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*auction.Auction{}
	if err := im.q.Search(ctx, domain.TableAuctions, int(offset), int(limit), "id", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}
