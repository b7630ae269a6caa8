package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/database/mongoclient"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/listing"
	"github.com/mintbay/marketapi/service/query"
)

type seriesRepoImpl struct {
	q query.Mongo
}

func NewSeriesRepo(q query.Mongo) listing.SeriesRepo {
	return &seriesRepoImpl{q}
}

func (im *seriesRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.Contract != nil {
		query["contract"] = *options.Contract
	}

	return query, nil
}

func (im *seriesRepoImpl) FindOne(ctx ctx.Ctx, id listing.SeriesId) (*listing.SeriesSale, error) {
	sale := &listing.SeriesSale{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := im.q.FindOne(ctx, domain.TableSeriesSales, qry, sale); err == query.ErrNotFound {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return sale, nil
}

func (im *seriesRepoImpl) Upsert(ctx ctx.Ctx, sale *listing.SeriesSale) error {
	selector, err := mongoclient.MakeBsonM(sale.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(ctx, domain.TableSeriesSales, selector, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  sale.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *seriesRepoImpl) Remove(ctx ctx.Ctx, id listing.SeriesId) (*listing.SeriesSale, error) {
	sale := &listing.SeriesSale{}
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := im.q.FindOneAndRemove(ctx, domain.TableSeriesSales, selector, sale); err == query.ErrNotFound {
		return nil, domain.ErrListingNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOneAndRemove failed")
		return nil, err
	}
	return sale, nil
}

func (im *seriesRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.SeriesSale, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	res := []*listing.SeriesSale{}
	if err := im.q.Search(ctx, domain.TableSeriesSales, 0, 0, "_id", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *seriesRepoImpl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableSeriesSales, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
