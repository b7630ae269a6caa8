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

type saleRepoImpl struct {
	q query.Mongo
}

func NewSaleRepo(q query.Mongo) listing.Repo {
	return &saleRepoImpl{q}
}

func (im *saleRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, *listing.FindAllOptions, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.Contract != nil {
		query["contract"] = *options.Contract
	}

	if options.TokenType != nil {
		query["tokenType"] = *options.TokenType
	}

	return query, &options, nil
}

func (im *saleRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Sale, error) {
	sale := &listing.Sale{}
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := im.q.FindOne(ctx, domain.TableSales, qry, sale); err == query.ErrNotFound {
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

func (im *saleRepoImpl) Upsert(ctx ctx.Ctx, sale *listing.Sale) error {
	selector, err := mongoclient.MakeBsonM(sale.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(ctx, domain.TableSales, selector, sale); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  sale.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *saleRepoImpl) Remove(ctx ctx.Ctx, id listing.Id) (*listing.Sale, error) {
	sale := &listing.Sale{}
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := im.q.FindOneAndRemove(ctx, domain.TableSales, selector, sale); err == query.ErrNotFound {
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

func (im *saleRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Sale, error) {
	qry, options, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	offset, limit := int32(0), int32(0)
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	sort := "_id"
	if options.SortBy != nil {
		sort = *options.SortBy
		if options.SortDir != nil && *options.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*listing.Sale{}
	if err := im.q.Search(ctx, domain.TableSales, int(offset), int(limit), sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}
	return res, nil
}

func (im *saleRepoImpl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	qry, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableSales, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}
	return cnt, nil
}
