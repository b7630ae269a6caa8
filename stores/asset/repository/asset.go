package repository

import (
	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/database/mongoclient"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/service/query"
)

type assetMongoRepo struct {
	q query.Mongo
}

func NewAssetRepo(q query.Mongo) asset.Repo {
	return &assetMongoRepo{
		q: q,
	}
}

func (r *assetMongoRepo) FindOne(ctx bCtx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	res := &asset.Asset{}
	qry, err := mongoclient.MakeBsonM(&asset.Asset{Id: id})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TableAssets, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *assetMongoRepo) FindAll(ctx bCtx.Ctx) ([]*asset.Asset, error) {
	res := []*asset.Asset{}
	if err := r.q.Search(ctx, domain.TableAssets, 0, 0, "id", map[string]interface{}{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *assetMongoRepo) Upsert(ctx bCtx.Ctx, a *asset.Asset) error {
	selector, err := mongoclient.MakeBsonM(&asset.Asset{Id: a.Id})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableAssets, selector, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *assetMongoRepo) Remove(ctx bCtx.Ctx, id domain.AssetId) error {
	selector, err := mongoclient.MakeBsonM(&asset.Asset{Id: id})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableAssets, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
