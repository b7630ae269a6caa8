package usecase

import (
	"time"

	bCtx "github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/log"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/domain/keys"
	"github.com/mintbay/marketapi/service/cache"
	"github.com/mintbay/marketapi/service/cache/provider/primitive"
)

type AssetUseCaseCfg struct {
	Repo asset.Repo
}

type impl struct {
	repo  asset.Repo
	cache cache.Service
}

func New(cfg *AssetUseCaseCfg) asset.UseCase {
	return &impl{
		repo: cfg.Repo,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxAsset,
			Cache: primitive.NewPrimitive(keys.PfxAsset, 16),
		}),
	}
}

func (im *impl) IsSupported(ctx bCtx.Ctx, id domain.AssetId) (bool, error) {
	if id.IsNative() {
		return true, nil
	}

	a, err := im.Get(ctx, id)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return a.Enabled, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id domain.AssetId) (*asset.Asset, error) {
	res := &asset.Asset{}
	if err := im.cache.GetByFunc(ctx, string(id), res, func() (interface{}, error) {
		return im.repo.FindOne(ctx, id)
	}); err == domain.ErrNotFound {
		return nil, err
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to get asset")
		return nil, err
	}
	return res, nil
}

func (im *impl) List(ctx bCtx.Ctx) ([]*asset.Asset, error) {
	res, err := im.repo.FindAll(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to repo.FindAll")
		return nil, err
	}
	return res, nil
}

func (im *impl) Add(ctx bCtx.Ctx, a *asset.Asset) error {
	if a.Id.IsNative() {
		return domain.ErrBadParamInput
	}
	if err := im.repo.Upsert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("failed to repo.Upsert")
		return err
	}
	if err := im.cache.Del(ctx, string(a.Id)); err != nil {
		ctx.WithField("err", err).Warn("failed to cache.Del")
	}
	return nil
}

func (im *impl) Remove(ctx bCtx.Ctx, id domain.AssetId) error {
	if err := im.repo.Remove(ctx, id); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to repo.Remove")
		return err
	}
	if err := im.cache.Del(ctx, string(id)); err != nil {
		ctx.WithField("err", err).Warn("failed to cache.Del")
	}
	return nil
}
