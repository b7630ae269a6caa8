package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/database/mongoclient"
	hcdomain "github.com/mintbay/marketapi/domain/healthcheck"
	"github.com/mintbay/marketapi/domain/keys"
	"github.com/mintbay/marketapi/service/cache/provider"
)

type impl struct {
	mgoClient *mongoclient.Client
	cache     provider.Provider
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(
	mgoClient *mongoclient.Client,
	cache provider.Provider,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		cache:     cache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.cache.Set(ctx, keys.CacheKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
