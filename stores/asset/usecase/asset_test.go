package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	"github.com/mintbay/marketapi/domain/asset/mocks"
)

type assetSuite struct {
	suite.Suite

	repo *mocks.Repo
	im   *impl
}

func TestAssetSuite(t *testing.T) {
	suite.Run(t, new(assetSuite))
}

func (s *assetSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.im = New(&AssetUseCaseCfg{Repo: s.repo}).(*impl)
}

func (s *assetSuite) TestNativeAlwaysSupported() {
	ctx := ctx.Background()

	ok, err := s.im.IsSupported(ctx, domain.AssetNative)
	s.NoError(err)
	s.True(ok)

	s.repo.AssertNotCalled(s.T(), "FindOne")
}

func (s *assetSuite) TestIsSupported() {
	ctx := ctx.Background()

	usdc := &asset.Asset{Id: "usdc.token", Symbol: "USDC", Decimals: 6, Enabled: true}
	dai := &asset.Asset{Id: "dai.token", Symbol: "DAI", Decimals: 18, Enabled: false}

	s.repo.On("FindOne", ctx, domain.AssetId("usdc.token")).Return(usdc, nil).Once()
	s.repo.On("FindOne", ctx, domain.AssetId("dai.token")).Return(dai, nil).Once()
	s.repo.On("FindOne", ctx, domain.AssetId("no.token")).Return(nil, domain.ErrNotFound).Once()

	ok, err := s.im.IsSupported(ctx, "usdc.token")
	s.NoError(err)
	s.True(ok)

	ok, err = s.im.IsSupported(ctx, "dai.token")
	s.NoError(err)
	s.False(ok)

	ok, err = s.im.IsSupported(ctx, "no.token")
	s.NoError(err)
	s.False(ok)
}

func (s *assetSuite) TestGetHitsCacheOnSecondRead() {
	ctx := ctx.Background()

	usdc := &asset.Asset{Id: "usdc.token", Symbol: "USDC", Decimals: 6, Enabled: true}
	s.repo.On("FindOne", ctx, domain.AssetId("usdc.token")).Return(usdc, nil).Once()

	res, err := s.im.Get(ctx, "usdc.token")
	s.NoError(err)
	s.Equal(usdc, res)

	// served from cache, repo is not asked again
	res, err = s.im.Get(ctx, "usdc.token")
	s.NoError(err)
	s.Equal(usdc, res)

	s.repo.AssertExpectations(s.T())
}

func (s *assetSuite) TestAddRejectsNative() {
	ctx := ctx.Background()

	err := s.im.Add(ctx, &asset.Asset{Id: domain.AssetNative})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *assetSuite) TestAddInvalidatesCache() {
	ctx := ctx.Background()

	disabled := &asset.Asset{Id: "usdc.token", Symbol: "USDC", Decimals: 6, Enabled: false}
	enabled := &asset.Asset{Id: "usdc.token", Symbol: "USDC", Decimals: 6, Enabled: true}

	s.repo.On("FindOne", ctx, domain.AssetId("usdc.token")).Return(disabled, nil).Once()

	ok, err := s.im.IsSupported(ctx, "usdc.token")
	s.NoError(err)
	s.False(ok)

	s.repo.On("Upsert", ctx, enabled).Return(nil).Once()
	s.repo.On("FindOne", ctx, domain.AssetId("usdc.token")).Return(enabled, nil).Once()

	s.NoError(s.im.Add(ctx, enabled))

	ok, err = s.im.IsSupported(ctx, "usdc.token")
	s.NoError(err)
	s.True(ok)

	s.repo.AssertExpectations(s.T())
}
