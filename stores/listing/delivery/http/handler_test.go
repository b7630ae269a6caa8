package http

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/asset"
	astMocks "github.com/mintbay/marketapi/domain/asset/mocks"
)

type saleViewSuite struct {
	suite.Suite

	assetUC *astMocks.UseCase
	h       *handler
}

func TestSaleViewSuite(t *testing.T) {
	suite.Run(t, new(saleViewSuite))
}

func (s *saleViewSuite) SetupTest() {
	s.assetUC = &astMocks.UseCase{}
	s.h = &handler{nil, s.assetUC}
}

func (s *saleViewSuite) TestDisplayConditionsRendersRegisteredAssets() {
	c := ctx.Background()

	s.assetUC.On("Get", mock.Anything, domain.AssetId("usdt.host")).
		Return(&asset.Asset{Id: "usdt.host", Symbol: "USDT", Decimals: 6, Enabled: true}, nil).Once()
	s.assetUC.On("Get", mock.Anything, domain.AssetNative).
		Return(nil, domain.ErrNotFound).Once()

	conditions := map[domain.AssetId]domain.Amount{
		"usdt.host":        "1500000",
		domain.AssetNative: "10000",
	}

	res := s.h.displayConditions(c, conditions)
	s.Require().Len(res, 1)
	s.Equal("1.5", res["usdt.host"])
}

func (s *saleViewSuite) TestDisplayConditionsEmptyWithoutRegisteredAssets() {
	c := ctx.Background()

	s.assetUC.On("Get", mock.Anything, domain.AssetNative).
		Return(nil, domain.ErrNotFound).Once()

	res := s.h.displayConditions(c, map[domain.AssetId]domain.Amount{domain.AssetNative: "10000"})
	s.Nil(res)
}
