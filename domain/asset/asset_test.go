package asset

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type assetSuite struct {
	suite.Suite
}

func TestAssetSuite(t *testing.T) {
	suite.Run(t, new(assetSuite))
}

func (s *assetSuite) TestDisplayPrice() {
	a := &Asset{Id: "usdt.host", Symbol: "USDT", Decimals: 6, Enabled: true}

	display, err := a.DisplayPrice("1500000")
	s.NoError(err)
	s.Equal("1.5", display)

	display, err = a.DisplayPrice("999")
	s.NoError(err)
	s.Equal("0.000999", display)

	// zero decimals pass the amount through unscaled
	points := &Asset{Id: "points.host", Symbol: "PTS", Enabled: true}
	display, err = points.DisplayPrice("42")
	s.NoError(err)
	s.Equal("42", display)
}

func (s *assetSuite) TestDisplayPriceRejectsMalformedAmount() {
	a := &Asset{Id: "usdt.host", Symbol: "USDT", Decimals: 6, Enabled: true}

	_, err := a.DisplayPrice("12e4")
	s.Error(err)
}
