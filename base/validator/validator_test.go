package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAccountId() {
	tests := []struct {
		desc       string
		account    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			account:    "a",
			expIsValid: false,
		},
		{
			desc:       "valid top level account",
			account:    "marketplace",
			expIsValid: true,
		},
		{
			desc:       "valid sub account",
			account:    "alice.tokens.market-1",
			expIsValid: true,
		},
		{
			desc:       "upper case not allowed",
			account:    "Alice.market",
			expIsValid: false,
		},
		{
			desc:       "dangling separator",
			account:    "alice-.market",
			expIsValid: false,
		},
		{
			desc:       "empty segment",
			account:    "alice..market",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAccountId(t.account), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
