package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	cc := domain.CallContext{
		Predecessor: "market.host",
		Signer:      "alice.host",
		Deposit:     domain.Amount("1000"),
	}

	tkn, err := u.SignToken(ctx, cc)
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	parsed, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, &cc, parsed)
}

func TestSignTokenRejectsBadAccount(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)

	cc := domain.CallContext{
		Predecessor: "UPPERCASE",
		Signer:      "alice.host",
		Deposit:     domain.Amount("0"),
	}

	_, err := u.SignToken(ctx, cc)
	assert.Equal(t, domain.ErrBadParamInput, err)
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", time.Hour)
	forger := usecase.New("other-secret", time.Hour)

	tkn, err := forger.SignToken(ctx, domain.CallContext{
		Predecessor: "market.host",
		Signer:      "alice.host",
		Deposit:     domain.Amount("1"),
	})
	assert.NoError(t, err)

	_, err = u.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
