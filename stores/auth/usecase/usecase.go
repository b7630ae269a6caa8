package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/validator"
	"github.com/mintbay/marketapi/domain"
)

type impl struct {
	jwtSecret []byte
	tokenTtl  time.Duration
}

func New(jwtSecret string, tokenTtl time.Duration) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		tokenTtl:  tokenTtl,
	}
}

func (im *impl) SignToken(ctx ctx.Ctx, cc domain.CallContext) (string, error) {
	if !validator.IsValidAccountId(cc.Predecessor.String()) || !validator.IsValidAccountId(cc.Signer.String()) {
		return "", domain.ErrBadParamInput
	}

	if !cc.Deposit.Valid() {
		return "", domain.ErrInvalidAmountFormat
	}

	claims := domain.JwtCallClaims{
		Predecessor: cc.Predecessor.String(),
		Signer:      cc.Signer.String(),
		Deposit:     cc.Deposit.String(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (*domain.CallContext, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCallClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.JwtCallClaims); ok && token.Valid {
		return &domain.CallContext{
			Predecessor: domain.AccountId(claims.Predecessor),
			Signer:      domain.AccountId(claims.Signer),
			Deposit:     domain.Amount(claims.Deposit),
		}, nil
	}

	return nil, domain.ErrBadParamInput
}
