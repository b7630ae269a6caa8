package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/mintbay/marketapi/base/ctx"
)

// JwtCallClaims carries the verified call context issued by the host
// gateway. Every mutating endpoint requires one.
type JwtCallClaims struct {
	Predecessor string `json:"predecessor"`
	Signer      string `json:"signer"`
	Deposit     string `json:"deposit"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, cc CallContext) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (*CallContext, error)
}
