package deposit

import (
	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
)

// StoragePerSale is the deposit one listing slot costs its owner
const StoragePerSale = domain.Amount("10000000000000000000000")

// StorageDeposit is one account's pre-paid storage balance
type StorageDeposit struct {
	Account domain.AccountId `json:"account" bson:"account"`
	Balance domain.Amount    `json:"balance" bson:"balance"`
}

type Repo interface {
	// FindOne returns a zero balance for unknown accounts
	FindOne(ctx ctx.Ctx, account domain.AccountId) (*StorageDeposit, error)
	Upsert(ctx ctx.Ctx, deposit *StorageDeposit) error
}

type UseCase interface {
	// Deposit is payable and credits the attached deposit to `account`
	// (the caller itself when empty)
	Deposit(ctx ctx.Ctx, cc domain.CallContext, account domain.AccountId) error
	// Withdraw refunds everything above what the caller's live listings
	// occupy
	Withdraw(ctx ctx.Ctx, cc domain.CallContext) error
	Balance(ctx ctx.Ctx, account domain.AccountId) (domain.Amount, error)
	StorageAmount() domain.Amount
	// RequireCoverage checks the owner's balance covers `slots` listing
	// slots, returning domain.ErrInsufficientStorage when it does not
	RequireCoverage(ctx ctx.Ctx, owner domain.AccountId, slots int) error
}
