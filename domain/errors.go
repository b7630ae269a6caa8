package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAmountFormat = errors.New("invalid amount format")
	ErrAmountUnderflow     = errors.New("amount underflow")

	// call-context preconditions
	ErrOneUnitDeposit      = errors.New("requires attached deposit of exactly one unit")
	ErrZeroDeposit         = errors.New("requires attached deposit")
	ErrCrossContractOnly   = errors.New("caller must be a cross-contract call")
	ErrOwnerSignerMismatch = errors.New("owner does not match signer")
	ErrNotOwner            = errors.New("caller is not the owner")

	// listing / bid conditions
	ErrListingNotFound   = errors.New("listing not found")
	ErrNotForSale        = errors.New("token is not for sale in this asset")
	ErrAssetNotSupported = errors.New("payment asset is not supported")
	ErrBidTooLow         = errors.New("bid must exceed the current highest bid")
	ErrBidNotFound       = errors.New("no such bid")
	ErrBidNotExpirable   = errors.New("bid has no end and cannot be cancelled")
	ErrBidNotExpired     = errors.New("bid has not expired yet")
	ErrOutOfTimeWindow   = errors.New("outside of the sale time window")
	ErrSelfPurchase      = errors.New("cannot bid on or buy your own listing")
	ErrDepositNotAsking  = errors.New("attached deposit does not cover the asking price")

	// auction conditions
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionNotInProgress = errors.New("auction is not in progress")
	ErrAuctionNotEnded      = errors.New("auction has not ended yet")

	// settlement conditions
	ErrSettlementNotFound = errors.New("no pending settlement for this call")
	ErrInvalidPayout      = errors.New("payout does not reconcile with the sale price")
	ErrOwnerPayoutMissing = errors.New("payout is missing the owner entry")

	// storage accounting
	ErrInsufficientStorage = errors.New("insufficient storage deposit")
)
