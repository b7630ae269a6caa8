package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

// Table is a mongo collection name
type Table string

const (
	TableSales           Table = "sales"
	TableSeriesSales     Table = "series_sales"
	TableAuctions        Table = "auctions"
	TableAssets          Table = "assets"
	TableStorageDeposits Table = "storage_deposits"
	TableSettlements     Table = "pending_settlements"
	TableTransfers       Table = "transfers"
	TableCounters        Table = "counters"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// AccountId identifies an account or a contract on the host chain
type AccountId string

func (a AccountId) String() string {
	return string(a)
}

func (a AccountId) IsEmpty() bool {
	return len(a) == 0
}

func (a AccountId) Equals(b AccountId) bool {
	return a == b
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// AssetId identifies a payment asset. The platform's native currency is
// AssetNative, everything else is the account id of a fungible token contract.
type AssetId string

const AssetNative = AssetId("native")

func (a AssetId) IsNative() bool {
	return a == AssetNative
}

// listingKeyDelimiter joins contract and token id into one listing key.
// Account ids cannot contain it so the join is unambiguous.
const listingKeyDelimiter = "||"

type ListingKey string

func MakeListingKey(contract AccountId, tokenId TokenId) ListingKey {
	return ListingKey(string(contract) + listingKeyDelimiter + string(tokenId))
}

func (k ListingKey) Split() (AccountId, TokenId, error) {
	parts := strings.SplitN(string(k), listingKeyDelimiter, 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return "", "", xerrors.Errorf("malformed listing key %q", string(k))
	}
	return AccountId(parts[0]), TokenId(parts[1]), nil
}

func (k ListingKey) String() string {
	return string(k)
}

// Amount is an indivisible-unit balance carried as a base-10 string, since
// balances routinely exceed uint64. Arithmetic goes through big.Int.
type Amount string

const AmountZero = Amount("0")

// OneUnit is the single indivisible unit attached to state-changing calls
// that move no value of their own.
const OneUnit = Amount("1")

func AmountFromBigInt(i *big.Int) Amount {
	return Amount(i.String())
}

func (a Amount) BigInt() (*big.Int, error) {
	i, ok := new(big.Int).SetString(string(a), 10)
	if !ok || i.Sign() < 0 {
		return nil, ErrInvalidAmountFormat
	}
	return i, nil
}

func (a Amount) Valid() bool {
	_, err := a.BigInt()
	return err == nil
}

func (a Amount) IsZero() bool {
	i, err := a.BigInt()
	return err == nil && i.Sign() == 0
}

// Cmp returns -1, 0 or 1 like big.Int.Cmp
func (a Amount) Cmp(b Amount) (int, error) {
	ai, err := a.BigInt()
	if err != nil {
		return 0, err
	}
	bi, err := b.BigInt()
	if err != nil {
		return 0, err
	}
	return ai.Cmp(bi), nil
}

func (a Amount) Add(b Amount) (Amount, error) {
	ai, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bi, err := b.BigInt()
	if err != nil {
		return "", err
	}
	return AmountFromBigInt(new(big.Int).Add(ai, bi)), nil
}

// Sub errors if the result would be negative
func (a Amount) Sub(b Amount) (Amount, error) {
	ai, err := a.BigInt()
	if err != nil {
		return "", err
	}
	bi, err := b.BigInt()
	if err != nil {
		return "", err
	}
	res := new(big.Int).Sub(ai, bi)
	if res.Sign() < 0 {
		return "", ErrAmountUnderflow
	}
	return AmountFromBigInt(res), nil
}

func (a Amount) String() string {
	return string(a)
}

// CallContext carries the host-verified identity and attached deposit of one
// inbound call: Predecessor is the account that made the call (a contract for
// forwarded calls), Signer is the account that signed the transaction.
type CallContext struct {
	Predecessor AccountId `json:"predecessor"`
	Signer      AccountId `json:"signer"`
	Deposit     Amount    `json:"deposit"`
}

// RequireOneUnit enforces the exactly-one-unit attachment on state-changing
// calls that move no value of their own.
func (cc CallContext) RequireOneUnit() error {
	if cmp, err := cc.Deposit.Cmp(OneUnit); err != nil {
		return ErrInvalidAmountFormat
	} else if cmp != 0 {
		return ErrOneUnitDeposit
	}
	return nil
}

func (cc CallContext) RequireDeposit() error {
	if i, err := cc.Deposit.BigInt(); err != nil {
		return ErrInvalidAmountFormat
	} else if i.Sign() <= 0 {
		return ErrZeroDeposit
	}
	return nil
}

// RequireCrossContract enforces that the call was forwarded by another
// contract rather than invoked directly by the signer.
func (cc CallContext) RequireCrossContract() error {
	if cc.Predecessor == cc.Signer {
		return ErrCrossContractOnly
	}
	return nil
}
