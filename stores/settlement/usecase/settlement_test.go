package usecase

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	escMocks "github.com/mintbay/marketapi/domain/escrow/mocks"
	"github.com/mintbay/marketapi/domain/listing"
	lMocks "github.com/mintbay/marketapi/domain/listing/mocks"
	"github.com/mintbay/marketapi/domain/settlement"
	setMocks "github.com/mintbay/marketapi/domain/settlement/mocks"
	"github.com/mintbay/marketapi/service/tokencontract"
	tokMocks "github.com/mintbay/marketapi/service/tokencontract/mocks"
)

type settlementSuite struct {
	suite.Suite

	pendingRepo   *setMocks.PendingRepo
	saleRepo      *lMocks.Repo
	seriesRepo    *lMocks.SeriesRepo
	tokenContract *tokMocks.Client
	wallet        *escMocks.Wallet
	clock         *clock.Mock
	im            *impl
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(settlementSuite))
}

func (s *settlementSuite) SetupTest() {
	s.pendingRepo = &setMocks.PendingRepo{}
	s.saleRepo = &lMocks.Repo{}
	s.seriesRepo = &lMocks.SeriesRepo{}
	s.tokenContract = &tokMocks.Client{}
	s.wallet = &escMocks.Wallet{}
	s.clock = clock.NewMock()
	s.im = New(&SettlementUseCaseCfg{
		PendingRepo:   s.pendingRepo,
		SaleRepo:      s.saleRepo,
		SeriesRepo:    s.seriesRepo,
		TokenContract: s.tokenContract,
		Wallet:        s.wallet,
		Clock:         s.clock,
		FeeBps:        200,
	}).(*impl)
}

func (s *settlementSuite) nativeSale(bids ...listing.Bid) *listing.Sale {
	b := map[domain.AssetId][]listing.Bid{}
	if len(bids) > 0 {
		b[domain.AssetNative] = bids
	}
	return &listing.Sale{
		Contract:   "nft.host",
		TokenId:    "42",
		Owner:      "alice.host",
		ApprovalId: 7,
		Conditions: map[domain.AssetId]domain.Amount{domain.AssetNative: "10000"},
		Bids:       b,
	}
}

func (s *settlementSuite) pendingPurchase(sale *listing.Sale) *settlement.Pending {
	return &settlement.Pending{
		CallId: "call-1",
		Kind:   settlement.PendingKindPurchase,
		Sale:   sale,
		Buyer:  "bob.host",
		Asset:  domain.AssetNative,
		Price:  "10000",
	}
}

func (s *settlementSuite) TestProcessPurchaseRemovesListingAndIssuesTransfer() {
	ctx := ctx.Background()

	sale := s.nativeSale()
	s.saleRepo.On("Remove", mock.Anything, sale.ToId()).Return(sale, nil).Once()

	var inserted *settlement.Pending
	s.pendingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*settlement.Pending")).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*settlement.Pending)
	}).Return(nil).Once()

	var issued *tokencontract.TransferPayoutReq
	s.tokenContract.On("TransferPayout", mock.Anything, mock.AnythingOfType("*tokencontract.TransferPayoutReq")).Run(func(args mock.Arguments) {
		issued = args.Get(1).(*tokencontract.TransferPayoutReq)
	}).Return(nil).Once()

	callId, err := s.im.ProcessPurchase(ctx, sale.ToId(), domain.AssetNative, "10000", "bob.host")
	s.NoError(err)
	s.saleRepo.AssertExpectations(s.T())
	s.Require().NotNil(inserted)
	s.Equal(callId, inserted.CallId)
	s.Equal(settlement.PendingKindPurchase, inserted.Kind)
	s.Equal(domain.AccountId("bob.host"), inserted.Buyer)

	s.Require().NotNil(issued)
	s.Equal(callId, issued.CallbackId)
	s.Equal(domain.AccountId("nft.host"), issued.Contract)
	s.Equal(domain.TokenId("42"), issued.TokenId)
	s.Equal(domain.AccountId("bob.host"), issued.Receiver)
	s.Equal(uint64(7), issued.ApprovalId)
	s.Equal(domain.Amount("10000"), issued.Balance)
	s.Equal(uint32(settlement.MaxPayoutRecipients), issued.MaxLenPayout)
	s.Equal(tokencontract.GasForNftTransfer, issued.Gas)
	s.Equal(tokencontract.GasForRoyalties, issued.CallbackGas)
}

func (s *settlementSuite) TestResolvePurchaseUnknownCall() {
	ctx := ctx.Background()

	s.pendingRepo.On("Take", mock.Anything, "call-9").Return(nil, domain.ErrSettlementNotFound).Once()

	_, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-9", Success: true})
	s.Equal(domain.ErrSettlementNotFound, err)
}

func (s *settlementSuite) TestResolvePurchaseFailureRefundsBuyerAndBids() {
	ctx := ctx.Background()

	sale := s.nativeSale(listing.Bid{Owner: "carol.host", Price: "900"})
	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(s.pendingPurchase(sale), nil).Once()

	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("carol.host"), domain.Amount("900")).Return(nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("bob.host"), domain.Amount("10000")).Return(nil).Once()

	remainder, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: false})
	s.NoError(err)
	s.Equal(domain.Amount("10000"), remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolvePurchaseRejectsShortPayout() {
	ctx := ctx.Background()

	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(s.pendingPurchase(s.nativeSale()), nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("bob.host"), domain.Amount("10000")).Return(nil).Once()

	// sums to 9000, not the price
	payout := settlement.Payout{"alice.host": "8000", "artist.host": "1000"}
	remainder, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: true, Payout: payout})
	s.NoError(err)
	s.Equal(domain.Amount("10000"), remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolvePurchaseDisbursesPayoutLessFee() {
	ctx := ctx.Background()

	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(s.pendingPurchase(s.nativeSale()), nil).Once()

	// 200 bps of 10000 comes out of the owner's 9000 share
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("alice.host"), domain.Amount("8800")).Return(nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("artist.host"), domain.Amount("1000")).Return(nil).Once()

	payout := settlement.Payout{"alice.host": "9000", "artist.host": "1000"}
	remainder, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: true, Payout: payout})
	s.NoError(err)
	s.Equal(domain.AmountZero, remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolvePurchasePaysFeeRecipient() {
	ctx := ctx.Background()

	s.im.feeRecipient = "treasury.host"
	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(s.pendingPurchase(s.nativeSale()), nil).Once()

	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("alice.host"), domain.Amount("9800")).Return(nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("treasury.host"), domain.Amount("200")).Return(nil).Once()

	payout := settlement.Payout{"alice.host": "10000"}
	remainder, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: true, Payout: payout})
	s.NoError(err)
	s.Equal(domain.AmountZero, remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolvePurchaseMissingOwnerEntry() {
	ctx := ctx.Background()

	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(s.pendingPurchase(s.nativeSale()), nil).Once()

	payout := settlement.Payout{"artist.host": "10000"}
	_, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: true, Payout: payout})
	s.Equal(domain.ErrOwnerPayoutMissing, err)
}

func (s *settlementSuite) TestResolvePurchaseFungibleFailureKeepsRemainder() {
	ctx := ctx.Background()

	pending := s.pendingPurchase(s.nativeSale())
	pending.Asset = "usdt.host"
	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(pending, nil).Once()

	// no refund leg: the fungible transfer back to the buyer is covered by
	// the returned remainder
	remainder, err := s.im.ResolvePurchase(ctx, settlement.CallResult{CallId: "call-1", Success: false})
	s.NoError(err)
	s.Equal(domain.Amount("10000"), remainder)
	s.wallet.AssertNotCalled(s.T(), "TransferNative", mock.Anything, mock.Anything, mock.Anything)
}

func (s *settlementSuite) seriesSale(copies uint64) *listing.SeriesSale {
	return &listing.SeriesSale{
		Contract:   "nft.host",
		SeriesId:   "series-1",
		Owner:      "alice.host",
		Conditions: map[domain.AssetId]domain.Amount{domain.AssetNative: "5000"},
		Copies:     copies,
	}
}

func (s *settlementSuite) TestProcessMintPurchaseDecrementsCopies() {
	ctx := ctx.Background()

	sale := s.seriesSale(3)
	s.seriesRepo.On("FindOne", mock.Anything, sale.ToId()).Return(sale, nil).Once()

	var updated *listing.SeriesSale
	s.seriesRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*listing.SeriesSale")).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*listing.SeriesSale)
	}).Return(nil).Once()

	var inserted *settlement.Pending
	s.pendingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*settlement.Pending")).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*settlement.Pending)
	}).Return(nil).Once()

	var issued *tokencontract.MintReq
	s.tokenContract.On("Mint", mock.Anything, mock.AnythingOfType("*tokencontract.MintReq")).Run(func(args mock.Arguments) {
		issued = args.Get(1).(*tokencontract.MintReq)
	}).Return(nil).Once()

	cc := domain.CallContext{Predecessor: "bob.host", Signer: "bob.host", Deposit: "5000"}
	callId, err := s.im.ProcessMintPurchase(ctx, cc, sale.ToId())
	s.NoError(err)
	s.Equal(uint64(2), updated.Copies)
	s.Equal(settlement.PendingKindMint, inserted.Kind)
	s.Equal(domain.Amount("5000"), inserted.Deposit)
	s.Equal(callId, issued.CallbackId)
	s.Equal("series-1", issued.SeriesId)
	s.Equal(tokencontract.GasForMint, issued.Gas)
}

func (s *settlementSuite) TestProcessMintPurchaseLastCopyRemovesSale() {
	ctx := ctx.Background()

	sale := s.seriesSale(1)
	s.seriesRepo.On("FindOne", mock.Anything, sale.ToId()).Return(sale, nil).Once()
	s.seriesRepo.On("Remove", mock.Anything, sale.ToId()).Return(sale, nil).Once()
	s.pendingRepo.On("Insert", mock.Anything, mock.AnythingOfType("*settlement.Pending")).Return(nil).Once()
	s.tokenContract.On("Mint", mock.Anything, mock.AnythingOfType("*tokencontract.MintReq")).Return(nil).Once()

	cc := domain.CallContext{Predecessor: "bob.host", Signer: "bob.host", Deposit: "5000"}
	_, err := s.im.ProcessMintPurchase(ctx, cc, sale.ToId())
	s.NoError(err)
	s.seriesRepo.AssertExpectations(s.T())
	s.seriesRepo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *settlementSuite) TestProcessMintPurchaseDepositMustMatchPrice() {
	ctx := ctx.Background()

	sale := s.seriesSale(3)
	s.seriesRepo.On("FindOne", mock.Anything, sale.ToId()).Return(sale, nil).Once()

	cc := domain.CallContext{Predecessor: "bob.host", Signer: "bob.host", Deposit: "4000"}
	_, err := s.im.ProcessMintPurchase(ctx, cc, sale.ToId())
	s.Equal(domain.ErrDepositNotAsking, err)
}

func (s *settlementSuite) TestProcessMintPurchaseRejectsOwner() {
	ctx := ctx.Background()

	sale := s.seriesSale(3)
	s.seriesRepo.On("FindOne", mock.Anything, sale.ToId()).Return(sale, nil).Once()

	cc := domain.CallContext{Predecessor: "alice.host", Signer: "alice.host", Deposit: "5000"}
	_, err := s.im.ProcessMintPurchase(ctx, cc, sale.ToId())
	s.Equal(domain.ErrSelfPurchase, err)
}

func (s *settlementSuite) TestResolveTokenBuyFailureRefundsDeposit() {
	ctx := ctx.Background()

	pending := &settlement.Pending{
		CallId:  "call-2",
		Kind:    settlement.PendingKindMint,
		Sale:    &listing.Sale{Contract: "nft.host", Owner: "alice.host"},
		Buyer:   "bob.host",
		Asset:   domain.AssetNative,
		Price:   "5000",
		Deposit: "5000",
	}
	s.pendingRepo.On("Take", mock.Anything, "call-2").Return(pending, nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("bob.host"), domain.Amount("5000")).Return(nil).Once()

	remainder, err := s.im.ResolveTokenBuy(ctx, settlement.CallResult{CallId: "call-2", Success: false})
	s.NoError(err)
	s.Equal(domain.Amount("5000"), remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolveTokenBuyDisbursesPayout() {
	ctx := ctx.Background()

	pending := &settlement.Pending{
		CallId:  "call-2",
		Kind:    settlement.PendingKindMint,
		Sale:    &listing.Sale{Contract: "nft.host", Owner: "alice.host"},
		Buyer:   "bob.host",
		Asset:   domain.AssetNative,
		Price:   "5000",
		Deposit: "5000",
	}
	s.pendingRepo.On("Take", mock.Anything, "call-2").Return(pending, nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("alice.host"), domain.Amount("4900")).Return(nil).Once()

	payout := settlement.Payout{"alice.host": "5000"}
	remainder, err := s.im.ResolveTokenBuy(ctx, settlement.CallResult{CallId: "call-2", Success: true, Payout: payout})
	s.NoError(err)
	s.Equal(domain.AmountZero, remainder)
	s.wallet.AssertExpectations(s.T())
}

func (s *settlementSuite) TestResolveKindMismatch() {
	ctx := ctx.Background()

	pending := s.pendingPurchase(s.nativeSale())
	s.pendingRepo.On("Take", mock.Anything, "call-1").Return(pending, nil).Once()

	_, err := s.im.ResolveTokenBuy(ctx, settlement.CallResult{CallId: "call-1", Success: true})
	s.Equal(domain.ErrSettlementNotFound, err)
}
