package usecase

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/auction"
	aucMocks "github.com/mintbay/marketapi/domain/auction/mocks"
	escMocks "github.com/mintbay/marketapi/domain/escrow/mocks"
	"github.com/mintbay/marketapi/domain/listing"
	setMocks "github.com/mintbay/marketapi/domain/settlement/mocks"
)

type auctionSuite struct {
	suite.Suite

	repo         *aucMocks.Repo
	settlementUC *setMocks.UseCase
	wallet       *escMocks.Wallet
	clock        *clock.Mock
	im           *impl
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) SetupTest() {
	s.repo = &aucMocks.Repo{}
	s.settlementUC = &setMocks.UseCase{}
	s.wallet = &escMocks.Wallet{}
	s.clock = clock.NewMock()
	s.im = New(&AuctionUseCaseCfg{
		Repo:         s.repo,
		SettlementUC: s.settlementUC,
		Wallet:       s.wallet,
		Clock:        s.clock,
	}).(*impl)
}

func (s *auctionSuite) runningAuction() *auction.Auction {
	start := s.clock.Now()
	end := start.Add(time.Hour)
	return &auction.Auction{
		Id:          3,
		Contract:    "nft.host",
		TokenId:     "42",
		Owner:       "alice.host",
		ApprovalId:  7,
		StartPrice:  "1000",
		MinimalStep: "100",
		Start:       start,
		Duration:    time.Hour,
		End:         &end,
	}
}

func (s *auctionSuite) call(account domain.AccountId, deposit domain.Amount) domain.CallContext {
	return domain.CallContext{Predecessor: account, Signer: account, Deposit: deposit}
}

func (s *auctionSuite) TestStartStoresAuction() {
	ctx := ctx.Background()

	s.repo.On("NextId", mock.Anything).Return(uint64(3), nil).Once()

	var stored *auction.Auction
	s.repo.On("Upsert", mock.Anything, mock.AnythingOfType("*auction.Auction")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*auction.Auction)
	}).Return(nil).Once()

	args := listing.AuctionArgs{
		StartPrice:  "1000",
		MinimalStep: "100",
		Start:       s.clock.Now(),
		Duration:    time.Hour,
	}
	a, err := s.im.Start(ctx, "nft.host", "42", "alice.host", 7, args)
	s.NoError(err)
	s.Equal(uint64(3), a.Id)
	s.repo.AssertExpectations(s.T())
	s.Require().NotNil(stored.End)
	s.Equal(args.Start.Add(time.Hour), *stored.End)
	s.Nil(stored.Bid)
}

func (s *auctionSuite) TestStartRejectsBadArgs() {
	ctx := ctx.Background()

	args := listing.AuctionArgs{StartPrice: "1000", MinimalStep: "100", Start: s.clock.Now()}
	_, err := s.im.Start(ctx, "nft.host", "42", "alice.host", 7, args)
	s.Equal(domain.ErrBadParamInput, err)

	args = listing.AuctionArgs{StartPrice: "abc", MinimalStep: "100", Start: s.clock.Now(), Duration: time.Hour}
	_, err = s.im.Start(ctx, "nft.host", "42", "alice.host", 7, args)
	s.Equal(domain.ErrInvalidAmountFormat, err)

	buyOut := domain.Amount("500")
	args = listing.AuctionArgs{StartPrice: "1000", MinimalStep: "100", Start: s.clock.Now(), Duration: time.Hour, BuyOutPrice: &buyOut}
	_, err = s.im.Start(ctx, "nft.host", "42", "alice.host", 7, args)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *auctionSuite) TestPlaceBidBelowStartPrice() {
	ctx := ctx.Background()

	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(s.runningAuction(), nil).Once()

	s.Equal(domain.ErrBidTooLow, s.im.PlaceBid(ctx, s.call("bob.host", "900"), 3))
}

func (s *auctionSuite) TestPlaceBidBelowMinimalStep() {
	ctx := ctx.Background()

	a := s.runningAuction()
	a.Bid = &listing.Bid{Owner: "bob.host", Price: "1000"}
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	// next acceptable bid is 1100
	s.Equal(domain.ErrBidTooLow, s.im.PlaceBid(ctx, s.call("carol.host", "1050"), 3))
}

func (s *auctionSuite) TestPlaceBidRefundsDisplacedBid() {
	ctx := ctx.Background()

	a := s.runningAuction()
	a.Bid = &listing.Bid{Owner: "bob.host", Price: "1000"}
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	var stored *auction.Auction
	s.repo.On("Upsert", mock.Anything, mock.AnythingOfType("*auction.Auction")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*auction.Auction)
	}).Return(nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("bob.host"), domain.Amount("1000")).Return(nil).Once()

	s.NoError(s.im.PlaceBid(ctx, s.call("carol.host", "1100"), 3))
	s.wallet.AssertExpectations(s.T())
	s.Require().NotNil(stored.Bid)
	s.Equal(domain.AccountId("carol.host"), stored.Bid.Owner)
	s.Equal(domain.Amount("1100"), stored.Bid.Price)
}

func (s *auctionSuite) TestPlaceBidRejectsOwner() {
	ctx := ctx.Background()

	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(s.runningAuction(), nil).Once()

	s.Equal(domain.ErrSelfPurchase, s.im.PlaceBid(ctx, s.call("alice.host", "1000"), 3))
}

func (s *auctionSuite) TestPlaceBidOutsideWindow() {
	ctx := ctx.Background()

	a := s.runningAuction()
	s.clock.Add(2 * time.Hour)
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	s.Equal(domain.ErrAuctionNotInProgress, s.im.PlaceBid(ctx, s.call("bob.host", "1000"), 3))
}

func (s *auctionSuite) TestPlaceBidNearEndExtendsAuction() {
	ctx := ctx.Background()

	a := s.runningAuction()
	end := *a.End
	s.clock.Add(50 * time.Minute)
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	var stored *auction.Auction
	s.repo.On("Upsert", mock.Anything, mock.AnythingOfType("*auction.Auction")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*auction.Auction)
	}).Return(nil).Once()

	s.NoError(s.im.PlaceBid(ctx, s.call("bob.host", "1000"), 3))
	s.Require().NotNil(stored.End)
	s.Equal(end.Add(DefaultExtensionPeriod), *stored.End)
}

func (s *auctionSuite) TestPlaceBidAtBuyOutSettlesImmediately() {
	ctx := ctx.Background()

	a := s.runningAuction()
	buyOut := domain.Amount("5000")
	a.BuyOutPrice = &buyOut
	a.Bid = &listing.Bid{Owner: "bob.host", Price: "1000"}
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()
	s.repo.On("Remove", mock.Anything, uint64(3)).Return(a, nil).Once()
	s.wallet.On("TransferNative", mock.Anything, domain.AccountId("bob.host"), domain.Amount("1000")).Return(nil).Once()

	var settled *listing.Sale
	s.settlementUC.On("SettleRemoved", mock.Anything, mock.AnythingOfType("*listing.Sale"), domain.AssetNative, domain.Amount("5000"), domain.AccountId("carol.host")).
		Run(func(args mock.Arguments) {
			settled = args.Get(1).(*listing.Sale)
		}).Return("call-1", nil).Once()

	s.NoError(s.im.PlaceBid(ctx, s.call("carol.host", "5000"), 3))
	s.repo.AssertExpectations(s.T())
	s.wallet.AssertExpectations(s.T())
	s.Equal(domain.AccountId("nft.host"), settled.Contract)
	s.Equal(domain.TokenId("42"), settled.TokenId)
	s.Equal(domain.AccountId("alice.host"), settled.Owner)
	s.Empty(settled.Bids)
}

func (s *auctionSuite) TestFinalizeBeforeEnd() {
	ctx := ctx.Background()

	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(s.runningAuction(), nil).Once()

	s.Equal(domain.ErrAuctionNotEnded, s.im.Finalize(ctx, 3))
}

func (s *auctionSuite) TestFinalizeWithoutBidsJustCloses() {
	ctx := ctx.Background()

	a := s.runningAuction()
	s.clock.Add(2 * time.Hour)
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()
	s.repo.On("Remove", mock.Anything, uint64(3)).Return(a, nil).Once()

	s.NoError(s.im.Finalize(ctx, 3))
	s.repo.AssertExpectations(s.T())
	s.settlementUC.AssertNotCalled(s.T(), "SettleRemoved", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *auctionSuite) TestFinalizeSettlesWithHighestBidder() {
	ctx := ctx.Background()

	a := s.runningAuction()
	a.Bid = &listing.Bid{Owner: "bob.host", Price: "1200"}
	s.clock.Add(2 * time.Hour)
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()
	s.repo.On("Remove", mock.Anything, uint64(3)).Return(a, nil).Once()

	s.settlementUC.On("SettleRemoved", mock.Anything, mock.AnythingOfType("*listing.Sale"), domain.AssetNative, domain.Amount("1200"), domain.AccountId("bob.host")).
		Return("call-1", nil).Once()

	s.NoError(s.im.Finalize(ctx, 3))
	s.settlementUC.AssertExpectations(s.T())
}

func (s *auctionSuite) TestCurrentBuyer() {
	ctx := ctx.Background()

	a := s.runningAuction()
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	buyer, err := s.im.CurrentBuyer(ctx, 3)
	s.NoError(err)
	s.Nil(buyer)

	a.Bid = &listing.Bid{Owner: "bob.host", Price: "1000"}
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Once()

	buyer, err = s.im.CurrentBuyer(ctx, 3)
	s.NoError(err)
	s.Require().NotNil(buyer)
	s.Equal(domain.AccountId("bob.host"), *buyer)
}

func (s *auctionSuite) TestCheckInProgress() {
	ctx := ctx.Background()

	a := s.runningAuction()
	s.repo.On("FindOne", mock.Anything, uint64(3)).Return(a, nil).Twice()

	inProgress, err := s.im.CheckInProgress(ctx, 3)
	s.NoError(err)
	s.True(inProgress)

	s.clock.Add(2 * time.Hour)
	inProgress, err = s.im.CheckInProgress(ctx, 3)
	s.NoError(err)
	s.False(inProgress)
}
