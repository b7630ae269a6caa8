package usecase

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/domain"
	"github.com/mintbay/marketapi/domain/escrow"
	"github.com/mintbay/marketapi/domain/escrow/mocks"
	"github.com/mintbay/marketapi/service/bank"
	bankMocks "github.com/mintbay/marketapi/service/bank/mocks"
	"github.com/mintbay/marketapi/service/ftcontract"
	ftMocks "github.com/mintbay/marketapi/service/ftcontract/mocks"
)

type walletSuite struct {
	suite.Suite

	repo       *mocks.Repo
	dispatcher *mocks.Dispatcher
	clock      *clock.Mock
	im         *walletImpl
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.dispatcher = &mocks.Dispatcher{}
	s.clock = clock.NewMock()
	s.im = NewWallet(&WalletCfg{
		Repo:       s.repo,
		Dispatcher: s.dispatcher,
		Clock:      s.clock,
	}).(*walletImpl)
}

func (s *walletSuite) TestZeroAmountIsDropped() {
	ctx := ctx.Background()

	s.NoError(s.im.TransferNative(ctx, "alice.host", domain.AmountZero))

	s.repo.AssertNotCalled(s.T(), "Insert")
	s.dispatcher.AssertNotCalled(s.T(), "Dispatch")
}

func (s *walletSuite) TestInvalidAmountIsRejected() {
	ctx := ctx.Background()

	err := s.im.TransferNative(ctx, "alice.host", domain.Amount("not-a-number"))
	s.Equal(domain.ErrInvalidAmountFormat, err)
}

func (s *walletSuite) TestNativeTransferIsQueuedThenDispatched() {
	ctx := ctx.Background()

	var queued *escrow.Transfer
	s.repo.On("Insert", ctx, mock.AnythingOfType("*escrow.Transfer")).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*escrow.Transfer)
	}).Return(nil).Once()
	s.dispatcher.On("Dispatch", ctx, mock.AnythingOfType("*escrow.Transfer")).Once()

	s.NoError(s.im.TransferNative(ctx, "alice.host", domain.Amount("1000")))

	s.Require().NotNil(queued)
	s.Equal(escrow.TransferKindNative, queued.Kind)
	s.Equal(domain.AssetNative, queued.Asset)
	s.Equal(domain.AccountId("alice.host"), queued.Recipient)
	s.Equal(domain.Amount("1000"), queued.Amount)
	s.Equal(s.clock.Now(), queued.QueuedAt)
	s.NotEmpty(queued.Id)

	s.repo.AssertExpectations(s.T())
	s.dispatcher.AssertExpectations(s.T())
}

func (s *walletSuite) TestFungibleTransferCarriesGas() {
	ctx := ctx.Background()

	var queued *escrow.Transfer
	s.repo.On("Insert", ctx, mock.AnythingOfType("*escrow.Transfer")).Run(func(args mock.Arguments) {
		queued = args.Get(1).(*escrow.Transfer)
	}).Return(nil).Once()
	s.dispatcher.On("Dispatch", ctx, mock.AnythingOfType("*escrow.Transfer")).Once()

	s.NoError(s.im.TransferFungible(ctx, "usdc.token", "bob.host", domain.Amount("500")))

	s.Require().NotNil(queued)
	s.Equal(escrow.TransferKindFungible, queued.Kind)
	s.Equal(domain.AssetId("usdc.token"), queued.Asset)
	s.Equal(ftcontract.GasForFtTransfer, queued.Gas)
}

type dispatcherSuite struct {
	suite.Suite

	repo  *mocks.Repo
	bank  *bankMocks.Client
	ft    *ftMocks.Client
	clock *clock.Mock
	im    *dispatcherImpl
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(dispatcherSuite))
}

func (s *dispatcherSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.bank = &bankMocks.Client{}
	s.ft = &ftMocks.Client{}
	s.clock = clock.NewMock()
	s.im = NewDispatcher(&DispatcherCfg{
		Repo:    s.repo,
		Bank:    s.bank,
		Ft:      s.ft,
		Clock:   s.clock,
		Workers: 1,
	}).(*dispatcherImpl)
}

func (s *dispatcherSuite) TearDownTest() {
	s.im.Close()
}

func (s *dispatcherSuite) TestNativeTransferGoesThroughBank() {
	ctx := ctx.Background()

	transfer := &escrow.Transfer{
		Id:        "t-1",
		Kind:      escrow.TransferKindNative,
		Asset:     domain.AssetNative,
		Recipient: "alice.host",
		Amount:    domain.Amount("1000"),
	}

	done := make(chan struct{})
	s.bank.On("Transfer", ctx, &bank.TransferReq{Receiver: "alice.host", Amount: domain.Amount("1000")}).Return(nil).Once()
	s.repo.On("MarkSent", ctx, "t-1", s.clock.Now()).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil).Once()

	s.im.Dispatch(ctx, transfer)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("transfer was not delivered")
	}

	s.bank.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
}

func (s *dispatcherSuite) TestFungibleTransferGoesThroughTokenContract() {
	ctx := ctx.Background()

	transfer := &escrow.Transfer{
		Id:        "t-2",
		Kind:      escrow.TransferKindFungible,
		Asset:     "usdc.token",
		Recipient: "bob.host",
		Amount:    domain.Amount("500"),
		Gas:       ftcontract.GasForFtTransfer,
	}

	done := make(chan struct{})
	s.ft.On("Transfer", ctx, &ftcontract.TransferReq{
		Asset:    "usdc.token",
		Receiver: "bob.host",
		Amount:   domain.Amount("500"),
		Gas:      ftcontract.GasForFtTransfer,
	}).Return(nil).Once()
	s.repo.On("MarkSent", ctx, "t-2", s.clock.Now()).Run(func(mock.Arguments) {
		close(done)
	}).Return(nil).Once()

	s.im.Dispatch(ctx, transfer)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("transfer was not delivered")
	}
}

func (s *dispatcherSuite) TestFailedDeliveryStaysQueued() {
	ctx := ctx.Background()

	transfer := &escrow.Transfer{
		Id:        "t-3",
		Kind:      escrow.TransferKindNative,
		Recipient: "alice.host",
		Amount:    domain.Amount("1000"),
	}

	done := make(chan struct{})
	s.bank.On("Transfer", ctx, mock.Anything).Run(func(mock.Arguments) {
		close(done)
	}).Return(bank.ErrStatusCodeNotOk).Once()

	s.im.Dispatch(ctx, transfer)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("transfer was not attempted")
	}

	s.repo.AssertNotCalled(s.T(), "MarkSent")
}
