package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/mintbay/marketapi/base/ctx"
	"github.com/mintbay/marketapi/base/database/mongoclient"
	"github.com/mintbay/marketapi/base/log"
	bValidator "github.com/mintbay/marketapi/base/validator"
	"github.com/mintbay/marketapi/domain"
	escrowDomain "github.com/mintbay/marketapi/domain/escrow"
	mmiddleware "github.com/mintbay/marketapi/middleware"
	"github.com/mintbay/marketapi/service/bank"
	"github.com/mintbay/marketapi/service/ftcontract"
	"github.com/mintbay/marketapi/service/query"
	"github.com/mintbay/marketapi/service/tokencontract"
	asset_delivery "github.com/mintbay/marketapi/stores/asset/delivery/http"
	asset_repository "github.com/mintbay/marketapi/stores/asset/repository"
	asset_usecase "github.com/mintbay/marketapi/stores/asset/usecase"
	auction_delivery "github.com/mintbay/marketapi/stores/auction/delivery/http"
	auction_repository "github.com/mintbay/marketapi/stores/auction/repository"
	auction_usecase "github.com/mintbay/marketapi/stores/auction/usecase"
	auth_delivery "github.com/mintbay/marketapi/stores/auth/delivery/http"
	auth_middleware "github.com/mintbay/marketapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mintbay/marketapi/stores/auth/usecase"
	deposit_delivery "github.com/mintbay/marketapi/stores/deposit/delivery/http"
	deposit_repository "github.com/mintbay/marketapi/stores/deposit/repository"
	deposit_usecase "github.com/mintbay/marketapi/stores/deposit/usecase"
	escrow_delivery "github.com/mintbay/marketapi/stores/escrow/delivery/http"
	escrow_repository "github.com/mintbay/marketapi/stores/escrow/repository"
	escrow_usecase "github.com/mintbay/marketapi/stores/escrow/usecase"
	hc_delivery "github.com/mintbay/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/mintbay/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/mintbay/marketapi/stores/healthcheck/usecase"
	listing_delivery "github.com/mintbay/marketapi/stores/listing/delivery/http"
	listing_repository "github.com/mintbay/marketapi/stores/listing/repository"
	listing_usecase "github.com/mintbay/marketapi/stores/listing/usecase"
	settlement_delivery "github.com/mintbay/marketapi/stores/settlement/delivery/http"
	settlement_repository "github.com/mintbay/marketapi/stores/settlement/repository"
	settlement_usecase "github.com/mintbay/marketapi/stores/settlement/usecase"

	"github.com/mintbay/marketapi/service/cache/provider/primitive"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mmiddleware.SetupCache()

	// init host-side service clients
	httpTimeout := viper.GetDuration("http.timeout")
	hostApiKey := viper.GetString("host.apikey")
	tokenContractClient := tokencontract.NewClient(&tokencontract.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("host.baseUrl"),
		Apikey:     hostApiKey,
	})
	ftClient := ftcontract.NewClient(&ftcontract.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("host.baseUrl"),
		Apikey:     hostApiKey,
	})
	bankClient := bank.NewClient(&bank.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		BaseUrl:    viper.GetString("host.baseUrl"),
		Apikey:     hostApiKey,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, primitive.NewPrimitive("healthcheck", 1))
	assetRepo := asset_repository.NewAssetRepo(q)
	saleRepo := listing_repository.NewSaleRepo(q)
	seriesRepo := listing_repository.NewSeriesRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	depositRepo := deposit_repository.NewStorageDepositRepo(q)
	transferRepo := escrow_repository.NewTransferRepo(q)
	pendingRepo := settlement_repository.NewPendingRepo(q)

	hc := hc_usecase.New(hcRepo)
	assetUC := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		Repo: assetRepo,
	})
	dispatcher := escrow_usecase.NewDispatcher(&escrow_usecase.DispatcherCfg{
		Repo:    transferRepo,
		Bank:    bankClient,
		Ft:      ftClient,
		Workers: viper.GetInt("escrow.workers"),
	})
	defer dispatcher.Close()
	wallet := escrow_usecase.NewWallet(&escrow_usecase.WalletCfg{
		Repo:       transferRepo,
		Dispatcher: dispatcher,
	})
	depositUC := deposit_usecase.New(&deposit_usecase.DepositUseCaseCfg{
		Repo:       depositRepo,
		SaleRepo:   saleRepo,
		SeriesRepo: seriesRepo,
		Wallet:     wallet,
	})
	settlementUC := settlement_usecase.New(&settlement_usecase.SettlementUseCaseCfg{
		PendingRepo:   pendingRepo,
		SaleRepo:      saleRepo,
		SeriesRepo:    seriesRepo,
		TokenContract: tokenContractClient,
		Wallet:        wallet,
		FeeBps:        viper.GetInt64("market.feeBps"),
		FeeRecipient:  domain.AccountId(viper.GetString("market.feeRecipient")),
	})
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		Repo:            auctionRepo,
		SettlementUC:    settlementUC,
		Wallet:          wallet,
		ExtensionWindow: viper.GetDuration("market.auctionExtensionWindow"),
		ExtensionPeriod: viper.GetDuration("market.auctionExtensionPeriod"),
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		SaleRepo:         saleRepo,
		SeriesRepo:       seriesRepo,
		AssetUC:          assetUC,
		DepositUC:        depositUC,
		AuctionUC:        auctionUC,
		SettlementUC:     settlementUC,
		Wallet:           wallet,
		BidHistoryLength: viper.GetInt("market.bidHistoryLength"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetDuration("auth.tokenTtl"))

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, hostApiKey)
	asset_delivery.New(e, assetUC, authMiddleware)
	deposit_delivery.New(e, depositUC, authMiddleware)
	listing_delivery.New(e, listingUC, assetUC, authMiddleware)
	auction_delivery.New(e, auctionUC, authMiddleware)
	settlement_delivery.New(e, settlementUC, authMiddleware)
	escrow_delivery.New(e, transferRepo)

	// redeliver transfers that were queued but not delivered before the last
	// shutdown
	go redeliverUnsent(context, transferRepo, dispatcher)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func redeliverUnsent(context ctx.Ctx, transfers escrowDomain.Repo, dispatcher escrowDomain.Dispatcher) {
	queued, err := transfers.FindAll(context, escrowDomain.WithUnsent(true))
	if err != nil {
		context.WithField("err", err).Error("failed to load unsent transfers")
		return
	}
	for _, transfer := range queued {
		dispatcher.Dispatch(context, transfer)
	}
	if len(queued) > 0 {
		context.WithField("count", len(queued)).Info("redelivering unsent transfers")
	}
}
