package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/streetbits/bitsquare/internal/config"
	"github.com/streetbits/bitsquare/internal/core/application"
	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/streetbits/bitsquare/internal/infrastructure/explorer/esplora"
	"github.com/streetbits/bitsquare/internal/infrastructure/identity"
	krakenfeed "github.com/streetbits/bitsquare/internal/infrastructure/pricefeed/kraken"
	webhookpublisher "github.com/streetbits/bitsquare/internal/infrastructure/publisher/webhook"
	"github.com/streetbits/bitsquare/internal/infrastructure/static"
	"github.com/streetbits/bitsquare/pkg/stats"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "bisq offer CLI"
	app.Usage = "Command line interface for creating and managing Bisq offers"
	app.Before = initConfig
	app.After = dumpStats
	app.Commands = append(
		app.Commands,
		&configCmd,
		&feeCmd,
		&makeOfferCmd,
		&getOfferCmd,
		&listOffersCmd,
		&publishOfferCmd,
		&cancelOfferCmd,
		&addAccountCmd,
		&removeAccountCmd,
		&listAccountsCmd,
		&walletAddressesCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func initConfig(_ *cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	return nil
}

func dumpStats(_ *cli.Context) error {
	if !config.GetBool(config.EnableProfilerKey) {
		return nil
	}
	stats.PrintMemoryStatistics()
	return stats.DumpPrometheusDefaults(
		filepath.Join(config.GetDatadir(), config.ProfilerLocation),
	)
}

// getAppConfig wires the application services to the configured adapters.
// The returned cleanup func releases the db and the price feed.
func getAppConfig() (*application.Config, func(), error) {
	datadir := config.GetDatadir()

	nodeAddress, err := domain.NewNodeAddress(config.GetString(config.NodeAddressKey))
	if err != nil {
		return nil, nil, err
	}
	networkIdentity, err := identity.NewIdentity(
		filepath.Join(datadir, config.IdentityLocation), nodeAddress,
	)
	if err != nil {
		return nil, nil, err
	}

	chainInfo, err := esplora.NewService(
		config.GetString(config.EsploraURLKey),
		config.GetInt(config.ConfirmationTargetKey),
		config.GetDuration(config.ExplorerTimeoutKey),
	)
	if err != nil {
		return nil, nil, err
	}

	arbitration, err := static.NewArbitration(
		config.GetStringSlice(config.ArbitratorsKey),
		config.GetStringSlice(config.MediatorsKey),
	)
	if err != nil {
		return nil, nil, err
	}

	endpoints, err := webhookpublisher.ParseEndpoints(
		config.GetStringSlice(config.PublishEndpointsKey),
		config.GetString(config.PublishSecretKey),
	)
	if err != nil {
		return nil, nil, err
	}
	publisherOpts := webhookpublisher.Options{
		Endpoints:      endpoints,
		RequestTimeout: config.GetDuration(config.PublishTimeoutKey),
		RateLimit:      config.GetInt(config.PublishRateLimitKey),
	}

	priceFeed, stopPriceFeed, err := getPriceFeed()
	if err != nil {
		return nil, nil, err
	}

	appConfig := &application.Config{
		DBType:    config.GetString(config.DBTypeKey),
		DBConfig:  filepath.Join(datadir, config.DbLocation),
		FeeParams: config.GetFeeParams(),
		TxSize:    config.GetInt(config.TxSizeKey),
		Collaborators: offer.Collaborators{
			PriceFeed:       priceFeed,
			AlternateWallet: static.NewAlternateWallet(config.GetBsqBalance()),
			Preferences: static.NewPreferences(
				config.GetBool(config.PayFeeInBtcKey),
				config.GetUint64(config.BuyerSecurityDepositKey),
			),
			ChainInfo:   chainInfo,
			TradeLimits: static.NewTradeLimits(),
			Identity:    networkIdentity,
			Arbitration: arbitration,
		},
		PublisherFactory: func(repo ports.RepoManager) (ports.OfferPublisher, error) {
			return webhookpublisher.NewOfferBookPublisher(
				repo.OfferRepository(), publisherOpts,
			)
		},
	}

	if err := appConfig.Validate(); err != nil {
		stopPriceFeed()
		return nil, nil, err
	}

	cleanup := func() {
		stopPriceFeed()
		appConfig.RepoManager().Close()
	}

	return appConfig, cleanup, nil
}

func getPriceFeed() (ports.PriceFeed, func(), error) {
	if config.GetString(config.PriceFeedKey) != config.PriceFeedKraken {
		priceFeed, err := static.NewPriceFeed(
			config.GetStringSlice(config.MarketPricesKey),
		)
		return priceFeed, func() {}, err
	}

	priceFeed, err := krakenfeed.NewService(
		config.GetString(config.PriceFeedURLKey),
		config.GetStringSlice(config.PriceFeedCurrenciesKey),
		config.GetDuration(config.PriceFeedTimeoutKey),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := priceFeed.Start(); err != nil {
		return nil, nil, err
	}
	return priceFeed, priceFeed.Stop, nil
}

func printJSON(resp interface{}) {
	jsonStr, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}

	fmt.Println(string(jsonStr))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[bisq-offer] %v\n", err)
	}
	os.Exit(1)
}
