package application_test

import (
	"context"
	"testing"

	"github.com/streetbits/bitsquare/internal/core/application"
	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/streetbits/bitsquare/internal/infrastructure/explorer/esplora"
	"github.com/streetbits/bitsquare/internal/infrastructure/identity"
	webhookpublisher "github.com/streetbits/bitsquare/internal/infrastructure/publisher/webhook"
	"github.com/streetbits/bitsquare/internal/infrastructure/static"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	for _, dbType := range []string{application.DBInmemory, application.DBBadger} {
		dbType := dbType
		t.Run(dbType, func(t *testing.T) {
			cfg := newTestConfig(t)
			cfg.DBType = dbType

			require.NoError(t, cfg.Validate())
			defer cfg.RepoManager().Close()

			require.NotNil(t, cfg.OfferService())
			require.NotNil(t, cfg.AccountService())

			offers, err := cfg.OfferService().ListOffers(context.Background())
			require.NoError(t, err)
			require.Empty(t, offers)
		})
	}
}

func TestFailingConfig(t *testing.T) {
	tests := []struct {
		name   string
		update func(c *application.Config)
	}{
		{
			name:   "unsupported_db",
			update: func(c *application.Config) { c.DBType = "postgres" },
		},
		{
			name:   "missing_publisher",
			update: func(c *application.Config) { c.PublisherFactory = nil },
		},
		{
			name: "missing_price_feed",
			update: func(c *application.Config) {
				c.Collaborators.PriceFeed = nil
			},
		},
		{
			name: "invalid_fee_params",
			update: func(c *application.Config) {
				c.FeeParams.PrimaryRoundingStep = 0
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(t)
			tt.update(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func newTestConfig(t *testing.T) *application.Config {
	priceFeed, err := static.NewPriceFeed([]string{"EUR:25000"})
	require.NoError(t, err)
	arbitration, err := static.NewArbitration(nil, nil)
	require.NoError(t, err)
	chainInfo, err := esplora.NewService("http://localhost:3000", 0, 0)
	require.NoError(t, err)
	networkIdentity, err := identity.NewIdentity(
		"", domain.NodeAddress{HostName: "localhost", Port: 9999},
	)
	require.NoError(t, err)

	return &application.Config{
		DBType:    application.DBInmemory,
		FeeParams: domain.DefaultFeeParams,
		Collaborators: offer.Collaborators{
			PriceFeed:       priceFeed,
			AlternateWallet: static.NewAlternateWallet(nil),
			Preferences:     static.NewPreferences(true, 3000000),
			ChainInfo:       chainInfo,
			TradeLimits:     static.NewTradeLimits(),
			Identity:        networkIdentity,
			Arbitration:     arbitration,
		},
		PublisherFactory: func(repo ports.RepoManager) (ports.OfferPublisher, error) {
			return webhookpublisher.NewOfferBookPublisher(
				repo.OfferRepository(), webhookpublisher.Options{},
			)
		},
	}
}
