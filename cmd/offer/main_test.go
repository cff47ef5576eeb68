package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streetbits/bitsquare/internal/config"
	"github.com/streetbits/bitsquare/internal/core/application/account"
	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestAppConfig(t *testing.T) {
	initTestConfig(t, map[string]string{
		"BISQ_PAY_FEE_IN_BTC": "true",
	})

	appConfig, cleanup, err := getAppConfig()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	acc, err := appConfig.AccountService().AddAccount(ctx, account.AccountRequest{
		Name:                 "sepa",
		PaymentMethodID:      domain.SepaPaymentMethodID,
		CountryCode:          "DE",
		AcceptedCountryCodes: []string{"DE", "FR"},
	})
	require.NoError(t, err)

	payload, err := appConfig.OfferService().CreateOffer(ctx, offer.OfferCreationRequest{
		AccountID: acc.ID,
		Direction: domain.DirectionSell,
		Amount:    1000000,
		MinAmount: 1000000,
		PriceTerms: domain.PriceTerms{
			UseMarketBasedPrice: true,
			MarketPriceMargin:   0.02,
		},
		BaseCurrencyCode:    "BTC",
		CounterCurrencyCode: "EUR",
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1400), payload.MakerFee)
	require.True(t, payload.IsCurrencyForMakerFeeBtc)
	require.Equal(t, uint32(781234), payload.BlockHeightAtOfferCreation)
	require.Equal(t, uint64(12000), payload.TxFee)
	require.Equal(t, uint64(3000000), payload.BuyerSecurityDeposit)
	require.Equal(t, domain.NodeAddress{HostName: "localhost", Port: 9999}, payload.OwnerNodeAddress)
	require.Equal(t, []domain.NodeAddress{{HostName: "arbitrator.onion", Port: 9999}}, payload.ArbitratorNodeAddresses)
	require.Empty(t, payload.MediatorNodeAddresses)

	offers, err := appConfig.OfferService().ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, payload.ID, offers[0].ID)

	require.NoError(t, appConfig.OfferService().CancelOffer(ctx, payload.ID))
	_, err = appConfig.OfferService().GetOffer(ctx, payload.ID)
	require.Error(t, err)
}

func TestAppConfigWithAlternateFee(t *testing.T) {
	initTestConfig(t, map[string]string{
		"BISQ_PAY_FEE_IN_BTC": "false",
		"BISQ_BSQ_BALANCE":    "20000",
	})

	appConfig, cleanup, err := getAppConfig()
	require.NoError(t, err)
	defer cleanup()

	amount := uint64(1000000)
	fee, err := appConfig.OfferService().ComputeMakerFee(
		context.Background(), "EUR", &amount, 0.02,
	)
	require.NoError(t, err)
	require.NotNil(t, fee)
	require.Equal(t, domain.FeeCurrencyAlternate, fee.Currency)
	require.Equal(t, uint64(141), fee.Amount)
}

func initTestConfig(t *testing.T, env map[string]string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/blocks/tip/height", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("781234"))
	})
	mux.HandleFunc("/fee-estimates", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"6": 20}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	t.Setenv("BISQ_DATADIR", t.TempDir())
	t.Setenv("BISQ_DB_TYPE", "inmemory")
	t.Setenv("BISQ_ESPLORA_URL", server.URL)
	t.Setenv("BISQ_MARKET_PRICES", "EUR:25000")
	t.Setenv("BISQ_ARBITRATORS", "arbitrator.onion:9999")
	for k, v := range env {
		t.Setenv(k, v)
	}

	require.NoError(t, config.InitConfig())
}
