package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewOfferPayload(t *testing.T) {
	t.Parallel()

	args := newTestOfferArgs(t)

	offer, err := domain.NewOfferPayload(args)
	require.NoError(t, err)
	require.NotNil(t, offer)
	require.NotEmpty(t, offer.ID)
	require.Equal(t, args.Date.UnixMilli(), offer.Date)
	require.Equal(t, domain.OfferVersion, offer.VersionNr)
	require.Equal(t, domain.TradeProtocolVersion, offer.ProtocolVersion)
	require.Equal(t, uint64(domain.SellerSecurityDeposit), offer.SellerSecurityDeposit)
	require.Equal(t, args.BuyerSecurityDeposit, offer.BuyerSecurityDeposit)
	require.Equal(t, args.Account.ID, offer.MakerPaymentAccountID)
	require.Equal(t, domain.SepaPaymentMethodID, offer.PaymentMethodID)
	require.Equal(t, "DE", *offer.CountryCode)
	require.Equal(t, []string{"DE", "FR"}, offer.AcceptedCountryCodes)
	require.Nil(t, offer.BankID)
	require.Nil(t, offer.AcceptedBankIDs)
	require.Equal(t, uint64(50000000), offer.MaxTradeLimit)
	require.Equal(t, (8 * 24 * time.Hour).Milliseconds(), offer.MaxTradePeriod)
	require.Equal(t, uint64(1400), offer.MakerFee)
	require.True(t, offer.IsCurrencyForMakerFeeBtc)
	require.Equal(t, domain.FeeCurrencyPrimary, offer.MakerFeeCurrency())
	require.Equal(t, uint32(700000), offer.BlockHeightAtOfferCreation)
	require.Equal(t, uint64(12000), offer.TxFee)
	require.Equal(t, "EUR", offer.TradeCurrencyCode())

	require.False(t, offer.IsPrivateOffer)
	require.Nil(t, offer.HashOfChallenge)
	require.Nil(t, offer.ExtraDataMap)
	require.Nil(t, offer.OfferFeePaymentTxID)
	require.False(t, offer.UseAutoClose)
	require.False(t, offer.UseReOpenAfterAutoClose)
	require.Zero(t, offer.LowerClosePrice)
	require.Zero(t, offer.UpperClosePrice)

	another, err := domain.NewOfferPayload(args)
	require.NoError(t, err)
	require.NotEqual(t, offer.ID, another.ID)
}

func TestNewPrivateOfferPayload(t *testing.T) {
	t.Parallel()

	args := newTestOfferArgs(t)
	extra := map[string]string{"key": "value"}
	args.Private = &domain.PrivateOfferTerms{
		HashOfChallenge: "challenge",
		ExtraData:       extra,
	}

	offer, err := domain.NewOfferPayload(args)
	require.NoError(t, err)
	require.True(t, offer.IsPrivateOffer)
	require.Equal(t, "challenge", *offer.HashOfChallenge)
	require.Equal(t, extra, offer.ExtraDataMap)

	extra["key"] = "mutated"
	require.Equal(t, "value", offer.ExtraDataMap["key"])
}

func TestFailingNewOfferPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		update        func(a *domain.OfferArgs)
		expectedError error
	}{
		{
			name:          "invalid_direction",
			update:        func(a *domain.OfferArgs) { a.Direction = "HOLD" },
			expectedError: domain.ErrOfferInvalidDirection,
		},
		{
			name:          "zero_amount",
			update:        func(a *domain.OfferArgs) { a.Amount = 0 },
			expectedError: domain.ErrOfferInvalidAmount,
		},
		{
			name:          "zero_min_amount",
			update:        func(a *domain.OfferArgs) { a.MinAmount = 0 },
			expectedError: domain.ErrOfferInvalidMinAmount,
		},
		{
			name:          "min_amount_greater_than_amount",
			update:        func(a *domain.OfferArgs) { a.MinAmount = a.Amount + 1 },
			expectedError: domain.ErrOfferInvalidMinAmount,
		},
		{
			name: "amount_exceeds_trade_limit",
			update: func(a *domain.OfferArgs) {
				a.Amount = a.TradeLimit.MaxAmount + 1
			},
			expectedError: domain.ErrOfferAmountExceedsTradeLimit,
		},
		{
			name: "zero_fixed_price",
			update: func(a *domain.OfferArgs) {
				a.PriceTerms = domain.PriceTerms{}
			},
			expectedError: domain.ErrOfferInvalidPrice,
		},
		{
			name: "same_currencies",
			update: func(a *domain.OfferArgs) {
				a.CounterCurrencyCode = a.BaseCurrencyCode
			},
			expectedError: domain.ErrOfferInvalidCurrencyPair,
		},
		{
			name:          "missing_node_address",
			update:        func(a *domain.OfferArgs) { a.OwnerNodeAddress = domain.NodeAddress{} },
			expectedError: domain.ErrOfferMissingNodeAddress,
		},
		{
			name:          "missing_pubkey_ring",
			update:        func(a *domain.OfferArgs) { a.PubKeyRing = domain.PubKeyRing{} },
			expectedError: domain.ErrOfferMissingPubKeyRing,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			args := newTestOfferArgs(t)
			tt.update(&args)

			offer, err := domain.NewOfferPayload(args)
			require.EqualError(t, err, tt.expectedError.Error())
			require.Nil(t, offer)
		})
	}
}

func TestOfferPayloadJSON(t *testing.T) {
	t.Parallel()

	t.Run("absent optionals", func(t *testing.T) {
		t.Parallel()

		account, err := domain.NewCryptoCurrencyAccount("xmr", "XMR", "4xmraddress")
		require.NoError(t, err)
		args := newTestOfferArgs(t)
		args.Account = *account
		args.Constraints = account.Constraints()
		args.BaseCurrencyCode = "XMR"
		args.CounterCurrencyCode = "BTC"

		offer, err := domain.NewOfferPayload(args)
		require.NoError(t, err)

		raw := toJSONMap(t, offer)
		require.NotContains(t, raw, "countryCode")
		require.NotContains(t, raw, "bankId")
		require.NotContains(t, raw, "hashOfChallenge")
		require.Nil(t, raw["acceptedCountryCodes"])
		require.Contains(t, raw, "acceptedCountryCodes")
		require.Nil(t, raw["acceptedBankIds"])
		require.Equal(t, "XMR", offer.TradeCurrencyCode())
	})

	t.Run("sepa without accepted countries", func(t *testing.T) {
		t.Parallel()

		account, err := domain.NewSepaAccount("sepa", "DE", []string{})
		require.NoError(t, err)
		args := newTestOfferArgs(t)
		args.Account = *account
		args.Constraints = account.Constraints()

		offer, err := domain.NewOfferPayload(args)
		require.NoError(t, err)

		raw := toJSONMap(t, offer)
		require.Equal(t, "DE", raw["countryCode"])
		require.Equal(t, []interface{}{"DE"}, raw["acceptedCountryCodes"])
	})
}

func TestNodeAddress(t *testing.T) {
	t.Parallel()

	addr, err := domain.NewNodeAddress("abcdefgh.onion:9999")
	require.NoError(t, err)
	require.Equal(t, "abcdefgh.onion", addr.HostName)
	require.Equal(t, 9999, addr.Port)
	require.Equal(t, "abcdefgh.onion:9999", addr.String())
	require.False(t, addr.IsZero())

	for _, s := range []string{"", "localhost", ":9999", "localhost:0", "localhost:port"} {
		_, err := domain.NewNodeAddress(s)
		require.Error(t, err, s)
	}
}

func TestTradeCurrencyCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "EUR", domain.TradeCurrencyCode("BTC", "EUR"))
	require.Equal(t, "XMR", domain.TradeCurrencyCode("XMR", "BTC"))
}

func TestOfferCreationState(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Received", domain.OfferCreationReceived.String())
	require.Equal(t, "Unknown", domain.OfferCreationState(-1).String())
	require.False(t, domain.OfferCreationPayloadAssembled.IsTerminal())
	require.True(t, domain.OfferCreationPublished.IsTerminal())
	require.True(t, domain.OfferCreationAssemblyFailed.IsTerminal())
	require.True(t, domain.OfferCreationPublicationFailed.IsTerminal())
}

func newTestOfferArgs(t *testing.T) domain.OfferArgs {
	account, err := domain.NewSepaAccount("sepa", "DE", []string{"DE", "FR"})
	require.NoError(t, err)
	limit, err := domain.GetPaymentMethod(domain.SepaPaymentMethodID)
	require.NoError(t, err)
	tradeLimit, err := limit.TradeLimitFor("EUR")
	require.NoError(t, err)

	return domain.OfferArgs{
		Date: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		OwnerNodeAddress: domain.NodeAddress{
			HostName: "abcdefgh.onion", Port: 9999,
		},
		PubKeyRing: domain.PubKeyRing{
			SignaturePubKey:  []byte{0x02, 0x01},
			EncryptionPubKey: []byte{0x03, 0x01},
		},
		Direction: domain.DirectionBuy,
		PriceTerms: domain.PriceTerms{
			UseMarketBasedPrice: true,
			MarketPriceMargin:   0.02,
		},
		Amount:               1000000,
		MinAmount:            500000,
		BaseCurrencyCode:     "BTC",
		CounterCurrencyCode:  "EUR",
		Arbitrators:          []domain.NodeAddress{{HostName: "arb.onion", Port: 9999}},
		Mediators:            []domain.NodeAddress{},
		Account:              *account,
		Constraints:          account.Constraints(),
		TradeLimit:           tradeLimit,
		BlockHeight:          700000,
		TxFee:                12000,
		MakerFee:             domain.MakerFee{Amount: 1400},
		BuyerSecurityDeposit: 3000000,
	}
}

func toJSONMap(t *testing.T, offer *domain.OfferPayload) map[string]interface{} {
	buf, err := json.Marshal(offer)
	require.NoError(t, err)
	raw := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf, &raw))
	return raw
}
