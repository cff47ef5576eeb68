package domain_test

import (
	"testing"
	"time"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestPaymentAccountConstraints(t *testing.T) {
	t.Parallel()

	sepa, err := domain.NewSepaAccount("sepa", "DE", []string{"DE", "FR", "IT"})
	require.NoError(t, err)
	sepaEmpty, err := domain.NewSepaAccount("sepa", "DE", nil)
	require.NoError(t, err)
	swish, err := domain.NewCountryBasedAccount(
		"swish", domain.SwishPaymentMethodID, "SE", "SEK",
	)
	require.NoError(t, err)
	national, err := domain.NewNationalBankAccount("national", "US", "chase", "USD")
	require.NoError(t, err)
	sameBank, err := domain.NewSameBankAccount("same", "US", "chase", "USD")
	require.NoError(t, err)
	specificBanks, err := domain.NewSpecificBanksAccount(
		"specific", "US", "chase", "USD", []string{"boa", "citi"},
	)
	require.NoError(t, err)
	crypto, err := domain.NewCryptoCurrencyAccount("xmr", "XMR", "4xmraddress")
	require.NoError(t, err)

	tests := []struct {
		name                 string
		account              *domain.PaymentAccount
		countryCode          *string
		acceptedCountryCodes []string
		bankID               *string
		acceptedBankIDs      []string
	}{
		{
			name:                 "multi_country",
			account:              sepa,
			countryCode:          str("DE"),
			acceptedCountryCodes: []string{"DE", "FR", "IT"},
		},
		{
			name:                 "multi_country_with_empty_set",
			account:              sepaEmpty,
			countryCode:          str("DE"),
			acceptedCountryCodes: []string{"DE"},
		},
		{
			name:                 "country_scoped",
			account:              swish,
			countryCode:          str("SE"),
			acceptedCountryCodes: []string{"SE"},
		},
		{
			name:                 "bank_scoped",
			account:              national,
			countryCode:          str("US"),
			acceptedCountryCodes: []string{"US"},
			bankID:               str("chase"),
		},
		{
			name:                 "same_bank",
			account:              sameBank,
			countryCode:          str("US"),
			acceptedCountryCodes: []string{"US"},
			bankID:               str("chase"),
			acceptedBankIDs:      []string{"chase"},
		},
		{
			name:                 "specific_banks",
			account:              specificBanks,
			countryCode:          str("US"),
			acceptedCountryCodes: []string{"US"},
			bankID:               str("chase"),
			acceptedBankIDs:      []string{"boa", "citi"},
		},
		{
			name:    "no_capabilities",
			account: crypto,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := tt.account.Constraints()
			require.Equal(t, tt.countryCode, c.CountryCode)
			require.Equal(t, tt.acceptedCountryCodes, c.AcceptedCountryCodes)
			require.Equal(t, tt.bankID, c.BankID)
			require.Equal(t, tt.acceptedBankIDs, c.AcceptedBankIDs)
		})
	}
}

func TestPaymentAccountConstraintsAreCopies(t *testing.T) {
	t.Parallel()

	account, err := domain.NewSpecificBanksAccount(
		"specific", "US", "chase", "USD", []string{"boa"},
	)
	require.NoError(t, err)

	c := account.Constraints()
	c.AcceptedBankIDs[0] = "mutated"
	*c.BankID = "mutated"

	scope, ok := account.AsBankScoped()
	require.True(t, ok)
	require.Equal(t, "chase", scope.BankID)
	require.Equal(t, []string{"boa"}, scope.AcceptedBankIDs)
}

func TestPaymentAccountCapabilities(t *testing.T) {
	t.Parallel()

	crypto, err := domain.NewCryptoCurrencyAccount("xmr", "XMR", "4xmraddress")
	require.NoError(t, err)
	address, ok := crypto.AsCryptoCurrency()
	require.True(t, ok)
	require.Equal(t, "4xmraddress", address)
	_, ok = crypto.AsCountryScoped()
	require.False(t, ok)
	_, ok = crypto.AsBankScoped()
	require.False(t, ok)
	require.True(t, crypto.SupportsCurrency("XMR"))
	require.False(t, crypto.SupportsCurrency("ETH"))

	sepa, err := domain.NewSepaAccount("sepa", "DE", []string{"FR"})
	require.NoError(t, err)
	_, ok = sepa.AsCryptoCurrency()
	require.False(t, ok)
	require.True(t, sepa.SupportsCurrency("EUR"))
	require.False(t, sepa.SupportsCurrency("USD"))
	require.NotEmpty(t, sepa.ID)
	require.Equal(t, domain.SepaPaymentMethodID, sepa.PaymentMethodID)
}

func TestFailingNewPaymentAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		newAccount    func() (*domain.PaymentAccount, error)
		expectedError error
	}{
		{
			name: "empty_name",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewSepaAccount("", "DE", nil)
			},
			expectedError: domain.ErrPaymentAccountInvalidName,
		},
		{
			name: "invalid_country",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewSepaAccount("sepa", "DEU", nil)
			},
			expectedError: domain.ErrPaymentAccountInvalidCountryCode,
		},
		{
			name: "invalid_accepted_country",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewSepaAccount("sepa", "DE", []string{"fr"})
			},
			expectedError: domain.ErrPaymentAccountInvalidCountryCode,
		},
		{
			name: "missing_bank_id",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewNationalBankAccount("national", "US", "", "USD")
			},
			expectedError: domain.ErrPaymentAccountInvalidBankID,
		},
		{
			name: "empty_accepted_bank",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewSpecificBanksAccount(
					"specific", "US", "chase", "USD", []string{""},
				)
			},
			expectedError: domain.ErrPaymentAccountInvalidBankID,
		},
		{
			name: "missing_currency",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewSameBankAccount("same", "US", "chase", "")
			},
			expectedError: domain.ErrPaymentAccountInvalidCurrency,
		},
		{
			name: "missing_address",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewCryptoCurrencyAccount("xmr", "XMR", "")
			},
			expectedError: domain.ErrPaymentAccountInvalidAddress,
		},
		{
			name: "unknown_payment_method",
			newAccount: func() (*domain.PaymentAccount, error) {
				return domain.NewCountryBasedAccount("x", "UNKNOWN", "SE", "SEK")
			},
			expectedError: domain.ErrUnknownPaymentMethod,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.newAccount()
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestPaymentMethodTradeLimit(t *testing.T) {
	t.Parallel()

	sepa, err := domain.GetPaymentMethod(domain.SepaPaymentMethodID)
	require.NoError(t, err)

	limit, err := sepa.TradeLimitFor("EUR")
	require.NoError(t, err)
	require.Equal(t, uint64(50000000), limit.MaxAmount)
	require.Equal(t, 8*24*time.Hour, limit.MaxPeriod)

	_, err = sepa.TradeLimitFor("USD")
	require.ErrorIs(t, err, domain.ErrUnsupportedCurrencyForMethod)

	altcoins, err := domain.GetPaymentMethod(domain.BlockChainsPaymentMethodID)
	require.NoError(t, err)
	limit, err = altcoins.TradeLimitFor("XMR")
	require.NoError(t, err)
	require.Equal(t, uint64(50000000), limit.MaxAmount)
	limit, err = altcoins.TradeLimitFor("ETH")
	require.NoError(t, err)
	require.Equal(t, uint64(100000000), limit.MaxAmount)

	_, err = domain.GetPaymentMethod("PAYPAL")
	require.ErrorIs(t, err, domain.ErrUnknownPaymentMethod)
}

func str(s string) *string {
	return &s
}
