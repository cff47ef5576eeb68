package domain

import "time"

const (
	SepaPaymentMethodID          = "SEPA"
	NationalBankPaymentMethodID  = "NATIONAL_BANK"
	SameBankPaymentMethodID      = "SAME_BANK"
	SpecificBanksPaymentMethodID = "SPECIFIC_BANKS"
	SwishPaymentMethodID         = "SWISH"
	BlockChainsPaymentMethodID   = "BLOCK_CHAINS"

	day = 24 * time.Hour

	// Max tradable amounts in satoshis by risk of chargeback.
	tradeLimitHighRisk = 25000000
	tradeLimitMidRisk  = 50000000
	tradeLimitLowRisk  = 100000000
)

// TradeLimit is the max amount tradable with a payment method together with
// the time window the counterparty has to complete the payment.
type TradeLimit struct {
	MaxAmount uint64
	MaxPeriod time.Duration
}

// PaymentMethod describes a means of off-chain settlement.
type PaymentMethod struct {
	ID             string
	MaxTradePeriod time.Duration
	MaxTradeLimit  uint64
	// Currencies restricts the currencies the method can settle. An empty list
	// means any currency.
	Currencies []string
	// CurrencyLimits overrides MaxTradeLimit for specific currencies.
	CurrencyLimits map[string]uint64
}

// SupportsCurrency returns whether the payment method can settle trades in
// the given currency.
func (m PaymentMethod) SupportsCurrency(code string) bool {
	if len(code) <= 0 {
		return false
	}
	if len(m.Currencies) <= 0 {
		return true
	}
	return containsString(m.Currencies, code)
}

// TradeLimitFor returns the trade limit of the method for the given currency.
func (m PaymentMethod) TradeLimitFor(code string) (TradeLimit, error) {
	if !m.SupportsCurrency(code) {
		return TradeLimit{}, ErrUnsupportedCurrencyForMethod
	}
	maxAmount := m.MaxTradeLimit
	if limit, ok := m.CurrencyLimits[code]; ok {
		maxAmount = limit
	}
	return TradeLimit{MaxAmount: maxAmount, MaxPeriod: m.MaxTradePeriod}, nil
}

// WellKnownPaymentMethods returns the list of supported payment methods.
func WellKnownPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{
			ID:             SepaPaymentMethodID,
			MaxTradePeriod: 8 * day,
			MaxTradeLimit:  tradeLimitMidRisk,
			Currencies:     []string{"EUR"},
		},
		{
			ID:             NationalBankPaymentMethodID,
			MaxTradePeriod: 4 * day,
			MaxTradeLimit:  tradeLimitHighRisk,
		},
		{
			ID:             SameBankPaymentMethodID,
			MaxTradePeriod: 2 * day,
			MaxTradeLimit:  tradeLimitMidRisk,
		},
		{
			ID:             SpecificBanksPaymentMethodID,
			MaxTradePeriod: 4 * day,
			MaxTradeLimit:  tradeLimitMidRisk,
		},
		{
			ID:             SwishPaymentMethodID,
			MaxTradePeriod: day,
			MaxTradeLimit:  tradeLimitLowRisk,
			Currencies:     []string{"SEK"},
		},
		{
			ID:             BlockChainsPaymentMethodID,
			MaxTradePeriod: day,
			MaxTradeLimit:  tradeLimitLowRisk,
			CurrencyLimits: map[string]uint64{
				"XMR": tradeLimitMidRisk,
			},
		},
	}
}

// GetPaymentMethod returns the well known payment method with the given id.
func GetPaymentMethod(id string) (PaymentMethod, error) {
	for _, m := range WellKnownPaymentMethods() {
		if m.ID == id {
			return m, nil
		}
	}
	return PaymentMethod{}, ErrUnknownPaymentMethod
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
