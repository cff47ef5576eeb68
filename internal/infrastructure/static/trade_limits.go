package static

import (
	"context"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type tradeLimits struct{}

// NewTradeLimits returns the TradeLimits of the well known payment methods.
func NewTradeLimits() ports.TradeLimits {
	return tradeLimits{}
}

func (tradeLimits) GetTradeLimit(
	_ context.Context, paymentMethodID, currencyCode string,
) (domain.TradeLimit, error) {
	method, err := domain.GetPaymentMethod(paymentMethodID)
	if err != nil {
		return domain.TradeLimit{}, err
	}
	return method.TradeLimitFor(currencyCode)
}
