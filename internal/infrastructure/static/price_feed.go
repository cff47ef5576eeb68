package static

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type marketPrice struct {
	currencyCode string
	price        decimal.Decimal
	timestamp    int64
}

func (p marketPrice) GetCurrencyCode() string {
	return p.currencyCode
}

func (p marketPrice) GetPrice() decimal.Decimal {
	return p.price
}

func (p marketPrice) GetTimestamp() int64 {
	return p.timestamp
}

// priceFeed is read-only once built.
type priceFeed struct {
	prices map[string]marketPrice
}

// NewPriceFeed returns a PriceFeed serving the given prices, each in the form
// CODE:price (ie. EUR:25000.5).
func NewPriceFeed(entries []string) (ports.PriceFeed, error) {
	prices := make(map[string]marketPrice)
	now := time.Now().Unix()

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if len(entry) <= 0 {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 2 || len(parts[0]) <= 0 {
			return nil, fmt.Errorf("invalid market price %q, must be CODE:price", entry)
		}
		price, err := decimal.NewFromString(parts[1])
		if err != nil || !price.IsPositive() {
			return nil, fmt.Errorf("invalid market price %q, price must be positive", entry)
		}
		code := strings.ToUpper(parts[0])
		prices[code] = marketPrice{code, price, now}
	}

	return &priceFeed{prices}, nil
}

func (f *priceFeed) GetMarketPrice(
	_ context.Context, currencyCode string,
) (ports.MarketPrice, error) {
	price, ok := f.prices[currencyCode]
	if !ok {
		return nil, nil
	}
	return price, nil
}
