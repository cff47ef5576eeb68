package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/streetbits/bitsquare/internal/core/domain"
)

type MarketPrice interface {
	GetCurrencyCode() string
	GetPrice() decimal.Decimal
	GetTimestamp() int64
}

// PriceFeed returns the latest known market price for a currency. A nil
// price with nil error means the price is not available.
type PriceFeed interface {
	GetMarketPrice(ctx context.Context, currencyCode string) (MarketPrice, error)
}

// AlternateWallet is the wallet holding the alternate fee token.
type AlternateWallet interface {
	// GetAvailableBalance returns nil if the balance is not known yet, ie.
	// the wallet is still syncing.
	GetAvailableBalance(ctx context.Context) (*uint64, error)
}

type Preferences interface {
	PayFeeInPrimary() bool
	BuyerSecurityDeposit() uint64
}

type ChainInfo interface {
	GetLastSeenBlockHeight(ctx context.Context) (uint32, error)
	GetTxFee(ctx context.Context, txSize int) (uint64, error)
}

type TradeLimits interface {
	GetTradeLimit(
		ctx context.Context, paymentMethodID, currencyCode string,
	) (domain.TradeLimit, error)
}

type NetworkIdentity interface {
	NodeAddress() domain.NodeAddress
	PubKeyRing() domain.PubKeyRing
}

type Arbitration interface {
	AcceptedArbitrators(ctx context.Context) ([]domain.NodeAddress, error)
	AcceptedMediators(ctx context.Context) ([]domain.NodeAddress, error)
}

// OfferPublisher hands offers over to the offer book.
type OfferPublisher interface {
	// Publish makes the offer available to the network.
	Publish(ctx context.Context, offer domain.OfferPayload) error
	// Remove withdraws a previously published offer.
	Remove(ctx context.Context, offerID string) error
}
