package offer

import (
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

// OfferCreationRequest holds the raw parameters of a new offer.
type OfferCreationRequest struct {
	AccountID           string
	Direction           domain.Direction
	Amount              uint64
	MinAmount           uint64
	PriceTerms          domain.PriceTerms
	BaseCurrencyCode    string
	CounterCurrencyCode string
	// Private is nil for public offers.
	Private *domain.PrivateOfferTerms
}

func (r OfferCreationRequest) tradeCurrencyCode() string {
	return domain.TradeCurrencyCode(r.BaseCurrencyCode, r.CounterCurrencyCode)
}

// Collaborators are the external services the offer service reads its
// snapshots from and hands offers over to.
type Collaborators struct {
	PriceFeed       ports.PriceFeed
	AlternateWallet ports.AlternateWallet
	Preferences     ports.Preferences
	ChainInfo       ports.ChainInfo
	TradeLimits     ports.TradeLimits
	Identity        ports.NetworkIdentity
	Arbitration     ports.Arbitration
	Publisher       ports.OfferPublisher
}
