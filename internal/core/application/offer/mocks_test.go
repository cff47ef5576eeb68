package offer_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// **** Price feed ****

type marketPrice struct {
	currencyCode string
	price        decimal.Decimal
}

func (p marketPrice) GetCurrencyCode() string {
	return p.currencyCode
}
func (p marketPrice) GetPrice() decimal.Decimal {
	return p.price
}
func (p marketPrice) GetTimestamp() int64 {
	return 0
}

type mockPriceFeed struct {
	mock.Mock
}

func (m *mockPriceFeed) GetMarketPrice(
	ctx context.Context, currencyCode string,
) (ports.MarketPrice, error) {
	args := m.Called(ctx, currencyCode)

	var res ports.MarketPrice
	if a := args.Get(0); a != nil {
		res = a.(ports.MarketPrice)
	}
	return res, args.Error(1)
}

// **** Alternate wallet ****

type mockAlternateWallet struct {
	mock.Mock
}

func (m *mockAlternateWallet) GetAvailableBalance(
	ctx context.Context,
) (*uint64, error) {
	args := m.Called(ctx)

	var res *uint64
	if a := args.Get(0); a != nil {
		res = a.(*uint64)
	}
	return res, args.Error(1)
}

// **** Preferences ****

type preferences struct {
	payFeeInPrimary      bool
	buyerSecurityDeposit uint64
}

func (p preferences) PayFeeInPrimary() bool {
	return p.payFeeInPrimary
}
func (p preferences) BuyerSecurityDeposit() uint64 {
	return p.buyerSecurityDeposit
}

// **** Chain info ****

type mockChainInfo struct {
	mock.Mock
}

func (m *mockChainInfo) GetLastSeenBlockHeight(ctx context.Context) (uint32, error) {
	args := m.Called(ctx)

	var res uint32
	if a := args.Get(0); a != nil {
		res = a.(uint32)
	}
	return res, args.Error(1)
}

func (m *mockChainInfo) GetTxFee(ctx context.Context, txSize int) (uint64, error) {
	args := m.Called(ctx, txSize)

	var res uint64
	if a := args.Get(0); a != nil {
		res = a.(uint64)
	}
	return res, args.Error(1)
}

// **** Trade limits ****

type tradeLimits struct{}

func (tradeLimits) GetTradeLimit(
	_ context.Context, paymentMethodID, currencyCode string,
) (domain.TradeLimit, error) {
	method, err := domain.GetPaymentMethod(paymentMethodID)
	if err != nil {
		return domain.TradeLimit{}, err
	}
	return method.TradeLimitFor(currencyCode)
}

// **** Identity ****

type identity struct {
	nodeAddress domain.NodeAddress
	pubKeyRing  domain.PubKeyRing
}

func (i identity) NodeAddress() domain.NodeAddress {
	return i.nodeAddress
}
func (i identity) PubKeyRing() domain.PubKeyRing {
	return i.pubKeyRing
}

// **** Arbitration ****

type mockArbitration struct {
	mock.Mock
}

func (m *mockArbitration) AcceptedArbitrators(
	ctx context.Context,
) ([]domain.NodeAddress, error) {
	args := m.Called(ctx)

	var res []domain.NodeAddress
	if a := args.Get(0); a != nil {
		res = a.([]domain.NodeAddress)
	}
	return res, args.Error(1)
}

func (m *mockArbitration) AcceptedMediators(
	ctx context.Context,
) ([]domain.NodeAddress, error) {
	args := m.Called(ctx)

	var res []domain.NodeAddress
	if a := args.Get(0); a != nil {
		res = a.([]domain.NodeAddress)
	}
	return res, args.Error(1)
}

// **** Publisher ****

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(
	ctx context.Context, offer domain.OfferPayload,
) error {
	args := m.Called(ctx, offer)
	return args.Error(0)
}

func (m *mockPublisher) Remove(ctx context.Context, offerID string) error {
	args := m.Called(ctx, offerID)
	return args.Error(0)
}
