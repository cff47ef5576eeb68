package domain

import (
	"github.com/shopspring/decimal"
	"github.com/streetbits/bitsquare/pkg/mathutil"
)

// FeeCurrency is the currency used to pay the maker fee of an offer.
type FeeCurrency int

const (
	// FeeCurrencyPrimary is the base settlement asset of the network (BTC).
	FeeCurrencyPrimary FeeCurrency = iota
	// FeeCurrencyAlternate is the secondary fee token (BSQ).
	FeeCurrencyAlternate
)

func (c FeeCurrency) String() string {
	if c == FeeCurrencyAlternate {
		return "BSQ"
	}
	return "BTC"
}

func (c FeeCurrency) IsPrimary() bool {
	return c == FeeCurrencyPrimary
}

// MakerFee is the fee amount, in minor units of its currency, paid by the
// maker to publish an offer.
type MakerFee struct {
	Amount   uint64
	Currency FeeCurrency
}

// FeeParams holds the protocol constants the fee policy works with.
type FeeParams struct {
	// Fee rates expressed in minor units per 1 BTC of traded amount.
	PrimaryFeePerUnit   uint64
	AlternateFeePerUnit uint64
	// Minimum fee for each currency.
	PrimaryMinFee   uint64
	AlternateMinFee uint64
	// Primary fees are rounded down to multiples of this step.
	PrimaryRoundingStep uint64
	// Whether the network base asset supports paying fees in the alternate
	// token at all.
	AlternateSupported bool
}

// DefaultFeeParams are the fee constants of the BTC mainnet.
var DefaultFeeParams = FeeParams{
	PrimaryFeePerUnit:   100000,
	AlternateFeePerUnit: 10000,
	PrimaryMinFee:       500,
	AlternateMinFee:     5,
	PrimaryRoundingStep: 100,
	AlternateSupported:  true,
}

func (p FeeParams) validate() error {
	if p.PrimaryFeePerUnit == 0 || p.AlternateFeePerUnit == 0 {
		return ErrFeeInvalidRate
	}
	if p.PrimaryMinFee == 0 || p.AlternateMinFee == 0 {
		return ErrFeeInvalidMinimum
	}
	if p.PrimaryRoundingStep == 0 {
		return ErrFeeInvalidRoundingStep
	}
	return nil
}

// FeeRequest contains everything needed to resolve the maker fee of an offer.
// Every field is a snapshot taken by the caller for a single request.
type FeeRequest struct {
	// Amount of the offer in satoshis, nil if not yet known.
	Amount *uint64
	// Signed offset from the market price, ie. 0.02 for 2% above market.
	MarketPriceMargin float64
	// User preference to always pay fees in the primary currency.
	PreferPrimary bool
	// Available balance of the alternate token wallet, nil if unknown.
	AlternateBalance *uint64
	// Whether a market price for the traded currency is currently available.
	MarketPriceKnown bool
}

// FeePolicy decides currency and amount of the maker fee.
// It holds no state other than its immutable params and is safe for
// concurrent use.
type FeePolicy struct {
	params FeeParams
}

// NewFeePolicy returns a fee policy for the given params.
func NewFeePolicy(params FeeParams) (*FeePolicy, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &FeePolicy{params}, nil
}

func (p *FeePolicy) Params() FeeParams {
	return p.params
}

// Resolve selects the fee currency and calculates the fee for it. The
// returned bool is false if the fee cannot be computed yet, ie. when the
// amount is missing.
func (p *FeePolicy) Resolve(req FeeRequest) (MakerFee, bool) {
	if !isValidFeeAmount(req.Amount) {
		return MakerFee{}, false
	}

	currency := FeeCurrencyAlternate
	if p.SelectPrimary(req) {
		currency = FeeCurrencyPrimary
	}
	return p.FeeFor(currency, req)
}

// SelectPrimary returns whether the fee must be paid in the primary currency,
// either because the user said so or because the alternate token can't cover
// it.
func (p *FeePolicy) SelectPrimary(req FeeRequest) bool {
	return req.PreferPrimary || !p.isAlternateAvailable(req)
}

// FeeFor calculates the fee for the given currency regardless of the
// currency selection policy.
func (p *FeePolicy) FeeFor(
	currency FeeCurrency, req FeeRequest,
) (MakerFee, bool) {
	if !isValidFeeAmount(req.Amount) {
		return MakerFee{}, false
	}

	feePerUnit, minFee := p.params.PrimaryFeePerUnit, p.params.PrimaryMinFee
	if !currency.IsPrimary() {
		feePerUnit, minFee = p.params.AlternateFeePerUnit, p.params.AlternateMinFee
	}

	fee := mathutil.FeeForAmount(feePerUnit, *req.Amount)
	if req.MarketPriceKnown {
		fee = scaleByMargin(fee, req.MarketPriceMargin)
	}
	if currency.IsPrimary() {
		fee = mathutil.FloorToStep(fee, p.params.PrimaryRoundingStep)
	}

	amount := mathutil.MaxUint64(mathutil.ToUint64(fee), minFee)
	return MakerFee{Amount: amount, Currency: currency}, true
}

func (p *FeePolicy) isAlternateAvailable(req FeeRequest) bool {
	if !p.params.AlternateSupported {
		return false
	}
	fee, ok := p.FeeFor(FeeCurrencyAlternate, req)
	if !ok || req.AlternateBalance == nil {
		return false
	}
	return *req.AlternateBalance >= fee.Amount
}

// scaleByMargin applies the sub-linear margin penalty. A zero or negative
// margin zeroes the fee, leaving only the minimum fee to apply.
func scaleByMargin(fee decimal.Decimal, margin float64) decimal.Decimal {
	if margin <= 0 {
		return decimal.Zero
	}
	return mathutil.ScaleBySqrt(fee, margin*100)
}

func isValidFeeAmount(amount *uint64) bool {
	return amount != nil && mathutil.FitsInt64(*amount)
}
