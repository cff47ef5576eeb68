package mathutil

import (
	"math"

	"github.com/shopspring/decimal"
)

// FeeForAmount calculates the fee for the given amount, where the fee rate is
// expressed in units per BigOne (ie. satoshis per 1 BTC). The result is rounded
// half up to the nearest unit.
func FeeForAmount(feePerUnit, amount uint64) decimal.Decimal {
	return DivDecimal(Mul(feePerUnit, amount), BigOneDecimal).Round(0)
}

// ScaleBySqrt multiplies x by the square root of the given factor.
// Non-positive factors zero the result.
func ScaleBySqrt(x decimal.Decimal, factor float64) decimal.Decimal {
	if factor <= 0 {
		return decimal.Zero
	}
	return MulDecimal(x, decimal.NewFromFloat(math.Sqrt(factor)))
}

// FloorToStep rounds x down to the closest multiple of step.
func FloorToStep(x decimal.Decimal, step uint64) decimal.Decimal {
	if step <= 1 {
		return x.Floor()
	}
	s := decimal.NewFromInt(int64(step))
	return MulDecimal(DivDecimal(x, s).Floor(), s)
}
