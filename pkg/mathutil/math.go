package mathutil

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	//BigOne represents a single unit of an asset with precision 8
	BigOne = uint64(math.Pow10(8))
	//BigOneDecimal represents a single unit of an asset with precision 8 as decimal.Decimal
	BigOneDecimal = decimal.NewFromInt(int64(BigOne))
)

func init() {
	decimal.DivisionPrecision = 8
}

//Mul takes two uint64 numbers and multiply them x * y and returns the result as decimal.Decimal
func Mul(x, y uint64) (z decimal.Decimal) {
	X, Y := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	z = MulDecimal(X, Y)
	return
}

// MulDecimal takes two decimal.Decimal numbers and multiply them x * y and returns the result as decimal.Decimal
func MulDecimal(X, Y decimal.Decimal) (z decimal.Decimal) {
	z = X.Mul(Y)
	return
}

// Div takes two uint64 numbers and divides them x / y and returns the result as decimal.Decimal
func Div(x, y uint64) (z decimal.Decimal) {
	X, Y := decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0), decimal.NewFromBigInt(new(big.Int).SetUint64(y), 0)
	z = DivDecimal(X, Y)
	return
}

// DivDecimal takes two decimal.Decimal numbers and divides them x / y and returns the result as decimal.Decimal
func DivDecimal(X, Y decimal.Decimal) (z decimal.Decimal) {
	z = X.Div(Y)
	return
}

// ToUint64 truncates the given decimal to an unsigned integer. Negative values
// are mapped to zero.
func ToUint64(x decimal.Decimal) uint64 {
	if x.IsNegative() {
		return 0
	}
	return x.BigInt().Uint64()
}

// MaxUint64 returns the greater of x and y.
func MaxUint64(x, y uint64) uint64 {
	if x > y {
		return x
	}
	return y
}

// FitsInt64 returns whether x can be represented as a signed 64-bit integer.
func FitsInt64(x uint64) bool {
	return x <= math.MaxInt64
}
