// =============================
// File: internal/asset/convert.go
// =============================
package asset

import (
	"fmt"
	"math"
)

// int64 bounds as float64; 2^63 itself is already out of range.
const (
	maxScaled = 9223372036854775808.0
	minScaled = -9223372036854775808.0
)

// ToDecimal конвертирует asset в число с плавающей точкой.
//
//	ToDecimal(Asset{10000, Symbol{"EOS", 4}}) // => 1.0
func ToDecimal(a Asset) float64 {
	if a.Amount == 0 {
		return 0.0
	}
	return float64(a.Amount) / math.Pow10(int(a.Symbol.Precision))
}

// ToFixedPoint конвертирует число с плавающей точкой в asset с указанной точностью.
// The scaled value is truncated toward zero, not rounded.
//
// The caller must make sure value*10^precision fits in int64: out of range
// values (including NaN and ±Inf) give an unspecified Amount. Use
// ToFixedPointChecked when the input is not trusted.
//
//	ToFixedPoint(1.0, 4, "EOS") // => 1.0000 EOS
func ToFixedPoint(value float64, precision uint8, code string) Asset {
	return FromDecimal(value, Symbol{Code: code, Precision: precision})
}

// FromDecimal is ToFixedPoint for an already built symbol. The same
// int64 range precondition applies.
func FromDecimal(value float64, sym Symbol) Asset {
	return Asset{
		Amount: int64(value * math.Pow10(int(sym.Precision))),
		Symbol: sym,
	}
}

// ToFixedPointChecked behaves like ToFixedPoint but rejects precisions above
// MaxPrecision and returns a *RangeError when the scaled value does not fit
// in int64.
func ToFixedPointChecked(value float64, precision uint8, code string) (Asset, error) {
	if precision > MaxPrecision {
		return Asset{}, fmt.Errorf("%w: %d exceeds %d", ErrInvalidPrecision, precision, MaxPrecision)
	}

	scaled := value * math.Pow10(int(precision))
	if math.IsNaN(scaled) || scaled >= maxScaled || scaled < minScaled {
		return Asset{}, &RangeError{Value: value, Precision: precision}
	}

	return Asset{
		Amount: int64(scaled),
		Symbol: Symbol{Code: code, Precision: precision},
	}, nil
}
