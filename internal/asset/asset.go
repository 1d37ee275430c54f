// =============================
// File: internal/asset/asset.go
// =============================
package asset

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rovshanmuradov/assetmath/internal/textutil"
)

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// Asset is a fixed-point token quantity: Amount carries Symbol.Precision
// implied decimal digits, so {10000, 4,EOS} is 1.0000 EOS.
type Asset struct {
	Amount int64
	Symbol Symbol
}

// New returns an asset after validating the symbol.
func New(amount int64, code string, precision uint8) (Asset, error) {
	sym, err := NewSymbol(code, precision)
	if err != nil {
		return Asset{}, err
	}
	return Asset{Amount: amount, Symbol: sym}, nil
}

// IsValid reports whether the asset symbol is well formed.
func (a Asset) IsValid() bool {
	return a.Symbol.IsValid()
}

// String formats the asset exactly, e.g. "1.0000 EOS".
func (a Asset) String() string {
	exp := int32(a.Symbol.Precision)
	return decimal.New(a.Amount, -exp).StringFixed(exp) + " " + a.Symbol.Code
}

// ParseAsset parses "<amount> <CODE>", e.g. "1.0000 EOS". The precision is
// taken from the number of fractional digits and the amount is computed
// exactly, without going through float64.
func ParseAsset(s string) (Asset, error) {
	parts := textutil.Split(strings.TrimSpace(s), " ")
	if len(parts) != 2 {
		return Asset{}, fmt.Errorf("%w: %q, expected <amount> <code>", ErrInvalidAsset, s)
	}

	precision, err := fractionDigits(parts[0])
	if err != nil {
		return Asset{}, err
	}

	sym, err := NewSymbol(parts[1], precision)
	if err != nil {
		return Asset{}, err
	}

	d, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %q: %v", ErrInvalidAsset, parts[0], err)
	}

	scaled := d.Shift(int32(precision))
	if scaled.GreaterThan(maxAmount) || scaled.LessThan(minAmount) {
		return Asset{}, fmt.Errorf("%w: %s", ErrOutOfRange, parts[0])
	}

	return Asset{Amount: scaled.IntPart(), Symbol: sym}, nil
}

// fractionDigits checks the "[-]digits[.digits]" form and returns the number
// of digits after the point.
func fractionDigits(num string) (uint8, error) {
	whole, frac, hasPoint := strings.Cut(strings.TrimPrefix(num, "-"), ".")
	if !isDigits(whole) || (hasPoint && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: malformed amount %q", ErrInvalidAsset, num)
	}
	if len(frac) > MaxPrecision {
		return 0, fmt.Errorf("%w: %d fractional digits in %q", ErrInvalidPrecision, len(frac), num)
	}
	return uint8(len(frac)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
