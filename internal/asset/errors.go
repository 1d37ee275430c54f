// =============================
// File: internal/asset/errors.go
// =============================
package asset

import (
	"errors"
	"fmt"
)

var (
	// ErrIdenticalSymbols is matched by IdenticalSymbolsError through errors.Is.
	ErrIdenticalSymbols = errors.New("identical symbols")
	// ErrInvalidSymbol is returned for symbol codes outside 1-7 characters A-Z.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidPrecision is returned for precisions above MaxPrecision.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrInvalidAsset is returned when an asset string cannot be parsed.
	ErrInvalidAsset = errors.New("invalid asset")
	// ErrOutOfRange is matched by RangeError through errors.Is.
	ErrOutOfRange = errors.New("amount out of int64 range")
)

// IdenticalSymbolsError is returned by SortPair when both assets share a symbol code.
type IdenticalSymbolsError struct {
	Code string
}

func (e *IdenticalSymbolsError) Error() string {
	return fmt.Sprintf("cannot order pair: both assets use symbol %s", e.Code)
}

func (e *IdenticalSymbolsError) Is(target error) bool {
	return target == ErrIdenticalSymbols
}

// IsIdenticalSymbolsError определяет, является ли ошибка ошибкой одинаковых символов
func IsIdenticalSymbolsError(err error) bool {
	var target *IdenticalSymbolsError
	return errors.As(err, &target)
}

// RangeError reports a decimal value whose scaled magnitude does not fit in int64.
type RangeError struct {
	Value     float64
	Precision uint8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v scaled by 10^%d does not fit in int64", e.Value, e.Precision)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
