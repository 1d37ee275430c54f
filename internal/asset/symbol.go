// =============================
// File: internal/asset/symbol.go
// =============================
package asset

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxPrecision is the largest number of implied decimal digits a symbol may carry.
	MaxPrecision = 18
	// MaxCodeLength is the longest symbol code accepted by NewSymbol.
	MaxCodeLength = 7
)

// Symbol identifies a token type together with its decimal precision.
type Symbol struct {
	Code      string
	Precision uint8
}

// NewSymbol validates code and precision and returns the symbol.
// Codes are 1-7 characters A-Z.
func NewSymbol(code string, precision uint8) (Symbol, error) {
	sym := Symbol{Code: code, Precision: precision}
	if err := sym.Validate(); err != nil {
		return Symbol{}, err
	}
	return sym, nil
}

// ParseSymbol parses the "<precision>,<CODE>" form, e.g. "4,EOS".
func ParseSymbol(s string) (Symbol, error) {
	digits, code, found := strings.Cut(s, ",")
	if !found || digits == "" || code == "" {
		return Symbol{}, fmt.Errorf("%w: %q, expected <precision>,<code>", ErrInvalidSymbol, s)
	}

	precision, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return Symbol{}, fmt.Errorf("%w: %q: %v", ErrInvalidPrecision, digits, err)
	}

	return NewSymbol(code, uint8(precision))
}

// Validate reports whether the symbol satisfies the code and precision rules.
func (s Symbol) Validate() error {
	if s.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidPrecision, s.Precision, MaxPrecision)
	}
	if len(s.Code) == 0 || len(s.Code) > MaxCodeLength {
		return fmt.Errorf("%w: code %q must be 1-%d characters", ErrInvalidSymbol, s.Code, MaxCodeLength)
	}
	for i := 0; i < len(s.Code); i++ {
		if c := s.Code[i]; c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: code %q contains %q", ErrInvalidSymbol, s.Code, c)
		}
	}
	return nil
}

// IsValid is a shorthand for Validate() == nil.
func (s Symbol) IsValid() bool {
	return s.Validate() == nil
}

func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}
