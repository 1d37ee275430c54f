// =============================
// File: internal/asset/pair.go
// =============================
package asset

// SortPair returns the two assets ordered by symbol code, smaller code first.
// Codes are compared byte-wise. Both assets sharing a code is a contract
// violation reported as *IdenticalSymbolsError; precision is ignored for
// both the comparison and the identity check.
func SortPair(a, b Asset) (Asset, Asset, error) {
	if a.Symbol.Code == b.Symbol.Code {
		return Asset{}, Asset{}, &IdenticalSymbolsError{Code: a.Symbol.Code}
	}
	if a.Symbol.Code < b.Symbol.Code {
		return a, b, nil
	}
	return b, a, nil
}
