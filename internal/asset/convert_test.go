package asset

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eos(amount int64) Asset {
	return Asset{Amount: amount, Symbol: Symbol{Code: "EOS", Precision: 4}}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name  string
		asset Asset
		want  float64
	}{
		{name: "one EOS", asset: eos(10000), want: 1.0},
		{name: "negative", asset: eos(-15000), want: -1.5},
		{name: "zero precision", asset: Asset{Amount: 5, Symbol: Symbol{Code: "BTC"}}, want: 5},
		{name: "ten digits", asset: Asset{Amount: 12, Symbol: Symbol{Code: "ZCN", Precision: 10}}, want: 1.2e-9},
		{name: "max precision", asset: Asset{Amount: 1, Symbol: Symbol{Code: "ETH", Precision: 18}}, want: 1e-18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDecimal(tt.asset))
		})
	}
}

func TestToDecimalZeroAmount(t *testing.T) {
	for precision := uint8(0); precision <= MaxPrecision; precision++ {
		a := Asset{Amount: 0, Symbol: Symbol{Code: "EOS", Precision: precision}}
		assert.Equal(t, 0.0, ToDecimal(a), "precision %d", precision)
	}
}

func TestToFixedPoint(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision uint8
		want      int64
	}{
		{name: "one EOS", value: 1.0, precision: 4, want: 10000},
		{name: "truncates", value: 1.23456, precision: 4, want: 12345},
		{name: "truncates toward zero", value: -1.23456, precision: 4, want: -12345},
		{name: "zero precision drops fraction", value: 0.5, precision: 0, want: 0},
		{name: "zero", value: 0, precision: 8, want: 0},
		{name: "two digits", value: 2.5, precision: 2, want: 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToFixedPoint(tt.value, tt.precision, "EOS")
			assert.Equal(t, tt.want, got.Amount)
			assert.Equal(t, Symbol{Code: "EOS", Precision: tt.precision}, got.Symbol)
		})
	}
}

func TestFromDecimal(t *testing.T) {
	sym := Symbol{Code: "USDT", Precision: 6}
	got := FromDecimal(0.25, sym)
	assert.Equal(t, Asset{Amount: 250000, Symbol: sym}, got)
}

func TestRoundTrip(t *testing.T) {
	// значения, которые float64 представляет без потерь
	assets := []Asset{
		eos(10000),
		eos(15000),
		eos(2500),
		eos(-7500),
		{Amount: 100000000, Symbol: Symbol{Code: "BTC", Precision: 8}},
		{Amount: 3, Symbol: Symbol{Code: "SYS"}},
		{Amount: 5, Symbol: Symbol{Code: "SYS", Precision: 1}},
	}
	for _, a := range assets {
		d := ToDecimal(a)
		got := ToFixedPoint(d, a.Symbol.Precision, a.Symbol.Code)
		assert.Equal(t, a, got, "round trip via %v", d)
	}
}

func TestToFixedPointChecked(t *testing.T) {
	t.Run("in range", func(t *testing.T) {
		got, err := ToFixedPointChecked(1.0, 4, "EOS")
		require.NoError(t, err)
		assert.Equal(t, eos(10000), got)
	})

	t.Run("large but representable", func(t *testing.T) {
		got, err := ToFixedPointChecked(9.2e18, 0, "EOS")
		require.NoError(t, err)
		assert.Equal(t, int64(9200000000000000000), got.Amount)
	})

	outOfRange := []struct {
		name      string
		value     float64
		precision uint8
	}{
		{name: "above int64", value: 1e19, precision: 0},
		{name: "below int64", value: -9.3e18, precision: 0},
		{name: "scaled above int64", value: 1e15, precision: 4},
		{name: "NaN", value: math.NaN(), precision: 4},
		{name: "+Inf", value: math.Inf(1), precision: 4},
		{name: "-Inf", value: math.Inf(-1), precision: 4},
	}
	for _, tt := range outOfRange {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToFixedPointChecked(tt.value, tt.precision, "EOS")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrOutOfRange))

			var rangeErr *RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.precision, rangeErr.Precision)
		})
	}

	t.Run("precision too large", func(t *testing.T) {
		_, err := ToFixedPointChecked(1.0, MaxPrecision+1, "EOS")
		assert.ErrorIs(t, err, ErrInvalidPrecision)
	})
}
