// =============================
// File: internal/cli/commands.go
// =============================
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/assetmath/internal/asset"
	"github.com/rovshanmuradov/assetmath/internal/textutil"
	"github.com/rovshanmuradov/assetmath/internal/utils/logger"
)

func newDecimalCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decimal <amount> [precision] [code]",
		Short: "Convert a fixed-point amount to a decimal number",
		Example: `  assetmath decimal 10000 4 EOS
  # => 1`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.log.TrackPerformance("decimal")()

			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			sym, err := app.symbol(args[1:])
			if err != nil {
				return err
			}

			a := asset.Asset{Amount: amount, Symbol: sym}
			value := asset.ToDecimal(a)

			app.component("decimal").Debug("Converted to decimal",
				append(logger.AssetFields(a), zap.Float64("value", value))...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
			return err
		},
	}
}

func newFixedCommand(app *App) *cobra.Command {
	var checked bool

	cmd := &cobra.Command{
		Use:   "fixed <value> [precision] [code]",
		Short: "Convert a decimal number to a fixed-point amount (truncating)",
		Example: `  assetmath fixed 1.5 4 EOS
  # => 1.5000 EOS`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.log.TrackPerformance("fixed")()

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			sym, err := app.symbol(args[1:])
			if err != nil {
				return err
			}

			var a asset.Asset
			if checked {
				a, err = asset.ToFixedPointChecked(value, sym.Precision, sym.Code)
				if err != nil {
					app.component("fixed").Warn("Conversion out of range",
						zap.Error(err), zap.Float64("value", value))
					return err
				}
			} else {
				a = asset.ToFixedPoint(value, sym.Precision, sym.Code)
			}

			app.component("fixed").Debug("Converted to fixed point",
				append(logger.AssetFields(a), zap.Float64("value", value))...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&checked, "checked", false, "fail instead of overflowing when the result does not fit in int64")
	return cmd
}

func newSortCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <asset> <asset>",
		Short: "Order two assets by symbol code",
		Example: `  assetmath sort "1.0000 USDT" "1.0000 EOS"
  # => 1.0000 EOS
  #    1.0000 USDT`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.log.TrackPerformance("sort")()

			a, err := asset.ParseAsset(args[0])
			if err != nil {
				return err
			}
			b, err := asset.ParseAsset(args[1])
			if err != nil {
				return err
			}

			first, second, err := asset.SortPair(a, b)
			if err != nil {
				app.component("sort").Warn("Failed to sort pair",
					zap.Error(err), zap.String("a", a.String()), zap.String("b", b.String()))
				return fmt.Errorf("sort pair: %w", err)
			}

			app.component("sort").Debug("Sorted pair",
				zap.Stringer("first", first),
				zap.Stringer("second", second))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", first, second)
			return err
		},
	}
}

func newSplitCommand(app *App) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "split <input>",
		Short: "Split a string, dropping empty tokens",
		Example: `  assetmath split "a,,b"
  # => a
  #    b`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer app.log.TrackPerformance("split")()

			if delimiter == "" {
				delimiter = app.cfg.Delimiter
			}

			tokens := textutil.Split(args[0], delimiter)
			app.component("split").Debug("Split input",
				zap.String("delimiter", delimiter),
				zap.Int("tokens", len(tokens)))

			out := cmd.OutOrStdout()
			for _, token := range tokens {
				if _, err := fmt.Fprintln(out, token); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "token delimiter (defaults to config delimiter)")
	return cmd
}

// symbol достраивает символ из аргументов [precision] [code], недостающее берется из конфигурации
func (a *App) symbol(args []string) (asset.Symbol, error) {
	sym := a.cfg.Symbol()

	if len(args) > 0 {
		precision, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return asset.Symbol{}, fmt.Errorf("%w: %q", asset.ErrInvalidPrecision, args[0])
		}
		sym.Precision = uint8(precision)
	}
	if len(args) > 1 {
		sym.Code = args[1]
	}

	if err := sym.Validate(); err != nil {
		return asset.Symbol{}, err
	}
	return sym, nil
}
