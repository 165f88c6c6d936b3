package cmd

import (
	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// newQuoteCmd prices a hypothetical trade against a pair of reserves, with
// the same integer arithmetic the module applies on settlement.
func newQuoteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "quote <reserve-in> <reserve-out> <amount-in>",
		Short: "Price a trade against the given reserves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reserveIn, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			amountIn, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			poolFeeRate := math.NewInt(v.GetInt64("pool-fee"))
			platformFeeRate := math.NewInt(v.GetInt64("platform-fee"))
			minSwap := math.NewInt(v.GetInt64("min-swap-amount"))
			if amountIn.LT(minSwap) {
				return types.ErrMinSwapAmount.Wrapf("amount %s below the minimum of %s", amountIn, minSwap)
			}

			totalFee := amountIn.Mul(poolFeeRate.Add(platformFeeRate)).Quo(math.NewInt(types.FeeScale))
			platformFee := math.OneInt()
			if amountIn.GT(math.NewInt(types.SmallTradeThreshold)) {
				platformFee = amountIn.Mul(platformFeeRate).Quo(math.NewInt(types.FeeScale))
			}
			poolFee := totalFee.Sub(platformFee)
			netIn := amountIn.Sub(totalFee)
			if !netIn.IsPositive() {
				return types.ErrInvalidAmount.Wrapf("amount %s does not cover the fees", amountIn)
			}

			product := reserveIn.Mul(reserveOut)
			amountOut := reserveOut.Sub(product.Quo(reserveIn.Add(netIn)))
			price := math.LegacyNewDecFromInt(amountOut).QuoInt(netIn)

			cmd.Printf("amount in:     %s\n", amountIn)
			cmd.Printf("pool fee:      %s\n", poolFee)
			cmd.Printf("platform fee:  %s\n", platformFee)
			cmd.Printf("net in:        %s\n", netIn)
			cmd.Printf("amount out:    %s\n", amountOut)
			cmd.Printf("price:         %s\n", price)
			return nil
		},
	}
}

func parseAmount(raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("invalid amount %q", raw)
	}
	return amount, nil
}
