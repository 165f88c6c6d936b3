package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

const envPrefix = "SWAPCTL"

// NewRootCmd builds the swapctl command tree. swapctl is an offline
// companion tool: it prices trades, builds and decodes transfer memos, and
// checks genesis files, without talking to a running node.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "swapctl",
		Short: "Offline tooling for the token exchange module",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			return v.BindPFlags(cmd.Flags())
		},
		SilenceUsage: true,
	}

	addFeeFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newQuoteCmd(v),
		newMemoCmd(),
		newPoolSymbolCmd(),
		newGenesisValidateCmd(),
	)
	return rootCmd
}

// addFeeFlags exposes the fee parameters so quotes can be computed for
// deployments that run with non-default rates.
func addFeeFlags(fs *pflag.FlagSet) {
	defaults := types.DefaultParams()
	fs.Int64("pool-fee", defaults.PoolFee.Int64(), "pool fee rate in hundredths of a percent")
	fs.Int64("platform-fee", defaults.PlatformFee.Int64(), "platform fee rate in hundredths of a percent")
	fs.Int64("min-swap-amount", defaults.MinSwapAmount.Int64(), "minimum accepted swap amount")
}
