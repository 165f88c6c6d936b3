package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// newPoolSymbolCmd derives the liquidity token code of a pool id.
func newPoolSymbolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool-symbol <pool-id>",
		Short: "Derive the liquidity token code for a pool id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil || id == 0 {
				return types.ErrInvalidPool.Wrapf("invalid pool id %q", args[0])
			}
			cmd.Println(types.PoolSymbol(id).Code)
			return nil
		},
	}
}

// newGenesisValidateCmd checks a module genesis file without a node.
func newGenesisValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-genesis <file>",
		Short: "Validate a module genesis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var genState types.GenesisState
			if err := json.Unmarshal(bz, &genState); err != nil {
				return types.ErrInvalidGenesis.Wrapf("cannot decode %s: %v", args[0], err)
			}
			if err := genState.Validate(); err != nil {
				return err
			}
			cmd.Printf("%s is a valid genesis: %d tokens, %d balances, %d pools, %d inheritance records\n",
				args[0], len(genState.Tokens), len(genState.Balances), len(genState.Pools), len(genState.Inheritances))
			return nil
		},
	}
}
