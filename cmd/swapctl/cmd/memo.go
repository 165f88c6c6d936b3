package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

func newMemoCmd() *cobra.Command {
	memoCmd := &cobra.Command{
		Use:   "memo",
		Short: "Build and decode transfer memos",
	}
	memoCmd.AddCommand(newMemoSwapCmd(), newMemoDepositCmd(), newMemoParseCmd())
	return memoCmd
}

func newMemoSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <pool-id> [pool-id...]",
		Short: "Build a swap memo for a pool chain",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := cast.ToUint64E(arg)
				if err != nil || id == 0 {
					return types.ErrInvalidMemo.Wrapf("invalid pool id %q", arg)
				}
				ids = append(ids, strconv.FormatUint(id, 10))
			}

			memo := types.SwapMemoPrefix + strings.Join(ids, "-")
			min, err := cmd.Flags().GetUint64("min")
			if err != nil {
				return err
			}
			if min > 0 {
				memo += ";min:" + strconv.FormatUint(min, 10)
			}

			// round-trip through the parser so the tool can never emit a
			// memo the module rejects
			if _, err := types.ParseMemo(memo); err != nil {
				return err
			}
			cmd.Println(memo)
			return nil
		},
	}
	cmd.Flags().Uint64("min", 0, "minimum acceptable amount out")
	return cmd
}

func newMemoDepositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <pool-id>",
		Short: "Build a liquidity deposit memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[0])
			if err != nil || id == 0 {
				return types.ErrInvalidMemo.Wrapf("invalid pool id %q", args[0])
			}
			cmd.Println(types.DepositMemoPrefix + strconv.FormatUint(id, 10))
			return nil
		},
	}
}

func newMemoParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <memo>",
		Short: "Decode a transfer memo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := types.ParseMemo(args[0])
			if err != nil {
				return err
			}
			switch c := command.(type) {
			case types.SwapCommand:
				ids := make([]string, 0, len(c.PoolIDs))
				for _, id := range c.PoolIDs {
					ids = append(ids, strconv.FormatUint(id, 10))
				}
				cmd.Printf("swap through pools %s, min amount out %s\n",
					strings.Join(ids, " -> "), c.MinAmountOut)
			case types.DepositCommand:
				cmd.Printf("liquidity deposit into pool %d\n", c.PoolID)
			}
			return nil
		},
	}
}
