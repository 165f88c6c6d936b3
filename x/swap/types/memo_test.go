package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

func TestParseMemo_SingleHopSwap(t *testing.T) {
	cmd, err := types.ParseMemo("swap:1")
	require.NoError(t, err)

	swap, ok := cmd.(types.SwapCommand)
	require.True(t, ok)
	require.Equal(t, []uint64{1}, swap.PoolIDs)
	require.Equal(t, math.OneInt(), swap.MinAmountOut)
}

func TestParseMemo_MultihopWithMin(t *testing.T) {
	cmd, err := types.ParseMemo("swap:1-2;min:100")
	require.NoError(t, err)

	swap, ok := cmd.(types.SwapCommand)
	require.True(t, ok)
	require.Equal(t, []uint64{1, 2}, swap.PoolIDs)
	require.Equal(t, math.NewInt(100), swap.MinAmountOut)
}

func TestParseMemo_LongChain(t *testing.T) {
	cmd, err := types.ParseMemo("swap:3-1-7-2")
	require.NoError(t, err)

	swap, ok := cmd.(types.SwapCommand)
	require.True(t, ok)
	require.Equal(t, []uint64{3, 1, 7, 2}, swap.PoolIDs)
}

func TestParseMemo_Deposit(t *testing.T) {
	cmd, err := types.ParseMemo("deposit:42")
	require.NoError(t, err)

	deposit, ok := cmd.(types.DepositCommand)
	require.True(t, ok)
	require.Equal(t, uint64(42), deposit.PoolID)
}

func TestParseMemo_FailsClosed(t *testing.T) {
	cases := []struct {
		name string
		memo string
	}{
		{"empty", ""},
		{"plain text", "thanks for lunch"},
		{"non-digit pool id", "swap:abc"},
		{"non-digit in chain", "swap:1-x-2"},
		{"negative id", "swap:-1"},
		{"hex id", "swap:0x1"},
		{"empty id", "swap:"},
		{"trailing dash", "swap:1-"},
		{"zero min", "swap:1;min:0"},
		{"non-digit min", "swap:1;min:ten"},
		{"unknown extra key", "swap:1;max:5"},
		{"duplicate key", "swap:1;swap:2"},
		{"min alone", "min:5"},
		{"deposit with extra key", "deposit:1;min:2"},
		{"deposit non-digit", "deposit:one"},
		{"missing colon", "swap"},
		{"deposit missing id", "deposit:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := types.ParseMemo(tc.memo)
			require.Error(t, err)
			require.ErrorIs(t, err, types.ErrInvalidMemo)
		})
	}
}

func TestMemoClassification(t *testing.T) {
	require.True(t, types.IsSwapMemo("swap:1"))
	require.True(t, types.IsSwapMemo("swap:garbage"))
	require.False(t, types.IsSwapMemo("deposit:1"))
	require.True(t, types.IsDepositMemo("deposit:1"))
	require.False(t, types.IsDepositMemo(" deposit:1"))
	require.False(t, types.IsSwapMemo("Swap:1"))
}
