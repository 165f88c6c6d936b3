package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestQuote(t *testing.T) {
	out, err := execute(t, "quote", "1000000", "1000000", "10000")
	require.NoError(t, err)
	require.Contains(t, out, "9877")
	require.Contains(t, out, "platform fee:  5")
	require.Contains(t, out, "pool fee:      20")
}

func TestQuoteCustomFees(t *testing.T) {
	out, err := execute(t, "quote", "1000000", "1000000", "10000",
		"--pool-fee", "30", "--platform-fee", "10")
	require.NoError(t, err)
	require.Contains(t, out, "platform fee:  10")
	require.Contains(t, out, "pool fee:      30")
}

func TestQuoteRejectsSmallAmount(t *testing.T) {
	_, err := execute(t, "quote", "1000000", "1000000", "799")
	require.ErrorIs(t, err, types.ErrMinSwapAmount)

	_, err = execute(t, "quote", "1000000", "1000000", "abc")
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestMemoSwap(t *testing.T) {
	out, err := execute(t, "memo", "swap", "1", "2", "--min", "100")
	require.NoError(t, err)
	require.Equal(t, "swap:1-2;min:100\n", out)

	out, err = execute(t, "memo", "swap", "3")
	require.NoError(t, err)
	require.Equal(t, "swap:3\n", out)

	_, err = execute(t, "memo", "swap", "zero")
	require.ErrorIs(t, err, types.ErrInvalidMemo)
}

func TestMemoDeposit(t *testing.T) {
	out, err := execute(t, "memo", "deposit", "4")
	require.NoError(t, err)
	require.Equal(t, "deposit:4\n", out)
}

func TestMemoParse(t *testing.T) {
	out, err := execute(t, "memo", "parse", "swap:1-2;min:100")
	require.NoError(t, err)
	require.Contains(t, out, "1 -> 2")
	require.Contains(t, out, "100")

	out, err = execute(t, "memo", "parse", "deposit:4")
	require.NoError(t, err)
	require.Contains(t, out, "pool 4")

	_, err = execute(t, "memo", "parse", "not a memo")
	require.ErrorIs(t, err, types.ErrInvalidMemo)
}

func TestPoolSymbol(t *testing.T) {
	out, err := execute(t, "pool-symbol", "27")
	require.NoError(t, err)
	require.Equal(t, "LQAA\n", out)
}

func TestValidateGenesis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.json")
	bz, err := json.Marshal(types.DefaultGenesis())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bz, 0o600))

	out, err := execute(t, "validate-genesis", path)
	require.NoError(t, err)
	require.Contains(t, out, "valid genesis")

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = execute(t, "validate-genesis", path)
	require.ErrorIs(t, err, types.ErrInvalidGenesis)
}
