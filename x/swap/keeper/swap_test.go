package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	keepertest "github.com/pcash-chain/swapcore/testutil/keeper"
	"github.com/pcash-chain/swapcore/x/swap/keeper"
	"github.com/pcash-chain/swapcore/x/swap/types"
)

const tokenContract = "token.pcash"

func tkaSymbol() types.ExtendedSymbol {
	return types.NewExtendedSymbol(types.NewSymbol("TKA", 4), tokenContract)
}

func tkbSymbol() types.ExtendedSymbol {
	return types.NewExtendedSymbol(types.NewSymbol("TKB", 4), tokenContract)
}

func tkcSymbol() types.ExtendedSymbol {
	return types.NewExtendedSymbol(types.NewSymbol("TKC", 4), tokenContract)
}

// createPairPool registers an empty TKA/TKB pool.
func createPairPool(t *testing.T, f *keepertest.Fixture, srv keeper.MsgServer) types.Pool {
	t.Helper()
	pool, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice",
		Token1:  tkaSymbol(),
		Token2:  tkbSymbol(),
	})
	require.NoError(t, err)
	return pool
}

// depositPair drives both legs of a liquidity deposit through the transfer
// notification entry point, the way two real token transfers would arrive.
func depositPair(f *keepertest.Fixture, srv keeper.MsgServer, from string, pool types.Pool, token1, token2 types.ExtendedAsset) error {
	memo := fmt.Sprintf("deposit:%d", pool.ID)
	legs := []types.Transfer{
		{Contract: token1.Contract, From: from, To: keepertest.SelfContract, Quantity: token1.Quantity, Memo: memo},
		{Contract: token2.Contract, From: from, To: keepertest.SelfContract, Quantity: token2.Quantity, Memo: memo},
	}
	ctx := f.Ctx.WithIncomingTransfers(legs)
	for _, leg := range legs {
		if err := srv.OnTransfer(ctx, leg); err != nil {
			return err
		}
	}
	return nil
}

func extAsset(amount int64, sym types.ExtendedSymbol) types.ExtendedAsset {
	return types.NewExtendedAsset(types.NewAsset(amount, sym.Symbol), sym.Contract)
}

// seedPool creates the TKA/TKB pool and funds it with 1M on each side from
// the "lp" account.
func seedPool(t *testing.T, f *keepertest.Fixture, srv keeper.MsgServer) types.Pool {
	t.Helper()
	pool := createPairPool(t, f, srv)
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner:  "lp",
		Symbol: types.NewSymbol(pool.Code, 0),
		Payer:  "lp",
	}))
	require.NoError(t, depositPair(f, srv, "lp", pool,
		extAsset(1_000_000, tkaSymbol()), extAsset(1_000_000, tkbSymbol())))
	f.Emitter.Reset()
	pool, _ = f.Keeper.GetPool(f.Ctx, pool.ID)
	return pool
}

func swapTransfer(from string, income types.ExtendedAsset, memo string) types.Transfer {
	return types.Transfer{
		Contract: income.Contract,
		From:     from,
		To:       keepertest.SelfContract,
		Quantity: income.Quantity,
		Memo:     memo,
	}
}

func TestSwap(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	pool := seedPool(t, f, srv)

	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1"))
	require.NoError(t, err)

	// 10000 in: 5 platform fee, 20 pool fee, 9975 priced at the constant
	// product for 9877 out
	require.Len(t, f.Emitter.Transfers, 2)

	fee := f.Emitter.Transfers[0]
	require.Equal(t, types.DefaultFeeReceiver, fee.To)
	require.Equal(t, types.NewAsset(5, tkaSymbol().Symbol), fee.Quantity)
	require.Equal(t, keepertest.SelfContract+": swap fee", fee.Memo)

	out := f.Emitter.Transfers[1]
	require.Equal(t, "carol", out.To)
	require.Equal(t, types.NewAsset(9877, tkbSymbol().Symbol), out.Quantity)
	require.Equal(t, keepertest.SelfContract+": swap token", out.Memo)

	pool, _ = f.Keeper.GetPool(f.Ctx, pool.ID)
	require.Equal(t, math.NewInt(1_009_995), pool.Token1.Quantity.Amount)
	require.Equal(t, math.NewInt(990_123), pool.Token2.Quantity.Amount)
}

func TestSwapReverseDirection(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	pool := seedPool(t, f, srv)

	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkbSymbol()), "swap:1"))
	require.NoError(t, err)

	out := f.Emitter.Transfers[1]
	require.Equal(t, types.NewAsset(9877, tkaSymbol().Symbol), out.Quantity)

	pool, _ = f.Keeper.GetPool(f.Ctx, pool.ID)
	require.Equal(t, math.NewInt(990_123), pool.Token1.Quantity.Amount)
	require.Equal(t, math.NewInt(1_009_995), pool.Token2.Quantity.Amount)
}

func TestSwapMultihop(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	seedPool(t, f, srv)

	// second pool: TKB/TKC, same 1M/1M depth
	second, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkbSymbol(), Token2: tkcSymbol(),
	})
	require.NoError(t, err)
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner: "lp", Symbol: types.NewSymbol(second.Code, 0), Payer: "lp",
	}))
	require.NoError(t, depositPair(f, srv, "lp", second,
		extAsset(1_000_000, tkbSymbol()), extAsset(1_000_000, tkcSymbol())))
	f.Emitter.Reset()

	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1-2"))
	require.NoError(t, err)

	// hop one yields 9877 TKB, hop two nets 9853 after its own fees
	require.Len(t, f.Emitter.Transfers, 3)
	require.Equal(t, types.NewAsset(5, tkaSymbol().Symbol), f.Emitter.Transfers[0].Quantity)
	require.Equal(t, types.NewAsset(4, tkbSymbol().Symbol), f.Emitter.Transfers[1].Quantity)

	out := f.Emitter.Transfers[2]
	require.Equal(t, "carol", out.To)
	require.Equal(t, types.NewAsset(9757, tkcSymbol().Symbol), out.Quantity)

	secondPool, _ := f.Keeper.GetPool(f.Ctx, second.ID)
	require.Equal(t, math.NewInt(1_009_873), secondPool.Token1.Quantity.Amount)
	require.Equal(t, math.NewInt(990_243), secondPool.Token2.Quantity.Amount)
}

func TestSwapSlippageProtection(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	pool := seedPool(t, f, srv)

	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1;min:9878"))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// the failed swap left no trace in the reserves
	pool, _ = f.Keeper.GetPool(f.Ctx, pool.ID)
	require.Equal(t, math.NewInt(1_000_000), pool.Token1.Quantity.Amount)
	require.Equal(t, math.NewInt(1_000_000), pool.Token2.Quantity.Amount)

	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1;min:9877"))
	require.NoError(t, err)
}

func TestSwapMinimumAmount(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	seedPool(t, f, srv)

	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(799, tkaSymbol()), "swap:1"))
	require.ErrorIs(t, err, types.ErrMinSwapAmount)

	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(800, tkaSymbol()), "swap:1"))
	require.NoError(t, err)
}

func TestSwapFailures(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	seedPool(t, f, srv)

	// unknown pool in the chain
	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:9"))
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	// pool does not hold the incoming token
	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkcSymbol()), "swap:1"))
	require.ErrorIs(t, err, types.ErrPoolMismatch)

	// recipient must hold an open row for the outgoing token
	f.Ledger.RemoveBalance("carol", tkbSymbol())
	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1"))
	require.ErrorIs(t, err, types.ErrAccountNotOpen)
}

func TestSwapRejectsUnknownMemo(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	seedPool(t, f, srv)

	err := srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "hello"))
	require.ErrorIs(t, err, types.ErrInvalidMemo)

	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1;min:0"))
	require.ErrorIs(t, err, types.ErrInvalidMemo)
}

func TestOnTransferIgnoresForeignRecipients(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	seedPool(t, f, srv)

	// a transfer between third parties is none of the module's business
	err := srv.OnTransfer(f.Ctx, types.Transfer{
		Contract: tokenContract,
		From:     "carol",
		To:       "dave",
		Quantity: types.NewAsset(10_000, tkaSymbol().Symbol),
		Memo:     "whatever",
	})
	require.NoError(t, err)
	require.Empty(t, f.Emitter.Transfers)
}

func TestInternalTransferToModuleSwaps(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	createToken(t, f, srv)

	// pool over the module's own token and an external one
	local := types.NewExtendedSymbol(pcashSymbol(), keepertest.SelfContract)
	pool, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: local, Token2: tkaSymbol(),
	})
	require.NoError(t, err)
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner: "lp", Symbol: types.NewSymbol(pool.Code, 0), Payer: "lp",
	}))
	require.NoError(t, srv.Issue(f.Ctx, types.MsgIssue{
		To: "lp", Quantity: types.NewAsset(1_000_000, pcashSymbol()),
	}))
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner: keepertest.SelfContract, Symbol: pcashSymbol(), Payer: "lp",
	}))

	// fund the local side by an internal transfer, the external side by a
	// notified transfer, both with the deposit memo
	memo := fmt.Sprintf("deposit:%d", pool.ID)
	legs := []types.Transfer{
		{Contract: keepertest.SelfContract, From: "lp", To: keepertest.SelfContract,
			Quantity: types.NewAsset(1_000_000, pcashSymbol()), Memo: memo},
		{Contract: tokenContract, From: "lp", To: keepertest.SelfContract,
			Quantity: types.NewAsset(1_000_000, tkaSymbol().Symbol), Memo: memo},
	}
	ctx := f.Ctx.WithIncomingTransfers(legs)
	require.NoError(t, srv.Transfer(ctx, types.MsgTransfer{
		From: "lp", To: keepertest.SelfContract,
		Quantity: types.NewAsset(1_000_000, pcashSymbol()), Memo: memo,
	}))
	require.NoError(t, srv.OnTransfer(ctx, legs[1]))

	lq, found := f.Keeper.GetBalance(f.Ctx, "lp", pool.Code)
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000_000), lq.Balance.Amount)

	// swapping the external token pays the local side out on the internal
	// ledger, not through the emitter
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner: "carol", Symbol: pcashSymbol(), Payer: "carol",
	}))
	f.Emitter.Reset()
	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1"))
	require.NoError(t, err)

	require.Len(t, f.Emitter.Transfers, 1, "only the platform fee leaves through the emitter")
	balance, _ := f.Keeper.GetBalance(f.Ctx, "carol", "PCASH")
	require.Equal(t, math.NewInt(9877), balance.Balance.Amount)
}

func TestSwapCountersIgnoreAbortedRoutes(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	first := seedPool(t, f, srv)

	second, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkbSymbol(), Token2: tkcSymbol(),
	})
	require.NoError(t, err)
	require.NoError(t, srv.Open(f.Ctx, types.MsgOpen{
		Owner: "lp", Symbol: types.NewSymbol(second.Code, 0), Payer: "lp",
	}))
	require.NoError(t, depositPair(f, srv, "lp", second,
		extAsset(1_000_000, tkbSymbol()), extAsset(1_000_000, tkcSymbol())))

	hops := func(code string) float64 {
		return promtestutil.ToFloat64(keeper.GetMetrics().SwapsTotal.WithLabelValues(code))
	}
	firstBefore, secondBefore := hops(first.Code), hops(second.Code)

	// the final hop misses its minimum, so the first hop's settlement is
	// rolled back and neither pool counter moves
	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1-2;min:9758"))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
	require.Equal(t, firstBefore, hops(first.Code))
	require.Equal(t, secondBefore, hops(second.Code))

	err = srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1-2;min:9757"))
	require.NoError(t, err)
	require.Equal(t, firstBefore+1, hops(first.Code))
	require.Equal(t, secondBefore+1, hops(second.Code))
}
