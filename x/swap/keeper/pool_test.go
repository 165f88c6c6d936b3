package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/pcash-chain/swapcore/testutil/keeper"
	"github.com/pcash-chain/swapcore/x/swap/keeper"
	"github.com/pcash-chain/swapcore/x/swap/types"
)

func TestCreatePool(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	pool := createPairPool(t, f, srv)
	require.Equal(t, uint64(1), pool.ID)
	require.Equal(t, "LQA", pool.Code)
	require.Equal(t, types.DefaultFeeReceiver, pool.FeeReceiver)
	require.Equal(t, types.DefaultParams().PoolFee, pool.PoolFee)
	require.Equal(t, types.DefaultParams().PlatformFee, pool.PlatformFee)
	require.True(t, pool.IsEmpty())

	// the liquidity token stat is issued by the module itself
	stat, found := f.Keeper.GetTokenStat(f.Ctx, "LQA")
	require.True(t, found)
	require.Equal(t, keepertest.SelfContract, stat.Issuer)
	require.True(t, stat.Supply.Amount.IsZero())

	stored, found := f.Keeper.GetPool(f.Ctx, pool.ID)
	require.True(t, found)
	require.Equal(t, pool, stored)
	byCode, found := f.Keeper.GetPoolByCode(f.Ctx, "LQA")
	require.True(t, found)
	require.Equal(t, pool, byCode)
}

func TestCreatePoolAllocatesSequentialIDs(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	first, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkaSymbol(), Token2: tkbSymbol(),
	})
	require.NoError(t, err)
	second, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkbSymbol(), Token2: tkcSymbol(),
	})
	require.NoError(t, err)

	require.Equal(t, uint64(1), first.ID)
	require.Equal(t, uint64(2), second.ID)
	require.Equal(t, "LQB", second.Code)
	require.Equal(t, uint64(3), f.Keeper.GetNextPoolID(f.Ctx))
}

func TestCreatePoolRejectsDuplicatePair(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	createPairPool(t, f, srv)

	_, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "bob", Token1: tkaSymbol(), Token2: tkbSymbol(),
	})
	require.ErrorIs(t, err, types.ErrPoolExists)

	// the reversed pair is the same pool
	_, err = srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "bob", Token1: tkbSymbol(), Token2: tkaSymbol(),
	})
	require.ErrorIs(t, err, types.ErrPoolExists)
}

func TestCreatePoolFailures(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	_, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkaSymbol(), Token2: tkaSymbol(),
	})
	require.ErrorIs(t, err, types.ErrInvalidPool)

	f.Ledger.RemoveToken(tkbSymbol())
	_, err = srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkaSymbol(), Token2: tkbSymbol(),
	})
	require.ErrorIs(t, err, types.ErrTokenNotFound)

	f.Auth.Deny("alice")
	_, err = srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkaSymbol(), Token2: tkcSymbol(),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestCreatePoolWithLocalToken(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	createToken(t, f, srv)

	local := types.NewExtendedSymbol(pcashSymbol(), keepertest.SelfContract)
	pool, err := srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: local, Token2: tkaSymbol(),
	})
	require.NoError(t, err)
	require.Equal(t, keepertest.SelfContract, pool.Token1.Contract)

	// a local token the module never issued cannot back a pool
	missing := types.NewExtendedSymbol(types.NewSymbol("NOPE", 4), keepertest.SelfContract)
	_, err = srv.CreatePool(f.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: missing, Token2: tkbSymbol(),
	})
	require.ErrorIs(t, err, types.ErrTokenNotFound)
}

func TestRemovePool(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)
	pool := createPairPool(t, f, srv)

	// removal needs no special authority
	f.Auth.Deny("bob")
	err := srv.RemovePool(f.Ctx, types.MsgRemovePool{PoolID: pool.ID})
	require.NoError(t, err)

	require.False(t, f.Keeper.HasPool(f.Ctx, pool.ID))
	_, found := f.Keeper.GetTokenStat(f.Ctx, pool.Code)
	require.False(t, found)

	// the pair is free again, the id is not reused
	recreated := createPairPool(t, f, srv)
	require.Equal(t, uint64(2), recreated.ID)
	require.Equal(t, "LQB", recreated.Code)
}

func TestRemovePoolFailures(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	err := srv.RemovePool(f.Ctx, types.MsgRemovePool{PoolID: 9})
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	pool := seedPool(t, f, srv)
	err = srv.RemovePool(f.Ctx, types.MsgRemovePool{PoolID: pool.ID})
	require.ErrorIs(t, err, types.ErrPoolNotEmpty)
}
