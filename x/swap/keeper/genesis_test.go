package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/pcash-chain/swapcore/testutil/keeper"
	"github.com/pcash-chain/swapcore/x/swap/keeper"
	"github.com/pcash-chain/swapcore/x/swap/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	f := keepertest.SwapKeeper(t)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	// populate a bit of everything: tokens, balances, a funded pool, a
	// customized inheritance record
	fundAlice(t, f, srv, 10_000)
	seedPool(t, f, srv)
	require.NoError(t, srv.OnTransfer(f.Ctx, swapTransfer("carol", extAsset(10_000, tkaSymbol()), "swap:1")))
	require.NoError(t, srv.UpdateInheritors(f.Ctx, types.MsgUpdateInheritors{
		Owner: "alice",
		Inheritors: []types.Inheritor{
			{Account: "bob", Share: 600},
			{Account: "carol", Share: 400},
		},
	}))

	exported := f.Keeper.ExportGenesis(f.Ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, uint64(2), exported.NextPoolID)
	require.Len(t, exported.Pools, 1)
	require.NotEmpty(t, exported.Tokens)
	require.NotEmpty(t, exported.Balances)
	require.NotEmpty(t, exported.Inheritances)

	fresh := keepertest.SwapKeeper(t)
	require.NoError(t, fresh.Keeper.InitGenesis(fresh.Ctx, exported))
	require.Equal(t, exported, fresh.Keeper.ExportGenesis(fresh.Ctx))

	// the imported pool is fully indexed: by id, by code and by pair
	pool, found := fresh.Keeper.GetPool(fresh.Ctx, 1)
	require.True(t, found)
	byCode, found := fresh.Keeper.GetPoolByCode(fresh.Ctx, pool.Code)
	require.True(t, found)
	require.Equal(t, pool, byCode)
	freshSrv := keeper.NewMsgServerImpl(fresh.Keeper)
	_, err := freshSrv.CreatePool(fresh.Ctx, types.MsgCreatePool{
		Creator: "alice", Token1: tkbSymbol(), Token2: tkaSymbol(),
	})
	require.ErrorIs(t, err, types.ErrPoolExists)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	f := keepertest.SwapKeeper(t)

	sym := types.NewSymbol("TKA", 4)
	stat := types.TokenStat{
		Supply:    types.ZeroAsset(sym),
		MaxSupply: types.NewAsset(1000, sym),
		Issuer:    "alice",
	}

	dup := types.DefaultGenesis()
	dup.Tokens = []types.TokenStat{stat, stat}
	require.ErrorIs(t, f.Keeper.InitGenesis(f.Ctx, *dup), types.ErrInvalidGenesis)

	orphan := types.DefaultGenesis()
	orphan.Balances = []types.Balance{{Owner: "alice", Balance: types.NewAsset(10, sym)}}
	require.ErrorIs(t, f.Keeper.InitGenesis(f.Ctx, *orphan), types.ErrInvalidGenesis)

	badID := types.DefaultGenesis()
	badID.Tokens = []types.TokenStat{{
		Supply:    types.ZeroAsset(types.NewSymbol("LQA", 0)),
		MaxSupply: types.NewAsset(types.MaxAssetAmount, types.NewSymbol("LQA", 0)),
		Issuer:    keepertest.SelfContract,
	}}
	badID.Pools = []types.Pool{func() types.Pool {
		p := types.Pool{
			ID:          1,
			Code:        "LQA",
			PoolFee:     types.DefaultParams().PoolFee,
			PlatformFee: types.DefaultParams().PlatformFee,
			FeeReceiver: types.DefaultFeeReceiver,
			Token1:      extAsset(0, tkaSymbol()),
			Token2:      extAsset(0, tkbSymbol()),
		}
		return p
	}()}
	badID.NextPoolID = 1 // pool ids must stay below the allocator
	require.ErrorIs(t, f.Keeper.InitGenesis(f.Ctx, *badID), types.ErrInvalidGenesis)
}
