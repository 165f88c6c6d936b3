package keeper

import (
	"github.com/pcash-chain/swapcore/x/swap/types"
)

// InitGenesis seeds the module state from a validated genesis state.
func (k Keeper) InitGenesis(ctx types.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, stat := range genState.Tokens {
		k.setTokenStat(ctx, stat)
	}
	for _, balance := range genState.Balances {
		k.setBalance(ctx, balance)
	}
	for _, pool := range genState.Pools {
		k.setPool(ctx, pool)
	}
	for _, record := range genState.Inheritances {
		k.setInheritance(ctx, record)
	}
	k.SetNextPoolID(ctx, genState.NextPoolID)
	return nil
}

// ExportGenesis dumps the full module state.
func (k Keeper) ExportGenesis(ctx types.Context) types.GenesisState {
	genState := types.GenesisState{
		Params:     k.GetParams(ctx),
		NextPoolID: k.GetNextPoolID(ctx),
	}
	k.IterateTokenStats(ctx, func(stat types.TokenStat) bool {
		genState.Tokens = append(genState.Tokens, stat)
		return false
	})
	k.IterateAllBalances(ctx, func(balance types.Balance) bool {
		genState.Balances = append(genState.Balances, balance)
		return false
	})
	k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	})
	k.IterateInheritances(ctx, func(record types.InheritanceRecord) bool {
		genState.Inheritances = append(genState.Inheritances, record)
		return false
	})
	return genState
}
