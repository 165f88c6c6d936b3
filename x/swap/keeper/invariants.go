package keeper

import (
	"fmt"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// AllInvariants runs every module invariant and reports the first broken
// one. The second return value is true when an invariant is broken.
func (k Keeper) AllInvariants(ctx types.Context) (string, bool) {
	if msg, broken := k.SupplyInvariant(ctx); broken {
		return msg, true
	}
	if msg, broken := k.PoolInvariant(ctx); broken {
		return msg, true
	}
	if msg, broken := k.BalanceInvariant(ctx); broken {
		return msg, true
	}
	return k.InheritanceInvariant(ctx)
}

// SupplyInvariant checks 0 <= supply <= max_supply for every token.
func (k Keeper) SupplyInvariant(ctx types.Context) (string, bool) {
	var msg string
	broken := false
	k.IterateTokenStats(ctx, func(stat types.TokenStat) bool {
		if err := stat.Validate(); err != nil {
			msg = fmt.Sprintf("token %s: %v", stat.Supply.Symbol.Code, err)
			broken = true
		}
		return broken
	})
	return msg, broken
}

// PoolInvariant checks reserve consistency and the liquidity token stat of
// every pool.
func (k Keeper) PoolInvariant(ctx types.Context) (string, bool) {
	var msg string
	broken := false
	k.IteratePools(ctx, func(pool types.Pool) bool {
		if err := pool.Validate(); err != nil {
			msg = fmt.Sprintf("pool %d: %v", pool.ID, err)
			broken = true
			return true
		}
		stat, found := k.GetTokenStat(ctx, pool.Code)
		if !found {
			msg = fmt.Sprintf("pool %d has no liquidity token stat %s", pool.ID, pool.Code)
			broken = true
			return true
		}
		if stat.Issuer != k.self {
			msg = fmt.Sprintf("liquidity token %s not issued by the module", pool.Code)
			broken = true
			return true
		}
		if pool.IsEmpty() != stat.Supply.Amount.IsZero() {
			msg = fmt.Sprintf("pool %d reserves and liquidity supply disagree on emptiness", pool.ID)
			broken = true
		}
		return broken
	})
	return msg, broken
}

// BalanceInvariant checks that every balance row is non-negative and backed
// by a token stat.
func (k Keeper) BalanceInvariant(ctx types.Context) (string, bool) {
	var msg string
	broken := false
	k.IterateAllBalances(ctx, func(balance types.Balance) bool {
		if balance.Balance.Amount.IsNegative() {
			msg = fmt.Sprintf("negative balance %s of %s", balance.Balance.String(), balance.Owner)
			broken = true
			return true
		}
		if _, found := k.GetTokenStat(ctx, balance.Balance.Symbol.Code); !found {
			msg = fmt.Sprintf("balance of %s references unknown token %s", balance.Owner, balance.Balance.Symbol.Code)
			broken = true
		}
		return broken
	})
	return msg, broken
}

// InheritanceInvariant checks the beneficiary lists: 1-3 entries summing to
// exactly the full share scale.
func (k Keeper) InheritanceInvariant(ctx types.Context) (string, bool) {
	var msg string
	broken := false
	k.IterateInheritances(ctx, func(record types.InheritanceRecord) bool {
		if err := record.Validate(); err != nil {
			msg = fmt.Sprintf("inheritance of %s: %v", record.Owner, err)
			broken = true
		}
		return broken
	})
	return msg, broken
}
