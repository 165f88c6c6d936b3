package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// GetPool returns a pool by id.
func (k Keeper) GetPool(ctx types.Context, poolID uint64) (types.Pool, bool) {
	bz := k.store(ctx).Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, false
	}
	var pool types.Pool
	k.mustUnmarshal(bz, &pool)
	return pool, true
}

// GetPoolByCode returns the pool whose liquidity token carries the code.
func (k Keeper) GetPoolByCode(ctx types.Context, code string) (types.Pool, bool) {
	bz := k.store(ctx).Get(PoolByCodeKey(code))
	if bz == nil {
		return types.Pool{}, false
	}
	return k.GetPool(ctx, poolIDFromIndex(bz))
}

// HasPool reports whether a pool with the id exists.
func (k Keeper) HasPool(ctx types.Context, poolID uint64) bool {
	return k.store(ctx).Has(PoolKey(poolID))
}

func (k Keeper) setPool(ctx types.Context, pool types.Pool) {
	store := k.store(ctx)
	store.Set(PoolKey(pool.ID), k.mustMarshal(pool))
	store.Set(PoolByCodeKey(pool.Code), poolIDToIndex(pool.ID))
	hash := types.PairHash(pool.Token1.ExtendedSymbol(), pool.Token2.ExtendedSymbol())
	store.Set(PoolByPairKey(hash), poolIDToIndex(pool.ID))
}

func (k Keeper) deletePool(ctx types.Context, pool types.Pool) {
	store := k.store(ctx)
	store.Delete(PoolKey(pool.ID))
	store.Delete(PoolByCodeKey(pool.Code))
	hash := types.PairHash(pool.Token1.ExtendedSymbol(), pool.Token2.ExtendedSymbol())
	store.Delete(PoolByPairKey(hash))
}

// IteratePools visits every pool in id order. Returning true from fn stops
// the iteration.
func (k Keeper) IteratePools(ctx types.Context, fn func(types.Pool) bool) {
	iterator := storeIterator(k.store(ctx), PoolKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		k.mustUnmarshal(iterator.Value(), &pool)
		if fn(pool) {
			return
		}
	}
}

// pairExists reports whether a pool holds the token pair in either order.
func (k Keeper) pairExists(ctx types.Context, token1, token2 types.ExtendedSymbol) bool {
	store := k.store(ctx)
	return store.Has(PoolByPairKey(types.PairHash(token1, token2))) ||
		store.Has(PoolByPairKey(types.PairHash(token2, token1)))
}

// poolMatchesPair reports whether the pool holds exactly this ordered pair.
// Deposits must arrive in the pool's stored token order.
func (k Keeper) poolMatchesPair(ctx types.Context, poolID uint64, token1, token2 types.ExtendedSymbol) bool {
	bz := k.store(ctx).Get(PoolByPairKey(types.PairHash(token1, token2)))
	return bz != nil && poolIDFromIndex(bz) == poolID
}

// nextPoolID allocates the next pool id, starting from 1.
func (k Keeper) nextPoolID(ctx types.Context) uint64 {
	store := k.store(ctx)
	id := uint64(1)
	if bz := store.Get(PoolCountKey); bz != nil {
		id = poolIDFromIndex(bz)
	}
	store.Set(PoolCountKey, poolIDToIndex(id+1))
	return id
}

// GetNextPoolID returns the id the next created pool will take.
func (k Keeper) GetNextPoolID(ctx types.Context) uint64 {
	if bz := k.store(ctx).Get(PoolCountKey); bz != nil {
		return poolIDFromIndex(bz)
	}
	return 1
}

// SetNextPoolID seeds the pool id counter.
func (k Keeper) SetNextPoolID(ctx types.Context, id uint64) {
	k.store(ctx).Set(PoolCountKey, poolIDToIndex(id))
}

// tokenExists reports whether the token exists on its host contract. Tokens
// of this module are answered from the local stat table.
func (k Keeper) tokenExists(ctx types.Context, token types.ExtendedSymbol) bool {
	if token.Contract == k.self {
		stat, found := k.GetTokenStat(ctx, token.Symbol.Code)
		return found && stat.Supply.Symbol.Equal(token.Symbol)
	}
	return k.ledger.HasTokenStat(ctx, token)
}

// hasOpenBalance reports whether the owner holds an open balance row for
// the token on the contract that issues it.
func (k Keeper) hasOpenBalance(ctx types.Context, owner string, token types.ExtendedSymbol) bool {
	if token.Contract == k.self {
		return k.HasBalance(ctx, owner, token.Symbol.Code)
	}
	return k.ledger.HasBalance(ctx, owner, token)
}

// CreatePool registers an empty pool for the token pair and creates the
// stat row of its liquidity token.
func (k Keeper) CreatePool(ctx types.Context, creator string, token1, token2 types.ExtendedSymbol) (types.Pool, error) {
	if !token1.Symbol.IsValid() {
		return types.Pool{}, errorsmod.Wrapf(types.ErrInvalidSymbol, "token1 symbol %s is not valid", token1.Symbol)
	}
	if !token2.Symbol.IsValid() {
		return types.Pool{}, errorsmod.Wrapf(types.ErrInvalidSymbol, "token2 symbol %s is not valid", token2.Symbol)
	}
	if token1.Equal(token2) {
		return types.Pool{}, errorsmod.Wrap(types.ErrInvalidPool, "pool tokens must differ")
	}
	if !k.tokenExists(ctx, token1) {
		return types.Pool{}, errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", token1)
	}
	if !k.tokenExists(ctx, token2) {
		return types.Pool{}, errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", token2)
	}
	if k.pairExists(ctx, token1, token2) {
		return types.Pool{}, errorsmod.Wrapf(types.ErrPoolExists, "pool for pair %s/%s already exists", token1, token2)
	}

	params := k.GetParams(ctx)
	id := k.nextPoolID(ctx)
	lqSymbol := types.PoolSymbol(id)
	if _, found := k.GetTokenStat(ctx, lqSymbol.Code); found {
		return types.Pool{}, errorsmod.Wrapf(types.ErrTokenExists, "liquidity token %s already exists", lqSymbol.Code)
	}

	now := ctx.BlockTime()
	pool := types.Pool{
		ID:             id,
		Code:           lqSymbol.Code,
		PoolFee:        params.PoolFee,
		PlatformFee:    params.PlatformFee,
		FeeReceiver:    params.FeeReceiver,
		Token1:         types.NewExtendedAsset(types.ZeroAsset(token1.Symbol), token1.Contract),
		Token2:         types.NewExtendedAsset(types.ZeroAsset(token2.Symbol), token2.Contract),
		CreateTime:     now,
		LastUpdateTime: now,
	}
	k.setPool(ctx, pool)
	k.setTokenStat(ctx, types.TokenStat{
		Supply:    types.ZeroAsset(lqSymbol),
		MaxSupply: types.NewAsset(types.MaxAssetAmount, lqSymbol),
		Issuer:    k.self,
	})

	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypePoolCreated,
		types.NewAttribute(types.AttributeKeyPoolID, pool.Code),
		types.NewAttribute(types.AttributeKeyToken1, token1.String()),
		types.NewAttribute(types.AttributeKeyToken2, token2.String()),
	))
	k.metrics.PoolsCreated()
	return pool, nil
}

// RemovePool deletes an empty pool and its liquidity token stat.
func (k Keeper) RemovePool(ctx types.Context, poolID uint64) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d does not exist", poolID)
	}
	stat, found := k.GetTokenStat(ctx, pool.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "liquidity token %s does not exist", pool.Code)
	}
	if !stat.Supply.Amount.IsZero() || !pool.IsEmpty() {
		return errorsmod.Wrapf(types.ErrPoolNotEmpty,
			"pool %d still has reserves or outstanding liquidity tokens", poolID)
	}
	k.deleteTokenStat(ctx, pool.Code)
	k.deletePool(ctx, pool)

	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypePoolRemoved,
		types.NewAttribute(types.AttributeKeyPoolID, pool.Code),
	))
	k.metrics.PoolsRemoved()
	return nil
}

// addPoolReserves credits both reserves of a pool.
func (k Keeper) addPoolReserves(ctx types.Context, poolID uint64, token1, token2 types.ExtendedAsset) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d does not exist", poolID)
	}
	pool.Token1.Quantity = pool.Token1.Quantity.Add(token1.Quantity)
	pool.Token2.Quantity = pool.Token2.Quantity.Add(token2.Quantity)
	pool.LastUpdateTime = ctx.BlockTime()
	k.setPool(ctx, pool)
	return nil
}

// subPoolReserves debits both reserves. Debiting to exactly zero is allowed;
// going below zero is not.
func (k Keeper) subPoolReserves(ctx types.Context, poolID uint64, token1, token2 types.ExtendedAsset) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d does not exist", poolID)
	}
	if pool.Token1.Quantity.Amount.LT(token1.Quantity.Amount) {
		return errorsmod.Wrapf(types.ErrOverdrawnReserve, "overdrawn token1 reserve of pool %d", poolID)
	}
	if pool.Token2.Quantity.Amount.LT(token2.Quantity.Amount) {
		return errorsmod.Wrapf(types.ErrOverdrawnReserve, "overdrawn token2 reserve of pool %d", poolID)
	}
	pool.Token1.Quantity = pool.Token1.Quantity.Sub(token1.Quantity)
	pool.Token2.Quantity = pool.Token2.Quantity.Sub(token2.Quantity)
	pool.LastUpdateTime = ctx.BlockTime()
	k.setPool(ctx, pool)
	return nil
}

// addPoolReserve credits one reserve, picked by the token's symbol.
func (k Keeper) addPoolReserve(ctx types.Context, poolID uint64, tokens types.ExtendedAsset) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d does not exist", poolID)
	}
	if tokens.ExtendedSymbol().Equal(pool.Token1.ExtendedSymbol()) {
		pool.Token1.Quantity = pool.Token1.Quantity.Add(tokens.Quantity)
	} else {
		pool.Token2.Quantity = pool.Token2.Quantity.Add(tokens.Quantity)
	}
	pool.LastUpdateTime = ctx.BlockTime()
	k.setPool(ctx, pool)
	return nil
}

// subPoolReserve debits one reserve. A swap must leave the outgoing reserve
// strictly positive, hence the strict comparison.
func (k Keeper) subPoolReserve(ctx types.Context, poolID uint64, tokens types.ExtendedAsset) error {
	pool, found := k.GetPool(ctx, poolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "pool %d does not exist", poolID)
	}
	if tokens.ExtendedSymbol().Equal(pool.Token1.ExtendedSymbol()) {
		if !tokens.Quantity.Amount.LT(pool.Token1.Quantity.Amount) {
			return errorsmod.Wrapf(types.ErrOverdrawnReserve, "overdrawn token1 reserve of pool %d", poolID)
		}
		pool.Token1.Quantity = pool.Token1.Quantity.Sub(tokens.Quantity)
	} else {
		if !tokens.Quantity.Amount.LT(pool.Token2.Quantity.Amount) {
			return errorsmod.Wrapf(types.ErrOverdrawnReserve, "overdrawn token2 reserve of pool %d", poolID)
		}
		pool.Token2.Quantity = pool.Token2.Quantity.Sub(tokens.Quantity)
	}
	pool.LastUpdateTime = ctx.BlockTime()
	k.setPool(ctx, pool)
	return nil
}

// liquiditySupply returns the outstanding supply of a pool's liquidity
// token.
func (k Keeper) liquiditySupply(ctx types.Context, code string) (types.Asset, error) {
	stat, found := k.GetTokenStat(ctx, code)
	if !found {
		return types.Asset{}, errorsmod.Wrapf(types.ErrTokenNotFound, "liquidity token %s does not exist", code)
	}
	return stat.Supply, nil
}
