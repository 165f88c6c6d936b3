package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// Withdraw redeems liquidity tokens for the proportional share of both
// reserves. The redeemed tokens are retired and both underlying amounts are
// paid out; rounding dust stays in the pool.
func (k Keeper) Withdraw(ctx types.Context, owner string, lqTokens types.Asset) error {
	pool, found := k.GetPoolByCode(ctx, lqTokens.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "no pool for liquidity token %s", lqTokens.Symbol.Code)
	}
	if !lqTokens.IsValid() || !lqTokens.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAmount, "withdraw amount %s must be positive", lqTokens.String())
	}

	supply, err := k.liquiditySupply(ctx, pool.Code)
	if err != nil {
		return err
	}
	if supply.Amount.LT(lqTokens.Amount) {
		return errorsmod.Wrapf(types.ErrInvalidSupply,
			"cannot redeem %s out of a supply of %s", lqTokens.String(), supply.String())
	}

	amount1, amount2 := earnings(lqTokens.Amount, supply.Amount,
		pool.Token1.Quantity.Amount, pool.Token2.Quantity.Amount)
	token1 := types.NewExtendedAsset(types.NewAssetFromInt(amount1, pool.Token1.Quantity.Symbol), pool.Token1.Contract)
	token2 := types.NewExtendedAsset(types.NewAssetFromInt(amount2, pool.Token2.Quantity.Symbol), pool.Token2.Contract)

	if !k.hasOpenBalance(ctx, owner, token1.ExtendedSymbol()) {
		return errorsmod.Wrapf(types.ErrAccountNotOpen, "%s has no open balance for %s", owner, token1.ExtendedSymbol())
	}
	if !k.hasOpenBalance(ctx, owner, token2.ExtendedSymbol()) {
		return errorsmod.Wrapf(types.ErrAccountNotOpen, "%s has no open balance for %s", owner, token2.ExtendedSymbol())
	}

	if err := k.subPoolReserves(ctx, pool.ID, token1, token2); err != nil {
		return err
	}
	k.extendInheritance(ctx, owner)

	if err := k.burnLiquidity(ctx, owner, lqTokens); err != nil {
		return err
	}
	if err := k.payOut(ctx, owner, token1, k.self+": withdraw"); err != nil {
		return err
	}
	if err := k.payOut(ctx, owner, token2, k.self+": withdraw"); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypeRemoveLiquidity,
		types.NewAttribute(types.AttributeKeyPoolID, pool.Code),
		types.NewAttribute(types.AttributeKeyOwner, owner),
		types.NewAttribute(types.AttributeKeyLiquidity, lqTokens.String()),
		types.NewAttribute(types.AttributeKeyToken1, token1.String()),
		types.NewAttribute(types.AttributeKeyToken2, token2.String()),
	))
	k.metrics.LiquidityRemoved(pool.Code)

	k.logger.Debug("liquidity removed",
		"pool", pool.Code,
		"owner", owner,
		"redeemed", lqTokens.String(),
	)
	return nil
}
