package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// swapAmounts is the priced outcome of one hop through a pool.
type swapAmounts struct {
	AmountIn    types.ExtendedAsset // net amount entering the reserve
	AmountOut   types.ExtendedAsset
	PoolFee     types.ExtendedAsset
	PlatformFee types.ExtendedAsset
	FeeReceiver string
	Price       math.LegacyDec
}

// countSwapAmounts prices one hop: fees come off the incoming amount, the
// net goes against the reserves at the constant product.
func (k Keeper) countSwapAmounts(pool types.Pool, income types.ExtendedAsset) (swapAmounts, error) {
	poolFee, platformFee := swapFees(income.Quantity.Amount, pool.PoolFee, pool.PlatformFee)
	netIn := income.Quantity.Amount.Sub(poolFee).Sub(platformFee)
	if !netIn.IsPositive() {
		return swapAmounts{}, errorsmod.Wrapf(types.ErrInvalidAmount,
			"income %s does not cover the swap fees", income.String())
	}

	inSymbol := income.ExtendedSymbol()
	var reserveIn, reserveOut types.ExtendedAsset
	if inSymbol.Equal(pool.Token1.ExtendedSymbol()) {
		reserveIn, reserveOut = pool.Token1, pool.Token2
	} else {
		reserveIn, reserveOut = pool.Token2, pool.Token1
	}

	out := constantProductOut(reserveIn.Quantity.Amount, reserveOut.Quantity.Amount, netIn)
	price := math.LegacyNewDecFromInt(out).QuoInt(netIn)

	return swapAmounts{
		AmountIn:    types.NewExtendedAsset(types.NewAssetFromInt(netIn, inSymbol.Symbol), inSymbol.Contract),
		AmountOut:   types.NewExtendedAsset(types.NewAssetFromInt(out, reserveOut.Quantity.Symbol), reserveOut.Contract),
		PoolFee:     types.NewExtendedAsset(types.NewAssetFromInt(poolFee, inSymbol.Symbol), inSymbol.Contract),
		PlatformFee: types.NewExtendedAsset(types.NewAssetFromInt(platformFee, inSymbol.Symbol), inSymbol.Contract),
		FeeReceiver: pool.FeeReceiver,
		Price:       price,
	}, nil
}

// doSwap routes the incoming transfer through the pool chain of the memo.
// Each hop re-prices against its pool and pays the platform fee out; only
// the final hop checks slippage and delivers to the sender.
func (k Keeper) doSwap(ctx types.Context, from string, income types.ExtendedAsset, cmd types.SwapCommand) error {
	for _, id := range cmd.PoolIDs {
		if !k.HasPool(ctx, id) {
			return errorsmod.Wrapf(types.ErrPoolNotFound, "invalid pool id %d in swap memo", id)
		}
	}
	if !cmd.MinAmountOut.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidMemo, "invalid min amount in swap memo")
	}

	params := k.GetParams(ctx)
	hop := income
	lastHop := len(cmd.PoolIDs) - 1
	hopCodes := make([]string, 0, len(cmd.PoolIDs))

	for i, id := range cmd.PoolIDs {
		pool, _ := k.GetPool(ctx, id)
		if !pool.Matches(hop.ExtendedSymbol()) {
			return errorsmod.Wrapf(types.ErrPoolMismatch,
				"pool %d does not hold %s", id, hop.ExtendedSymbol())
		}
		if hop.Quantity.Amount.LT(params.MinSwapAmount) {
			return errorsmod.Wrapf(types.ErrMinSwapAmount,
				"swap amount %s below the minimum of %s", hop.Quantity.String(), params.MinSwapAmount)
		}

		amounts, err := k.countSwapAmounts(pool, hop)
		if err != nil {
			return err
		}

		reserveIn := amounts.AmountIn
		reserveIn.Quantity = reserveIn.Quantity.Add(amounts.PoolFee.Quantity)
		if err := k.addPoolReserve(ctx, id, reserveIn); err != nil {
			return err
		}
		if err := k.subPoolReserve(ctx, id, amounts.AmountOut); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypeSwap,
			types.NewAttribute(types.AttributeKeyPoolID, pool.Code),
			types.NewAttribute(types.AttributeKeyOwner, from),
			types.NewAttribute(types.AttributeKeyTokenIn, hop.String()),
			types.NewAttribute(types.AttributeKeyTokenOut, amounts.AmountOut.String()),
			types.NewAttribute(types.AttributeKeyPoolFee, amounts.PoolFee.String()),
			types.NewAttribute(types.AttributeKeyPlatformFee, amounts.PlatformFee.String()),
			types.NewAttribute(types.AttributeKeyPrice, amounts.Price.String()),
		))

		if err := k.payOut(ctx, amounts.FeeReceiver, amounts.PlatformFee, k.self+": swap fee"); err != nil {
			return err
		}

		if i == lastHop {
			if amounts.AmountOut.Quantity.Amount.LT(cmd.MinAmountOut) {
				return errorsmod.Wrapf(types.ErrSlippageExceeded,
					"amount out %s less than min required %s", amounts.AmountOut.Quantity.String(), cmd.MinAmountOut)
			}
			if !k.hasOpenBalance(ctx, from, amounts.AmountOut.ExtendedSymbol()) {
				return errorsmod.Wrapf(types.ErrAccountNotOpen,
					"%s has no open balance for %s", from, amounts.AmountOut.ExtendedSymbol())
			}
			if err := k.payOut(ctx, from, amounts.AmountOut, k.self+": swap token"); err != nil {
				return err
			}
		}

		hopCodes = append(hopCodes, pool.Code)
		hop = amounts.AmountOut
	}

	// counters move only once the whole route has settled, a failed hop
	// rolls the operation back and must leave them untouched
	for _, code := range hopCodes {
		k.metrics.SwapExecuted(code)
	}

	k.logger.Debug("swap settled",
		"from", from,
		"income", income.String(),
		"out", hop.String(),
		"hops", len(cmd.PoolIDs),
	)
	return nil
}
