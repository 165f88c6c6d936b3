package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// depositLeg is one side of a paired liquidity deposit.
type depositLeg struct {
	From     string
	Quantity types.ExtendedAsset
	Memo     string
}

// matches compares two legs the way deposit pairing requires: sender, memo,
// symbol and amount. The token contract is deliberately not part of it; the
// pool-pair check already pins the contracts down.
func (d depositLeg) matches(o depositLeg) bool {
	return d.From == o.From &&
		d.Memo == o.Memo &&
		d.Quantity.Quantity.Symbol.Equal(o.Quantity.Quantity.Symbol) &&
		d.Quantity.Quantity.Amount.Equal(o.Quantity.Quantity.Amount)
}

// depositLegs extracts the deposit transfers addressed to the module from
// the transaction's transfer batch.
func (k Keeper) depositLegs(ctx types.Context) []depositLeg {
	var legs []depositLeg
	for _, tr := range ctx.IncomingTransfers() {
		if tr.To == k.self && types.IsDepositMemo(tr.Memo) {
			legs = append(legs, depositLeg{
				From:     tr.From,
				Quantity: types.NewExtendedAsset(tr.Quantity, tr.Contract),
				Memo:     tr.Memo,
			})
		}
	}
	return legs
}

// doDeposit handles one leg of a liquidity deposit. A deposit is two
// transfers from the same sender with the same memo inside one atomic
// transaction, in the pool's token order; settlement runs once, when the
// second leg arrives. The first leg only validates.
func (k Keeper) doDeposit(ctx types.Context, from string, income types.ExtendedAsset, memo string, cmd types.DepositCommand) error {
	pool, found := k.GetPool(ctx, cmd.PoolID)
	if !found {
		return errorsmod.Wrapf(types.ErrPoolNotFound, "invalid pool id %d in deposit memo", cmd.PoolID)
	}

	legs := k.depositLegs(ctx)
	if len(legs) != 2 || legs[0].From != legs[1].From || legs[0].Memo != legs[1].Memo {
		return errorsmod.Wrap(types.ErrInvalidDeposit,
			"a deposit must be exactly two transfers from one sender with one memo")
	}
	if !k.poolMatchesPair(ctx, cmd.PoolID, legs[0].Quantity.ExtendedSymbol(), legs[1].Quantity.ExtendedSymbol()) {
		return errorsmod.Wrapf(types.ErrPoolMismatch,
			"pool %d does not hold the pair %s/%s", cmd.PoolID,
			legs[0].Quantity.ExtendedSymbol(), legs[1].Quantity.ExtendedSymbol())
	}

	current := depositLeg{From: from, Quantity: income, Memo: memo}
	if !current.matches(legs[1]) {
		// first leg: validated, settled when the pair completes
		return nil
	}

	return k.settleDeposit(ctx, from, pool, legs[0].Quantity, legs[1].Quantity)
}

func (k Keeper) settleDeposit(ctx types.Context, from string, pool types.Pool, token1, token2 types.ExtendedAsset) error {
	supply, err := k.liquiditySupply(ctx, pool.Code)
	if err != nil {
		return err
	}

	plan := depositPlan{}
	if supply.Amount.IsZero() && pool.IsEmpty() {
		lq, err := initialLiquidity(token1.Quantity.Amount, token2.Quantity.Amount)
		if err != nil {
			return err
		}
		plan.Liquidity = lq
		plan.In1 = token1.Quantity.Amount
		plan.In2 = token2.Quantity.Amount
		plan.Rest1 = math.ZeroInt()
		plan.Rest2 = math.ZeroInt()
	} else {
		plan = planDeposit(supply.Amount,
			pool.Token1.Quantity.Amount, pool.Token2.Quantity.Amount,
			token1.Quantity.Amount, token2.Quantity.Amount)
	}

	if !plan.Liquidity.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidAmount, "deposit too small to mint liquidity")
	}

	lqSymbol := types.NewSymbol(pool.Code, 0)
	if !k.HasBalance(ctx, from, pool.Code) {
		return errorsmod.Wrapf(types.ErrAccountNotOpen,
			"%s has no open balance for liquidity token %s", from, pool.Code)
	}

	in1 := types.NewExtendedAsset(types.NewAssetFromInt(plan.In1, token1.Quantity.Symbol), token1.Contract)
	in2 := types.NewExtendedAsset(types.NewAssetFromInt(plan.In2, token2.Quantity.Symbol), token2.Contract)
	if err := k.addPoolReserves(ctx, pool.ID, in1, in2); err != nil {
		return err
	}
	k.extendInheritance(ctx, from)

	if plan.Rest1.IsPositive() {
		rest := types.NewExtendedAsset(types.NewAssetFromInt(plan.Rest1, token1.Quantity.Symbol), token1.Contract)
		if err := k.payOut(ctx, from, rest, k.self+": deposit refund"); err != nil {
			return err
		}
	}
	if plan.Rest2.IsPositive() {
		rest := types.NewExtendedAsset(types.NewAssetFromInt(plan.Rest2, token2.Quantity.Symbol), token2.Contract)
		if err := k.payOut(ctx, from, rest, k.self+": deposit refund"); err != nil {
			return err
		}
	}

	lqTokens := types.NewAssetFromInt(plan.Liquidity, lqSymbol)
	if err := k.mintLiquidity(ctx, from, lqTokens); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypeAddLiquidity,
		types.NewAttribute(types.AttributeKeyPoolID, pool.Code),
		types.NewAttribute(types.AttributeKeyOwner, from),
		types.NewAttribute(types.AttributeKeyLiquidity, lqTokens.String()),
		types.NewAttribute(types.AttributeKeyToken1, in1.String()),
		types.NewAttribute(types.AttributeKeyToken2, in2.String()),
	))
	k.metrics.LiquidityAdded(pool.Code)

	k.logger.Debug("liquidity added",
		"pool", pool.Code,
		"owner", from,
		"minted", lqTokens.String(),
	)
	return nil
}
