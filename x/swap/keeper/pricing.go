package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// Pricing math. Everything in this file is a pure function over integer
// amounts; all divisions floor. The callers in swap.go and deposit.go do
// the store work.

// platformFeeAmount computes the platform cut of an incoming amount. Small
// trades pay a flat fee of one unit instead of a percentage that would
// round down to zero.
func platformFeeAmount(income, platformFee math.Int) math.Int {
	if income.LTE(math.NewInt(types.SmallTradeThreshold)) {
		return math.OneInt()
	}
	return income.Mul(platformFee).Quo(math.NewInt(types.FeeScale))
}

// swapFees splits the incoming amount into the pool fee (kept in the
// reserves) and the platform fee (paid out to the fee receiver). Rates are
// in hundredths of a percent.
func swapFees(income, poolFee, platformFee math.Int) (poolPart, platformPart math.Int) {
	total := income.Mul(poolFee.Add(platformFee)).Quo(math.NewInt(types.FeeScale))
	platformPart = platformFeeAmount(income, platformFee)
	return total.Sub(platformPart), platformPart
}

// constantProductOut prices a trade against reserves: the product of the
// reserves never decreases, so the output is the current outgoing reserve
// minus its floored post-trade value.
func constantProductOut(reserveIn, reserveOut, amountIn math.Int) math.Int {
	k := reserveIn.Mul(reserveOut)
	totalIn := reserveIn.Add(amountIn)
	return reserveOut.Sub(k.Quo(totalIn))
}

// initialLiquidity prices the first deposit into an empty pool as the
// geometric mean of the two contributed amounts.
func initialLiquidity(amount1, amount2 math.Int) (math.Int, error) {
	root, err := math.LegacyNewDecFromInt(amount1.Mul(amount2)).ApproxSqrt()
	if err != nil {
		return math.Int{}, errorsmod.Wrap(types.ErrInvalidAmount, err.Error())
	}
	return root.TruncateInt(), nil
}

// proportionalLiquidity prices a follow-up deposit: the share of the
// existing supply that the contributed amount represents against its
// reserve.
func proportionalLiquidity(supply, amountIn, reserve math.Int) math.Int {
	return supply.Mul(amountIn).Quo(reserve)
}

// depositPlan is the settlement of a paired deposit: the amounts entering
// the reserves, the liquidity tokens minted for them, and any refunds.
type depositPlan struct {
	Liquidity math.Int
	In1, In2  math.Int
	Rest1     math.Int
	Rest2     math.Int
}

// planDeposit matches the two contributed amounts against the current
// reserve ratio. The smaller side is taken in full; the larger side is
// trimmed to proportion, with the excess refunded. A single leftover unit
// is folded into the reserves instead of being refunded.
func planDeposit(supply, reserve1, reserve2, deposit1, deposit2 math.Int) depositPlan {
	one := math.OneInt()
	zero := math.ZeroInt()

	// deposit2 priced in token1 at the reserve ratio
	amount1In := reserve1.Mul(deposit2).Quo(reserve2)

	switch {
	case amount1In.LT(deposit1):
		rest := deposit1.Sub(amount1In)
		lq := proportionalLiquidity(supply, amount1In, reserve1)
		if rest.Equal(one) {
			return depositPlan{Liquidity: lq, In1: amount1In.Add(rest), In2: deposit2, Rest1: zero, Rest2: zero}
		}
		return depositPlan{Liquidity: lq, In1: amount1In, In2: deposit2, Rest1: rest, Rest2: zero}

	case deposit1.LT(amount1In):
		amount2In := deposit1.Mul(reserve2).Quo(reserve1)
		rest := deposit2.Sub(amount2In)
		lq := proportionalLiquidity(supply, amount2In, reserve2)
		if rest.Equal(one) {
			return depositPlan{Liquidity: lq, In1: deposit1, In2: amount2In.Add(rest), Rest1: zero, Rest2: zero}
		}
		return depositPlan{Liquidity: lq, In1: deposit1, In2: amount2In, Rest1: zero, Rest2: rest}

	default:
		amount2In := deposit1.Mul(reserve2).Quo(reserve1)
		lq := proportionalLiquidity(supply, deposit1, reserve1)
		if amount2In.LT(deposit2) {
			rest := deposit2.Sub(amount2In)
			if rest.Equal(one) {
				return depositPlan{Liquidity: lq, In1: deposit1, In2: amount2In.Add(rest), Rest1: zero, Rest2: zero}
			}
			return depositPlan{Liquidity: lq, In1: deposit1, In2: amount2In, Rest1: zero, Rest2: rest}
		}
		return depositPlan{Liquidity: lq, In1: deposit1, In2: deposit2, Rest1: zero, Rest2: zero}
	}
}

// earnings prices a liquidity redemption: the redeemed share of the supply
// applied to each reserve, floored, so rounding dust stays in the pool.
func earnings(lqTokens, supply, reserve1, reserve2 math.Int) (amount1, amount2 math.Int) {
	return lqTokens.Mul(reserve1).Quo(supply), lqTokens.Mul(reserve2).Quo(supply)
}

// inheritanceShare prices one beneficiary's cut: share is in tenths of a
// percent of the distributed quantity, floored.
func inheritanceShare(quantity math.Int, share uint32) math.Int {
	return quantity.Mul(math.NewIntFromUint64(uint64(share))).Quo(math.NewInt(types.ShareScale))
}
