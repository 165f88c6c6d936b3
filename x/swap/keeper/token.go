package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// GetTokenStat returns the stat row for a token code.
func (k Keeper) GetTokenStat(ctx types.Context, code string) (types.TokenStat, bool) {
	bz := k.store(ctx).Get(TokenStatKey(code))
	if bz == nil {
		return types.TokenStat{}, false
	}
	var stat types.TokenStat
	k.mustUnmarshal(bz, &stat)
	return stat, true
}

func (k Keeper) setTokenStat(ctx types.Context, stat types.TokenStat) {
	k.store(ctx).Set(TokenStatKey(stat.Supply.Symbol.Code), k.mustMarshal(stat))
}

func (k Keeper) deleteTokenStat(ctx types.Context, code string) {
	k.store(ctx).Delete(TokenStatKey(code))
}

// IterateTokenStats visits every token stat row. Returning true from fn
// stops the iteration.
func (k Keeper) IterateTokenStats(ctx types.Context, fn func(types.TokenStat) bool) {
	iterator := storeIterator(k.store(ctx), TokenStatKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var stat types.TokenStat
		k.mustUnmarshal(iterator.Value(), &stat)
		if fn(stat) {
			return
		}
	}
}

// isLiquidityToken reports whether the code is the liquidity token of an
// existing pool.
func (k Keeper) isLiquidityToken(ctx types.Context, code string) bool {
	return k.store(ctx).Has(PoolByCodeKey(code))
}

// CreateToken registers a new token with a fixed maximum supply.
func (k Keeper) CreateToken(ctx types.Context, issuer string, maxSupply types.Asset) error {
	if !maxSupply.IsValid() || !maxSupply.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAsset, "invalid maximum supply %s", maxSupply.String())
	}
	if !k.auth.IsAccount(ctx, issuer) {
		return errorsmod.Wrapf(types.ErrInvalidAccount, "issuer account %s does not exist", issuer)
	}
	if _, found := k.GetTokenStat(ctx, maxSupply.Symbol.Code); found {
		return errorsmod.Wrapf(types.ErrTokenExists, "token %s already exists", maxSupply.Symbol.Code)
	}
	k.setTokenStat(ctx, types.TokenStat{
		Supply:    types.ZeroAsset(maxSupply.Symbol),
		MaxSupply: maxSupply,
		Issuer:    issuer,
	})
	return nil
}

// Issue mints new supply to the recipient. Only the token issuer may
// authorize it; the recipient can be any existing account.
func (k Keeper) Issue(ctx types.Context, to string, quantity types.Asset, memo string) error {
	if !k.auth.IsAccount(ctx, to) {
		return errorsmod.Wrapf(types.ErrInvalidAccount, "recipient account %s does not exist", to)
	}
	if len(memo) > types.MaxMemoLength {
		return errorsmod.Wrap(types.ErrMemoTooLong, "memo exceeds maximum length")
	}
	stat, found := k.GetTokenStat(ctx, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound,
			"token %s does not exist, create it before issuing", quantity.Symbol.Code)
	}
	if !k.auth.HasAuth(ctx, stat.Issuer) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "issue requires the authority of %s", stat.Issuer)
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAsset, "invalid issue quantity %s", quantity.String())
	}
	if quantity.Symbol != stat.Supply.Symbol {
		return errorsmod.Wrapf(types.ErrPrecisionMismatch, "symbol precision mismatch for %s", quantity.Symbol.Code)
	}
	if stat.Supply.Amount.Add(quantity.Amount).GT(stat.MaxSupply.Amount) {
		return errorsmod.Wrapf(types.ErrSupplyExceeded,
			"issuing %s exceeds the maximum supply of %s", quantity.String(), stat.MaxSupply.String())
	}
	stat.Supply = stat.Supply.Add(quantity)
	k.setTokenStat(ctx, stat)
	k.addBalance(ctx, to, quantity)
	return nil
}

// Retire burns supply. The issuer authorizes it; pool liquidity tokens may
// be retired from any holder, while other tokens can only be retired from
// the issuer's own balance and shrink the maximum supply too, so retired
// supply can never be re-issued.
func (k Keeper) Retire(ctx types.Context, from string, quantity types.Asset, memo string) error {
	if !k.auth.IsAccount(ctx, from) {
		return errorsmod.Wrapf(types.ErrInvalidAccount, "account %s does not exist", from)
	}
	if len(memo) > types.MaxMemoLength {
		return errorsmod.Wrap(types.ErrMemoTooLong, "memo exceeds maximum length")
	}
	stat, found := k.GetTokenStat(ctx, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", quantity.Symbol.Code)
	}
	if !k.auth.HasAuth(ctx, stat.Issuer) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "retire requires the authority of %s", stat.Issuer)
	}
	isLiquidity := k.isLiquidityToken(ctx, quantity.Symbol.Code)
	if !isLiquidity && from != stat.Issuer {
		return errorsmod.Wrap(types.ErrUnauthorized, "can retire from the issuer account only")
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAsset, "invalid retire quantity %s", quantity.String())
	}
	if quantity.Symbol != stat.Supply.Symbol {
		return errorsmod.Wrapf(types.ErrPrecisionMismatch, "symbol precision mismatch for %s", quantity.Symbol.Code)
	}
	if stat.Supply.Amount.LT(quantity.Amount) {
		return errorsmod.Wrapf(types.ErrInvalidSupply,
			"cannot retire %s from a supply of %s", quantity.String(), stat.Supply.String())
	}
	stat.Supply = stat.Supply.Sub(quantity)
	if !isLiquidity {
		stat.MaxSupply = stat.MaxSupply.Sub(quantity)
	}
	k.setTokenStat(ctx, stat)
	return k.subBalance(ctx, from, quantity)
}

// mintLiquidity issues pool liquidity tokens directly to a depositor.
func (k Keeper) mintLiquidity(ctx types.Context, to string, quantity types.Asset) error {
	stat, found := k.GetTokenStat(ctx, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", quantity.Symbol.Code)
	}
	if stat.Supply.Amount.Add(quantity.Amount).GT(stat.MaxSupply.Amount) {
		return errorsmod.Wrapf(types.ErrSupplyExceeded,
			"issuing %s exceeds the maximum supply of %s", quantity.String(), stat.MaxSupply.String())
	}
	stat.Supply = stat.Supply.Add(quantity)
	k.setTokenStat(ctx, stat)
	k.addBalance(ctx, to, quantity)
	return nil
}

// burnLiquidity retires pool liquidity tokens held by a withdrawing owner.
func (k Keeper) burnLiquidity(ctx types.Context, from string, quantity types.Asset) error {
	stat, found := k.GetTokenStat(ctx, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", quantity.Symbol.Code)
	}
	if stat.Supply.Amount.LT(quantity.Amount) {
		return errorsmod.Wrapf(types.ErrInvalidSupply,
			"cannot retire %s from a supply of %s", quantity.String(), stat.Supply.String())
	}
	stat.Supply = stat.Supply.Sub(quantity)
	k.setTokenStat(ctx, stat)
	return k.subBalance(ctx, from, quantity)
}

// Transfer moves self-issued tokens between two accounts.
func (k Keeper) Transfer(ctx types.Context, from, to string, quantity types.Asset, memo string) error {
	if from == to {
		return errorsmod.Wrap(types.ErrInvalidAccount, "cannot transfer to self")
	}
	if !k.auth.IsAccount(ctx, to) {
		return errorsmod.Wrapf(types.ErrInvalidAccount, "recipient account %s does not exist", to)
	}
	if len(memo) > types.MaxMemoLength {
		return errorsmod.Wrap(types.ErrMemoTooLong, "memo exceeds maximum length")
	}
	stat, found := k.GetTokenStat(ctx, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", quantity.Symbol.Code)
	}
	if !quantity.IsValid() || !quantity.IsPositive() {
		return errorsmod.Wrapf(types.ErrInvalidAsset, "invalid transfer quantity %s", quantity.String())
	}
	if quantity.Symbol != stat.Supply.Symbol {
		return errorsmod.Wrapf(types.ErrPrecisionMismatch, "symbol precision mismatch for %s", quantity.Symbol.Code)
	}
	if err := k.subBalance(ctx, from, quantity); err != nil {
		return err
	}
	k.addBalance(ctx, to, quantity)
	k.extendInheritance(ctx, from)
	return nil
}

// payOut delivers tokens held by the module to a recipient. Self-issued
// tokens settle on the internal ledger; foreign tokens go out through the
// action emitter as a transfer on their own contract.
func (k Keeper) payOut(ctx types.Context, to string, quantity types.ExtendedAsset, memo string) error {
	if quantity.Contract == k.self {
		return k.Transfer(ctx, k.self, to, quantity.Quantity, memo)
	}
	return k.emitter.EmitTransfer(ctx, quantity.Contract, k.self, to, quantity.Quantity, memo)
}
