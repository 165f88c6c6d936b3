package keeper

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// GetBalance returns the balance row for one owner and token code.
func (k Keeper) GetBalance(ctx types.Context, owner, code string) (types.Balance, bool) {
	bz := k.store(ctx).Get(BalanceKey(owner, code))
	if bz == nil {
		return types.Balance{}, false
	}
	var balance types.Balance
	k.mustUnmarshal(bz, &balance)
	return balance, true
}

// HasBalance reports whether the owner has an open balance row for the token
// code, regardless of its amount.
func (k Keeper) HasBalance(ctx types.Context, owner, code string) bool {
	return k.store(ctx).Has(BalanceKey(owner, code))
}

func (k Keeper) setBalance(ctx types.Context, balance types.Balance) {
	key := BalanceKey(balance.Owner, balance.Balance.Symbol.Code)
	k.store(ctx).Set(key, k.mustMarshal(balance))
}

func (k Keeper) deleteBalance(ctx types.Context, owner, code string) {
	k.store(ctx).Delete(BalanceKey(owner, code))
}

// IterateBalancesByOwner visits every balance row of one owner. Returning
// true from fn stops the iteration.
func (k Keeper) IterateBalancesByOwner(ctx types.Context, owner string, fn func(types.Balance) bool) {
	iterator := storeIterator(k.store(ctx), BalancesByOwnerPrefix(owner))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var balance types.Balance
		k.mustUnmarshal(iterator.Value(), &balance)
		if fn(balance) {
			return
		}
	}
}

// IterateAllBalances visits every balance row of every owner.
func (k Keeper) IterateAllBalances(ctx types.Context, fn func(types.Balance) bool) {
	iterator := storeIterator(k.store(ctx), BalanceKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var balance types.Balance
		k.mustUnmarshal(iterator.Value(), &balance)
		if fn(balance) {
			return
		}
	}
}

func (k Keeper) ownerHasAnyBalance(ctx types.Context, owner string) bool {
	found := false
	k.IterateBalancesByOwner(ctx, owner, func(types.Balance) bool {
		found = true
		return true
	})
	return found
}

// Open creates a zero balance row for the owner so it can receive the token.
// Opening an already open row with a matching symbol is a no-op.
func (k Keeper) Open(ctx types.Context, owner string, symbol types.Symbol) error {
	if !k.auth.IsAccount(ctx, owner) {
		return errorsmod.Wrapf(types.ErrInvalidAccount, "account %s does not exist", owner)
	}
	stat, found := k.GetTokenStat(ctx, symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrTokenNotFound, "token %s does not exist", symbol.Code)
	}
	if stat.Supply.Symbol.Precision != symbol.Precision {
		return errorsmod.Wrapf(types.ErrPrecisionMismatch,
			"symbol precision mismatch for %s", symbol.Code)
	}
	if existing, ok := k.GetBalance(ctx, owner, symbol.Code); ok {
		if existing.Balance.Symbol != symbol {
			return errorsmod.Wrapf(types.ErrPrecisionMismatch,
				"balance already open with different precision for %s", symbol.Code)
		}
		return nil
	}
	k.setBalance(ctx, types.Balance{Owner: owner, Balance: types.ZeroAsset(symbol)})
	k.createInheritance(ctx, owner)
	return nil
}

// Close removes an owner's zero balance row. The last closed row also
// removes the owner's inheritance record.
func (k Keeper) Close(ctx types.Context, owner string, symbol types.Symbol) error {
	balance, found := k.GetBalance(ctx, owner, symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrBalanceNotFound,
			"%s has no open balance for %s", owner, symbol.Code)
	}
	if !balance.Balance.Amount.IsZero() {
		return errorsmod.Wrapf(types.ErrBalanceNotZero,
			"cannot close %s balance of %s while it holds funds", symbol.Code, owner)
	}
	k.deleteBalance(ctx, owner, symbol.Code)
	if !k.ownerHasAnyBalance(ctx, owner) {
		k.deleteInheritance(ctx, owner)
	}
	return nil
}

// addBalance credits the owner. A first credit creates the balance row and,
// with it, the owner's default inheritance record.
func (k Keeper) addBalance(ctx types.Context, owner string, quantity types.Asset) {
	balance, found := k.GetBalance(ctx, owner, quantity.Symbol.Code)
	if !found {
		k.setBalance(ctx, types.Balance{Owner: owner, Balance: quantity})
		k.createInheritance(ctx, owner)
		return
	}
	balance.Balance = balance.Balance.Add(quantity)
	k.setBalance(ctx, balance)
}

// subBalance debits the owner. The row must exist and hold at least the
// debited amount.
func (k Keeper) subBalance(ctx types.Context, owner string, quantity types.Asset) error {
	balance, found := k.GetBalance(ctx, owner, quantity.Symbol.Code)
	if !found {
		return errorsmod.Wrapf(types.ErrBalanceNotFound,
			"%s has no open balance for %s", owner, quantity.Symbol.Code)
	}
	if balance.Balance.Amount.LT(quantity.Amount) {
		return errorsmod.Wrapf(types.ErrOverdrawnBalance,
			"%s balance of %s is below %s", quantity.Symbol.Code, owner, quantity.String())
	}
	balance.Balance = balance.Balance.Sub(quantity)
	k.setBalance(ctx, balance)
	return nil
}
