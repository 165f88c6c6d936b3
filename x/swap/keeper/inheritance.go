package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/pcash-chain/swapcore/x/swap/types"
)

// GetInheritance returns the inheritance record of an owner.
func (k Keeper) GetInheritance(ctx types.Context, owner string) (types.InheritanceRecord, bool) {
	bz := k.store(ctx).Get(InheritanceKey(owner))
	if bz == nil {
		return types.InheritanceRecord{}, false
	}
	var record types.InheritanceRecord
	k.mustUnmarshal(bz, &record)
	return record, true
}

func (k Keeper) setInheritance(ctx types.Context, record types.InheritanceRecord) {
	k.store(ctx).Set(InheritanceKey(record.Owner), k.mustMarshal(record))
}

func (k Keeper) deleteInheritance(ctx types.Context, owner string) {
	k.store(ctx).Delete(InheritanceKey(owner))
}

// IterateInheritances visits every inheritance record. Returning true from
// fn stops the iteration.
func (k Keeper) IterateInheritances(ctx types.Context, fn func(types.InheritanceRecord) bool) {
	iterator := storeIterator(k.store(ctx), InheritanceKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var record types.InheritanceRecord
		k.mustUnmarshal(iterator.Value(), &record)
		if fn(record) {
			return
		}
	}
}

// createInheritance installs the default record for a new ledger owner: the
// fee receiver as sole beneficiary at the maximum inactivity period. A
// record that already exists is left alone.
func (k Keeper) createInheritance(ctx types.Context, owner string) {
	if _, found := k.GetInheritance(ctx, owner); found {
		return
	}
	params := k.GetParams(ctx)
	k.setInheritance(ctx, types.InheritanceRecord{
		Owner:           owner,
		InheritanceDate: ctx.BlockTime().Add(secondsToDuration(params.MaxInactivePeriod)),
		InactivePeriod:  params.MaxInactivePeriod,
		Inheritors:      []types.Inheritor{{Account: params.FeeReceiver, Share: types.ShareScale}},
	})
}

// extendInheritance pushes the owner's expiry forward by the configured
// inactivity period. Owners without a record are ignored.
func (k Keeper) extendInheritance(ctx types.Context, owner string) {
	record, found := k.GetInheritance(ctx, owner)
	if !found {
		return
	}
	record.InheritanceDate = ctx.BlockTime().Add(secondsToDuration(record.InactivePeriod))
	k.setInheritance(ctx, record)
}

// UpdateInheritanceDate reconfigures the owner's inactivity period and
// restarts the expiry clock from now.
func (k Keeper) UpdateInheritanceDate(ctx types.Context, owner string, inactivePeriod int64) error {
	record, found := k.GetInheritance(ctx, owner)
	if !found {
		return errorsmod.Wrapf(types.ErrInheritanceNotFound, "account %s has no inheritance record", owner)
	}
	params := k.GetParams(ctx)
	if !params.IsValidInactivePeriod(inactivePeriod) {
		return errorsmod.Wrapf(types.ErrInvalidInactivePeriod,
			"inactive period %d outside [%d, %d]", inactivePeriod, params.MinInactivePeriod, params.MaxInactivePeriod)
	}
	record.InactivePeriod = inactivePeriod
	record.InheritanceDate = ctx.BlockTime().Add(secondsToDuration(inactivePeriod))
	k.setInheritance(ctx, record)
	return nil
}

// UpdateInheritors replaces the owner's beneficiary list.
func (k Keeper) UpdateInheritors(ctx types.Context, owner string, inheritors []types.Inheritor) error {
	record, found := k.GetInheritance(ctx, owner)
	if !found {
		return errorsmod.Wrapf(types.ErrInheritanceNotFound, "account %s has no inheritance record", owner)
	}
	for _, inh := range inheritors {
		if inh.Account == owner {
			return errorsmod.Wrap(types.ErrInvalidInheritors, "owner cannot be in the inheritors list")
		}
		if !k.auth.IsAccount(ctx, inh.Account) {
			return errorsmod.Wrapf(types.ErrInvalidAccount, "inheritor account %s does not exist", inh.Account)
		}
	}
	if err := types.ValidateInheritors(inheritors); err != nil {
		return err
	}
	record.Inheritors = inheritors
	k.setInheritance(ctx, record)
	return nil
}

// DistributeInheritance moves an expired owner's balance of one token to
// the configured beneficiaries. Anyone may trigger it once the expiry is
// strictly in the past.
func (k Keeper) DistributeInheritance(ctx types.Context, initiator, owner, tokenCode string) error {
	record, found := k.GetInheritance(ctx, owner)
	if !found {
		return errorsmod.Wrapf(types.ErrInheritanceNotFound, "account %s has no inheritance record", owner)
	}
	if !record.Expired(ctx.BlockTime()) {
		return errorsmod.Wrapf(types.ErrInheritanceNotExpired,
			"inheritance of %s does not expire until %s", owner, record.InheritanceDate)
	}
	balance, found := k.GetBalance(ctx, owner, tokenCode)
	if !found {
		return errorsmod.Wrapf(types.ErrBalanceNotFound, "%s has no open balance for %s", owner, tokenCode)
	}
	if !balance.Balance.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidAmount, "distribute amount should be positive")
	}

	params := k.GetParams(ctx)
	quantity := balance.Balance
	if len(record.Inheritors) == 1 && record.Inheritors[0].Account == params.FeeReceiver {
		k.creditInheritor(ctx, owner, params.FeeReceiver, quantity)
	} else {
		k.distributeShares(ctx, owner, quantity, record.Inheritors)
	}
	if err := k.subBalance(ctx, owner, quantity); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypeInheritance,
		types.NewAttribute(types.AttributeKeyOwner, owner),
		types.NewAttribute(types.AttributeKeyQuantity, types.NewAssetFromInt(quantity.Amount.Neg(), quantity.Symbol).String()),
	))
	k.metrics.InheritanceDistributed()

	k.logger.Info("inheritance distributed",
		"owner", owner,
		"initiator", initiator,
		"quantity", quantity.String(),
	)
	return nil
}

// distributeShares splits the quantity across the beneficiary list. Shares
// are computed lowest priority first; the first-listed beneficiary absorbs
// the rounding remainder on top of its own share.
func (k Keeper) distributeShares(ctx types.Context, owner string, quantity types.Asset, inheritors []types.Inheritor) {
	sum := math.ZeroInt()
	for i := len(inheritors) - 1; i >= 0; i-- {
		amount := inheritanceShare(quantity.Amount, inheritors[i].Share)
		sum = sum.Add(amount)
		if i > 0 {
			k.creditInheritor(ctx, owner, inheritors[i].Account, types.NewAssetFromInt(amount, quantity.Symbol))
			continue
		}
		rest := quantity.Amount.Sub(sum)
		k.creditInheritor(ctx, owner, inheritors[i].Account, types.NewAssetFromInt(amount.Add(rest), quantity.Symbol))
	}
}

func (k Keeper) creditInheritor(ctx types.Context, from, to string, quantity types.Asset) {
	k.addBalance(ctx, to, quantity)
	ctx.EventManager().EmitEvent(types.NewEvent(types.EventTypeInheritance,
		types.NewAttribute(types.AttributeKeyFrom, from),
		types.NewAttribute(types.AttributeKeyTo, to),
		types.NewAttribute(types.AttributeKeyQuantity, quantity.String()),
	))
}
