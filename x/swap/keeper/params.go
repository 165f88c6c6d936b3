package keeper

import (
	"github.com/pcash-chain/swapcore/x/swap/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when the store has never been initialized.
func (k Keeper) GetParams(ctx types.Context) types.Params {
	bz := k.store(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	k.mustUnmarshal(bz, &params)
	return params
}

// SetParams stores the module parameters.
func (k Keeper) SetParams(ctx types.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.store(ctx).Set(ParamsKey, k.mustMarshal(params))
	return nil
}
