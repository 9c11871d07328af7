package keeper

import (
	"context"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		return types.Params{}
	}
	return params
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.params.Set(ctx, params)
}

// UpdateParams replaces the module parameters. Only the authority may call
// this; the new era length takes effect at the next rollover.
func (k Keeper) UpdateParams(ctx context.Context, signer string, params types.Params) error {
	if k.GetAuthority() != signer {
		return types.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.GetAuthority(), signer)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	return k.SetParams(ctx, params)
}
