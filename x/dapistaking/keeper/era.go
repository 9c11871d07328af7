package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// BeginBlocker drives the era state machine. The first processed block always
// opens era 1; afterwards an era ends when it has run its configured length
// or when a new era was forced, whichever comes first.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	state := k.GetEraState(ctx)
	if state.Current == 0 {
		k.startFirstEra(ctx, height)
		return nil
	}

	force := k.GetForceNewEra(ctx)
	if !force && !state.ShouldRoll(height) {
		return nil
	}

	k.rollEra(ctx, state, height)
	if force {
		k.SetForceNewEra(ctx, false)
	}
	return nil
}

// ForceNewEra schedules an era rollover for the next block regardless of the
// current era's progress. Authority gated.
func (k Keeper) ForceNewEra(ctx context.Context, signer string) error {
	if k.GetAuthority() != signer {
		return types.ErrInvalidSigner.Wrapf("invalid authority; expected %s, got %s", k.GetAuthority(), signer)
	}
	k.SetForceNewEra(ctx, true)
	return nil
}

func (k Keeper) startFirstEra(ctx context.Context, height int64) {
	params := k.GetParams(ctx)
	k.SetEraState(ctx, types.NewEraState(1, height, params.EraLength))

	// Genesis may have seeded the first snapshot already; ensure one exists.
	snapshot, _ := k.GetEraSnapshot(ctx, 1)
	k.SetEraSnapshot(ctx, 1, snapshot)

	k.Logger().Info("Started first era", "height", height, "era_length", params.EraLength)
	k.emitNewEraEvent(ctx, 1)
}

// rollEra freezes the ending era's snapshot, rotates provider records into
// the next era and opens it.
func (k Keeper) rollEra(ctx context.Context, state types.EraState, height int64) {
	params := k.GetParams(ctx)
	endingEra := state.Current
	nextEra := endingEra + 1

	// Freeze the reward accumulator into the ending era's snapshot and carry
	// the staked total into the next era's initial record.
	pools := k.takeRewardPools(ctx)
	snapshot, _ := k.GetEraSnapshot(ctx, endingEra)
	snapshot.Rewards = pools
	k.SetEraSnapshot(ctx, endingEra, snapshot)
	k.SetEraSnapshot(ctx, nextEra, types.NewEraSnapshot(snapshot.Staked))

	rotated := k.rotateProviderRecords(ctx, endingEra, nextEra)

	k.SetEraState(ctx, types.NewEraState(nextEra, height, params.EraLength))

	k.Logger().Info("Era rolled",
		"ending_era", endingEra,
		"new_era", nextEra,
		"staked", snapshot.Staked.String(),
		"rewards", pools.Total().String(),
		"providers_rotated", rotated)
	k.emitNewEraEvent(ctx, nextEra)
}

// rotateProviderRecords carries every active provider's aggregate from the
// ending era into the next one with a cleared reward-claimed flag.
// Unregistered providers are skipped; their claimable window ends at the era
// they were deactivated in.
func (k Keeper) rotateProviderRecords(ctx context.Context, endingEra, nextEra uint64) int {
	rotated := 0
	err := k.Providers.Walk(ctx, nil, func(providerId string, metadata types.ProviderMetadata) (bool, error) {
		if !metadata.Active {
			return false, nil
		}
		record, found := k.getProviderEra(ctx, providerId, endingEra)
		if !found {
			return false, nil
		}
		record.RewardClaimed = false
		k.SetProviderEra(ctx, providerId, nextEra, record)
		rotated++
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return rotated
}

func (k Keeper) emitNewEraEvent(ctx context.Context, era uint64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNewEra,
			sdk.NewAttribute(types.AttributeKeyEra, strconv.FormatUint(era, 10)),
		),
	)
}
