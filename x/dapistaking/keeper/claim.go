package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// ClaimProviderReward pays the provider's share of one completed era to the
// provider's owner and marks the era claimed. An unregistered provider can
// only claim eras strictly before its deactivation era.
func (k Keeper) ClaimProviderReward(ctx context.Context, providerId string, era uint64) (math.Int, error) {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found {
		return math.ZeroInt(), types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}
	if !metadata.Active && era >= metadata.InactiveSince {
		return math.ZeroInt(), types.ErrEraOutOfBounds.Wrapf(
			"provider %s deactivated at era %d", providerId, metadata.InactiveSince)
	}
	if era == 0 || era >= k.CurrentEra(ctx) {
		return math.ZeroInt(), types.ErrEraOutOfBounds.Wrapf("era %d is not completed", era)
	}

	record, found := k.getProviderEra(ctx, providerId, era)
	if !found || !record.Total.IsPositive() {
		return math.ZeroInt(), types.ErrNotStakedProvider.Wrapf("provider %s had no stake in era %d", providerId, era)
	}
	if record.RewardClaimed {
		return math.ZeroInt(), types.ErrAlreadyClaimedInThisEra.Wrapf("provider %s, era %d", providerId, era)
	}

	snapshot, found := k.GetEraSnapshot(ctx, era)
	if !found {
		return math.ZeroInt(), types.ErrUnknownEra.Wrapf("era %d", era)
	}

	reward := proportionalShare(snapshot.Rewards.Providers, record.Total, snapshot.Staked)

	record.RewardClaimed = true
	k.SetProviderEra(ctx, providerId, era, record)

	if reward.IsPositive() {
		owner := sdk.MustAccAddressFromBech32(metadata.Owner)
		err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, bondCoins(reward), "provider reward for era "+strconv.FormatUint(era, 10))
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	k.Logger().Info("Provider reward claimed",
		"provider", providerId, "era", era, "reward", reward.String())
	k.emitPayoutEvent(ctx, providerId, metadata.Owner, era, reward)
	return reward, nil
}

// ClaimDelegatorReward pays the delegator's proportional share of the oldest
// unclaimed era on the given provider and advances the delegation ledger.
func (k Keeper) ClaimDelegatorReward(ctx context.Context, delegator sdk.AccAddress, providerId string) (math.Int, error) {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found {
		return math.ZeroInt(), types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}

	delegation := k.GetDelegation(ctx, delegator, providerId)
	era, ok := delegation.FirstUnclaimedEra()
	if !ok {
		return math.ZeroInt(), types.ErrNotStakedProvider.Wrapf("no stake history on provider %s", providerId)
	}
	if era >= k.CurrentEra(ctx) {
		return math.ZeroInt(), types.ErrEraOutOfBounds.Wrapf("era %d is not completed", era)
	}
	if !metadata.Active && era >= metadata.InactiveSince {
		return math.ZeroInt(), types.ErrEraOutOfBounds.Wrapf(
			"provider %s deactivated at era %d", providerId, metadata.InactiveSince)
	}

	snapshot, found := k.GetEraSnapshot(ctx, era)
	if !found {
		return math.ZeroInt(), types.ErrUnknownEra.Wrapf("era %d", era)
	}

	claimedEra, staked := delegation.Claim()
	if claimedEra != era {
		return math.ZeroInt(), types.ErrUnexpectedStakeEra.Wrapf("claimed era %d, expected %d", claimedEra, era)
	}

	// The provider's slice of the delegators pool, then the delegator's slice
	// of that by stake over the delegated (non-bond) total.
	record := k.GetProviderEra(ctx, providerId, era)
	providerPool := proportionalShare(snapshot.Rewards.Delegators, record.Total, snapshot.Staked)
	reward := proportionalShare(providerPool, staked, record.DelegatedTotal())

	k.SetDelegation(ctx, delegator, providerId, delegation)

	if reward.IsPositive() {
		err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, delegator, bondCoins(reward), "delegator reward for era "+strconv.FormatUint(era, 10))
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	k.Logger().Info("Delegator reward claimed",
		"delegator", delegator.String(), "provider", providerId, "era", era, "reward", reward.String())
	k.emitPayoutEvent(ctx, providerId, delegator.String(), era, reward)
	return reward, nil
}

// proportionalShare computes pool * part / whole with integer truncation,
// returning zero when the denominator is zero.
func proportionalShare(pool, part, whole math.Int) math.Int {
	if !whole.IsPositive() || !part.IsPositive() || !pool.IsPositive() {
		return math.ZeroInt()
	}
	return pool.Mul(part).Quo(whole)
}

func (k Keeper) emitPayoutEvent(ctx context.Context, providerId, account string, era uint64, amount math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePayout,
			sdk.NewAttribute(types.AttributeKeyProviderId, providerId),
			sdk.NewAttribute(types.AttributeKeyAccount, account),
			sdk.NewAttribute(types.AttributeKeyEra, strconv.FormatUint(era, 10)),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}
