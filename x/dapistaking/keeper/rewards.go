package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// PayoutProviders collects a staking reward into the current era's
// accumulator. The coins are moved from the sending module into this module's
// escrow account and split between the providers and delegators pools by the
// configured share; payouts later draw on the escrow when eras are claimed.
func (k Keeper) PayoutProviders(ctx context.Context, fromModule string, reward sdk.Coin) error {
	if reward.Denom != types.BondDenom {
		return types.ErrInsufficientBond.Wrapf("reward denom %s, expected %s", reward.Denom, types.BondDenom)
	}
	if reward.IsZero() {
		return nil
	}

	err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, fromModule, types.ModuleName, sdk.NewCoins(reward), "staking reward collection")
	if err != nil {
		return err
	}

	k.accumulateReward(ctx, reward.Amount)
	return nil
}

// FundRewardPool lets any account top up the current era's reward accumulator
// from its own balance, split the same way as block rewards.
func (k Keeper) FundRewardPool(ctx context.Context, funder sdk.AccAddress, amount sdk.Coin) error {
	if amount.Denom != types.BondDenom {
		return types.ErrInsufficientBond.Wrapf("fund denom %s, expected %s", amount.Denom, types.BondDenom)
	}
	if !amount.Amount.IsPositive() {
		return types.ErrStakingWithNoValue
	}

	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, sdk.NewCoins(amount), "reward pool funding")
	if err != nil {
		return err
	}

	k.accumulateReward(ctx, amount.Amount)
	k.Logger().Info("Reward pool funded", "funder", funder.String(), "amount", amount.String())
	return nil
}

// accumulateReward splits amount between the two pools of the current era.
// The delegators cut is truncated so the split never exceeds the amount.
func (k Keeper) accumulateReward(ctx context.Context, amount math.Int) {
	params := k.GetParams(ctx)
	delegatorsCut := params.DelegatorsRewardShare.MulInt(amount).TruncateInt()
	providersCut := amount.Sub(delegatorsCut)

	pools := k.GetRewardPools(ctx)
	pools.Providers = pools.Providers.Add(providersCut)
	pools.Delegators = pools.Delegators.Add(delegatorsCut)
	k.SetRewardPools(ctx, pools)
}
