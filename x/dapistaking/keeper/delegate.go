package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// Delegate stakes amount on an active provider. The funds are reserved in the
// module escrow and the delegation ledger records the new cumulative amount
// for the current era.
func (k Keeper) Delegate(ctx context.Context, delegator sdk.AccAddress, providerId string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrStakingWithNoValue
	}
	if !k.IsActiveProvider(ctx, providerId) {
		return types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}

	params := k.GetParams(ctx)
	era := k.CurrentEra(ctx)
	record := k.GetProviderEra(ctx, providerId, era)

	delegation := k.GetDelegation(ctx, delegator, providerId)
	newDelegator := delegation.LatestStakedValue().IsZero()
	if newDelegator && record.DelegatorCount >= params.MaxDelegatorsPerProvider {
		return types.ErrMaxDelegatorsExceeded.Wrapf("limit %d", params.MaxDelegatorsPerProvider)
	}

	if err := delegation.Stake(era, amount); err != nil {
		return err
	}
	if delegation.LatestStakedValue().LT(params.MinDelegatorStake) {
		return types.ErrInsufficientBond.Wrapf(
			"resulting stake %s below minimum %s", delegation.LatestStakedValue(), params.MinDelegatorStake)
	}
	if delegation.Len() > params.MaxEraStakeValues {
		return types.ErrTooManyEraStakeValues.Wrapf("limit %d", params.MaxEraStakeValues)
	}

	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, delegator, types.ModuleName, bondCoins(amount), "delegation stake")
	if err != nil {
		return err
	}

	if newDelegator {
		record.DelegatorCount++
	}
	record.Total = record.Total.Add(amount)
	k.SetProviderEra(ctx, providerId, era, record)
	k.SetDelegation(ctx, delegator, providerId, delegation)
	k.addEraStaked(ctx, era, amount)

	k.Logger().Info("Delegated",
		"delegator", delegator.String(), "provider", providerId, "amount", amount.String(), "era", era)
	k.emitStakeEvent(ctx, types.EventTypeStaked, providerId, delegator.String(), amount)
	return nil
}

// Undelegate schedules part of a delegation for unbonding. When the remainder
// would fall below the minimum stake the entire position is unstaked instead.
// Funds stay escrowed until WithdrawUnbonded after the unbonding period.
func (k Keeper) Undelegate(ctx context.Context, delegator sdk.AccAddress, providerId string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrUnstakingWithNoValue
	}
	if !k.IsActiveProvider(ctx, providerId) {
		return types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}

	delegation := k.GetDelegation(ctx, delegator, providerId)
	staked := delegation.LatestStakedValue()
	if staked.IsZero() {
		return types.ErrNotStakedProvider.Wrapf("provider %s", providerId)
	}

	toUnstake := math.MinInt(amount, staked)
	params := k.GetParams(ctx)
	if staked.Sub(toUnstake).LT(params.MinDelegatorStake) {
		toUnstake = staked
	}

	era := k.CurrentEra(ctx)
	unlockEra := era + params.UnbondingPeriodEras
	if err := k.enqueueUnbonding(ctx, delegator, toUnstake, unlockEra, params.MaxUnlockingChunks); err != nil {
		return err
	}

	if err := delegation.Unstake(era, toUnstake); err != nil {
		return err
	}
	if delegation.Len() > params.MaxEraStakeValues {
		return types.ErrTooManyEraStakeValues.Wrapf("limit %d", params.MaxEraStakeValues)
	}

	record := k.GetProviderEra(ctx, providerId, era)
	record.Total = record.Total.Sub(toUnstake)
	if record.Total.IsNegative() {
		record.Total = math.ZeroInt()
	}
	if delegation.LatestStakedValue().IsZero() && record.DelegatorCount > 0 {
		record.DelegatorCount--
	}
	k.SetProviderEra(ctx, providerId, era, record)
	k.SetDelegation(ctx, delegator, providerId, delegation)
	k.subEraStaked(ctx, era, toUnstake)

	k.Logger().Info("Undelegated",
		"delegator", delegator.String(), "provider", providerId, "amount", toUnstake.String(), "unlock_era", unlockEra)
	k.emitUnstakeEvent(ctx, providerId, delegator.String(), toUnstake, unlockEra)
	return nil
}

// WithdrawUnbonded releases every unbonding chunk that has matured by the
// current era back to the account.
func (k Keeper) WithdrawUnbonded(ctx context.Context, account sdk.AccAddress) (math.Int, error) {
	era := k.CurrentEra(ctx)
	queue := k.GetUnbondingQueue(ctx, account)

	matured, remaining := queue.Partition(era)
	if matured.IsEmpty() {
		return math.ZeroInt(), types.ErrNothingToWithdraw
	}

	sum := matured.Sum()
	err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, account, bondCoins(sum), "unbonded stake release")
	if err != nil {
		return math.ZeroInt(), err
	}
	k.SetUnbondingQueue(ctx, account, remaining)

	k.Logger().Info("Withdrew unbonded", "account", account.String(), "amount", sum.String(), "era", era)
	k.emitWithdrawEvent(ctx, account.String(), sum)
	return sum, nil
}

// WithdrawUnregisteredStake releases a delegator's full remaining stake on an
// unregistered provider, bypassing the chunked queue, once the unbonding
// period since deactivation has elapsed. All eras before the deactivation era
// must have been claimed first; the ledger entry is then deleted.
func (k Keeper) WithdrawUnregisteredStake(ctx context.Context, delegator sdk.AccAddress, providerId string) (math.Int, error) {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found {
		return math.ZeroInt(), types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}
	if metadata.Active {
		return math.ZeroInt(), types.ErrNotUnregisteredProvider.Wrapf("provider %s", providerId)
	}

	params := k.GetParams(ctx)
	era := k.CurrentEra(ctx)
	if era < metadata.InactiveSince+params.UnbondingPeriodEras {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrapf(
			"stake unlocks at era %d", metadata.InactiveSince+params.UnbondingPeriodEras)
	}

	delegation := k.GetDelegation(ctx, delegator, providerId)
	if delegation.IsEmpty() {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrapf("no stake on provider %s", providerId)
	}
	if firstEra, ok := delegation.FirstUnclaimedEra(); ok && firstEra < metadata.InactiveSince {
		return math.ZeroInt(), types.ErrUnclaimedRewards.Wrapf("first unclaimed era %d", firstEra)
	}

	staked := delegation.LatestStakedValue()
	if !staked.IsPositive() {
		return math.ZeroInt(), types.ErrNothingToWithdraw.Wrapf("no stake on provider %s", providerId)
	}

	err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, delegator, bondCoins(staked), "unregistered provider stake release")
	if err != nil {
		return math.ZeroInt(), err
	}
	k.SetDelegation(ctx, delegator, providerId, types.Delegation{})

	k.Logger().Info("Withdrew stake from unregistered provider",
		"delegator", delegator.String(), "provider", providerId, "amount", staked.String())
	k.emitWithdrawEvent(ctx, delegator.String(), staked)
	return staked, nil
}
