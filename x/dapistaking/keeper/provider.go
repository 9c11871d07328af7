package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// RegisterProvider registers a new provider under the given id, reserving the
// owner's self-bond in the module escrow. The bond counts toward the current
// era's staked total immediately.
func (k Keeper) RegisterProvider(ctx context.Context, owner sdk.AccAddress, providerId string, bond math.Int) error {
	if _, found := k.GetProvider(ctx, providerId); found {
		return types.ErrProviderAlreadyRegistered.Wrapf("provider %s", providerId)
	}

	params := k.GetParams(ctx)
	if bond.LT(params.MinProviderBond) {
		return types.ErrInsufficientBond.Wrapf("bond %s below minimum %s", bond, params.MinProviderBond)
	}

	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, bondCoins(bond), "provider registration bond")
	if err != nil {
		return err
	}

	era := k.CurrentEra(ctx)
	k.SetProvider(ctx, providerId, types.NewProviderMetadata(owner.String()))

	record := types.NewProviderEraInfo()
	record.Bond = bond
	record.Total = bond
	k.SetProviderEra(ctx, providerId, era, record)
	k.addEraStaked(ctx, era, bond)

	k.Logger().Info("Provider registered", "provider", providerId, "owner", owner.String(), "bond", bond.String())

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderRegistered,
			sdk.NewAttribute(types.AttributeKeyProviderId, providerId),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, bond.String()),
		),
	)
	return nil
}

// UnregisterProvider deactivates a provider as of the current era. The
// provider's total is removed from the era's staked total so it earns nothing
// from the deactivation era onward; escrowed funds stay locked until the
// unbonding period has elapsed and are then released through
// WithdrawUnregisteredBond and WithdrawUnregisteredStake.
// The owner or the module authority may unregister.
func (k Keeper) UnregisterProvider(ctx context.Context, signer sdk.AccAddress, providerId string) error {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found || !metadata.Active {
		return types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}
	if signer.String() != metadata.Owner && signer.String() != k.GetAuthority() {
		return types.ErrNotOwnedProvider.Wrapf("provider %s is owned by %s", providerId, metadata.Owner)
	}

	era := k.CurrentEra(ctx)
	record := k.GetProviderEra(ctx, providerId, era)
	k.subEraStaked(ctx, era, record.Total)

	metadata.Deactivate(era)
	k.SetProvider(ctx, providerId, metadata)

	k.Logger().Info("Provider unregistered", "provider", providerId, "era", era, "total", record.Total.String())

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderUnregistered,
			sdk.NewAttribute(types.AttributeKeyProviderId, providerId),
			sdk.NewAttribute(types.AttributeKeyEra, strconv.FormatUint(era, 10)),
		),
	)
	return nil
}

// ProviderBondMore increases the owner's self-bond on an active provider.
func (k Keeper) ProviderBondMore(ctx context.Context, owner sdk.AccAddress, providerId string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrStakingWithNoValue
	}
	if _, err := k.activeOwnedProvider(ctx, owner, providerId); err != nil {
		return err
	}

	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, bondCoins(amount), "provider bond increase")
	if err != nil {
		return err
	}

	era := k.CurrentEra(ctx)
	record := k.GetProviderEra(ctx, providerId, era)
	record.Bond = record.Bond.Add(amount)
	record.Total = record.Total.Add(amount)
	k.SetProviderEra(ctx, providerId, era, record)
	k.addEraStaked(ctx, era, amount)

	k.emitStakeEvent(ctx, types.EventTypeStaked, providerId, owner.String(), amount)
	return nil
}

// ProviderBondLess schedules part of the owner's self-bond for unbonding.
// The remaining bond must stay at or above the registration minimum.
func (k Keeper) ProviderBondLess(ctx context.Context, owner sdk.AccAddress, providerId string, amount math.Int) error {
	if !amount.IsPositive() {
		return types.ErrUnstakingWithNoValue
	}
	if _, err := k.activeOwnedProvider(ctx, owner, providerId); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	era := k.CurrentEra(ctx)
	record := k.GetProviderEra(ctx, providerId, era)

	remaining := record.Bond.Sub(amount)
	if remaining.LT(params.MinProviderBond) {
		return types.ErrInsufficientBond.Wrapf("remaining bond %s below minimum %s", remaining, params.MinProviderBond)
	}

	unlockEra := era + params.UnbondingPeriodEras
	if err := k.enqueueUnbonding(ctx, owner, amount, unlockEra, params.MaxUnlockingChunks); err != nil {
		return err
	}

	record.Bond = remaining
	record.Total = record.Total.Sub(amount)
	k.SetProviderEra(ctx, providerId, era, record)
	k.subEraStaked(ctx, era, amount)

	k.emitUnstakeEvent(ctx, providerId, owner.String(), amount, unlockEra)
	return nil
}

// WithdrawUnregisteredBond releases the self-bond of an unregistered provider
// back to its owner once the unbonding period since deactivation has elapsed.
// One-shot per provider.
func (k Keeper) WithdrawUnregisteredBond(ctx context.Context, owner sdk.AccAddress, providerId string) error {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found {
		return types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}
	if metadata.Active {
		return types.ErrNotUnregisteredProvider.Wrapf("provider %s", providerId)
	}
	if owner.String() != metadata.Owner {
		return types.ErrNotOwnedProvider.Wrapf("provider %s is owned by %s", providerId, metadata.Owner)
	}
	if metadata.BondWithdrawn {
		return types.ErrNothingToWithdraw.Wrapf("bond of provider %s already withdrawn", providerId)
	}

	params := k.GetParams(ctx)
	era := k.CurrentEra(ctx)
	if era < metadata.InactiveSince+params.UnbondingPeriodEras {
		return types.ErrNothingToWithdraw.Wrapf(
			"bond unlocks at era %d", metadata.InactiveSince+params.UnbondingPeriodEras)
	}

	record := k.GetProviderEra(ctx, providerId, metadata.InactiveSince)
	if !record.Bond.IsPositive() {
		return types.ErrNothingToWithdraw.Wrapf("provider %s has no bond", providerId)
	}

	err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, owner, bondCoins(record.Bond), "unregistered provider bond release")
	if err != nil {
		return err
	}

	metadata.BondWithdrawn = true
	k.SetProvider(ctx, providerId, metadata)

	k.emitWithdrawEvent(ctx, owner.String(), record.Bond)
	return nil
}

func (k Keeper) activeOwnedProvider(ctx context.Context, owner sdk.AccAddress, providerId string) (types.ProviderMetadata, error) {
	metadata, found := k.GetProvider(ctx, providerId)
	if !found || !metadata.Active {
		return types.ProviderMetadata{}, types.ErrNotOperatedProvider.Wrapf("provider %s", providerId)
	}
	if owner.String() != metadata.Owner {
		return types.ProviderMetadata{}, types.ErrNotOwnedProvider.Wrapf("provider %s is owned by %s", providerId, metadata.Owner)
	}
	return metadata, nil
}

// enqueueUnbonding adds a chunk to the account's queue, enforcing the chunk
// limit after the merge-or-insert.
func (k Keeper) enqueueUnbonding(ctx context.Context, account sdk.AccAddress, amount math.Int, unlockEra uint64, maxChunks uint32) error {
	queue := k.GetUnbondingQueue(ctx, account)
	queue.Add(types.UnlockingChunk{Amount: amount, UnlockEra: unlockEra})
	if queue.Len() > maxChunks {
		return types.ErrTooManyUnlockingChunks.Wrapf("limit %d", maxChunks)
	}
	k.SetUnbondingQueue(ctx, account, queue)
	return nil
}

func (k Keeper) emitStakeEvent(ctx context.Context, eventType, providerId, account string, amount math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyProviderId, providerId),
			sdk.NewAttribute(types.AttributeKeyAccount, account),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

func (k Keeper) emitUnstakeEvent(ctx context.Context, providerId, account string, amount math.Int, unlockEra uint64) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnstaked,
			sdk.NewAttribute(types.AttributeKeyProviderId, providerId),
			sdk.NewAttribute(types.AttributeKeyAccount, account),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyUnlockEra, strconv.FormatUint(unlockEra, 10)),
		),
	)
}

func (k Keeper) emitWithdrawEvent(ctx context.Context, account string, amount math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAccount, account),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}
