package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

type (
	Keeper struct {
		cdc          codec.BinaryCodec
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of forcing eras and updating params. Typically,
		// this should be the x/gov module account.
		authority string

		bankKeeper types.BankEscrowKeeper

		Schema      collections.Schema
		params      collections.Item[types.Params]
		EraState    collections.Item[types.EraState]
		RewardPools collections.Item[types.RewardPools]
		ForceEra    collections.Item[bool]
		// EraSnapshots keeps one record per era: total staked plus the frozen
		// reward pools.
		EraSnapshots collections.Map[uint64, types.EraSnapshot]
		// Providers is the registry of provider metadata by provider id.
		Providers collections.Map[string, types.ProviderMetadata]
		// ProviderEras stores per (provider, era) stake aggregates.
		ProviderEras collections.Map[collections.Pair[string, uint64], types.ProviderEraInfo]
		// Delegations stores the per (delegator, provider) stake history.
		Delegations collections.Map[collections.Pair[sdk.AccAddress, string], types.Delegation]
		// UnbondingQueues stores per-account unlocking chunks.
		UnbondingQueues collections.Map[sdk.AccAddress, types.UnbondingQueue]
	}
)

func NewKeeper(
	cdc codec.BinaryCodec,
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankEscrowKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		cdc:          cdc,
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankKeeper: bankKeeper,

		params:      collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]("params")),
		EraState:    collections.NewItem(sb, types.EraStateKey, "era_state", types.JSONValue[types.EraState]("era_state")),
		RewardPools: collections.NewItem(sb, types.RewardPoolsKey, "reward_pools", types.JSONValue[types.RewardPools]("reward_pools")),
		ForceEra:    collections.NewItem(sb, types.ForceNewEraKey, "force_new_era", collections.BoolValue),
		EraSnapshots: collections.NewMap(sb, types.EraSnapshotKey, "era_snapshots",
			collections.Uint64Key, types.JSONValue[types.EraSnapshot]("era_snapshot")),
		Providers: collections.NewMap(sb, types.ProviderKey, "providers",
			collections.StringKey, types.JSONValue[types.ProviderMetadata]("provider_metadata")),
		ProviderEras: collections.NewMap(sb, types.ProviderEraKey, "provider_eras",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			types.JSONValue[types.ProviderEraInfo]("provider_era_info")),
		Delegations: collections.NewMap(sb, types.DelegationKey, "delegations",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			types.JSONValue[types.Delegation]("delegation")),
		UnbondingQueues: collections.NewMap(sb, types.UnbondingQueueKey, "unbonding_queues",
			sdk.AccAddressKey, types.JSONValue[types.UnbondingQueue]("unbonding_queue")),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetEraState returns the era state, or the zero value before the first
// block has been processed.
func (k Keeper) GetEraState(ctx context.Context) types.EraState {
	state, err := k.EraState.Get(ctx)
	if err != nil {
		return types.EraState{}
	}
	return state
}

func (k Keeper) SetEraState(ctx context.Context, state types.EraState) {
	if err := k.EraState.Set(ctx, state); err != nil {
		panic(err)
	}
}

// CurrentEra returns the current era index. Era 0 means "before genesis".
func (k Keeper) CurrentEra(ctx context.Context) uint64 {
	return k.GetEraState(ctx).Current
}

// GetRewardPools returns the reward accumulator of the current era.
func (k Keeper) GetRewardPools(ctx context.Context) types.RewardPools {
	pools, err := k.RewardPools.Get(ctx)
	if err != nil {
		return types.NewRewardPools()
	}
	return pools
}

func (k Keeper) SetRewardPools(ctx context.Context, pools types.RewardPools) {
	if err := k.RewardPools.Set(ctx, pools); err != nil {
		panic(err)
	}
}

// takeRewardPools returns the accumulator and resets it to zero.
func (k Keeper) takeRewardPools(ctx context.Context) types.RewardPools {
	pools := k.GetRewardPools(ctx)
	k.SetRewardPools(ctx, types.NewRewardPools())
	return pools
}

func (k Keeper) GetForceNewEra(ctx context.Context) bool {
	force, err := k.ForceEra.Get(ctx)
	if err != nil {
		return false
	}
	return force
}

func (k Keeper) SetForceNewEra(ctx context.Context, force bool) {
	if err := k.ForceEra.Set(ctx, force); err != nil {
		panic(err)
	}
}

// GetEraSnapshot retrieves the snapshot of an era.
func (k Keeper) GetEraSnapshot(ctx context.Context, era uint64) (types.EraSnapshot, bool) {
	snapshot, err := k.EraSnapshots.Get(ctx, era)
	if err != nil {
		return types.NewEraSnapshot(math.ZeroInt()), false
	}
	return snapshot, true
}

func (k Keeper) SetEraSnapshot(ctx context.Context, era uint64, snapshot types.EraSnapshot) {
	if err := k.EraSnapshots.Set(ctx, era, snapshot); err != nil {
		panic(err)
	}
}

// GetProvider retrieves a provider's metadata.
func (k Keeper) GetProvider(ctx context.Context, providerId string) (types.ProviderMetadata, bool) {
	metadata, err := k.Providers.Get(ctx, providerId)
	return metadata, err == nil
}

func (k Keeper) SetProvider(ctx context.Context, providerId string, metadata types.ProviderMetadata) {
	if err := k.Providers.Set(ctx, providerId, metadata); err != nil {
		panic(err)
	}
}

// IsActiveProvider is true when the provider is registered and has not been
// unregistered.
func (k Keeper) IsActiveProvider(ctx context.Context, providerId string) bool {
	metadata, found := k.GetProvider(ctx, providerId)
	return found && metadata.Active
}

// GetProviderEra retrieves the (provider, era) aggregate, defaulting to an
// empty record when the provider had no activity recorded for the era.
func (k Keeper) GetProviderEra(ctx context.Context, providerId string, era uint64) types.ProviderEraInfo {
	info, found := k.getProviderEra(ctx, providerId, era)
	if !found {
		return types.NewProviderEraInfo()
	}
	return info
}

func (k Keeper) getProviderEra(ctx context.Context, providerId string, era uint64) (types.ProviderEraInfo, bool) {
	info, err := k.ProviderEras.Get(ctx, collections.Join(providerId, era))
	if err != nil {
		return types.ProviderEraInfo{}, false
	}
	return info, true
}

func (k Keeper) SetProviderEra(ctx context.Context, providerId string, era uint64, info types.ProviderEraInfo) {
	if err := k.ProviderEras.Set(ctx, collections.Join(providerId, era), info); err != nil {
		panic(err)
	}
}

// GetDelegation retrieves the stake history for a (delegator, provider)
// pairing, defaulting to an empty ledger.
func (k Keeper) GetDelegation(ctx context.Context, delegator sdk.AccAddress, providerId string) types.Delegation {
	delegation, err := k.Delegations.Get(ctx, collections.Join(delegator, providerId))
	if err != nil {
		return types.Delegation{}
	}
	return delegation
}

// SetDelegation stores the delegation, removing the entry entirely once the
// ledger is empty.
func (k Keeper) SetDelegation(ctx context.Context, delegator sdk.AccAddress, providerId string, delegation types.Delegation) {
	key := collections.Join(delegator, providerId)
	if delegation.IsEmpty() {
		if err := k.Delegations.Remove(ctx, key); err != nil {
			panic(err)
		}
		return
	}
	if err := k.Delegations.Set(ctx, key, delegation); err != nil {
		panic(err)
	}
}

// GetUnbondingQueue retrieves an account's unbonding queue, defaulting to an
// empty queue.
func (k Keeper) GetUnbondingQueue(ctx context.Context, account sdk.AccAddress) types.UnbondingQueue {
	queue, err := k.UnbondingQueues.Get(ctx, account)
	if err != nil {
		return types.UnbondingQueue{}
	}
	return queue
}

// SetUnbondingQueue stores the queue, removing the entry once empty.
func (k Keeper) SetUnbondingQueue(ctx context.Context, account sdk.AccAddress, queue types.UnbondingQueue) {
	if queue.IsEmpty() {
		if err := k.UnbondingQueues.Remove(ctx, account); err != nil {
			panic(err)
		}
		return
	}
	if err := k.UnbondingQueues.Set(ctx, account, queue); err != nil {
		panic(err)
	}
}

// addEraStaked adjusts the running staked total of an era's snapshot upward.
func (k Keeper) addEraStaked(ctx context.Context, era uint64, amount math.Int) {
	snapshot, _ := k.GetEraSnapshot(ctx, era)
	snapshot.Staked = snapshot.Staked.Add(amount)
	k.SetEraSnapshot(ctx, era, snapshot)
}

// subEraStaked adjusts the running staked total of an era's snapshot
// downward, clamping at zero.
func (k Keeper) subEraStaked(ctx context.Context, era uint64, amount math.Int) {
	snapshot, _ := k.GetEraSnapshot(ctx, era)
	snapshot.Staked = snapshot.Staked.Sub(amount)
	if snapshot.Staked.IsNegative() {
		snapshot.Staked = math.ZeroInt()
	}
	k.SetEraSnapshot(ctx, era, snapshot)
}

func bondCoins(amount math.Int) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(types.BondDenom, amount))
}
