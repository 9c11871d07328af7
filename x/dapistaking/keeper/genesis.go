package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetEraState(ctx, genState.EraState)
	k.SetRewardPools(ctx, genState.RewardPools)

	for _, record := range genState.EraSnapshots {
		k.SetEraSnapshot(ctx, record.Era, record.Snapshot)
	}
	for _, record := range genState.Providers {
		k.SetProvider(ctx, record.ProviderId, record.Metadata)
	}
	for _, record := range genState.ProviderEras {
		k.SetProviderEra(ctx, record.ProviderId, record.Era, record.Info)
	}
	for _, record := range genState.Delegations {
		delegator := sdk.MustAccAddressFromBech32(record.Delegator)
		k.SetDelegation(ctx, delegator, record.ProviderId, record.Delegation)
	}
	for _, record := range genState.UnbondingQueues {
		account := sdk.MustAccAddressFromBech32(record.Account)
		k.SetUnbondingQueue(ctx, account, record.Queue)
	}
	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)
	genesis.EraState = k.GetEraState(ctx)
	genesis.RewardPools = k.GetRewardPools(ctx)

	err := k.EraSnapshots.Walk(ctx, nil, func(era uint64, snapshot types.EraSnapshot) (bool, error) {
		genesis.EraSnapshots = append(genesis.EraSnapshots, types.EraSnapshotRecord{Era: era, Snapshot: snapshot})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Providers.Walk(ctx, nil, func(providerId string, metadata types.ProviderMetadata) (bool, error) {
		genesis.Providers = append(genesis.Providers, types.ProviderRecord{ProviderId: providerId, Metadata: metadata})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.ProviderEras.Walk(ctx, nil, func(key collections.Pair[string, uint64], info types.ProviderEraInfo) (bool, error) {
		genesis.ProviderEras = append(genesis.ProviderEras, types.ProviderEraRecord{
			ProviderId: key.K1(), Era: key.K2(), Info: info,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.Delegations.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], delegation types.Delegation) (bool, error) {
		genesis.Delegations = append(genesis.Delegations, types.DelegationRecord{
			Delegator: key.K1().String(), ProviderId: key.K2(), Delegation: delegation,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.UnbondingQueues.Walk(ctx, nil, func(account sdk.AccAddress, queue types.UnbondingQueue) (bool, error) {
		genesis.UnbondingQueues = append(genesis.UnbondingQueues, types.UnbondingQueueRecord{
			Account: account.String(), Queue: queue,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return genesis, nil
}
