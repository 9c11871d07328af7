package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EraSnapshotRecord pairs an era index with its snapshot for genesis.
type EraSnapshotRecord struct {
	Era      uint64      `json:"era"`
	Snapshot EraSnapshot `json:"snapshot"`
}

// ProviderRecord pairs a provider id with its metadata for genesis.
type ProviderRecord struct {
	ProviderId string           `json:"provider_id"`
	Metadata   ProviderMetadata `json:"metadata"`
}

// ProviderEraRecord pairs a (provider, era) key with its aggregate for genesis.
type ProviderEraRecord struct {
	ProviderId string          `json:"provider_id"`
	Era        uint64          `json:"era"`
	Info       ProviderEraInfo `json:"info"`
}

// DelegationRecord pairs a (delegator, provider) key with its ledger for genesis.
type DelegationRecord struct {
	Delegator  string     `json:"delegator"`
	ProviderId string     `json:"provider_id"`
	Delegation Delegation `json:"delegation"`
}

// UnbondingQueueRecord pairs an account with its unlocking chunks for genesis.
type UnbondingQueueRecord struct {
	Account string         `json:"account"`
	Queue   UnbondingQueue `json:"queue"`
}

// GenesisState defines the dapistaking module's genesis state.
type GenesisState struct {
	Params          Params                 `json:"params"`
	EraState        EraState               `json:"era_state"`
	RewardPools     RewardPools            `json:"reward_pools"`
	EraSnapshots    []EraSnapshotRecord    `json:"era_snapshots"`
	Providers       []ProviderRecord       `json:"providers"`
	ProviderEras    []ProviderEraRecord    `json:"provider_eras"`
	Delegations     []DelegationRecord     `json:"delegations"`
	UnbondingQueues []UnbondingQueueRecord `json:"unbonding_queues"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		EraState:    EraState{},
		RewardPools: NewRewardPools(),
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	providers := make(map[string]struct{}, len(gs.Providers))
	for _, p := range gs.Providers {
		if p.ProviderId == "" {
			return fmt.Errorf("empty provider id")
		}
		if _, ok := providers[p.ProviderId]; ok {
			return fmt.Errorf("duplicate provider %s", p.ProviderId)
		}
		if _, err := sdk.AccAddressFromBech32(p.Metadata.Owner); err != nil {
			return fmt.Errorf("provider %s owner: %w", p.ProviderId, err)
		}
		providers[p.ProviderId] = struct{}{}
	}

	for _, d := range gs.Delegations {
		if _, err := sdk.AccAddressFromBech32(d.Delegator); err != nil {
			return fmt.Errorf("delegation on %s: %w", d.ProviderId, err)
		}
		if _, ok := providers[d.ProviderId]; !ok {
			return fmt.Errorf("delegation references unknown provider %s", d.ProviderId)
		}
	}

	for _, u := range gs.UnbondingQueues {
		if _, err := sdk.AccAddressFromBech32(u.Account); err != nil {
			return fmt.Errorf("unbonding queue: %w", err)
		}
	}

	return nil
}
