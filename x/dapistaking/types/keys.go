package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "dapistaking"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// BondDenom is the only denomination accepted for bonds, delegations and
	// reward payouts.
	BondDenom = "umbt"
)

var (
	ParamsKey = collections.NewPrefix(0)

	// EraStateKey is the key for the current era index and transition info
	EraStateKey = collections.NewPrefix(1)

	// RewardPoolsKey is the key for the reward accumulator of the current era
	RewardPoolsKey = collections.NewPrefix(2)

	// ForceNewEraKey is the key for the era-forcing flag
	ForceNewEraKey = collections.NewPrefix(3)

	// EraSnapshotKey is the prefix for per-era reward/stake snapshots
	EraSnapshotKey = collections.NewPrefix(4)

	// ProviderKey is the prefix for registered provider metadata
	ProviderKey = collections.NewPrefix(5)

	// ProviderEraKey is the prefix for per (provider, era) stake records
	ProviderEraKey = collections.NewPrefix(6)

	// DelegationKey is the prefix for per (delegator, provider) stake history
	DelegationKey = collections.NewPrefix(7)

	// UnbondingQueueKey is the prefix for per-account unlocking chunks
	UnbondingQueueKey = collections.NewPrefix(8)
)
