package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "blockreward"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RewardDenom is the denomination minted as block reward.
	RewardDenom = "umbt"
)

var (
	ParamsKey = collections.NewPrefix(0)
)
