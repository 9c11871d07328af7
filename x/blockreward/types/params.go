package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default parameter values
var (
	DefaultBlockReward = math.NewInt(1_000_000)
	// 60% of each block reward goes to validators, the rest funds the
	// provider staking reward pools.
	DefaultValidatorsShare = math.LegacyNewDecWithPrec(60, 2)
	DefaultProvidersShare  = math.LegacyNewDecWithPrec(40, 2)
)

// DistributionConfig splits the minted block reward between beneficiaries.
// The shares must sum to exactly one; the split is checked as a whole rather
// than per field so a partial update cannot silently burn or inflate.
type DistributionConfig struct {
	ValidatorsShare math.LegacyDec `json:"validators_share"`
	ProvidersShare  math.LegacyDec `json:"providers_share"`
}

func NewDistributionConfig(validators, providers math.LegacyDec) DistributionConfig {
	return DistributionConfig{ValidatorsShare: validators, ProvidersShare: providers}
}

// IsConsistent reports whether the shares are well-formed and sum to one.
func (c DistributionConfig) IsConsistent() bool {
	if c.ValidatorsShare.IsNil() || c.ProvidersShare.IsNil() {
		return false
	}
	if c.ValidatorsShare.IsNegative() || c.ProvidersShare.IsNegative() {
		return false
	}
	return c.ValidatorsShare.Add(c.ProvidersShare).Equal(math.LegacyOneDec())
}

// Params defines the parameters for the blockreward module.
type Params struct {
	// BlockReward is the amount minted each block. Zero disables issuance.
	BlockReward math.Int `json:"block_reward"`
	// Distribution splits the minted amount between beneficiaries.
	Distribution DistributionConfig `json:"distribution"`
}

// NewParams creates a new Params instance
func NewParams(blockReward math.Int, distribution DistributionConfig) Params {
	return Params{BlockReward: blockReward, Distribution: distribution}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultBlockReward, NewDistributionConfig(DefaultValidatorsShare, DefaultProvidersShare))
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.BlockReward.IsNil() || p.BlockReward.IsNegative() {
		return fmt.Errorf("block reward must be non-negative")
	}
	if !p.Distribution.IsConsistent() {
		return ErrInvalidDistribution
	}
	return nil
}
