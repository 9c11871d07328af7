package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Default parameter values
var (
	DefaultEraLength                = uint64(7200) // blocks, ~12h at 6s blocks
	DefaultMinProviderBond          = math.NewInt(1_000_000)
	DefaultMinDelegatorStake        = math.NewInt(100_000)
	DefaultMaxDelegatorsPerProvider = uint32(128)
	DefaultMaxEraStakeValues        = uint32(16)
	DefaultMaxUnlockingChunks       = uint32(8)
	DefaultUnbondingPeriodEras      = uint64(7)
	// Half of every collected reward is set aside for delegators, the rest
	// accrues to the providers pool.
	DefaultDelegatorsRewardShare = math.LegacyNewDecWithPrec(50, 2)
)

// Params defines the parameters for the dapistaking module.
type Params struct {
	// EraLength is the number of blocks per era.
	EraLength uint64 `json:"era_length"`
	// MinProviderBond is the minimum self-bond for provider registration.
	MinProviderBond math.Int `json:"min_provider_bond"`
	// MinDelegatorStake is the minimum active delegation per (delegator, provider).
	MinDelegatorStake math.Int `json:"min_delegator_stake"`
	// MaxDelegatorsPerProvider bounds the delegator count of one provider.
	MaxDelegatorsPerProvider uint32 `json:"max_delegators_per_provider"`
	// MaxEraStakeValues bounds the unclaimed-era history per delegation.
	MaxEraStakeValues uint32 `json:"max_era_stake_values"`
	// MaxUnlockingChunks bounds the unbonding queue per account.
	MaxUnlockingChunks uint32 `json:"max_unlocking_chunks"`
	// UnbondingPeriodEras is the number of eras between unstake and withdraw.
	UnbondingPeriodEras uint64 `json:"unbonding_period_eras"`
	// DelegatorsRewardShare is the fraction of every collected reward that is
	// accumulated into the delegators pool; the remainder goes to providers.
	DelegatorsRewardShare math.LegacyDec `json:"delegators_reward_share"`
}

// NewParams creates a new Params instance
func NewParams(
	eraLength uint64,
	minProviderBond math.Int,
	minDelegatorStake math.Int,
	maxDelegatorsPerProvider uint32,
	maxEraStakeValues uint32,
	maxUnlockingChunks uint32,
	unbondingPeriodEras uint64,
	delegatorsRewardShare math.LegacyDec,
) Params {
	return Params{
		EraLength:                eraLength,
		MinProviderBond:          minProviderBond,
		MinDelegatorStake:        minDelegatorStake,
		MaxDelegatorsPerProvider: maxDelegatorsPerProvider,
		MaxEraStakeValues:        maxEraStakeValues,
		MaxUnlockingChunks:       maxUnlockingChunks,
		UnbondingPeriodEras:      unbondingPeriodEras,
		DelegatorsRewardShare:    delegatorsRewardShare,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(
		DefaultEraLength,
		DefaultMinProviderBond,
		DefaultMinDelegatorStake,
		DefaultMaxDelegatorsPerProvider,
		DefaultMaxEraStakeValues,
		DefaultMaxUnlockingChunks,
		DefaultUnbondingPeriodEras,
		DefaultDelegatorsRewardShare,
	)
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.EraLength == 0 {
		return fmt.Errorf("era length must be positive")
	}
	if p.MinProviderBond.IsNil() || !p.MinProviderBond.IsPositive() {
		return fmt.Errorf("minimum provider bond must be positive")
	}
	if p.MinDelegatorStake.IsNil() || !p.MinDelegatorStake.IsPositive() {
		return fmt.Errorf("minimum delegator stake must be positive")
	}
	if p.MaxDelegatorsPerProvider == 0 {
		return fmt.Errorf("max delegators per provider must be positive")
	}
	if p.MaxEraStakeValues < 2 {
		return fmt.Errorf("max era stake values must be at least 2")
	}
	if p.MaxUnlockingChunks == 0 {
		return fmt.Errorf("max unlocking chunks must be positive")
	}
	if p.UnbondingPeriodEras == 0 {
		return fmt.Errorf("unbonding period must be positive")
	}
	if p.DelegatorsRewardShare.IsNil() || p.DelegatorsRewardShare.IsNegative() ||
		p.DelegatorsRewardShare.GT(math.LegacyOneDec()) {
		return fmt.Errorf("delegators reward share must be between 0 and 1")
	}
	return nil
}
