package types

import (
	"cosmossdk.io/math"
)

// EraState holds the current era index and transition information.
// Era numbering starts at 1; the zero value means the chain has not yet
// processed its first block and era 0 is never an active era.
type EraState struct {
	// Current era index.
	Current uint64 `json:"current"`
	// FirstBlock is the height at which the current era began.
	FirstBlock int64 `json:"first_block"`
	// Length of the current era in blocks.
	Length uint64 `json:"length"`
}

func NewEraState(current uint64, firstBlock int64, length uint64) EraState {
	return EraState{Current: current, FirstBlock: firstBlock, Length: length}
}

// ShouldRoll reports whether the era has run its full length at the given
// height. The very first era transition is handled separately by the caller.
func (e EraState) ShouldRoll(height int64) bool {
	return height-e.FirstBlock >= int64(e.Length)
}

// RewardPools is the pair of per-era reward accumulators. Every collected
// reward is split between the two pools at collection time; the pools are
// frozen into the era snapshot at rollover.
type RewardPools struct {
	Providers  math.Int `json:"providers"`
	Delegators math.Int `json:"delegators"`
}

func NewRewardPools() RewardPools {
	return RewardPools{Providers: math.ZeroInt(), Delegators: math.ZeroInt()}
}

func (r RewardPools) Total() math.Int {
	return r.Providers.Add(r.Delegators)
}

func (r RewardPools) IsZero() bool {
	return r.Providers.IsZero() && r.Delegators.IsZero()
}

// EraSnapshot records the total staked amount and the frozen reward pools of
// one era. Rewards are written exactly once, at the rollover ending the era;
// Staked is adjusted by every stake mutation within the era.
type EraSnapshot struct {
	Rewards RewardPools `json:"rewards"`
	Staked  math.Int    `json:"staked"`
}

func NewEraSnapshot(staked math.Int) EraSnapshot {
	return EraSnapshot{Rewards: NewRewardPools(), Staked: staked}
}

// ProviderMetadata describes a registered provider.
type ProviderMetadata struct {
	// Owner is the bech32 address of the operating account.
	Owner string `json:"owner"`
	// Active is false once the provider has been unregistered.
	Active bool `json:"active"`
	// InactiveSince is the era at which the provider was unregistered.
	// Meaningful only when Active is false.
	InactiveSince uint64 `json:"inactive_since,omitempty"`
	// BondWithdrawn flips to true when the unregistered provider's bond has
	// been released. One-shot.
	BondWithdrawn bool `json:"bond_withdrawn"`
}

func NewProviderMetadata(owner string) ProviderMetadata {
	return ProviderMetadata{Owner: owner, Active: true}
}

// Deactivate moves the provider to Inactive status as of the given era.
func (p *ProviderMetadata) Deactivate(era uint64) {
	p.Active = false
	p.InactiveSince = era
}

// ProviderEraInfo aggregates a provider's stake for one era.
type ProviderEraInfo struct {
	// Bond is the provider's own staked deposit.
	Bond math.Int `json:"bond"`
	// Total is Bond plus the sum of active delegations.
	Total math.Int `json:"total"`
	// DelegatorCount is the number of active delegators.
	DelegatorCount uint32 `json:"delegator_count"`
	// RewardClaimed indicates the provider reward for this era was paid out.
	RewardClaimed bool `json:"reward_claimed"`
}

func NewProviderEraInfo() ProviderEraInfo {
	return ProviderEraInfo{Bond: math.ZeroInt(), Total: math.ZeroInt()}
}

// DelegatedTotal returns the delegators' portion of Total.
func (p ProviderEraInfo) DelegatedTotal() math.Int {
	if p.Total.LTE(p.Bond) {
		return math.ZeroInt()
	}
	return p.Total.Sub(p.Bond)
}
