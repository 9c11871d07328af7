package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// Era 1: provider bonds 2M, delegator stakes 2M, 1M collected.
// With a 50/50 split and the provider the only participant, the provider
// pool and delegator pool are 500k each.
func (s *KeeperTestSuite) TestClaimProviderReward() {
	owner := s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(2_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(2_000_000)))
	s.collectReward(1_000_000)
	s.advanceEra()

	reward, err := s.k.ClaimProviderReward(s.ctx, "provider-1", 1)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500_000), reward)
	s.Require().Equal(coins(500_000), s.bank.AccountBalance(owner))

	// Double claim for the same era is rejected.
	_, err = s.k.ClaimProviderReward(s.ctx, "provider-1", 1)
	s.Require().ErrorIs(err, types.ErrAlreadyClaimedInThisEra)
}

func (s *KeeperTestSuite) TestClaimProviderRewardEraBounds() {
	s.registerProvider("provider-1", 2_000_000)

	// The current era is not claimable, neither is era 0.
	_, err := s.k.ClaimProviderReward(s.ctx, "provider-1", 1)
	s.Require().ErrorIs(err, types.ErrEraOutOfBounds)
	_, err = s.k.ClaimProviderReward(s.ctx, "provider-1", 0)
	s.Require().ErrorIs(err, types.ErrEraOutOfBounds)

	_, err = s.k.ClaimProviderReward(s.ctx, "no-such-provider", 1)
	s.Require().ErrorIs(err, types.ErrNotOperatedProvider)
}

func (s *KeeperTestSuite) TestClaimProviderRewardSplitsByStakeShare() {
	ownerA := s.registerProvider("provider-a", 3_000_000)
	ownerB := s.registerProvider("provider-b", 1_000_000)
	s.collectReward(1_000_000)
	s.advanceEra()

	// Era 1 staked 4M: provider-a holds 3/4, provider-b 1/4 of the 500k pool.
	rewardA, err := s.k.ClaimProviderReward(s.ctx, "provider-a", 1)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(375_000), rewardA)

	rewardB, err := s.k.ClaimProviderReward(s.ctx, "provider-b", 1)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(125_000), rewardB)

	s.Require().Equal(coins(375_000), s.bank.AccountBalance(ownerA))
	s.Require().Equal(coins(125_000), s.bank.AccountBalance(ownerB))
}

func (s *KeeperTestSuite) TestClaimDelegatorReward() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	other := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))
	s.Require().NoError(s.k.Delegate(s.ctx, other, "provider-1", math.NewInt(1_000_000)))
	s.collectReward(1_000_000)
	s.advanceEra()

	// Delegators pool is 500k, split evenly between the two delegators.
	reward, err := s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(250_000), reward)
	s.Require().Equal(coins(250_000), s.bank.AccountBalance(delegator))

	// The ledger advanced; era 2 is current, so nothing else is claimable.
	_, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrEraOutOfBounds)
}

func (s *KeeperTestSuite) TestClaimDelegatorRewardAcrossIdleEras() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))

	// Two eras with rewards, no ledger writes in between.
	s.collectReward(600_000)
	s.advanceEra()
	s.collectReward(900_000)
	s.advanceEra()

	// Era 1: delegator pool 300k, sole delegator takes it all.
	reward, err := s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(300_000), reward)

	// Era 2: delegator pool 450k.
	reward, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(450_000), reward)

	s.Require().Equal(coins(750_000), s.bank.AccountBalance(delegator))

	// The single compacted entry served both eras.
	delegation := s.k.GetDelegation(s.ctx, delegator, "provider-1")
	s.Require().Equal(uint32(1), delegation.Len())
	s.Require().Equal(math.NewInt(1_000_000), delegation.LatestStakedValue())
}

func (s *KeeperTestSuite) TestClaimDelegatorRewardNoHistory() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)

	_, err := s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotStakedProvider)
}

func (s *KeeperTestSuite) TestClaimRejectedAtOrAfterDeactivationEra() {
	owner := s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))
	s.collectReward(1_000_000)
	s.advanceEra()

	// Unregistered in era 2: era 1 stays claimable, era 2 does not.
	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))
	s.advanceEra()

	reward, err := s.k.ClaimProviderReward(s.ctx, "provider-1", 1)
	s.Require().NoError(err)
	s.Require().True(reward.IsPositive())

	_, err = s.k.ClaimProviderReward(s.ctx, "provider-1", 2)
	s.Require().ErrorIs(err, types.ErrEraOutOfBounds)

	// Same for the delegator: era 1 pays, then the window is frozen.
	_, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)
	_, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrEraOutOfBounds)
}

// Escrow conservation: after every reward for an era is claimed, the module
// account holds exactly the still-reserved stake.
func (s *KeeperTestSuite) TestFullEraPayoutConservesEscrow() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(2_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(2_000_000)))
	s.collectReward(1_000_000)
	s.advanceEra()

	_, err := s.k.ClaimProviderReward(s.ctx, "provider-1", 1)
	s.Require().NoError(err)
	_, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)

	// 4M reserved stake remains; the 1M reward is fully paid out.
	s.Require().Equal(coins(4_000_000), s.bank.ModuleBalance(types.ModuleName))
}
