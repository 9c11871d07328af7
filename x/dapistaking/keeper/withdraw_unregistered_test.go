package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

func (s *KeeperTestSuite) TestWithdrawUnregisteredBond() {
	owner := s.registerProvider("provider-1", 2_000_000)
	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))

	// Locked until the unbonding period since deactivation has elapsed.
	err := s.k.WithdrawUnregisteredBond(s.ctx, owner, "provider-1")
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)

	for i := uint64(0); i < types.DefaultUnbondingPeriodEras; i++ {
		s.advanceEra()
	}

	s.Require().NoError(s.k.WithdrawUnregisteredBond(s.ctx, owner, "provider-1"))
	s.Require().Equal(coins(2_000_000), s.bank.AccountBalance(owner))

	// One-shot.
	err = s.k.WithdrawUnregisteredBond(s.ctx, owner, "provider-1")
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)
}

func (s *KeeperTestSuite) TestWithdrawUnregisteredBondChecks() {
	owner := s.registerProvider("provider-1", 2_000_000)

	// Still active.
	err := s.k.WithdrawUnregisteredBond(s.ctx, owner, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotUnregisteredProvider)

	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))
	for i := uint64(0); i < types.DefaultUnbondingPeriodEras; i++ {
		s.advanceEra()
	}

	stranger := s.fundedAccount(0)
	err = s.k.WithdrawUnregisteredBond(s.ctx, stranger, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotOwnedProvider)

	err = s.k.WithdrawUnregisteredBond(s.ctx, owner, "no-such-provider")
	s.Require().ErrorIs(err, types.ErrNotOperatedProvider)
}

func (s *KeeperTestSuite) TestWithdrawUnregisteredStake() {
	owner := s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))
	s.collectReward(1_000_000)
	s.advanceEra()

	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))

	for i := uint64(0); i < types.DefaultUnbondingPeriodEras; i++ {
		s.advanceEra()
	}

	// Era 1 is still unclaimed, so the stake stays locked.
	_, err := s.k.WithdrawUnregisteredStake(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrUnclaimedRewards)

	_, err = s.k.ClaimDelegatorReward(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)

	withdrawn, err := s.k.WithdrawUnregisteredStake(s.ctx, delegator, "provider-1")
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1_000_000), withdrawn)

	// The ledger entry is gone; a second withdraw finds nothing.
	s.Require().True(s.k.GetDelegation(s.ctx, delegator, "provider-1").IsEmpty())
	_, err = s.k.WithdrawUnregisteredStake(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)
}

func (s *KeeperTestSuite) TestWithdrawUnregisteredStakeWaitsForUnbonding() {
	owner := s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))

	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))

	_, err := s.k.WithdrawUnregisteredStake(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)

	err = s.k.WithdrawUnregisteredBond(s.ctx, owner, "provider-1")
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)
}

func (s *KeeperTestSuite) TestWithdrawUnregisteredStakeOnActiveProvider() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(1_000_000)))

	_, err := s.k.WithdrawUnregisteredStake(s.ctx, delegator, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotUnregisteredProvider)
}
