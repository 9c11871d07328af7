package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

func (s *KeeperTestSuite) TestDelegate() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)

	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(400_000)))

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(2_400_000), record.Total)
	s.Require().Equal(math.NewInt(2_000_000), record.Bond)
	s.Require().Equal(uint32(1), record.DelegatorCount)

	delegation := s.k.GetDelegation(s.ctx, delegator, "provider-1")
	s.Require().Equal(math.NewInt(400_000), delegation.LatestStakedValue())

	snapshot, _ := s.k.GetEraSnapshot(s.ctx, 1)
	s.Require().Equal(math.NewInt(2_400_000), snapshot.Staked)

	// A top-up in the same era merges rather than growing the ledger.
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(100_000)))
	delegation = s.k.GetDelegation(s.ctx, delegator, "provider-1")
	s.Require().Equal(uint32(1), delegation.Len())
	s.Require().Equal(math.NewInt(500_000), delegation.LatestStakedValue())

	record = s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(uint32(1), record.DelegatorCount)
}

func (s *KeeperTestSuite) TestDelegateRejectsInactiveProvider() {
	owner := s.registerProvider("provider-1", 2_000_000)
	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))

	delegator := s.fundedAccount(1_000_000)
	err := s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(400_000))
	s.Require().ErrorIs(err, types.ErrNotOperatedProvider)

	err = s.k.Delegate(s.ctx, delegator, "no-such-provider", math.NewInt(400_000))
	s.Require().ErrorIs(err, types.ErrNotOperatedProvider)
}

func (s *KeeperTestSuite) TestDelegateBelowMinimumStake() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)

	err := s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(50_000))
	s.Require().ErrorIs(err, types.ErrInsufficientBond)

	err = s.k.Delegate(s.ctx, delegator, "provider-1", math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrStakingWithNoValue)
}

func (s *KeeperTestSuite) TestDelegateMaxDelegatorsEnforced() {
	s.registerProvider("provider-1", 2_000_000)

	params := s.k.GetParams(s.ctx)
	params.MaxDelegatorsPerProvider = 2
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	first := s.fundedAccount(1_000_000)
	second := s.fundedAccount(1_000_000)
	third := s.fundedAccount(1_000_000)

	s.Require().NoError(s.k.Delegate(s.ctx, first, "provider-1", math.NewInt(200_000)))
	s.Require().NoError(s.k.Delegate(s.ctx, second, "provider-1", math.NewInt(200_000)))

	err := s.k.Delegate(s.ctx, third, "provider-1", math.NewInt(200_000))
	s.Require().ErrorIs(err, types.ErrMaxDelegatorsExceeded)

	// An existing delegator can still top up.
	s.Require().NoError(s.k.Delegate(s.ctx, first, "provider-1", math.NewInt(100_000)))
}

func (s *KeeperTestSuite) TestDelegateTooManyEraStakeValues() {
	s.registerProvider("provider-1", 2_000_000)

	params := s.k.GetParams(s.ctx)
	params.MaxEraStakeValues = 2
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	delegator := s.fundedAccount(10_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	s.advanceEra()
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	s.advanceEra()
	err := s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(200_000))
	s.Require().ErrorIs(err, types.ErrTooManyEraStakeValues)
}

func (s *KeeperTestSuite) TestUndelegatePartial() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(500_000)))

	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	delegation := s.k.GetDelegation(s.ctx, delegator, "provider-1")
	s.Require().Equal(math.NewInt(300_000), delegation.LatestStakedValue())

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(2_300_000), record.Total)
	s.Require().Equal(uint32(1), record.DelegatorCount)

	queue := s.k.GetUnbondingQueue(s.ctx, delegator)
	s.Require().Equal(math.NewInt(200_000), queue.Sum())
}

func (s *KeeperTestSuite) TestUndelegateRemainderBelowFloorUnstakesAll() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(500_000)))

	// 500k - 450k = 50k < 100k floor, so the full 500k is unstaked.
	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(450_000)))

	delegation := s.k.GetDelegation(s.ctx, delegator, "provider-1")
	s.Require().True(delegation.LatestStakedValue().IsZero())

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(2_000_000), record.Total)
	s.Require().Equal(uint32(0), record.DelegatorCount)

	queue := s.k.GetUnbondingQueue(s.ctx, delegator)
	s.Require().Equal(math.NewInt(500_000), queue.Sum())
}

func (s *KeeperTestSuite) TestUndelegateNotStaked() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(1_000_000)

	err := s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(100_000))
	s.Require().ErrorIs(err, types.ErrNotStakedProvider)

	err = s.k.Undelegate(s.ctx, delegator, "provider-1", math.ZeroInt())
	s.Require().ErrorIs(err, types.ErrUnstakingWithNoValue)
}

func (s *KeeperTestSuite) TestUndelegateChunkLimit() {
	s.registerProvider("provider-1", 2_000_000)

	params := s.k.GetParams(s.ctx)
	params.MaxUnlockingChunks = 2
	params.MaxEraStakeValues = 16
	s.Require().NoError(s.k.SetParams(s.ctx, params))

	delegator := s.fundedAccount(10_000_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(2_000_000)))

	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))
	// Same era merges into the same chunk.
	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	s.advanceEra()
	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	s.advanceEra()
	err := s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000))
	s.Require().ErrorIs(err, types.ErrTooManyUnlockingChunks)
}

func (s *KeeperTestSuite) TestWithdrawUnbonded() {
	s.registerProvider("provider-1", 2_000_000)
	delegator := s.fundedAccount(500_000)
	s.Require().NoError(s.k.Delegate(s.ctx, delegator, "provider-1", math.NewInt(500_000)))
	s.Require().NoError(s.k.Undelegate(s.ctx, delegator, "provider-1", math.NewInt(200_000)))

	// Nothing matured yet.
	_, err := s.k.WithdrawUnbonded(s.ctx, delegator)
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)

	for i := uint64(0); i < types.DefaultUnbondingPeriodEras; i++ {
		s.advanceEra()
	}

	withdrawn, err := s.k.WithdrawUnbonded(s.ctx, delegator)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(200_000), withdrawn)
	s.Require().Equal(coins(200_000), s.bank.AccountBalance(delegator))
	s.Require().True(s.k.GetUnbondingQueue(s.ctx, delegator).IsEmpty())

	// A second withdraw has nothing left.
	_, err = s.k.WithdrawUnbonded(s.ctx, delegator)
	s.Require().ErrorIs(err, types.ErrNothingToWithdraw)
}
