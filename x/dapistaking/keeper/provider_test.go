package keeper_test

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

func (s *KeeperTestSuite) TestRegisterProvider() {
	owner := s.fundedAccount(3_000_000)

	err := s.k.RegisterProvider(s.ctx, owner, "provider-1", math.NewInt(2_000_000))
	s.Require().NoError(err)

	metadata, found := s.k.GetProvider(s.ctx, "provider-1")
	s.Require().True(found)
	s.Require().True(metadata.Active)
	s.Require().Equal(owner.String(), metadata.Owner)

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(2_000_000), record.Bond)
	s.Require().Equal(math.NewInt(2_000_000), record.Total)
	s.Require().Equal(uint32(0), record.DelegatorCount)

	snapshot, _ := s.k.GetEraSnapshot(s.ctx, 1)
	s.Require().Equal(math.NewInt(2_000_000), snapshot.Staked)

	// The bond moved into escrow.
	s.Require().Equal(coins(1_000_000), s.bank.AccountBalance(owner))
	s.Require().Equal(coins(2_000_000), s.bank.ModuleBalance(types.ModuleName))
}

func (s *KeeperTestSuite) TestRegisterProviderDuplicateId() {
	s.registerProvider("provider-1", 2_000_000)

	owner := s.fundedAccount(2_000_000)
	err := s.k.RegisterProvider(s.ctx, owner, "provider-1", math.NewInt(2_000_000))
	s.Require().ErrorIs(err, types.ErrProviderAlreadyRegistered)
}

func (s *KeeperTestSuite) TestRegisterProviderBondBelowMinimum() {
	owner := s.fundedAccount(2_000_000)
	err := s.k.RegisterProvider(s.ctx, owner, "provider-1", math.NewInt(999_999))
	s.Require().ErrorIs(err, types.ErrInsufficientBond)
}

func (s *KeeperTestSuite) TestRegisterProviderInsufficientFunds() {
	owner := s.fundedAccount(500_000)
	err := s.k.RegisterProvider(s.ctx, owner, "provider-1", math.NewInt(2_000_000))
	s.Require().Error(err)

	_, found := s.k.GetProvider(s.ctx, "provider-1")
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestUnregisterProvider() {
	owner := s.registerProvider("provider-1", 2_000_000)

	s.Require().NoError(s.k.UnregisterProvider(s.ctx, owner, "provider-1"))

	metadata, _ := s.k.GetProvider(s.ctx, "provider-1")
	s.Require().False(metadata.Active)
	s.Require().Equal(uint64(1), metadata.InactiveSince)

	// The provider's total no longer counts toward the era.
	snapshot, _ := s.k.GetEraSnapshot(s.ctx, 1)
	s.Require().True(snapshot.Staked.IsZero())

	// Unregistering twice fails.
	err := s.k.UnregisterProvider(s.ctx, owner, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotOperatedProvider)
}

func (s *KeeperTestSuite) TestUnregisterProviderWrongSigner() {
	s.registerProvider("provider-1", 2_000_000)

	stranger := s.fundedAccount(0)
	err := s.k.UnregisterProvider(s.ctx, stranger, "provider-1")
	s.Require().ErrorIs(err, types.ErrNotOwnedProvider)
}

func (s *KeeperTestSuite) TestUnregisterProviderByAuthority() {
	s.registerProvider("provider-1", 2_000_000)

	authority := sdk.MustAccAddressFromBech32(s.k.GetAuthority())
	s.Require().NoError(s.k.UnregisterProvider(s.ctx, authority, "provider-1"))

	metadata, _ := s.k.GetProvider(s.ctx, "provider-1")
	s.Require().False(metadata.Active)
}

func (s *KeeperTestSuite) TestProviderBondMore() {
	owner := s.registerProvider("provider-1", 2_000_000)
	s.bank.FundAccount(owner, coins(500_000))

	s.Require().NoError(s.k.ProviderBondMore(s.ctx, owner, "provider-1", math.NewInt(500_000)))

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(2_500_000), record.Bond)
	s.Require().Equal(math.NewInt(2_500_000), record.Total)

	snapshot, _ := s.k.GetEraSnapshot(s.ctx, 1)
	s.Require().Equal(math.NewInt(2_500_000), snapshot.Staked)
}

func (s *KeeperTestSuite) TestProviderBondLess() {
	owner := s.registerProvider("provider-1", 2_000_000)

	s.Require().NoError(s.k.ProviderBondLess(s.ctx, owner, "provider-1", math.NewInt(500_000)))

	record := s.k.GetProviderEra(s.ctx, "provider-1", 1)
	s.Require().Equal(math.NewInt(1_500_000), record.Bond)
	s.Require().Equal(math.NewInt(1_500_000), record.Total)

	// The amount is queued for unbonding, not paid out.
	s.Require().True(s.bank.AccountBalance(owner).IsZero())
	queue := s.k.GetUnbondingQueue(s.ctx, owner)
	s.Require().Equal(math.NewInt(500_000), queue.Sum())
	s.Require().Equal(uint64(1+types.DefaultUnbondingPeriodEras), queue.Chunks[0].UnlockEra)
}

func (s *KeeperTestSuite) TestProviderBondLessBelowMinimum() {
	owner := s.registerProvider("provider-1", 2_000_000)

	err := s.k.ProviderBondLess(s.ctx, owner, "provider-1", math.NewInt(1_500_000))
	s.Require().ErrorIs(err, types.ErrInsufficientBond)
}

func (s *KeeperTestSuite) TestProviderBondOpsRequireOwner() {
	s.registerProvider("provider-1", 2_000_000)
	stranger := s.fundedAccount(1_000_000)

	err := s.k.ProviderBondMore(s.ctx, stranger, "provider-1", math.NewInt(100_000))
	s.Require().ErrorIs(err, types.ErrNotOwnedProvider)

	err = s.k.ProviderBondLess(s.ctx, stranger, "provider-1", math.NewInt(100_000))
	s.Require().ErrorIs(err, types.ErrNotOwnedProvider)
}
