package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/massbitprotocol/dapichain/x/blockreward/keeper"
	"github.com/massbitprotocol/dapichain/x/blockreward/types"
	bookkeeperkeeper "github.com/massbitprotocol/dapichain/x/bookkeeper/keeper"
	stakingkeeper "github.com/massbitprotocol/dapichain/x/dapistaking/keeper"
	stakingtypes "github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// BlockRewardKeeper builds an issuance keeper whose providers' cut is
// discarded into a sink module. Use StakingAndBlockRewardKeepers to wire a
// real staking keeper.
func BlockRewardKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *InMemoryBank) {
	bank := NewInMemoryBank()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		Authority.String(),
		auditedBank(bank),
		moduleSink{bank: bank},
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx, bank
}

// StakingAndBlockRewardKeepers builds both keepers over one multistore so the
// per-block issuance can feed the staking reward pools under a single context.
func StakingAndBlockRewardKeepers(t testing.TB) (stakingkeeper.Keeper, keeper.Keeper, sdk.Context, *InMemoryBank) {
	bank := NewInMemoryBank()

	stakingStoreKey := storetypes.NewKVStoreKey(stakingtypes.StoreKey)
	rewardStoreKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(stakingStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(rewardStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	sk := stakingkeeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(stakingStoreKey),
		log.NewNopLogger(),
		Authority.String(),
		auditedBank(bank),
	)

	rk := keeper.NewKeeper(
		runtime.NewKVStoreService(rewardStoreKey),
		log.NewNopLogger(),
		Authority.String(),
		auditedBank(bank),
		sk,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, sk.SetParams(ctx, stakingtypes.DefaultParams()))
	require.NoError(t, rk.SetParams(ctx, types.DefaultParams()))

	return sk, rk, ctx, bank
}

func auditedBank(bank *InMemoryBank) bookkeeperkeeper.Keeper {
	return bookkeeperkeeper.NewKeeper(
		log.NewNopLogger(),
		bank,
		bookkeeperkeeper.LogConfig{SimpleEntry: true, LogLevel: "debug"},
	)
}

// moduleSink parks provider rewards in a "sink" module account.
type moduleSink struct {
	bank *InMemoryBank
}

func (s moduleSink) PayoutProviders(ctx context.Context, fromModule string, reward sdk.Coin) error {
	return s.bank.SendCoinsFromModuleToModule(ctx, fromModule, "sink", sdk.NewCoins(reward))
}
