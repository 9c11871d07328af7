package keeper

import (
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
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/massbitprotocol/dapichain/x/dapistaking/keeper"
	"github.com/massbitprotocol/dapichain/x/dapistaking/types"
)

// Authority is the gov module address used by all test keepers.
var Authority = authtypes.NewModuleAddress(govtypes.ModuleName)

// DapiStakingKeeper builds a staking keeper backed by an in-memory multistore
// and an in-memory bank audited through the bookkeeper.
func DapiStakingKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *InMemoryBank) {
	bank := NewInMemoryBank()
	k, ctx := DapiStakingKeeperWithBank(t, bank)
	return k, ctx, bank
}

func DapiStakingKeeperWithBank(t testing.TB, bank *InMemoryBank) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	k := keeper.NewKeeper(
		cdc,
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		Authority.String(),
		auditedBank(bank),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
