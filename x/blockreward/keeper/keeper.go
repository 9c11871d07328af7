package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/massbitprotocol/dapichain/x/blockreward/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of updating the issuance parameters. Typically,
		// this should be the x/gov module account.
		authority string

		bankKeeper     types.BankEscrowKeeper
		providerKeeper types.ProviderPayoutKeeper

		Schema collections.Schema
		params collections.Item[types.Params]
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankEscrowKeeper,
	providerKeeper types.ProviderPayoutKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		logger:       logger,
		authority:    authority,

		bankKeeper:     bankKeeper,
		providerKeeper: providerKeeper,

		params: collections.NewItem(sb, types.ParamsKey, "params", types.ParamsValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// BeginBlocker mints the configured block reward and distributes it: the
// providers' share is handed to the staking reward pools, the remainder goes
// to the fee collector for the validator set.
func (k Keeper) BeginBlocker(ctx context.Context) error {
	params := k.GetParams(ctx)
	if params.BlockReward.IsNil() || !params.BlockReward.IsPositive() {
		return nil
	}

	minted := sdk.NewCoin(types.RewardDenom, params.BlockReward)
	err := k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(minted), "block reward issuance")
	if err != nil {
		return err
	}

	providersCut := params.Distribution.ProvidersShare.MulInt(minted.Amount).TruncateInt()
	validatorsCut := minted.Amount.Sub(providersCut)

	if providersCut.IsPositive() {
		err = k.providerKeeper.PayoutProviders(ctx, types.ModuleName, sdk.NewCoin(types.RewardDenom, providersCut))
		if err != nil {
			return err
		}
	}
	if validatorsCut.IsPositive() {
		err = k.bankKeeper.SendCoinsFromModuleToModule(ctx, types.ModuleName, authtypes.FeeCollectorName,
			sdk.NewCoins(sdk.NewCoin(types.RewardDenom, validatorsCut)), "validator block reward")
		if err != nil {
			return err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardMinted,
			sdk.NewAttribute(types.AttributeKeyAmount, minted.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyProviders, providersCut.String()),
			sdk.NewAttribute(types.AttributeKeyValidators, validatorsCut.String()),
		),
	)
	return nil
}
