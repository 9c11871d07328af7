package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankEscrowKeeper is the subset of bank functionality used to mint and move
// the per-block issuance.
type BankEscrowKeeper interface {
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
}

// ProviderPayoutKeeper receives the providers' cut of each block reward. The
// funds sit in this module's account until collected.
type ProviderPayoutKeeper interface {
	PayoutProviders(ctx context.Context, fromModule string, reward sdk.Coin) error
}
