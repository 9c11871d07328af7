package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankEscrowKeeper is the narrow currency interface the staking core depends
// on. Reserving stake maps to an account-to-module transfer into the module
// escrow account, releasing and paying out map to module-to-account
// transfers; claims never mint.
type BankEscrowKeeper interface {
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error
	SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error
}
