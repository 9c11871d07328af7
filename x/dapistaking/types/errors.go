package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/dapistaking module sentinel errors
var (
	ErrProviderAlreadyRegistered = sdkerrors.Register(ModuleName, 1100, "provider already registered")
	ErrNotOperatedProvider       = sdkerrors.Register(ModuleName, 1101, "provider not found or not active")
	ErrNotOwnedProvider          = sdkerrors.Register(ModuleName, 1102, "provider not owned by account")
	ErrNotStakedProvider         = sdkerrors.Register(ModuleName, 1103, "no stake on provider")
	ErrNotUnregisteredProvider   = sdkerrors.Register(ModuleName, 1104, "provider is not unregistered")
	ErrInsufficientBond          = sdkerrors.Register(ModuleName, 1105, "amount below required minimum")
	ErrStakingWithNoValue        = sdkerrors.Register(ModuleName, 1106, "cannot stake zero value")
	ErrUnstakingWithNoValue      = sdkerrors.Register(ModuleName, 1107, "cannot unstake zero value")
	ErrMaxDelegatorsExceeded     = sdkerrors.Register(ModuleName, 1108, "maximum number of delegators exceeded")
	ErrTooManyEraStakeValues     = sdkerrors.Register(ModuleName, 1109, "too many unclaimed era stake values, claim rewards first")
	ErrTooManyUnlockingChunks    = sdkerrors.Register(ModuleName, 1110, "too many unlocking chunks, withdraw matured chunks first")
	ErrNothingToWithdraw         = sdkerrors.Register(ModuleName, 1111, "no unbonded funds available for withdrawal")
	ErrEraOutOfBounds            = sdkerrors.Register(ModuleName, 1112, "era parameter is out of bounds")
	ErrAlreadyClaimedInThisEra   = sdkerrors.Register(ModuleName, 1113, "reward already claimed for this era")
	ErrUnknownEra                = sdkerrors.Register(ModuleName, 1114, "no snapshot exists for era")
	ErrUnclaimedRewards          = sdkerrors.Register(ModuleName, 1115, "unclaimed rewards remaining, claim them before withdrawing")
	ErrUnexpectedStakeEra        = sdkerrors.Register(ModuleName, 1116, "delegation ledger era moved backwards")
	ErrInvalidSigner             = sdkerrors.Register(ModuleName, 1117, "expected authority as signer")
)
