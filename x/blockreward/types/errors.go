package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/blockreward module sentinel errors
var (
	ErrInvalidDistribution = sdkerrors.Register(ModuleName, 1200, "distribution shares must sum to one")
	ErrInvalidSigner       = sdkerrors.Register(ModuleName, 1201, "expected authority as signer")
)
