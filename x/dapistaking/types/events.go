package types

// Event types
const (
	EventTypeProviderRegistered   = "provider_registered"
	EventTypeProviderUnregistered = "provider_unregistered"
	EventTypeStaked               = "staked"
	EventTypeUnstaked             = "unstaked"
	EventTypeWithdrawn            = "withdrawn"
	EventTypeNewEra               = "new_era"
	EventTypePayout               = "payout"
)

// Event attribute keys
const (
	AttributeKeyProviderId = "provider_id"
	AttributeKeyOwner      = "owner"
	AttributeKeyAccount    = "account"
	AttributeKeyAmount     = "amount"
	AttributeKeyEra        = "era"
	AttributeKeyUnlockEra  = "unlock_era"
)
