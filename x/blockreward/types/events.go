package types

// Event types
const (
	EventTypeRewardMinted = "block_reward_minted"
)

// Event attribute keys
const (
	AttributeKeyAmount     = "amount"
	AttributeKeyProviders  = "providers"
	AttributeKeyValidators = "validators"
)
