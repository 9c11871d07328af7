package types

// GenesisState defines the blockreward module's genesis state.
type GenesisState struct {
	Params Params `json:"params"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

// Validate performs basic genesis state validation returning an error upon
// any failure.
func (gs GenesisState) Validate() error {
	return gs.Params.Validate()
}
