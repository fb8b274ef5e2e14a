package types

import (
	"fmt"
)

// GenesisState holds the engine params and every pool.
type GenesisState struct {
	Params Params `json:"params"`
	Pools  []Pool `json:"pools"`
}

// DefaultGenesis returns default params and no pools.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams(), Pools: []Pool{}}
}

// Validate checks params, every pool, and duplicate keys.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Pools))
	for i, p := range gs.Pools {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", i, err)
		}
		k := p.Key.String()
		if _, dup := seen[k]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate pool %s", k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
