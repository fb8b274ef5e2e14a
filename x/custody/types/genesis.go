package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Balance is one holding record.
type Balance struct {
	Address string              `json:"address"`
	Asset   sharedtypes.AssetID `json:"asset"`
	Amount  math.Int            `json:"amount"`
}

// GenesisState holds every custody holding record.
type GenesisState struct {
	Balances []Balance `json:"balances"`
}

// DefaultGenesis returns an empty ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Balances: []Balance{}}
}

// Validate checks addresses, assets, amounts, and duplicate holdings.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for i, b := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return ErrInvalidAccount.Wrapf("balance %d: %v", i, err)
		}
		if err := b.Asset.Validate(); err != nil {
			return fmt.Errorf("balance %d: %w", i, err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("balance %d: negative amount %s", i, b.Amount)
		}
		id := b.Address + "/" + b.Asset.String()
		if _, dup := seen[id]; dup {
			return ErrInvalidAccount.Wrapf("duplicate holding %s", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
