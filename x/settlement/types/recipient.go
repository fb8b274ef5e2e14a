package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Recipient selects where the primary output of a swap is deposited.
// The zero value routes output back to the initiator.
type Recipient struct {
	addr sdk.AccAddress
	set  bool
}

// NoRecipient routes output to the initiator.
func NoRecipient() Recipient {
	return Recipient{}
}

// RecipientOf routes output to addr.
func RecipientOf(addr sdk.AccAddress) Recipient {
	return Recipient{addr: addr, set: true}
}

// ParseRecipient decodes an optional bech32 address; an empty string means no recipient.
func ParseRecipient(bech32 string) (Recipient, error) {
	if bech32 == "" {
		return NoRecipient(), nil
	}
	addr, err := sdk.AccAddressFromBech32(bech32)
	if err != nil {
		return Recipient{}, ErrInvalidRecipient.Wrapf("%s: %v", bech32, err)
	}
	return RecipientOf(addr), nil
}

// IsSet reports whether an explicit recipient was given.
func (r Recipient) IsSet() bool {
	return r.set
}

// Validate rejects an explicit recipient with an empty address.
func (r Recipient) Validate() error {
	if r.set && r.addr.Empty() {
		return ErrInvalidRecipient.Wrap("recipient address cannot be empty")
	}
	return nil
}

// Resolve returns the account that receives the output of a trade started by initiator.
func (r Recipient) Resolve(initiator sdk.AccAddress) sdk.AccAddress {
	if r.set {
		return r.addr
	}
	return initiator
}
