package types

import (
	"cosmossdk.io/errors"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Settlement module sentinel errors
var (
	ErrInvalidAddress   = errors.Register(ModuleName, 2, "invalid address")
	ErrInvalidRecipient = errors.Register(ModuleName, 3, "invalid recipient")
	ErrInvalidAmount    = errors.Register(ModuleName, 4, "invalid amount")
	ErrQueryUnsupported = errors.Register(ModuleName, 5, "exchange engine does not support this query")
)

// ErrUnsettledFunds is raised when an operation would end with funds neither
// deposited nor handed to the engine.
var ErrUnsettledFunds = sharedtypes.ErrUnsettledFunds
