package types

import (
	"cosmossdk.io/errors"
)

// Custody module sentinel errors
var (
	ErrInsufficientBalance = errors.Register(ModuleName, 2, "insufficient balance")
	ErrInvalidAccount      = errors.Register(ModuleName, 3, "invalid account")
	ErrInvalidAmount       = errors.Register(ModuleName, 4, "invalid amount")
	ErrCorruptBalance      = errors.Register(ModuleName, 5, "corrupt balance record")
)
