package types

import (
	"cosmossdk.io/errors"
)

// Codespace for errors raised by the shared asset model.
const Codespace = "shared"

// Shared asset model sentinel errors
var (
	ErrInvalidAsset      = errors.Register(Codespace, 2, "invalid asset id")
	ErrInvalidCurve      = errors.Register(Codespace, 3, "invalid curve")
	ErrInvalidAssetOrder = errors.Register(Codespace, 4, "assets are not in canonical order")
	ErrIdenticalAssets   = errors.Register(Codespace, 5, "pool assets must differ")
	ErrFundsConsumed     = errors.Register(Codespace, 6, "funds already consumed")
	ErrAssetMismatch     = errors.Register(Codespace, 7, "funds asset mismatch")
	ErrInvalidAmount     = errors.Register(Codespace, 8, "invalid amount")
	ErrInsufficientFunds = errors.Register(Codespace, 9, "funds bundle too small")
)

// ErrUnsettledFunds is raised when a scope closes with a live funds bundle.
var ErrUnsettledFunds = errors.Register(Codespace, 10, "funds left unsettled")
