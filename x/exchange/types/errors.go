package types

import (
	"cosmossdk.io/errors"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Exchange engine sentinel errors
var (
	ErrPoolAlreadyExists            = errors.Register(ModuleName, 2, "pool already exists")
	ErrPoolNotFound                 = errors.Register(ModuleName, 3, "pool not found")
	ErrSlippageExceeded             = errors.Register(ModuleName, 4, "slippage exceeded")
	ErrInsufficientInputAmount      = errors.Register(ModuleName, 5, "insufficient input amount")
	ErrIncorrectSwapAmount          = errors.Register(ModuleName, 6, "incorrect swap amount")
	ErrInsufficientInitialLiquidity = errors.Register(ModuleName, 7, "insufficient initial liquidity")
	ErrInsufficientLiquidity        = errors.Register(ModuleName, 8, "insufficient liquidity")
	ErrInvalidAmount                = errors.Register(ModuleName, 9, "invalid amount")
	ErrAssetNotInPool               = errors.Register(ModuleName, 10, "asset not in pool")
	ErrInvalidParams                = errors.Register(ModuleName, 11, "invalid params")
	ErrInvariantViolation           = errors.Register(ModuleName, 12, "curve invariant violated")
	ErrOverflow                     = errors.Register(ModuleName, 13, "arithmetic overflow")
	ErrInvalidGenesis               = errors.Register(ModuleName, 14, "invalid genesis state")
)

// ErrInvalidAssetOrder is raised when a pool key is not in canonical order.
var ErrInvalidAssetOrder = sharedtypes.ErrInvalidAssetOrder
