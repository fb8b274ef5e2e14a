package types

const (
	// ModuleName defines the module name
	ModuleName = "settlement"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Operation names, used for events, metrics and spans.
const (
	OpRegisterPool                = "register_pool"
	OpRegisterPoolAndAddLiquidity = "register_pool_and_add_liquidity"
	OpAddLiquidity                = "add_liquidity"
	OpRemoveLiquidity             = "remove_liquidity"
	OpSwap                        = "swap"
	OpSwapInto                    = "swap_into"
	OpSwapUnchecked               = "swap_unchecked"
)
