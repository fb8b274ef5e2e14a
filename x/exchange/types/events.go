package types

// Exchange engine event types
const (
	EventTypePoolCreated      = "exchange_pool_created"
	EventTypeLiquidityAdded   = "exchange_liquidity_added"
	EventTypeLiquidityRemoved = "exchange_liquidity_removed"
	EventTypeSwap             = "exchange_swap"

	AttributeKeyPool      = "pool"
	AttributeKeyCreator   = "creator"
	AttributeKeyKind      = "kind"
	AttributeKeyAssetIn   = "asset_in"
	AttributeKeyAssetOut  = "asset_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountX   = "amount_x"
	AttributeKeyAmountY   = "amount_y"
	AttributeKeyLPAmount  = "lp_amount"
)

// Swap kinds
const (
	SwapKindExactInput  = "exact_input"
	SwapKindExactOutput = "exact_output"
	SwapKindUnchecked   = "unchecked"
)
