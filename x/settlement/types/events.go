package types

// Settlement event attributes. The event type is "settlement_" plus the
// operation name.
const (
	EventTypePrefix = "settlement_"

	AttributeKeyInitiator = "initiator"
	AttributeKeyRecipient = "recipient"
	AttributeKeyPool      = "pool"
	AttributeKeyCurve     = "curve"
	AttributeKeyAssetIn   = "asset_in"
	AttributeKeyAssetOut  = "asset_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyRemainder = "remainder"
	AttributeKeyAmountX   = "amount_x"
	AttributeKeyAmountY   = "amount_y"
	AttributeKeyLPAmount  = "lp_amount"
)

// EventType returns the event type emitted by a settled operation.
func EventType(op string) string {
	return EventTypePrefix + op
}
