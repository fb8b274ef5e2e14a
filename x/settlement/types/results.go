package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LiquidityAdded reports what an add-liquidity operation moved.
type LiquidityAdded struct {
	// AmountX and AmountY are what the pool kept; the rest was returned.
	AmountX  math.Int `json:"amount_x"`
	AmountY  math.Int `json:"amount_y"`
	LPMinted math.Int `json:"lp_minted"`
}

// LiquidityRemoved reports what a remove-liquidity operation paid out.
type LiquidityRemoved struct {
	LPBurned math.Int `json:"lp_burned"`
	AmountX  math.Int `json:"amount_x"`
	AmountY  math.Int `json:"amount_y"`
}

// SwapSettled reports what a swap moved.
type SwapSettled struct {
	// AmountIn is what the pool consumed; Remainder went back to the initiator.
	AmountIn  math.Int       `json:"amount_in"`
	AmountOut math.Int       `json:"amount_out"`
	Remainder math.Int       `json:"remainder"`
	Recipient sdk.AccAddress `json:"recipient"`
}
