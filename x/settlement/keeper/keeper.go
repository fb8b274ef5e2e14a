package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/settlement/types"
)

// Keeper sequences custody withdrawals, one exchange engine call and the
// resulting deposits as a single all-or-nothing unit. It owns no state.
type Keeper struct {
	custody types.CustodyKeeper
	engine  types.ExchangeEngine
	metrics *SettlementMetrics
}

// NewKeeper creates a new settlement Keeper instance
func NewKeeper(custody types.CustodyKeeper, engine types.ExchangeEngine) Keeper {
	return Keeper{
		custody: custody,
		engine:  engine,
		metrics: NewSettlementMetrics(),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
