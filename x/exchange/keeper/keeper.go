package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/exchange/types"
)

// Keeper is the reference exchange engine. Pool state lives in the module
// store so it commits or reverts together with custody.
type Keeper struct {
	storeService store.KVStoreService
}

// NewKeeper creates a new exchange Keeper instance
func NewKeeper(storeService store.KVStoreService) Keeper {
	return Keeper{storeService: storeService}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	return runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
}
