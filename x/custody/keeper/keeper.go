package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/custody/types"
)

// Keeper is the store-backed custody ledger. Balances live in the module
// store, so every withdrawal and deposit made inside a cached context is
// reverted together with it.
type Keeper struct {
	storeService store.KVStoreService
}

// NewKeeper creates a new custody Keeper instance
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

// GenesisHeight returns the block height custody genesis ran at. ok is false
// on a store that was never initialized.
func (k Keeper) GenesisHeight(ctx context.Context) (height int64, ok bool) {
	bz := k.getStore(ctx).Get(types.GenesisHeightKey)
	if bz == nil {
		return 0, false
	}
	return int64(sdk.BigEndianToUint64(bz)), true
}

func (k Keeper) setGenesisHeight(ctx context.Context) {
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	k.getStore(ctx).Set(types.GenesisHeightKey, sdk.Uint64ToBigEndian(uint64(height)))
}
