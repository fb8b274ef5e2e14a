package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// CreatePool registers an empty pool for key. The key must be in canonical
// order; registering an existing key fails with ErrPoolAlreadyExists.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, key sharedtypes.PoolKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if k.HasPool(ctx, key) {
		return types.ErrPoolAlreadyExists.Wrapf("pool %s", key)
	}

	if err := k.SetPool(ctx, types.NewPool(key)); err != nil {
		return err
	}
	k.setPoolCount(ctx, k.GetPoolCount(ctx)+1)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPool, key.String()),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		),
	)
	incrCounter("pool_created", key)
	k.Logger(ctx).Info("pool registered", "pool", key.String(), "creator", creator.String())
	return nil
}

// HasPool reports whether key has been registered.
func (k Keeper) HasPool(ctx context.Context, key sharedtypes.PoolKey) bool {
	return k.getStore(ctx).Has(types.PoolStoreKey(key))
}

// GetPool returns the pool registered under key.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, key sharedtypes.PoolKey) (types.Pool, error) {
	bz := k.getStore(ctx).Get(types.PoolStoreKey(key))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %s", key)
	}
	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal %s: %w", key, err)
	}
	return pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal %s: %w", pool.Key, err)
	}
	k.getStore(ctx).Set(types.PoolStoreKey(pool.Key), bz)
	return nil
}

// GetPoolCount returns the number of registered pools.
func (k Keeper) GetPoolCount(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setPoolCount(ctx context.Context, count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.getStore(ctx).Set(types.PoolCountKey, bz)
}

// IteratePools iterates over all pools in store order
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal pool: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns every registered pool.
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// resolvePool finds the pool trading from/to on curve, whichever way round it
// was registered.
func (k Keeper) resolvePool(ctx context.Context, curve sharedtypes.Curve, from, to sharedtypes.AssetID) (types.Pool, error) {
	if from == to {
		return types.Pool{}, sharedtypes.ErrIdenticalAssets.Wrapf("cannot swap %s for itself", from)
	}
	key, _ := sharedtypes.CanonicalPoolKey(from, to, curve)
	if err := key.Validate(); err != nil {
		return types.Pool{}, err
	}
	return k.GetPool(ctx, key)
}
