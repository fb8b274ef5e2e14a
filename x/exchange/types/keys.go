package types

import (
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "exchange"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix = []byte{0x01} // prefix for pool state by pool key
	PoolCountKey  = []byte{0x02} // key for the number of registered pools
	ParamsKey     = []byte{0x03} // key for module params
)

// PoolStoreKey returns the store key for a pool.
func PoolStoreKey(key sharedtypes.PoolKey) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), key.Bytes()...)
}
