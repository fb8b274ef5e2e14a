package types

import (
	"cosmossdk.io/math"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// MinimumLiquidity is the number of LP units locked forever by the first deposit.
const MinimumLiquidity = 1000

// Pool is the engine's state for one pool key.
type Pool struct {
	Key      sharedtypes.PoolKey `json:"key"`
	ReserveX math.Int            `json:"reserve_x"`
	ReserveY math.Int            `json:"reserve_y"`
	LPSupply math.Int            `json:"lp_supply"`
}

// NewPool returns an empty pool for key.
func NewPool(key sharedtypes.PoolKey) Pool {
	return Pool{
		Key:      key,
		ReserveX: math.ZeroInt(),
		ReserveY: math.ZeroInt(),
		LPSupply: math.ZeroInt(),
	}
}

// IsEmpty reports whether the pool has never been seeded.
func (p Pool) IsEmpty() bool {
	return p.LPSupply.IsZero()
}

// Validate checks the key and that no amount is negative.
func (p Pool) Validate() error {
	if err := p.Key.Validate(); err != nil {
		return err
	}
	for name, v := range map[string]math.Int{"reserve_x": p.ReserveX, "reserve_y": p.ReserveY, "lp_supply": p.LPSupply} {
		if v.IsNil() || v.IsNegative() {
			return ErrInvariantViolation.Wrapf("pool %s: %s is negative", p.Key, name)
		}
	}
	if p.LPSupply.IsZero() != (p.ReserveX.IsZero() && p.ReserveY.IsZero()) {
		return ErrInvariantViolation.Wrapf("pool %s: lp supply %s inconsistent with reserves", p.Key, p.LPSupply)
	}
	return nil
}

// Reserves returns (reserveIn, reserveOut) for a trade selling asset in.
func (p Pool) Reserves(in sharedtypes.AssetID) (math.Int, math.Int, error) {
	switch in {
	case p.Key.X:
		return p.ReserveX, p.ReserveY, nil
	case p.Key.Y:
		return p.ReserveY, p.ReserveX, nil
	default:
		return math.Int{}, math.Int{}, ErrAssetNotInPool.Wrapf("%s not in pool %s", in, p.Key)
	}
}
