package types

import (
	"fmt"
)

// LPAssetPrefix prefixes every LP credential asset id.
const LPAssetPrefix = "lp"

// PoolKey is the identity of a liquidity pool: an ordered asset pair plus a curve.
// Two keys address the same pool iff all three fields are equal.
type PoolKey struct {
	X     AssetID `json:"x"`
	Y     AssetID `json:"y"`
	Curve Curve   `json:"curve"`
}

// NewPoolKey builds a pool key without reordering the assets.
func NewPoolKey(x, y AssetID, curve Curve) PoolKey {
	return PoolKey{X: x, Y: y, Curve: curve}
}

// CanonicalPoolKey builds the key of the pool trading a and b on curve,
// sorting the pair. The second return value reports whether a is the pool's X side.
func CanonicalPoolKey(a, b AssetID, curve Curve) (PoolKey, bool) {
	if IsSorted(a, b) {
		return NewPoolKey(a, b, curve), true
	}
	return NewPoolKey(b, a, curve), false
}

// Validate checks both assets, the curve, the canonical order and that the
// derived LP credential id is itself a valid asset id.
func (k PoolKey) Validate() error {
	if err := k.X.Validate(); err != nil {
		return err
	}
	if err := k.Y.Validate(); err != nil {
		return err
	}
	if err := k.Curve.Validate(); err != nil {
		return err
	}
	if k.X == k.Y {
		return ErrIdenticalAssets.Wrapf("%s/%s", k.X, k.Y)
	}
	if !IsSorted(k.X, k.Y) {
		return ErrInvalidAssetOrder.Wrapf("%s must sort before %s", k.X, k.Y)
	}
	if err := k.LPAsset().Validate(); err != nil {
		return ErrInvalidAsset.Wrapf("pool %s: lp id exceeds %d characters", k, MaxAssetIDLength)
	}
	return nil
}

// Contains reports whether asset is one side of the pool.
func (k PoolKey) Contains(asset AssetID) bool {
	return asset == k.X || asset == k.Y
}

// LPAsset returns the asset id of the pool's LP credential.
func (k PoolKey) LPAsset() AssetID {
	return AssetID(fmt.Sprintf("%s/%s/%s/%s", LPAssetPrefix, k.X, k.Y, k.Curve))
}

// Bytes returns the store key encoding: length-prefixed X, length-prefixed Y, curve byte.
func (k PoolKey) Bytes() []byte {
	bz := make([]byte, 0, len(k.X)+len(k.Y)+3)
	bz = append(bz, byte(len(k.X)))
	bz = append(bz, k.X...)
	bz = append(bz, byte(len(k.Y)))
	bz = append(bz, k.Y...)
	return append(bz, byte(k.Curve))
}

// String implements fmt.Stringer.
func (k PoolKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.X, k.Y, k.Curve)
}
