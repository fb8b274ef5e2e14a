package types

import (
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	// FeeScale is the denominator of every fee expressed in basis points.
	FeeScale = 10000

	// DefaultUncorrelatedFeeBps is the default fee of constant-product pools.
	DefaultUncorrelatedFeeBps = 30

	// DefaultStableFeeBps is the default fee of stable pools.
	DefaultStableFeeBps = 4

	// MaxFeeBps caps any configured fee.
	MaxFeeBps = 1000
)

// Params holds the engine's fee schedule.
type Params struct {
	UncorrelatedFeeBps uint32 `json:"uncorrelated_fee_bps" mapstructure:"uncorrelated_fee_bps"`
	StableFeeBps       uint32 `json:"stable_fee_bps" mapstructure:"stable_fee_bps"`
}

// DefaultParams returns the default fee schedule.
func DefaultParams() Params {
	return Params{
		UncorrelatedFeeBps: DefaultUncorrelatedFeeBps,
		StableFeeBps:       DefaultStableFeeBps,
	}
}

// Validate checks both fees are within (0, MaxFeeBps].
func (p Params) Validate() error {
	if p.UncorrelatedFeeBps == 0 || p.UncorrelatedFeeBps > MaxFeeBps {
		return ErrInvalidParams.Wrapf("uncorrelated fee %d bps out of range (0, %d]", p.UncorrelatedFeeBps, MaxFeeBps)
	}
	if p.StableFeeBps == 0 || p.StableFeeBps > MaxFeeBps {
		return ErrInvalidParams.Wrapf("stable fee %d bps out of range (0, %d]", p.StableFeeBps, MaxFeeBps)
	}
	return nil
}

// FeeBps returns the fee applied by pools on curve.
func (p Params) FeeBps(curve sharedtypes.Curve) uint32 {
	if curve == sharedtypes.CurveStable {
		return p.StableFeeBps
	}
	return p.UncorrelatedFeeBps
}
