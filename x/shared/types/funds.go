package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// noCopy makes `go vet` flag Funds values copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Funds is an in-flight bundle of a single asset held in exclusive custody.
//
// A bundle is created by a custody withdrawal or returned by the exchange
// engine, and must be consumed exactly once: deposited to an account, passed
// into an engine call, merged into another bundle, or destroyed when empty.
// Funds are only handled through pointers; every accessor on a consumed bundle
// fails with ErrFundsConsumed.
type Funds struct {
	_ noCopy

	asset    AssetID
	amount   math.Int
	consumed bool
	scope    *Scope
}

// NewFunds creates a bundle. Only custody adapters and exchange engines mint
// bundles; everyone else receives them.
func NewFunds(asset AssetID, amount math.Int) (*Funds, error) {
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if amount.IsNil() || amount.IsNegative() {
		return nil, ErrInvalidAmount.Wrapf("funds amount %s must be non-negative", amount)
	}
	return &Funds{asset: asset, amount: amount}, nil
}

// ZeroFunds returns an empty bundle of asset.
func ZeroFunds(asset AssetID) *Funds {
	return &Funds{asset: asset, amount: math.ZeroInt()}
}

// Asset returns the bundle's asset.
func (f *Funds) Asset() AssetID {
	return f.asset
}

// Amount returns the amount held. A consumed bundle holds nothing.
func (f *Funds) Amount() math.Int {
	if f.consumed {
		return math.ZeroInt()
	}
	return f.amount
}

// IsZero reports whether the bundle holds nothing.
func (f *Funds) IsZero() bool {
	return f.Amount().IsZero()
}

// Consumed reports whether the bundle has been consumed.
func (f *Funds) Consumed() bool {
	return f.consumed
}

// Consume takes the whole value out of the bundle and retires it.
func (f *Funds) Consume() (math.Int, error) {
	if f == nil {
		return math.ZeroInt(), ErrFundsConsumed.Wrap("nil funds")
	}
	if f.consumed {
		return math.ZeroInt(), ErrFundsConsumed.Wrapf("%s already consumed", f.asset)
	}
	f.consumed = true
	return f.amount, nil
}

// Split moves amount out of f into a new bundle of the same asset.
// f keeps the rest and the new bundle joins f's scope.
func (f *Funds) Split(amount math.Int) (*Funds, error) {
	if f.consumed {
		return nil, ErrFundsConsumed.Wrapf("cannot split consumed %s", f.asset)
	}
	if amount.IsNil() || amount.IsNegative() {
		return nil, ErrInvalidAmount.Wrapf("split amount %s must be non-negative", amount)
	}
	if amount.GT(f.amount) {
		return nil, ErrInsufficientFunds.Wrapf("cannot split %s from %s %s", amount, f.amount, f.asset)
	}
	f.amount = f.amount.Sub(amount)
	child := &Funds{asset: f.asset, amount: amount}
	if f.scope != nil {
		f.scope.Track(child)
	}
	return child, nil
}

// Merge consumes other and adds its value to f.
func (f *Funds) Merge(other *Funds) error {
	if f.consumed {
		return ErrFundsConsumed.Wrapf("cannot merge into consumed %s", f.asset)
	}
	if other.asset != f.asset {
		return ErrAssetMismatch.Wrapf("cannot merge %s into %s", other.asset, f.asset)
	}
	amount, err := other.Consume()
	if err != nil {
		return err
	}
	f.amount = f.amount.Add(amount)
	return nil
}

// DestroyZero retires an empty bundle.
func (f *Funds) DestroyZero() error {
	if f.consumed {
		return ErrFundsConsumed.Wrapf("%s already consumed", f.asset)
	}
	if !f.amount.IsZero() {
		return ErrInvalidAmount.Wrapf("cannot destroy non-empty bundle of %s %s", f.amount, f.asset)
	}
	f.consumed = true
	return nil
}

// String implements fmt.Stringer.
func (f *Funds) String() string {
	if f.consumed {
		return fmt.Sprintf("%s(consumed)", f.asset)
	}
	return fmt.Sprintf("%s%s", f.amount, f.asset)
}

// Scope records every bundle that enters one unit of work so that the unit
// can prove, before it commits, that nothing was dropped.
type Scope struct {
	bundles []*Funds
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Track adds bundles to the scope. Nil bundles are ignored and a bundle is
// recorded once.
func (s *Scope) Track(funds ...*Funds) {
	for _, f := range funds {
		if f == nil || f.scope == s {
			continue
		}
		f.scope = s
		s.bundles = append(s.bundles, f)
	}
}

// Unsettled returns the tracked bundles that were never consumed.
func (s *Scope) Unsettled() []*Funds {
	var live []*Funds
	for _, f := range s.bundles {
		if !f.consumed {
			live = append(live, f)
		}
	}
	return live
}

// Close fails with ErrUnsettledFunds if any tracked bundle is still live.
func (s *Scope) Close() error {
	live := s.Unsettled()
	if len(live) == 0 {
		return nil
	}
	parts := make([]string, len(live))
	for i, f := range live {
		parts[i] = f.String()
	}
	return ErrUnsettledFunds.Wrapf("%d bundle(s) live: %s", len(live), strings.Join(parts, ", "))
}
