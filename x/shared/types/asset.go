package types

import (
	"regexp"
)

// MaxAssetIDLength bounds asset ids, LP credential ids included.
const MaxAssetIDLength = 128

// AssetID identifies a fungible asset class. The syntax is that of bank coin
// denominations with a two character minimum instead of three, so tickers
// such as "OP" are valid. Ids routed through x/bank must also pass
// sdk.ValidateDenom.
type AssetID string

var assetIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9/:._-]{1,127}$`)

// String implements fmt.Stringer.
func (a AssetID) String() string {
	return string(a)
}

// Validate checks the asset id syntax.
func (a AssetID) Validate() error {
	if !assetIDRegex.MatchString(string(a)) {
		return ErrInvalidAsset.Wrapf("%q does not match %s", string(a), assetIDRegex)
	}
	return nil
}

// IsSorted reports whether x precedes y in canonical pool order.
func IsSorted(x, y AssetID) bool {
	return x < y
}
