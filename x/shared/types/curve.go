package types

import (
	"fmt"
	"strings"
)

// Curve selects the pricing curve variant used by a pool.
type Curve uint8

const (
	// CurveUnspecified is the zero value and never addresses a pool.
	CurveUnspecified Curve = iota
	// CurveUncorrelated prices with the constant product x*y.
	CurveUncorrelated
	// CurveStable prices with x^3*y + x*y^3, for assets expected to trade near parity.
	CurveStable
)

var curveNames = map[Curve]string{
	CurveUncorrelated: "uncorrelated",
	CurveStable:       "stable",
}

// String implements fmt.Stringer.
func (c Curve) String() string {
	if name, ok := curveNames[c]; ok {
		return name
	}
	return fmt.Sprintf("curve(%d)", uint8(c))
}

// Validate rejects unknown curve values.
func (c Curve) Validate() error {
	if _, ok := curveNames[c]; !ok {
		return ErrInvalidCurve.Wrapf("unknown curve %d", uint8(c))
	}
	return nil
}

// ParseCurve parses the textual curve name.
func ParseCurve(s string) (Curve, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range curveNames {
		if name == s {
			return c, nil
		}
	}
	return CurveUnspecified, ErrInvalidCurve.Wrapf("unknown curve %q", s)
}

// MarshalText implements encoding.TextMarshaler so curves read well in JSON genesis.
func (c Curve) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
