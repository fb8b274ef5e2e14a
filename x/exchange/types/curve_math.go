package types

import (
	"math/big"

	"cosmossdk.io/math"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// newtonMaxIterations bounds the stable-curve solver.
const newtonMaxIterations = 255

var (
	bigOne      = big.NewInt(1)
	bigThree    = big.NewInt(3)
	bigFeeScale = big.NewInt(FeeScale)
)

// AmountOut returns the output of selling amountIn against (reserveIn,
// reserveOut) on curve, fee included. The result always leaves the curve
// value, net of the fee, at or above where it started.
func AmountOut(curve sharedtypes.Curve, feeBps uint32, amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.ZeroInt(), ErrInvalidAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}

	in, rIn, rOut := amountIn.BigInt(), reserveIn.BigInt(), reserveOut.BigInt()
	fee := big.NewInt(int64(feeBps))

	var out *big.Int
	switch curve {
	case sharedtypes.CurveUncorrelated:
		// in*(S-fee)*rOut / (rIn*S + in*(S-fee))
		inAfterFee := new(big.Int).Mul(in, new(big.Int).Sub(bigFeeScale, fee))
		num := new(big.Int).Mul(inAfterFee, rOut)
		den := new(big.Int).Add(new(big.Int).Mul(rIn, bigFeeScale), inAfterFee)
		out = num.Quo(num, den)
	case sharedtypes.CurveStable:
		inAfterFee := new(big.Int).Sub(in, feeOf(in, fee))
		xy := stableValue(rIn, rOut)
		newIn := new(big.Int).Add(rIn, inAfterFee)
		y := solveStable(newIn, xy, rOut)
		out = new(big.Int).Sub(rOut, y)
		if out.Sign() < 0 {
			out.SetInt64(0)
		}
		// round in the pool's favour until the invariant holds
		for out.Sign() > 0 && stableValue(newIn, new(big.Int).Sub(rOut, out)).Cmp(xy) < 0 {
			out.Sub(out, bigOne)
		}
	default:
		return math.ZeroInt(), sharedtypes.ErrInvalidCurve.Wrapf("unsupported curve %s", curve)
	}

	if out.Sign() == 0 {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("output amount too small")
	}
	if out.Cmp(rOut) >= 0 {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", out, rOut)
	}
	return toInt(out)
}

// AmountIn returns the input needed to buy exactly amountOut from
// (reserveIn, reserveOut) on curve, fee included.
func AmountIn(curve sharedtypes.Curve, feeBps uint32, amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !amountOut.IsPositive() {
		return math.ZeroInt(), ErrInvalidAmount.Wrap("output amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}

	out, rIn, rOut := amountOut.BigInt(), reserveIn.BigInt(), reserveOut.BigInt()
	fee := big.NewInt(int64(feeBps))
	feeComplement := new(big.Int).Sub(bigFeeScale, fee)

	var in *big.Int
	switch curve {
	case sharedtypes.CurveUncorrelated:
		// rIn*out*S / ((rOut-out)*(S-fee)) + 1
		num := new(big.Int).Mul(new(big.Int).Mul(rIn, out), bigFeeScale)
		den := new(big.Int).Mul(new(big.Int).Sub(rOut, out), feeComplement)
		in = num.Quo(num, den)
		in.Add(in, bigOne)
	case sharedtypes.CurveStable:
		xy := stableValue(rIn, rOut)
		newOut := new(big.Int).Sub(rOut, out)
		x := solveStable(newOut, xy, rIn)
		for stableValue(x, newOut).Cmp(xy) < 0 {
			x.Add(x, bigOne)
		}
		inAfterFee := new(big.Int).Sub(x, rIn)
		if inAfterFee.Sign() <= 0 {
			inAfterFee.SetInt64(1)
		}
		// inAfterFee*S/(S-fee) + 1
		in = new(big.Int).Mul(inAfterFee, bigFeeScale)
		in.Quo(in, feeComplement)
		in.Add(in, bigOne)
	default:
		return math.ZeroInt(), sharedtypes.ErrInvalidCurve.Wrapf("unsupported curve %s", curve)
	}
	return toInt(in)
}

// InvariantHolds reports whether moving a pool from (rx, ry) to (nx, ny),
// having received inX and inY, keeps its curve value net of fees at or above
// the starting value.
func InvariantHolds(curve sharedtypes.Curve, feeBps uint32, rx, ry, nx, ny, inX, inY math.Int) bool {
	fee := big.NewInt(int64(feeBps))
	switch curve {
	case sharedtypes.CurveUncorrelated:
		// (nx*S - inX*fee) * (ny*S - inY*fee) >= rx*ry*S^2
		xAfter := new(big.Int).Sub(new(big.Int).Mul(nx.BigInt(), bigFeeScale), new(big.Int).Mul(inX.BigInt(), fee))
		yAfter := new(big.Int).Sub(new(big.Int).Mul(ny.BigInt(), bigFeeScale), new(big.Int).Mul(inY.BigInt(), fee))
		after := new(big.Int).Mul(xAfter, yAfter)
		before := new(big.Int).Mul(new(big.Int).Mul(rx.BigInt(), ry.BigInt()), new(big.Int).Mul(bigFeeScale, bigFeeScale))
		return after.Cmp(before) >= 0
	case sharedtypes.CurveStable:
		xAfter := new(big.Int).Sub(nx.BigInt(), feeOf(inX.BigInt(), fee))
		yAfter := new(big.Int).Sub(ny.BigInt(), feeOf(inY.BigInt(), fee))
		return stableValue(xAfter, yAfter).Cmp(stableValue(rx.BigInt(), ry.BigInt())) >= 0
	default:
		return false
	}
}

// InitialLiquidity returns floor(sqrt(x*y)), the LP supply created by the first deposit.
func InitialLiquidity(amountX, amountY math.Int) math.Int {
	product := new(big.Int).Mul(amountX.BigInt(), amountY.BigInt())
	return math.NewIntFromBigInt(new(big.Int).Sqrt(product))
}

// QuoteRatio converts amountX into the Y amount worth the same at the
// current reserve ratio: amountX*reserveY/reserveX.
func QuoteRatio(amountX, reserveX, reserveY math.Int) math.Int {
	num := new(big.Int).Mul(amountX.BigInt(), reserveY.BigInt())
	return math.NewIntFromBigInt(num.Quo(num, reserveX.BigInt()))
}

func feeOf(amount, feeBps *big.Int) *big.Int {
	f := new(big.Int).Mul(amount, feeBps)
	return f.Quo(f, bigFeeScale)
}

// stableValue returns x^3*y + x*y^3.
func stableValue(x, y *big.Int) *big.Int {
	xy := new(big.Int).Mul(x, y)
	sq := new(big.Int).Add(new(big.Int).Mul(x, x), new(big.Int).Mul(y, y))
	return xy.Mul(xy, sq)
}

// solveStable finds y such that stableValue(x0, y) ~= target by Newton's
// method, starting from y.
func solveStable(x0, target, y *big.Int) *big.Int {
	y = new(big.Int).Set(y)
	x0Cubed := new(big.Int).Exp(x0, bigThree, nil)
	for i := 0; i < newtonMaxIterations; i++ {
		k := stableValue(x0, y)
		// d/dy = 3*x0*y^2 + x0^3
		d := new(big.Int).Mul(bigThree, x0)
		d.Mul(d, new(big.Int).Mul(y, y))
		d.Add(d, x0Cubed)
		if d.Sign() == 0 {
			return y
		}

		var dy *big.Int
		if k.Cmp(target) < 0 {
			dy = new(big.Int).Sub(target, k)
			dy.Quo(dy, d)
			dy.Add(dy, bigOne)
			y.Add(y, dy)
		} else {
			dy = new(big.Int).Sub(k, target)
			dy.Quo(dy, d)
			y.Sub(y, dy)
		}
		if dy.Cmp(bigOne) <= 0 {
			return y
		}
	}
	return y
}

func toInt(v *big.Int) (math.Int, error) {
	if v.BitLen() > math.MaxBitLen {
		return math.ZeroInt(), ErrOverflow.Wrapf("%s exceeds %d bits", v, math.MaxBitLen)
	}
	return math.NewIntFromBigInt(v), nil
}
