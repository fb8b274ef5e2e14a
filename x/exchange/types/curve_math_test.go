package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

func TestAmountOut_Uncorrelated(t *testing.T) {
	tests := []struct {
		name       string
		amountIn   int64
		reserveIn  int64
		reserveOut int64
		want       int64
	}{
		{"btc into usdt", 10, 101, 10100, 907},
		{"balanced pool", 1000, 1_000_000, 1_000_000, 996},
		{"tiny trade rounds down", 1, 1_000_000, 1_000_000, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := types.AmountOut(
				sharedtypes.CurveUncorrelated, types.DefaultUncorrelatedFeeBps,
				math.NewInt(tc.amountIn), math.NewInt(tc.reserveIn), math.NewInt(tc.reserveOut),
			)
			if tc.want == 0 {
				require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
				return
			}
			require.NoError(t, err)
			require.Equal(t, math.NewInt(tc.want), out)
		})
	}
}

func TestAmountIn_Uncorrelated(t *testing.T) {
	in, err := types.AmountIn(
		sharedtypes.CurveUncorrelated, types.DefaultUncorrelatedFeeBps,
		math.NewInt(700), math.NewInt(101), math.NewInt(10100),
	)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(8), in)

	// paying the quoted input must buy at least the requested output
	out, err := types.AmountOut(
		sharedtypes.CurveUncorrelated, types.DefaultUncorrelatedFeeBps,
		in, math.NewInt(101), math.NewInt(10100),
	)
	require.NoError(t, err)
	require.True(t, out.GTE(math.NewInt(700)))
}

func TestAmountIn_RejectsDrainingTheReserve(t *testing.T) {
	_, err := types.AmountIn(
		sharedtypes.CurveUncorrelated, types.DefaultUncorrelatedFeeBps,
		math.NewInt(10100), math.NewInt(101), math.NewInt(10100),
	)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestInvariantHolds_Uncorrelated(t *testing.T) {
	rx, ry := math.NewInt(101), math.NewInt(10100)
	fee := uint32(types.DefaultUncorrelatedFeeBps)

	// 10 in, 907 out is what the curve pays
	require.True(t, types.InvariantHolds(sharedtypes.CurveUncorrelated, fee,
		rx, ry, math.NewInt(111), math.NewInt(10100-907), math.NewInt(10), math.ZeroInt()))

	// 10 in, 1100 out overdraws the pool
	require.False(t, types.InvariantHolds(sharedtypes.CurveUncorrelated, fee,
		rx, ry, math.NewInt(111), math.NewInt(10100-1100), math.NewInt(10), math.ZeroInt()))
}

func TestStableCurve(t *testing.T) {
	reserve := math.NewInt(1_000_000)
	fee := uint32(types.DefaultStableFeeBps)

	out, err := types.AmountOut(sharedtypes.CurveStable, fee, math.NewInt(1000), reserve, reserve)
	require.NoError(t, err)
	require.True(t, out.GTE(math.NewInt(990)), "stable pool should trade close to par, got %s", out)
	require.True(t, out.LT(math.NewInt(1000)), "output %s must not exceed input", out)

	require.True(t, types.InvariantHolds(sharedtypes.CurveStable, fee,
		reserve, reserve, reserve.AddRaw(1000), reserve.Sub(out), math.NewInt(1000), math.ZeroInt()))

	// stable pricing beats the constant product near par
	cp, err := types.AmountOut(sharedtypes.CurveUncorrelated, fee, math.NewInt(1000), reserve, reserve)
	require.NoError(t, err)
	require.True(t, out.GT(cp))

	in, err := types.AmountIn(sharedtypes.CurveStable, fee, out, reserve, reserve)
	require.NoError(t, err)
	require.True(t, in.LTE(math.NewInt(1002)), "buying back %s should cost about 1000, got %s", out, in)
	require.True(t, in.GTE(out))
}

func TestUnsupportedCurve(t *testing.T) {
	_, err := types.AmountOut(sharedtypes.CurveUnspecified, 0, math.NewInt(1), math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, sharedtypes.ErrInvalidCurve)

	require.False(t, types.InvariantHolds(sharedtypes.CurveUnspecified, 0,
		math.NewInt(1), math.NewInt(1), math.NewInt(1), math.NewInt(1), math.ZeroInt(), math.ZeroInt()))
}

func TestInitialLiquidity(t *testing.T) {
	require.Equal(t, math.NewInt(1010), types.InitialLiquidity(math.NewInt(101), math.NewInt(10100)))
	require.Equal(t, math.NewInt(1000), types.InitialLiquidity(math.NewInt(1000), math.NewInt(1000)))
	require.Equal(t, math.NewInt(31), types.InitialLiquidity(math.NewInt(1000), math.NewInt(1)))
}

func TestParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, uint32(30), params.FeeBps(sharedtypes.CurveUncorrelated))
	require.Equal(t, uint32(4), params.FeeBps(sharedtypes.CurveStable))

	params.StableFeeBps = types.MaxFeeBps + 1
	require.ErrorIs(t, params.Validate(), types.ErrInvalidParams)
}
