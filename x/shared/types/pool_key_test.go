package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawswap/x/shared/types"
)

func TestPoolKey_Validate(t *testing.T) {
	tests := []struct {
		name string
		key  types.PoolKey
		err  error
	}{
		{"sorted uncorrelated", types.NewPoolKey("BTC", "USDT", types.CurveUncorrelated), nil},
		{"sorted stable", types.NewPoolKey("USDC", "USDT", types.CurveStable), nil},
		{"unsorted", types.NewPoolKey("USDT", "BTC", types.CurveUncorrelated), types.ErrInvalidAssetOrder},
		{"identical", types.NewPoolKey("BTC", "BTC", types.CurveUncorrelated), types.ErrIdenticalAssets},
		{"bad curve", types.NewPoolKey("BTC", "USDT", types.CurveUnspecified), types.ErrInvalidCurve},
		{"bad asset", types.NewPoolKey("B", "USDT", types.CurveStable), types.ErrInvalidAsset},
		{"two character tickers", types.NewPoolKey("ARB", "OP", types.CurveUncorrelated), nil},
		{"lp id too long", types.NewPoolKey(types.AssetID("a"+strings.Repeat("x", 59)), types.AssetID("b"+strings.Repeat("y", 59)), types.CurveUncorrelated), types.ErrInvalidAsset},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.key.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestAssetID_Validate(t *testing.T) {
	valid := []types.AssetID{"OP", "BTC", "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2", "lp/BTC/USDT/stable", types.AssetID("a" + strings.Repeat("b", 127))}
	for _, a := range valid {
		require.NoError(t, a.Validate(), a)
	}

	invalid := []types.AssetID{"", "X", "1BTC", "BT C", "BTC!", types.AssetID("a" + strings.Repeat("b", 128))}
	for _, a := range invalid {
		require.ErrorIs(t, a.Validate(), types.ErrInvalidAsset, a)
	}
}

func TestPoolKey_Identity(t *testing.T) {
	a := types.NewPoolKey("BTC", "USDT", types.CurveUncorrelated)
	b := types.NewPoolKey("BTC", "USDT", types.CurveUncorrelated)
	c := types.NewPoolKey("BTC", "USDT", types.CurveStable)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, a.Bytes(), b.Bytes())
	require.NotEqual(t, a.Bytes(), c.Bytes())
	require.NotEqual(t, a.LPAsset(), c.LPAsset())
	require.Equal(t, types.AssetID("lp/BTC/USDT/uncorrelated"), a.LPAsset())
	require.NoError(t, a.LPAsset().Validate())
}

func TestCanonicalPoolKey(t *testing.T) {
	key, xIn := types.CanonicalPoolKey("USDT", "BTC", types.CurveStable)
	require.False(t, xIn)
	require.Equal(t, types.NewPoolKey("BTC", "USDT", types.CurveStable), key)

	key, xIn = types.CanonicalPoolKey("BTC", "USDT", types.CurveStable)
	require.True(t, xIn)
	require.Equal(t, types.AssetID("BTC"), key.X)
}

func TestCurve_TextRoundTrip(t *testing.T) {
	bz, err := json.Marshal(types.NewPoolKey("BTC", "USDT", types.CurveStable))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":"BTC","y":"USDT","curve":"stable"}`, string(bz))

	var key types.PoolKey
	require.NoError(t, json.Unmarshal(bz, &key))
	require.Equal(t, types.CurveStable, key.Curve)

	_, err = types.ParseCurve("weighted")
	require.ErrorIs(t, err, types.ErrInvalidCurve)
}
