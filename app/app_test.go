package app

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	custodytypes "github.com/paw-chain/pawswap/x/custody/types"
	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	settlementtypes "github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	btc  = sharedtypes.AssetID("btc")
	usdt = sharedtypes.AssetID("usdt")
)

var (
	provider = sdk.AccAddress([]byte("provider____________"))
	trader   = sdk.AccAddress([]byte("trader______________"))
)

func fundedGenesis() GenesisState {
	custody := custodytypes.GenesisState{Balances: []custodytypes.Balance{
		{Address: provider.String(), Asset: btc, Amount: math.NewInt(1_000_000)},
		{Address: provider.String(), Asset: usdt, Amount: math.NewInt(1_000_000)},
		{Address: trader.String(), Asset: btc, Amount: math.NewInt(5_000)},
	}}
	return NewGenesisState(custody, *exchangetypes.DefaultGenesis())
}

func seedAndSwap(t *testing.T, app *PawSwapApp) {
	t.Helper()
	ctx := app.NewContext()
	_, err := app.MsgServer.RegisterPoolAndAddLiquidity(ctx, &settlementtypes.MsgRegisterPoolAndAddLiquidity{
		Initiator: provider.String(),
		X:         btc,
		Y:         usdt,
		Curve:     sharedtypes.CurveUncorrelated,
		AmountX:   math.NewInt(1_000_000),
		MinX:      math.ZeroInt(),
		AmountY:   math.NewInt(1_000_000),
		MinY:      math.ZeroInt(),
	})
	require.NoError(t, err)

	res, err := app.MsgServer.Swap(ctx, &settlementtypes.MsgSwap{
		Initiator:  trader.String(),
		From:       btc,
		To:         usdt,
		Curve:      sharedtypes.CurveUncorrelated,
		CoinVal:    math.NewInt(1_000),
		CoinOutMin: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(996), res.AmountOut)
	app.Commit()
}

func TestInitChainAndCommit(t *testing.T) {
	app, err := New(log.NewNopLogger(), dbm.NewMemDB())
	require.NoError(t, err)
	require.Equal(t, int64(0), app.LastBlockHeight())
	require.True(t, telemetry.IsTelemetryEnabled())

	require.NoError(t, app.InitChain(fundedGenesis()))
	require.Equal(t, int64(1), app.LastBlockHeight())

	seedAndSwap(t, app)
	require.Equal(t, int64(2), app.LastBlockHeight())

	ctx := app.NewContext()
	require.Equal(t, math.NewInt(4_000), app.CustodyKeeper.GetBalance(ctx, trader, btc))
	require.Equal(t, math.NewInt(996), app.CustodyKeeper.GetBalance(ctx, trader, usdt))

	err = app.InitChain(fundedGenesis())
	require.ErrorContains(t, err, "already initialized")
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	home := t.TempDir()

	app, err := Open(log.NewNopLogger(), home, dbm.GoLevelDBBackend)
	require.NoError(t, err)
	require.NoError(t, app.InitChain(fundedGenesis()))
	seedAndSwap(t, app)
	require.NoError(t, app.Close())

	app, err = Open(log.NewNopLogger(), home, dbm.GoLevelDBBackend)
	require.NoError(t, err)
	defer app.Close()

	require.Equal(t, int64(2), app.LastBlockHeight())
	ctx := app.NewContext()
	pool, err := app.ExchangeKeeper.GetPool(ctx, sharedtypes.NewPoolKey(btc, usdt, sharedtypes.CurveUncorrelated))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_001_000), pool.ReserveX)
	require.Equal(t, math.NewInt(999_004), pool.ReserveY)
}

func TestDefaultGenesisReopens(t *testing.T) {
	home := t.TempDir()

	app, err := Open(log.NewNopLogger(), home, dbm.GoLevelDBBackend)
	require.NoError(t, err)
	require.NoError(t, app.InitChain(NewDefaultGenesisState()))
	require.NoError(t, app.Close())

	app, err = Open(log.NewNopLogger(), home, dbm.GoLevelDBBackend)
	require.NoError(t, err)
	defer app.Close()

	require.Equal(t, int64(1), app.LastBlockHeight())
	ctx := app.NewContext()
	height, ok := app.CustodyKeeper.GenesisHeight(ctx)
	require.True(t, ok)
	require.Equal(t, int64(1), height)
	_, err = app.ExchangeKeeper.GetParams(ctx)
	require.NoError(t, err)
}

func TestExportGenesisRoundTrip(t *testing.T) {
	app, err := New(log.NewNopLogger(), dbm.NewMemDB())
	require.NoError(t, err)
	require.NoError(t, app.InitChain(fundedGenesis()))
	seedAndSwap(t, app)

	exported, err := app.ExportGenesis()
	require.NoError(t, err)
	bz, err := json.Marshal(exported)
	require.NoError(t, err)

	var decoded GenesisState
	require.NoError(t, json.Unmarshal(bz, &decoded))
	custody, exchange, err := decoded.Modules()
	require.NoError(t, err)
	require.NoError(t, custody.Validate())
	require.NoError(t, exchange.Validate())
	require.Len(t, exchange.Pools, 1)

	other, err := New(log.NewNopLogger(), dbm.NewMemDB())
	require.NoError(t, err)
	require.NoError(t, other.InitChain(decoded))
	ctx := other.NewContext()
	require.Equal(t, math.NewInt(996), other.CustodyKeeper.GetBalance(ctx, trader, usdt))
	pool := mustPool(t, other, ctx)
	require.Equal(t, exchange.Pools[0].Key, pool.Key)
	require.Equal(t, exchange.Pools[0].ReserveX.String(), pool.ReserveX.String())
	require.Equal(t, exchange.Pools[0].ReserveY.String(), pool.ReserveY.String())
	require.Equal(t, exchange.Pools[0].LPSupply.String(), pool.LPSupply.String())
}

func TestGenesisModulesDefaults(t *testing.T) {
	custody, exchange, err := GenesisState{}.Modules()
	require.NoError(t, err)
	require.Empty(t, custody.Balances)
	require.Equal(t, exchangetypes.DefaultParams(), exchange.Params)

	_, _, err = GenesisState{custodytypes.ModuleName: json.RawMessage(`{"balances":3}`)}.Modules()
	require.Error(t, err)
}

func mustPool(t *testing.T, app *PawSwapApp, ctx sdk.Context) exchangetypes.Pool {
	t.Helper()
	pool, err := app.ExchangeKeeper.GetPool(ctx, sharedtypes.NewPoolKey(btc, usdt, sharedtypes.CurveUncorrelated))
	require.NoError(t, err)
	return pool
}
