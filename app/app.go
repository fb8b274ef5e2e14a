package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	custodykeeper "github.com/paw-chain/pawswap/x/custody/keeper"
	custodytypes "github.com/paw-chain/pawswap/x/custody/types"
	exchangekeeper "github.com/paw-chain/pawswap/x/exchange/keeper"
	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	settlementkeeper "github.com/paw-chain/pawswap/x/settlement/keeper"
	settlementtypes "github.com/paw-chain/pawswap/x/settlement/types"
)

const (
	// Name is the application name, also used for the database directory.
	Name = "pawswap"
)

var (
	// DefaultNodeHome is the default home directory for the application daemon.
	DefaultNodeHome string
)

var (
	telemetryOnce sync.Once
	sdkMetrics    *telemetry.Metrics
	telemetryErr  error
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, ".pawswap")
}

// PawSwapApp wires custody, the exchange engine and settlement over one
// commit multistore. Writes land in the working state and are persisted by Commit.
type PawSwapApp struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey

	CustodyKeeper    custodykeeper.Keeper
	ExchangeKeeper   exchangekeeper.Keeper
	SettlementKeeper settlementkeeper.Keeper
	MsgServer        settlementtypes.MsgServer
}

// enableTelemetry starts the SDK metrics sink once per process. Its
// Prometheus sink joins the default registry, which accepts it only once.
func enableTelemetry() (*telemetry.Metrics, error) {
	telemetryOnce.Do(func() {
		sdkMetrics, telemetryErr = telemetry.New(telemetry.Config{
			ServiceName:             Name,
			Enabled:                 true,
			EnableHostname:          false,
			EnableHostnameLabel:     false,
			EnableServiceLabel:      false,
			PrometheusRetentionTime: 600,
			GlobalLabels:            [][]string{{"chain_id", Name}},
		})
	})
	return sdkMetrics, telemetryErr
}

// New mounts the module stores on db and loads the latest committed version.
// It also enables SDK telemetry, so engine counters reach the Prometheus registry.
func New(logger log.Logger, db dbm.DB) (*PawSwapApp, error) {
	if _, err := enableTelemetry(); err != nil {
		return nil, fmt.Errorf("failed to enable telemetry: %w", err)
	}

	keys := storetypes.NewKVStoreKeys(custodytypes.StoreKey, exchangetypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app := &PawSwapApp{
		logger: logger,
		db:     db,
		cms:    cms,
		keys:   keys,
	}
	app.CustodyKeeper = custodykeeper.NewKeeper(runtime.NewKVStoreService(keys[custodytypes.StoreKey]))
	app.ExchangeKeeper = exchangekeeper.NewKeeper(runtime.NewKVStoreService(keys[exchangetypes.StoreKey]))
	app.SettlementKeeper = settlementkeeper.NewKeeper(app.CustodyKeeper, app.ExchangeKeeper)
	app.MsgServer = settlementkeeper.NewMsgServerImpl(app.SettlementKeeper)
	return app, nil
}

// Open opens the application database under home with the given backend.
func Open(logger log.Logger, home string, backend dbm.BackendType) (*PawSwapApp, error) {
	db, err := dbm.NewDB(Name, backend, filepath.Join(home, "data"))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	app, err := New(logger, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// NewContext returns a context for the next block on top of the latest committed state.
func (app *PawSwapApp) NewContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: Name,
		Height:  app.LastBlockHeight() + 1,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// Commit persists everything written through contexts since the last commit.
func (app *PawSwapApp) Commit() storetypes.CommitID {
	id := app.cms.Commit()
	app.logger.Debug("committed state", "height", id.Version)
	return id
}

// LastBlockHeight returns the latest committed version.
func (app *PawSwapApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// Close releases the database.
func (app *PawSwapApp) Close() error {
	return app.db.Close()
}
