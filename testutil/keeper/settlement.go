package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/stretchr/testify/require"

	custodykeeper "github.com/paw-chain/pawswap/x/custody/keeper"
	custodytypes "github.com/paw-chain/pawswap/x/custody/types"
	exchangekeeper "github.com/paw-chain/pawswap/x/exchange/keeper"
	exchangetypes "github.com/paw-chain/pawswap/x/exchange/types"
	settlementkeeper "github.com/paw-chain/pawswap/x/settlement/keeper"
	settlementtypes "github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Fixture wires the store-backed custody ledger, the reference exchange
// engine and the settlement keeper over one in-memory multistore.
type Fixture struct {
	Ctx        sdk.Context
	Custody    custodykeeper.Keeper
	Exchange   exchangekeeper.Keeper
	Settlement settlementkeeper.Keeper
	MsgServer  settlementtypes.MsgServer
}

// NewContext mounts an IAVL store for every key over a fresh memdb and
// returns a context on top of it.
func NewContext(t testing.TB, keys ...*storetypes.KVStoreKey) sdk.Context {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
}

// CustodyKeeper creates a store-backed custody keeper.
func CustodyKeeper(t testing.TB) (custodykeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(custodytypes.StoreKey)
	ctx := NewContext(t, storeKey)
	return custodykeeper.NewKeeper(runtime.NewKVStoreService(storeKey)), ctx
}

// ExchangeKeeper creates a reference exchange engine with default params.
func ExchangeKeeper(t testing.TB) (exchangekeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(exchangetypes.StoreKey)
	ctx := NewContext(t, storeKey)
	k := exchangekeeper.NewKeeper(runtime.NewKVStoreService(storeKey))
	require.NoError(t, k.InitGenesis(ctx, *exchangetypes.DefaultGenesis()))
	return k, ctx
}

// SettlementKeepers creates the full settlement stack.
func SettlementKeepers(t testing.TB) *Fixture {
	custodyKey := storetypes.NewKVStoreKey(custodytypes.StoreKey)
	exchangeKey := storetypes.NewKVStoreKey(exchangetypes.StoreKey)
	ctx := NewContext(t, custodyKey, exchangeKey)

	custody := custodykeeper.NewKeeper(runtime.NewKVStoreService(custodyKey))
	exchange := exchangekeeper.NewKeeper(runtime.NewKVStoreService(exchangeKey))
	require.NoError(t, exchange.InitGenesis(ctx, *exchangetypes.DefaultGenesis()))

	settlement := settlementkeeper.NewKeeper(custody, exchange)
	return &Fixture{
		Ctx:        ctx,
		Custody:    custody,
		Exchange:   exchange,
		Settlement: settlement,
		MsgServer:  settlementkeeper.NewMsgServerImpl(settlement),
	}
}

// Fund mints amount of asset into addr's holding.
func (f *Fixture) Fund(t testing.TB, addr sdk.AccAddress, asset sharedtypes.AssetID, amount int64) {
	require.NoError(t, f.Custody.Mint(f.Ctx, addr, asset, math.NewInt(amount)))
}

// Balance returns addr's holding of asset.
func (f *Fixture) Balance(addr sdk.AccAddress, asset sharedtypes.AssetID) math.Int {
	return f.Custody.GetBalance(f.Ctx, addr, asset)
}

// SeedPool registers key and adds the given liquidity on behalf of a fresh
// provider account, returning that account.
func (f *Fixture) SeedPool(t testing.TB, key sharedtypes.PoolKey, amountX, amountY int64) sdk.AccAddress {
	provider := TestAddr("provider/" + key.String())
	f.Fund(t, provider, key.X, amountX)
	f.Fund(t, provider, key.Y, amountY)
	_, err := f.Settlement.RegisterPoolAndAddLiquidity(
		f.Ctx, provider, key,
		math.NewInt(amountX), math.ZeroInt(), math.NewInt(amountY), math.ZeroInt(),
	)
	require.NoError(t, err)
	return provider
}

// TestAddr derives a deterministic account address from name.
func TestAddr(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Module("pawswap-test", []byte(name))[:20])
}
