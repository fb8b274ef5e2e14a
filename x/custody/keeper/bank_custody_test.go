package keeper_test

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	"github.com/paw-chain/pawswap/x/custody/keeper"
	"github.com/paw-chain/pawswap/x/custody/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// mockBank keeps coin balances per account and per module account.
type mockBank struct {
	accounts map[string]sdk.Coins
	modules  map[string]sdk.Coins
	minted   sdk.Coins
	burned   sdk.Coins
}

func newMockBank() *mockBank {
	return &mockBank{accounts: map[string]sdk.Coins{}, modules: map[string]sdk.Coins{}}
}

func (b *mockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.accounts[addr.String()].AmountOf(denom))
}

func (b *mockBank) SendCoinsFromAccountToModule(_ context.Context, sender sdk.AccAddress, module string, amt sdk.Coins) error {
	balance, negative := b.accounts[sender.String()].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s", amt)
	}
	b.accounts[sender.String()] = balance
	b.modules[module] = b.modules[module].Add(amt...)
	return nil
}

func (b *mockBank) SendCoinsFromModuleToAccount(_ context.Context, module string, recipient sdk.AccAddress, amt sdk.Coins) error {
	balance, negative := b.modules[module].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module funds: %s", amt)
	}
	b.modules[module] = balance
	b.accounts[recipient.String()] = b.accounts[recipient.String()].Add(amt...)
	return nil
}

func (b *mockBank) MintCoins(_ context.Context, module string, amt sdk.Coins) error {
	b.modules[module] = b.modules[module].Add(amt...)
	b.minted = b.minted.Add(amt...)
	return nil
}

func (b *mockBank) BurnCoins(_ context.Context, module string, amt sdk.Coins) error {
	balance, negative := b.modules[module].SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient module funds to burn: %s", amt)
	}
	b.modules[module] = balance
	b.burned = b.burned.Add(amt...)
	return nil
}

func TestBankCustody_RoundTrip(t *testing.T) {
	bank := newMockBank()
	custody := keeper.NewBankCustody(bank, bank, "")
	ctx := context.Background()

	alice := keepertest.TestAddr("alice")
	bob := keepertest.TestAddr("bob")
	bank.accounts[alice.String()] = sdk.NewCoins(sdk.NewInt64Coin(btc.String(), 50))

	funds, err := custody.Withdraw(ctx, alice, btc, math.NewInt(20))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(20), funds.Amount())
	require.Equal(t, int64(20), bank.modules[types.EscrowModuleName].AmountOf(btc.String()).Int64())
	require.Equal(t, int64(30), bank.accounts[alice.String()].AmountOf(btc.String()).Int64())

	require.NoError(t, custody.Deposit(ctx, bob, funds))
	require.True(t, funds.Consumed())
	require.True(t, bank.modules[types.EscrowModuleName].IsZero())
	require.Equal(t, int64(20), bank.accounts[bob.String()].AmountOf(btc.String()).Int64())
}

func TestBankCustody_InsufficientBalance(t *testing.T) {
	bank := newMockBank()
	custody := keeper.NewBankCustody(bank, nil, types.EscrowModuleName)
	alice := keepertest.TestAddr("alice")

	_, err := custody.Withdraw(context.Background(), alice, btc, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestBankCustody_RejectsNonBankDenoms(t *testing.T) {
	bank := newMockBank()
	custody := keeper.NewBankCustody(bank, nil, "")
	alice := keepertest.TestAddr("alice")
	op := sharedtypes.AssetID("OP")

	_, err := custody.Withdraw(context.Background(), alice, op, math.NewInt(1))
	require.ErrorIs(t, err, sharedtypes.ErrInvalidAsset)

	funds, err := sharedtypes.NewFunds(op, math.NewInt(1))
	require.NoError(t, err)
	require.ErrorIs(t, custody.Deposit(context.Background(), alice, funds), sharedtypes.ErrInvalidAsset)
	require.False(t, funds.Consumed())
	require.Empty(t, bank.accounts)
}

func TestBankCustody_ZeroDepositIsNoop(t *testing.T) {
	bank := newMockBank()
	custody := keeper.NewBankCustody(bank, nil, "")
	alice := keepertest.TestAddr("alice")

	zero := sharedtypes.ZeroFunds(usdt)
	require.NoError(t, custody.Deposit(context.Background(), alice, zero))
	require.True(t, zero.Consumed())
	require.Empty(t, bank.accounts)
}

func TestBankCustody_LPAssetsAreMintedAndBurned(t *testing.T) {
	bank := newMockBank()
	custody := keeper.NewBankCustody(bank, bank, "")
	ctx := context.Background()
	alice := keepertest.TestAddr("alice")

	lpAsset := sharedtypes.NewPoolKey(btc, usdt, sharedtypes.CurveUncorrelated).LPAsset()
	lp, err := sharedtypes.NewFunds(lpAsset, math.NewInt(10))
	require.NoError(t, err)

	require.NoError(t, custody.Deposit(ctx, alice, lp))
	require.Equal(t, int64(10), bank.minted.AmountOf(lpAsset.String()).Int64())
	require.Equal(t, int64(10), bank.accounts[alice.String()].AmountOf(lpAsset.String()).Int64())

	burned, err := custody.Withdraw(ctx, alice, lpAsset, math.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), burned.Amount())
	require.Equal(t, int64(4), bank.burned.AmountOf(lpAsset.String()).Int64())
	require.True(t, bank.modules[types.EscrowModuleName].IsZero())

	noMinter := keeper.NewBankCustody(bank, nil, "")
	lp2, err := sharedtypes.NewFunds(lpAsset, math.NewInt(1))
	require.NoError(t, err)
	require.ErrorIs(t, noMinter.Deposit(ctx, alice, lp2), types.ErrInvalidAmount)
}
