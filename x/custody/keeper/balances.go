package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/custody/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// Withdraw takes amount of asset out of owner's holding and returns it as a
// funds bundle. Fails with ErrInsufficientBalance if owner holds less.
func (k Keeper) Withdraw(ctx context.Context, owner sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) (*sharedtypes.Funds, error) {
	if owner.Empty() {
		return nil, types.ErrInvalidAccount.Wrap("owner address cannot be empty")
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	if amount.IsNil() || amount.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrapf("withdraw amount %s must be non-negative", amount)
	}

	balance, _, err := k.getBalance(ctx, owner, asset)
	if err != nil {
		return nil, err
	}
	if balance.LT(amount) {
		return nil, types.ErrInsufficientBalance.Wrapf(
			"%s holds %s %s, needs %s", owner, balance, asset, amount,
		)
	}

	funds, err := sharedtypes.NewFunds(asset, amount)
	if err != nil {
		return nil, err
	}
	if err := k.setBalance(ctx, owner, asset, balance.Sub(amount)); err != nil {
		return nil, err
	}
	if err := k.addSupply(ctx, asset, amount.Neg()); err != nil {
		return nil, err
	}
	return funds, nil
}

// Deposit consumes funds into account's holding, creating the holding record
// if the account has never held the asset. A zero bundle still creates it.
func (k Keeper) Deposit(ctx context.Context, account sdk.AccAddress, funds *sharedtypes.Funds) error {
	if account.Empty() {
		return types.ErrInvalidAccount.Wrap("deposit address cannot be empty")
	}
	if funds == nil {
		return sharedtypes.ErrFundsConsumed.Wrap("nil funds")
	}
	asset := funds.Asset()
	amount, err := funds.Consume()
	if err != nil {
		return err
	}

	balance, _, err := k.getBalance(ctx, account, asset)
	if err != nil {
		return err
	}
	if err := k.setBalance(ctx, account, asset, balance.Add(amount)); err != nil {
		return err
	}
	return k.addSupply(ctx, asset, amount)
}

// Mint credits account with newly issued units. It is reserved for genesis,
// faucets and tests; settlement never mints.
func (k Keeper) Mint(ctx context.Context, account sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) error {
	funds, err := sharedtypes.NewFunds(asset, amount)
	if err != nil {
		return err
	}
	if err := k.Deposit(ctx, account, funds); err != nil {
		return err
	}
	k.Logger(ctx).Debug("minted into custody", "account", account.String(), "asset", asset, "amount", amount.String())
	return nil
}

// GetBalance returns account's holding of asset, zero if there is no record.
func (k Keeper) GetBalance(ctx context.Context, account sdk.AccAddress, asset sharedtypes.AssetID) math.Int {
	balance, _, err := k.getBalance(ctx, account, asset)
	if err != nil {
		k.Logger(ctx).Error("failed to read balance", "account", account.String(), "asset", asset, "error", err)
		return math.ZeroInt()
	}
	return balance
}

// HasHolding reports whether account has a holding record for asset.
func (k Keeper) HasHolding(ctx context.Context, account sdk.AccAddress, asset sharedtypes.AssetID) bool {
	return k.getStore(ctx).Has(types.BalanceKey(account, asset))
}

// TotalSupply returns the amount of asset currently held across all custody accounts.
func (k Keeper) TotalSupply(ctx context.Context, asset sharedtypes.AssetID) math.Int {
	bz := k.getStore(ctx).Get(types.SupplyKey(asset))
	if bz == nil {
		return math.ZeroInt()
	}
	var supply math.Int
	if err := supply.Unmarshal(bz); err != nil {
		k.Logger(ctx).Error("failed to decode supply", "asset", asset, "error", err)
		return math.ZeroInt()
	}
	return supply
}

// IterateBalances walks every holding record in store order.
func (k Keeper) IterateBalances(ctx context.Context, cb func(account sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		account, asset := types.SplitBalanceKey(iterator.Key())
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return types.ErrCorruptBalance.Wrapf("%s/%s: %v", account, asset, err)
		}
		if cb(account, asset, amount) {
			break
		}
	}
	return nil
}

// GetAccountBalances returns every holding of account keyed by asset.
func (k Keeper) GetAccountBalances(ctx context.Context, account sdk.AccAddress) (map[sharedtypes.AssetID]math.Int, error) {
	balances := make(map[sharedtypes.AssetID]math.Int)
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.AccountBalancesPrefix(account))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		_, asset := types.SplitBalanceKey(iterator.Key())
		var amount math.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			return nil, types.ErrCorruptBalance.Wrapf("%s/%s: %v", account, asset, err)
		}
		balances[asset] = amount
	}
	return balances, nil
}

func (k Keeper) getBalance(ctx context.Context, account sdk.AccAddress, asset sharedtypes.AssetID) (math.Int, bool, error) {
	bz := k.getStore(ctx).Get(types.BalanceKey(account, asset))
	if bz == nil {
		return math.ZeroInt(), false, nil
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		return math.ZeroInt(), true, types.ErrCorruptBalance.Wrapf("%s/%s: %v", account, asset, err)
	}
	return balance, true, nil
}

func (k Keeper) setBalance(ctx context.Context, account sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) error {
	bz, err := amount.Marshal()
	if err != nil {
		return fmt.Errorf("setBalance: marshal %s: %w", asset, err)
	}
	k.getStore(ctx).Set(types.BalanceKey(account, asset), bz)
	return nil
}

func (k Keeper) addSupply(ctx context.Context, asset sharedtypes.AssetID, delta math.Int) error {
	supply := k.TotalSupply(ctx, asset).Add(delta)
	if supply.IsNegative() {
		return types.ErrCorruptBalance.Wrapf("custody supply of %s would go negative", asset)
	}
	bz, err := supply.Marshal()
	if err != nil {
		return fmt.Errorf("addSupply: marshal %s: %w", asset, err)
	}
	k.getStore(ctx).Set(types.SupplyKey(asset), bz)
	return nil
}
