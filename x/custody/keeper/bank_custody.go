package keeper

import (
	"context"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/custody/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// BankCustody adapts x/bank to the custody contract. Withdrawn funds move into
// the escrow module account, which also holds pool reserves; deposits move
// out of it. LP credentials are minted on deposit and burned on withdrawal
// because the engine issues and retires them outside the bank supply.
type BankCustody struct {
	bank   types.BankKeeper
	minter types.BankMinter
	escrow string
}

// NewBankCustody creates a bank-backed custody adapter using the escrow
// module account. minter may be nil when LP credentials are never settled
// through this adapter.
func NewBankCustody(bank types.BankKeeper, minter types.BankMinter, escrow string) BankCustody {
	if escrow == "" {
		escrow = types.EscrowModuleName
	}
	return BankCustody{bank: bank, minter: minter, escrow: escrow}
}

// Withdraw moves amount of asset from owner into escrow and returns the bundle.
func (b BankCustody) Withdraw(ctx context.Context, owner sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) (*sharedtypes.Funds, error) {
	if owner.Empty() {
		return nil, types.ErrInvalidAccount.Wrap("owner address cannot be empty")
	}
	if err := validateDenom(asset); err != nil {
		return nil, err
	}
	funds, err := sharedtypes.NewFunds(asset, amount)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return funds, nil
	}

	balance := b.bank.GetBalance(ctx, owner, asset.String())
	if balance.Amount.LT(amount) {
		return nil, types.ErrInsufficientBalance.Wrapf(
			"%s holds %s %s, needs %s", owner, balance.Amount, asset, amount,
		)
	}

	coins := sdk.NewCoins(sdk.NewCoin(asset.String(), amount))
	if err := b.bank.SendCoinsFromAccountToModule(ctx, owner, b.escrow, coins); err != nil {
		return nil, types.ErrInsufficientBalance.Wrapf("escrow %s: %v", coins, err)
	}
	if isLPAsset(asset) {
		if b.minter == nil {
			return nil, types.ErrInvalidAmount.Wrapf("no minter configured to burn %s", asset)
		}
		if err := b.minter.BurnCoins(ctx, b.escrow, coins); err != nil {
			return nil, err
		}
	}
	return funds, nil
}

// Deposit consumes funds and pays them out of escrow to account.
func (b BankCustody) Deposit(ctx context.Context, account sdk.AccAddress, funds *sharedtypes.Funds) error {
	if account.Empty() {
		return types.ErrInvalidAccount.Wrap("deposit address cannot be empty")
	}
	if funds == nil {
		return sharedtypes.ErrFundsConsumed.Wrap("nil funds")
	}
	asset := funds.Asset()
	if err := validateDenom(asset); err != nil {
		return err
	}
	amount, err := funds.Consume()
	if err != nil {
		return err
	}
	// bank keeps no zero-balance records
	if amount.IsZero() {
		return nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(asset.String(), amount))
	if isLPAsset(asset) {
		if b.minter == nil {
			return types.ErrInvalidAmount.Wrapf("no minter configured to issue %s", asset)
		}
		if err := b.minter.MintCoins(ctx, b.escrow, coins); err != nil {
			return err
		}
	}
	return b.bank.SendCoinsFromModuleToAccount(ctx, b.escrow, account, coins)
}

func isLPAsset(asset sharedtypes.AssetID) bool {
	return strings.HasPrefix(asset.String(), sharedtypes.LPAssetPrefix+"/")
}

// validateDenom rejects asset ids x/bank cannot hold, such as two character tickers.
func validateDenom(asset sharedtypes.AssetID) error {
	if err := sdk.ValidateDenom(asset.String()); err != nil {
		return sharedtypes.ErrInvalidAsset.Wrapf("%s is not a bank denom: %v", asset, err)
	}
	return nil
}
