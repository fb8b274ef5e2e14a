package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "custody"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// EscrowModuleName is the bank module account that holds funds in flight
	// when custody is backed by x/bank.
	EscrowModuleName = "settlement_escrow"
)

// Store key prefixes
var (
	GenesisHeightKey = []byte{0x00} // height custody genesis ran at

	BalanceKeyPrefix = []byte{0x01} // prefix for (account, asset) holdings
	SupplyKeyPrefix  = []byte{0x02} // prefix for per-asset supply held in custody
)

// AccountBalancesPrefix returns the prefix of every holding of account.
func AccountBalancesPrefix(account sdk.AccAddress) []byte {
	return append(append([]byte{}, BalanceKeyPrefix...), address.MustLengthPrefix(account)...)
}

// BalanceKey returns the store key for account's holding of asset.
func BalanceKey(account sdk.AccAddress, asset sharedtypes.AssetID) []byte {
	return append(AccountBalancesPrefix(account), []byte(asset)...)
}

// SupplyKey returns the store key for the custody-held supply of asset.
func SupplyKey(asset sharedtypes.AssetID) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), []byte(asset)...)
}

// SplitBalanceKey decodes a key produced by BalanceKey.
func SplitBalanceKey(key []byte) (sdk.AccAddress, sharedtypes.AssetID) {
	key = key[len(BalanceKeyPrefix):]
	addrLen := int(key[0])
	return sdk.AccAddress(key[1 : 1+addrLen]), sharedtypes.AssetID(key[1+addrLen:])
}
