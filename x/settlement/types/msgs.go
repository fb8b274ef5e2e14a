package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

// MsgRegisterPool creates an empty pool.
type MsgRegisterPool struct {
	Initiator string              `json:"initiator"`
	X         sharedtypes.AssetID `json:"x"`
	Y         sharedtypes.AssetID `json:"y"`
	Curve     sharedtypes.Curve   `json:"curve"`
}

// MsgRegisterPoolAndAddLiquidity creates a pool and seeds it.
type MsgRegisterPoolAndAddLiquidity struct {
	Initiator string              `json:"initiator"`
	X         sharedtypes.AssetID `json:"x"`
	Y         sharedtypes.AssetID `json:"y"`
	Curve     sharedtypes.Curve   `json:"curve"`
	AmountX   math.Int            `json:"amount_x"`
	MinX      math.Int            `json:"min_x"`
	AmountY   math.Int            `json:"amount_y"`
	MinY      math.Int            `json:"min_y"`
}

// MsgAddLiquidity deposits both assets of a pool.
type MsgAddLiquidity struct {
	Initiator string              `json:"initiator"`
	X         sharedtypes.AssetID `json:"x"`
	Y         sharedtypes.AssetID `json:"y"`
	Curve     sharedtypes.Curve   `json:"curve"`
	AmountX   math.Int            `json:"amount_x"`
	MinX      math.Int            `json:"min_x"`
	AmountY   math.Int            `json:"amount_y"`
	MinY      math.Int            `json:"min_y"`
}

// MsgRemoveLiquidity burns LP for the underlying reserves.
type MsgRemoveLiquidity struct {
	Initiator string              `json:"initiator"`
	X         sharedtypes.AssetID `json:"x"`
	Y         sharedtypes.AssetID `json:"y"`
	Curve     sharedtypes.Curve   `json:"curve"`
	LPAmount  math.Int            `json:"lp_amount"`
	MinX      math.Int            `json:"min_x"`
	MinY      math.Int            `json:"min_y"`
}

// MsgSwap sells an exact input.
type MsgSwap struct {
	Initiator  string              `json:"initiator"`
	From       sharedtypes.AssetID `json:"from"`
	To         sharedtypes.AssetID `json:"to"`
	Curve      sharedtypes.Curve   `json:"curve"`
	CoinVal    math.Int            `json:"coin_val"`
	CoinOutMin math.Int            `json:"coin_out_min"`
	Recipient  string              `json:"recipient,omitempty"`
}

// MsgSwapInto buys an exact output.
type MsgSwapInto struct {
	Initiator  string              `json:"initiator"`
	From       sharedtypes.AssetID `json:"from"`
	To         sharedtypes.AssetID `json:"to"`
	Curve      sharedtypes.Curve   `json:"curve"`
	CoinValMax math.Int            `json:"coin_val_max"`
	CoinOut    math.Int            `json:"coin_out"`
	Recipient  string              `json:"recipient,omitempty"`
}

// MsgSwapUnchecked trades an exact input for a declared output.
type MsgSwapUnchecked struct {
	Initiator string              `json:"initiator"`
	From      sharedtypes.AssetID `json:"from"`
	To        sharedtypes.AssetID `json:"to"`
	Curve     sharedtypes.Curve   `json:"curve"`
	CoinIn    math.Int            `json:"coin_in"`
	CoinOut   math.Int            `json:"coin_out"`
	Recipient string              `json:"recipient,omitempty"`
}

// MsgRegisterPoolResponse is returned by RegisterPool.
type MsgRegisterPoolResponse struct {
	Pool sharedtypes.PoolKey `json:"pool"`
}

// MsgLiquidityAddedResponse is returned by both add-liquidity messages.
type MsgLiquidityAddedResponse struct {
	Pool sharedtypes.PoolKey `json:"pool"`
	LiquidityAdded
}

// MsgRemoveLiquidityResponse is returned by RemoveLiquidity.
type MsgRemoveLiquidityResponse struct {
	Pool sharedtypes.PoolKey `json:"pool"`
	LiquidityRemoved
}

// MsgSwapResponse is returned by the three swap messages.
type MsgSwapResponse struct {
	SwapSettled
}

// MsgServer is the settlement message service.
type MsgServer interface {
	RegisterPool(ctx context.Context, msg *MsgRegisterPool) (*MsgRegisterPoolResponse, error)
	RegisterPoolAndAddLiquidity(ctx context.Context, msg *MsgRegisterPoolAndAddLiquidity) (*MsgLiquidityAddedResponse, error)
	AddLiquidity(ctx context.Context, msg *MsgAddLiquidity) (*MsgLiquidityAddedResponse, error)
	RemoveLiquidity(ctx context.Context, msg *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(ctx context.Context, msg *MsgSwap) (*MsgSwapResponse, error)
	SwapInto(ctx context.Context, msg *MsgSwapInto) (*MsgSwapResponse, error)
	SwapUnchecked(ctx context.Context, msg *MsgSwapUnchecked) (*MsgSwapResponse, error)
}

// PoolKey returns the pool the message addresses.
func (msg *MsgRegisterPool) PoolKey() sharedtypes.PoolKey {
	return sharedtypes.NewPoolKey(msg.X, msg.Y, msg.Curve)
}

// ValidateBasic performs stateless validation.
func (msg *MsgRegisterPool) ValidateBasic() error {
	if err := validateInitiator(msg.Initiator); err != nil {
		return err
	}
	return msg.PoolKey().Validate()
}

// GetSigners returns the initiator.
func (msg *MsgRegisterPool) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// PoolKey returns the pool the message addresses.
func (msg *MsgRegisterPoolAndAddLiquidity) PoolKey() sharedtypes.PoolKey {
	return sharedtypes.NewPoolKey(msg.X, msg.Y, msg.Curve)
}

// ValidateBasic performs stateless validation.
func (msg *MsgRegisterPoolAndAddLiquidity) ValidateBasic() error {
	if err := validateInitiator(msg.Initiator); err != nil {
		return err
	}
	if err := msg.PoolKey().Validate(); err != nil {
		return err
	}
	return validateLiquidityAmounts(msg.AmountX, msg.MinX, msg.AmountY, msg.MinY)
}

// GetSigners returns the initiator.
func (msg *MsgRegisterPoolAndAddLiquidity) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// PoolKey returns the pool the message addresses.
func (msg *MsgAddLiquidity) PoolKey() sharedtypes.PoolKey {
	return sharedtypes.NewPoolKey(msg.X, msg.Y, msg.Curve)
}

// ValidateBasic performs stateless validation.
func (msg *MsgAddLiquidity) ValidateBasic() error {
	if err := validateInitiator(msg.Initiator); err != nil {
		return err
	}
	if err := msg.PoolKey().Validate(); err != nil {
		return err
	}
	return validateLiquidityAmounts(msg.AmountX, msg.MinX, msg.AmountY, msg.MinY)
}

// GetSigners returns the initiator.
func (msg *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// PoolKey returns the pool the message addresses.
func (msg *MsgRemoveLiquidity) PoolKey() sharedtypes.PoolKey {
	return sharedtypes.NewPoolKey(msg.X, msg.Y, msg.Curve)
}

// ValidateBasic performs stateless validation.
func (msg *MsgRemoveLiquidity) ValidateBasic() error {
	if err := validateInitiator(msg.Initiator); err != nil {
		return err
	}
	if err := msg.PoolKey().Validate(); err != nil {
		return err
	}
	if err := validatePositive("lp amount", msg.LPAmount); err != nil {
		return err
	}
	if err := validateNonNegative("min x", msg.MinX); err != nil {
		return err
	}
	return validateNonNegative("min y", msg.MinY)
}

// GetSigners returns the initiator.
func (msg *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// ValidateBasic performs stateless validation.
func (msg *MsgSwap) ValidateBasic() error {
	if err := validateSwap(msg.Initiator, msg.From, msg.To, msg.Curve, msg.Recipient); err != nil {
		return err
	}
	if err := validatePositive("coin val", msg.CoinVal); err != nil {
		return err
	}
	return validateNonNegative("coin out min", msg.CoinOutMin)
}

// GetSigners returns the initiator.
func (msg *MsgSwap) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// ValidateBasic performs stateless validation.
func (msg *MsgSwapInto) ValidateBasic() error {
	if err := validateSwap(msg.Initiator, msg.From, msg.To, msg.Curve, msg.Recipient); err != nil {
		return err
	}
	if err := validatePositive("coin val max", msg.CoinValMax); err != nil {
		return err
	}
	return validatePositive("coin out", msg.CoinOut)
}

// GetSigners returns the initiator.
func (msg *MsgSwapInto) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

// ValidateBasic performs stateless validation.
func (msg *MsgSwapUnchecked) ValidateBasic() error {
	if err := validateSwap(msg.Initiator, msg.From, msg.To, msg.Curve, msg.Recipient); err != nil {
		return err
	}
	if err := validatePositive("coin in", msg.CoinIn); err != nil {
		return err
	}
	return validatePositive("coin out", msg.CoinOut)
}

// GetSigners returns the initiator.
func (msg *MsgSwapUnchecked) GetSigners() []sdk.AccAddress {
	return signers(msg.Initiator)
}

func validateInitiator(initiator string) error {
	if _, err := sdk.AccAddressFromBech32(initiator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid initiator address: %v", err)
	}
	return nil
}

func validateSwap(initiator string, from, to sharedtypes.AssetID, curve sharedtypes.Curve, recipient string) error {
	if err := validateInitiator(initiator); err != nil {
		return err
	}
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if from == to {
		return sharedtypes.ErrIdenticalAssets.Wrapf("cannot swap %s for itself", from)
	}
	if err := curve.Validate(); err != nil {
		return err
	}
	_, err := ParseRecipient(recipient)
	return err
}

func validateLiquidityAmounts(amountX, minX, amountY, minY math.Int) error {
	if err := validatePositive("amount x", amountX); err != nil {
		return err
	}
	if err := validatePositive("amount y", amountY); err != nil {
		return err
	}
	if err := validateNonNegative("min x", minX); err != nil {
		return err
	}
	return validateNonNegative("min y", minY)
}

func validatePositive(name string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("%s must be positive", name)
	}
	return nil
}

func validateNonNegative(name string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("%s must be non-negative", name)
	}
	return nil
}

func signers(initiator string) []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(initiator)
	if err != nil {
		return nil
	}
	return []sdk.AccAddress{addr}
}
