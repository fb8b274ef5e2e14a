package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/settlement/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the settlement MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterPool handles pool registration
func (ms msgServer) RegisterPool(goCtx context.Context, msg *types.MsgRegisterPool) (*types.MsgRegisterPoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterPool: validate: %w", err)
	}
	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		return nil, fmt.Errorf("RegisterPool: invalid initiator address: %w", err)
	}

	key := msg.PoolKey()
	if err := ms.Keeper.RegisterPool(goCtx, initiator, key); err != nil {
		return nil, fmt.Errorf("RegisterPool: %w", err)
	}
	return &types.MsgRegisterPoolResponse{Pool: key}, nil
}

// RegisterPoolAndAddLiquidity handles registering and seeding a pool
func (ms msgServer) RegisterPoolAndAddLiquidity(goCtx context.Context, msg *types.MsgRegisterPoolAndAddLiquidity) (*types.MsgLiquidityAddedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RegisterPoolAndAddLiquidity: validate: %w", err)
	}
	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		return nil, fmt.Errorf("RegisterPoolAndAddLiquidity: invalid initiator address: %w", err)
	}

	key := msg.PoolKey()
	added, err := ms.Keeper.RegisterPoolAndAddLiquidity(goCtx, initiator, key, msg.AmountX, msg.MinX, msg.AmountY, msg.MinY)
	if err != nil {
		return nil, fmt.Errorf("RegisterPoolAndAddLiquidity: %w", err)
	}
	return &types.MsgLiquidityAddedResponse{Pool: key, LiquidityAdded: added}, nil
}

// AddLiquidity handles adding liquidity to an existing pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgLiquidityAddedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}
	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid initiator address: %w", err)
	}

	key := msg.PoolKey()
	added, err := ms.Keeper.AddLiquidity(goCtx, initiator, key, msg.AmountX, msg.MinX, msg.AmountY, msg.MinY)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}
	return &types.MsgLiquidityAddedResponse{Pool: key, LiquidityAdded: added}, nil
}

// RemoveLiquidity handles removing liquidity from a pool
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}
	initiator, err := sdk.AccAddressFromBech32(msg.Initiator)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid initiator address: %w", err)
	}

	key := msg.PoolKey()
	removed, err := ms.Keeper.RemoveLiquidity(goCtx, initiator, key, msg.LPAmount, msg.MinX, msg.MinY)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}
	return &types.MsgRemoveLiquidityResponse{Pool: key, LiquidityRemoved: removed}, nil
}

// Swap handles exact-input swaps
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}
	initiator, recipient, err := parseParties(msg.Initiator, msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	settled, err := ms.Keeper.Swap(goCtx, initiator, msg.From, msg.To, msg.Curve, msg.CoinVal, msg.CoinOutMin, recipient)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	return &types.MsgSwapResponse{SwapSettled: settled}, nil
}

// SwapInto handles exact-output swaps
func (ms msgServer) SwapInto(goCtx context.Context, msg *types.MsgSwapInto) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapInto: validate: %w", err)
	}
	initiator, recipient, err := parseParties(msg.Initiator, msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("SwapInto: %w", err)
	}

	settled, err := ms.Keeper.SwapInto(goCtx, initiator, msg.From, msg.To, msg.Curve, msg.CoinValMax, msg.CoinOut, recipient)
	if err != nil {
		return nil, fmt.Errorf("SwapInto: %w", err)
	}
	return &types.MsgSwapResponse{SwapSettled: settled}, nil
}

// SwapUnchecked handles swaps with a caller-declared output
func (ms msgServer) SwapUnchecked(goCtx context.Context, msg *types.MsgSwapUnchecked) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapUnchecked: validate: %w", err)
	}
	initiator, recipient, err := parseParties(msg.Initiator, msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("SwapUnchecked: %w", err)
	}

	settled, err := ms.Keeper.SwapUnchecked(goCtx, initiator, msg.From, msg.To, msg.Curve, msg.CoinIn, msg.CoinOut, recipient)
	if err != nil {
		return nil, fmt.Errorf("SwapUnchecked: %w", err)
	}
	return &types.MsgSwapResponse{SwapSettled: settled}, nil
}

func parseParties(initiatorAddr, recipientAddr string) (sdk.AccAddress, types.Recipient, error) {
	initiator, err := sdk.AccAddressFromBech32(initiatorAddr)
	if err != nil {
		return nil, types.Recipient{}, fmt.Errorf("invalid initiator address: %w", err)
	}
	recipient, err := types.ParseRecipient(recipientAddr)
	if err != nil {
		return nil, types.Recipient{}, err
	}
	return initiator, recipient, nil
}
