package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawswap/app"
	settlementtypes "github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const (
	flagFrom      = "from"
	flagRecipient = "recipient"
	flagMinX      = "min-x"
	flagMinY      = "min-y"
	flagMinOut    = "min-out"
)

type eventJSON struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

type txResult struct {
	Height int64       `json:"height"`
	Result interface{} `json:"result"`
	Events []eventJSON `json:"events"`
}

func txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Settlement transaction subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}
	cmd.AddCommand(
		FundCmd(),
		RegisterPoolCmd(),
		RegisterPoolAndAddLiquidityCmd(),
		AddLiquidityCmd(),
		RemoveLiquidityCmd(),
		SwapCmd(),
		SwapIntoCmd(),
		SwapUncheckedCmd(),
	)
	return cmd
}

// runTx executes fn on the latest state and commits only if it succeeds.
func runTx(cmd *cobra.Command, fn func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error)) error {
	n, a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	defer n.flushMetrics()

	ctx := a.NewContext()
	res, err := fn(ctx, a)
	if err != nil {
		return err
	}
	id := a.Commit()
	n.logger.Info("transaction committed", "cmd", cmd.Name(), "height", id.Version)

	events := make([]eventJSON, 0, len(ctx.EventManager().Events()))
	for _, ev := range ctx.EventManager().Events() {
		attrs := make(map[string]string, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		events = append(events, eventJSON{Type: ev.Type, Attributes: attrs})
	}
	return printJSON(cmd, txResult{Height: id.Version, Result: res, Events: events})
}

func initiatorFlag(cmd *cobra.Command) (string, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return "", err
	}
	addr, err := resolveAddress(from)
	if err != nil {
		return "", fmt.Errorf("--%s: %w", flagFrom, err)
	}
	return addr.String(), nil
}

func recipientFlag(cmd *cobra.Command) (string, error) {
	s, err := cmd.Flags().GetString(flagRecipient)
	if err != nil || s == "" {
		return "", err
	}
	addr, err := resolveAddress(s)
	if err != nil {
		return "", fmt.Errorf("--%s: %w", flagRecipient, err)
	}
	return addr.String(), nil
}

func amountFlag(cmd *cobra.Command, name string) (math.Int, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.Int{}, err
	}
	amount, err := parseAmount(s)
	if err != nil {
		return math.Int{}, fmt.Errorf("--%s: %w", name, err)
	}
	return amount, nil
}

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagFrom, "", "initiating account, a bech32 address or a local name")
	_ = cmd.MarkFlagRequired(flagFrom)
}

func addRecipientFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagRecipient, "", "account credited with the output, defaults to the initiator")
}

// FundCmd credits an account's custody holding. Intended for local networks.
func FundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund [account] [asset] [amount]",
		Short: "Credit an account's custody holding",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			asset := sharedtypes.AssetID(args[1])
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				if err := a.CustodyKeeper.Mint(ctx, account, asset, amount); err != nil {
					return nil, err
				}
				return holding{Asset: asset, Amount: a.CustodyKeeper.GetBalance(ctx, account, asset)}, nil
			})
		},
	}
}

// RegisterPoolCmd registers an empty pool.
func RegisterPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-pool [asset-x] [asset-y]",
		Short: "Register an empty pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, err := initiatorFlag(cmd)
			if err != nil {
				return err
			}
			curve, err := curveFlag(cmd)
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgRegisterPool{
				Initiator: initiator,
				X:         sharedtypes.AssetID(args[0]),
				Y:         sharedtypes.AssetID(args[1]),
				Curve:     curve,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.RegisterPool(ctx, msg)
			})
		},
	}
	addFromFlag(cmd)
	addCurveFlag(cmd)
	return cmd
}

func liquidityArgs(cmd *cobra.Command, args []string) (initiator string, curve sharedtypes.Curve, amountX, minX, amountY, minY math.Int, err error) {
	if initiator, err = initiatorFlag(cmd); err != nil {
		return
	}
	if curve, err = curveFlag(cmd); err != nil {
		return
	}
	if amountX, err = parseAmount(args[2]); err != nil {
		return
	}
	if amountY, err = parseAmount(args[3]); err != nil {
		return
	}
	if minX, err = amountFlag(cmd, flagMinX); err != nil {
		return
	}
	minY, err = amountFlag(cmd, flagMinY)
	return
}

func addMinFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagMinX, "0", "minimum amount of asset-x")
	cmd.Flags().String(flagMinY, "0", "minimum amount of asset-y")
}

// RegisterPoolAndAddLiquidityCmd registers a pool and seeds it in one step.
func RegisterPoolAndAddLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-pool-and-add-liquidity [asset-x] [asset-y] [amount-x] [amount-y]",
		Short: "Register a pool and deposit its initial liquidity",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, curve, amountX, minX, amountY, minY, err := liquidityArgs(cmd, args)
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgRegisterPoolAndAddLiquidity{
				Initiator: initiator,
				X:         sharedtypes.AssetID(args[0]),
				Y:         sharedtypes.AssetID(args[1]),
				Curve:     curve,
				AmountX:   amountX,
				MinX:      minX,
				AmountY:   amountY,
				MinY:      minY,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.RegisterPoolAndAddLiquidity(ctx, msg)
			})
		},
	}
	addFromFlag(cmd)
	addCurveFlag(cmd)
	addMinFlags(cmd)
	return cmd
}

// AddLiquidityCmd deposits into an existing pool.
func AddLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [asset-x] [asset-y] [amount-x] [amount-y]",
		Short: "Deposit liquidity into a pool",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, curve, amountX, minX, amountY, minY, err := liquidityArgs(cmd, args)
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgAddLiquidity{
				Initiator: initiator,
				X:         sharedtypes.AssetID(args[0]),
				Y:         sharedtypes.AssetID(args[1]),
				Curve:     curve,
				AmountX:   amountX,
				MinX:      minX,
				AmountY:   amountY,
				MinY:      minY,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.AddLiquidity(ctx, msg)
			})
		},
	}
	addFromFlag(cmd)
	addCurveFlag(cmd)
	addMinFlags(cmd)
	return cmd
}

// RemoveLiquidityCmd burns LP credentials for the underlying reserves.
func RemoveLiquidityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [asset-x] [asset-y] [lp-amount]",
		Short: "Burn LP credentials and withdraw both assets",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, err := initiatorFlag(cmd)
			if err != nil {
				return err
			}
			curve, err := curveFlag(cmd)
			if err != nil {
				return err
			}
			lpAmount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			minX, err := amountFlag(cmd, flagMinX)
			if err != nil {
				return err
			}
			minY, err := amountFlag(cmd, flagMinY)
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgRemoveLiquidity{
				Initiator: initiator,
				X:         sharedtypes.AssetID(args[0]),
				Y:         sharedtypes.AssetID(args[1]),
				Curve:     curve,
				LPAmount:  lpAmount,
				MinX:      minX,
				MinY:      minY,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.RemoveLiquidity(ctx, msg)
			})
		},
	}
	addFromFlag(cmd)
	addCurveFlag(cmd)
	addMinFlags(cmd)
	return cmd
}

func swapParties(cmd *cobra.Command) (initiator, recipient string, curve sharedtypes.Curve, err error) {
	if initiator, err = initiatorFlag(cmd); err != nil {
		return
	}
	if recipient, err = recipientFlag(cmd); err != nil {
		return
	}
	curve, err = curveFlag(cmd)
	return
}

func addSwapFlags(cmd *cobra.Command) {
	addFromFlag(cmd)
	addRecipientFlag(cmd)
	addCurveFlag(cmd)
}

// SwapCmd sells an exact amount.
func SwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [from] [to] [coin-val]",
		Short: "Sell exactly coin-val of from for at least --min-out of to",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, recipient, curve, err := swapParties(cmd)
			if err != nil {
				return err
			}
			coinVal, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			minOut, err := amountFlag(cmd, flagMinOut)
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgSwap{
				Initiator:  initiator,
				From:       sharedtypes.AssetID(args[0]),
				To:         sharedtypes.AssetID(args[1]),
				Curve:      curve,
				CoinVal:    coinVal,
				CoinOutMin: minOut,
				Recipient:  recipient,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.Swap(ctx, msg)
			})
		},
	}
	addSwapFlags(cmd)
	cmd.Flags().String(flagMinOut, "0", "minimum output accepted")
	return cmd
}

// SwapIntoCmd buys an exact amount.
func SwapIntoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-into [from] [to] [coin-val-max] [coin-out]",
		Short: "Buy exactly coin-out of to spending at most coin-val-max of from",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, recipient, curve, err := swapParties(cmd)
			if err != nil {
				return err
			}
			coinValMax, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			coinOut, err := parseAmount(args[3])
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgSwapInto{
				Initiator:  initiator,
				From:       sharedtypes.AssetID(args[0]),
				To:         sharedtypes.AssetID(args[1]),
				Curve:      curve,
				CoinValMax: coinValMax,
				CoinOut:    coinOut,
				Recipient:  recipient,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.SwapInto(ctx, msg)
			})
		},
	}
	addSwapFlags(cmd)
	return cmd
}

// SwapUncheckedCmd trades an exact input for a declared output, leaving the
// curve check to the engine.
func SwapUncheckedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-unchecked [from] [to] [coin-in] [coin-out]",
		Short: "Trade exactly coin-in for a declared coin-out",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			initiator, recipient, curve, err := swapParties(cmd)
			if err != nil {
				return err
			}
			coinIn, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			coinOut, err := parseAmount(args[3])
			if err != nil {
				return err
			}
			msg := &settlementtypes.MsgSwapUnchecked{
				Initiator: initiator,
				From:      sharedtypes.AssetID(args[0]),
				To:        sharedtypes.AssetID(args[1]),
				Curve:     curve,
				CoinIn:    coinIn,
				CoinOut:   coinOut,
				Recipient: recipient,
			}
			return runTx(cmd, func(ctx sdk.Context, a *app.PawSwapApp) (interface{}, error) {
				return a.MsgServer.SwapUnchecked(ctx, msg)
			})
		},
	}
	addSwapFlags(cmd)
	return cmd
}
