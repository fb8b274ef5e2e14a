package cmd

import (
	"fmt"
	"sort"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const flagCurve = "curve"

func queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Querying subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}
	cmd.AddCommand(
		BalanceCmd(),
		PoolCmd(),
		QuoteCmd(),
	)
	return cmd
}

func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return cmd.Help()
}

// AddrCmd prints the address of a local account name.
func AddrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addr [name]",
		Short: "Show the account address derived from a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), NameAddress(args[0]).String())
			return err
		},
	}
}

// ExportCmd prints the current state as genesis JSON.
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export state as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			genesis, err := a.ExportGenesis()
			if err != nil {
				return err
			}
			return printJSON(cmd, genesis)
		},
	}
}

type holding struct {
	Asset  sharedtypes.AssetID `json:"asset"`
	Amount math.Int            `json:"amount"`
}

// BalanceCmd prints an account's holdings.
func BalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account] [asset]",
		Short: "Show the holdings of an account, or one asset of it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAddress(args[0])
			if err != nil {
				return err
			}
			_, a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := a.NewContext()

			if len(args) == 2 {
				asset := sharedtypes.AssetID(args[1])
				if err := asset.Validate(); err != nil {
					return err
				}
				return printJSON(cmd, holding{Asset: asset, Amount: a.CustodyKeeper.GetBalance(ctx, account, asset)})
			}

			balances, err := a.CustodyKeeper.GetAccountBalances(ctx, account)
			if err != nil {
				return err
			}
			holdings := make([]holding, 0, len(balances))
			for asset, amount := range balances {
				holdings = append(holdings, holding{Asset: asset, Amount: amount})
			}
			sort.Slice(holdings, func(i, j int) bool { return holdings[i].Asset < holdings[j].Asset })
			return printJSON(cmd, holdings)
		},
	}
}

// PoolCmd prints a pool's reserves and LP supply.
func PoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [asset-x] [asset-y]",
		Short: "Show the state of a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := curveFlag(cmd)
			if err != nil {
				return err
			}
			_, a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			key := sharedtypes.NewPoolKey(sharedtypes.AssetID(args[0]), sharedtypes.AssetID(args[1]), curve)
			pool, err := a.SettlementKeeper.Pool(a.NewContext(), key)
			if err != nil {
				return err
			}
			return printJSON(cmd, pool)
		},
	}
	addCurveFlag(cmd)
	return cmd
}

type quote struct {
	From   sharedtypes.AssetID `json:"from"`
	To     sharedtypes.AssetID `json:"to"`
	Curve  sharedtypes.Curve   `json:"curve"`
	Amount math.Int            `json:"amount"`
}

// QuoteCmd prices a swap without settling it.
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a swap without executing it",
		RunE:  validateCmd,
	}

	swap := &cobra.Command{
		Use:   "swap [from] [to] [amount-in]",
		Short: "Output received for selling exactly amount-in",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, args, false)
		},
	}
	swapInto := &cobra.Command{
		Use:   "swap-into [from] [to] [amount-out]",
		Short: "Input required to buy exactly amount-out",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, args, true)
		},
	}
	addCurveFlag(swap)
	addCurveFlag(swapInto)
	cmd.AddCommand(swap, swapInto)
	return cmd
}

func runQuote(cmd *cobra.Command, args []string, exactOut bool) error {
	curve, err := curveFlag(cmd)
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	_, a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	from, to := sharedtypes.AssetID(args[0]), sharedtypes.AssetID(args[1])
	var quoted math.Int
	if exactOut {
		quoted, err = a.SettlementKeeper.QuoteSwapInto(a.NewContext(), curve, from, to, amount)
	} else {
		quoted, err = a.SettlementKeeper.QuoteSwap(a.NewContext(), curve, from, to, amount)
	}
	if err != nil {
		return err
	}
	return printJSON(cmd, quote{From: from, To: to, Curve: curve, Amount: quoted})
}

func addCurveFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagCurve, sharedtypes.CurveUncorrelated.String(), "pool curve, uncorrelated or stable")
}

func curveFlag(cmd *cobra.Command) (sharedtypes.Curve, error) {
	s, err := cmd.Flags().GetString(flagCurve)
	if err != nil {
		return sharedtypes.CurveUnspecified, err
	}
	return sharedtypes.ParseCurve(s)
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}
