package keeper

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/paw-chain/pawswap/x/settlement/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

const tracerName = "github.com/paw-chain/pawswap/x/settlement"

// unit is one settlement in progress. All store access goes through ctx,
// a cache branch that is written back only if the whole unit succeeds.
type unit struct {
	ctx      sdk.Context
	custody  types.CustodyKeeper
	scope    *sharedtypes.Scope
	attrs    []sdk.Attribute
	deposits []deposited
}

type deposited struct {
	asset  sharedtypes.AssetID
	amount math.Int
}

// withdraw takes funds out of owner's holding and tracks them.
func (u *unit) withdraw(owner sdk.AccAddress, asset sharedtypes.AssetID, amount math.Int) (*sharedtypes.Funds, error) {
	funds, err := u.custody.Withdraw(u.ctx, owner, asset, amount)
	if err != nil {
		return nil, err
	}
	u.scope.Track(funds)
	return funds, nil
}

// receive tracks bundles handed back by the engine. Every one of them must
// be deposited before the unit closes.
func (u *unit) receive(funds ...*sharedtypes.Funds) error {
	for _, f := range funds {
		if f == nil {
			return types.ErrUnsettledFunds.Wrap("engine returned a nil bundle")
		}
	}
	u.scope.Track(funds...)
	return nil
}

func (u *unit) deposit(account sdk.AccAddress, funds *sharedtypes.Funds) error {
	asset, amount := funds.Asset(), funds.Amount()
	if err := u.custody.Deposit(u.ctx, account, funds); err != nil {
		return err
	}
	if amount.IsPositive() {
		u.deposits = append(u.deposits, deposited{asset: asset, amount: amount})
	}
	return nil
}

func (u *unit) emit(attrs ...sdk.Attribute) {
	u.attrs = append(u.attrs, attrs...)
}

// settle runs fn inside a cache branch of ctx. The branch is committed only
// if fn succeeds and every tracked bundle was consumed; otherwise every
// withdrawal, engine write and deposit made by fn is discarded.
func (k Keeper) settle(ctx context.Context, op string, fn func(u *unit) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	start := time.Now()

	spanCtx, span := otel.Tracer(tracerName).Start(sdkCtx.Context(), "settlement."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("module.name", types.ModuleName),
			attribute.String("module.operation", op),
		),
	)
	defer span.End()

	cacheCtx, write := sdkCtx.CacheContext()
	u := &unit{
		ctx:     cacheCtx.WithContext(spanCtx),
		custody: k.custody,
		scope:   sharedtypes.NewScope(),
	}

	err := fn(u)
	if err == nil {
		err = u.scope.Close()
	}
	if err != nil {
		k.metrics.observe(op, statusFailed, time.Since(start).Seconds())
		if errors.Is(err, types.ErrUnsettledFunds) {
			k.metrics.UnsettledAborts.WithLabelValues(op).Inc()
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		k.Logger(sdkCtx).Error("settlement aborted", "op", op, "error", err)
		return err
	}

	write()
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventType(op), u.attrs...))

	k.metrics.observe(op, statusSuccess, time.Since(start).Seconds())
	for _, d := range u.deposits {
		k.metrics.DepositedVolume.WithLabelValues(d.asset.String()).Add(toFloat(d.amount))
	}
	span.SetStatus(codes.Ok, "")
	k.Logger(sdkCtx).Debug("settlement committed", "op", op, "deposits", len(u.deposits))
	return nil
}

func validateAmount(name string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("%s %s must be non-negative", name, amount)
	}
	return nil
}

func validatePositive(name string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("%s %s must be positive", name, amount)
	}
	return nil
}

// namedAmount is a request amount; primary amounts must be positive while
// slippage minimums may be zero.
type namedAmount struct {
	name     string
	amount   math.Int
	positive bool
}

func primary(name string, amount math.Int) namedAmount {
	return namedAmount{name: name, amount: amount, positive: true}
}

func minimum(name string, amount math.Int) namedAmount {
	return namedAmount{name: name, amount: amount}
}

func validateAmounts(amounts ...namedAmount) error {
	for _, a := range amounts {
		check := validateAmount
		if a.positive {
			check = validatePositive
		}
		if err := check(a.name, a.amount); err != nil {
			return err
		}
	}
	return nil
}
