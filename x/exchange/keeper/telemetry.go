package keeper

import (
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"

	"github.com/paw-chain/pawswap/x/exchange/types"
	sharedtypes "github.com/paw-chain/pawswap/x/shared/types"
)

func incrCounter(event string, key sharedtypes.PoolKey, extra ...metrics.Label) {
	labels := append([]metrics.Label{
		telemetry.NewLabel("pool", key.String()),
		telemetry.NewLabel("curve", key.Curve.String()),
	}, extra...)
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, event}, 1, labels)
}

func kindLabel(kind string) metrics.Label {
	return telemetry.NewLabel("kind", kind)
}
