package indicator

import "github.com/c9s/bbgo-ema/pkg/types"

// KLineClosedEmitter is currently applied to the market data stream
// the market data stream emits the KLine closed event to the listeners.
type KLineClosedEmitter interface {
	OnKLineClosed(cb types.KLineCallback)
}

type KLineClosedBinder interface {
	BindK(target KLineClosedEmitter, symbol string, interval types.Interval)
}

// KLinePusher provides an interface for API user to push kline value to the indicator.
// The indicator implements its own way to calculate the value from the given kline object.
type KLinePusher interface {
	PushK(k types.ClosePricer) float64
}

// Float64Updater is the primitive numeric entry point of a streaming indicator.
type Float64Updater interface {
	Update(value float64) float64
}
