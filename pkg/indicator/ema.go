package indicator

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/c9s/bbgo-ema/pkg/types"
)

// DefaultEMAPeriod is the period used by DefaultEMA.
const DefaultEMAPeriod = 9

// EMA is a recursive exponential moving average with the smoothing weight 1/(period+1).
//
// The first sample fed after construction or Reset seeds the average verbatim,
// every later sample is blended as
//
//	value = weight*sample + (1-weight)*value
//
// EMA is not safe for concurrent use, use one instance per stream.
//
//go:generate callbackgen -type EMA
type EMA struct {
	period int
	weight float64

	value  float64
	seeded bool

	updateCallbacks []func(value float64)
}

var _ Float64Updater = &EMA{}
var _ KLinePusher = &EMA{}
var _ KLineClosedBinder = &EMA{}

// NewEMA creates an EMA of the given period. period must be at least 1.
func NewEMA(period int) (*EMA, error) {
	if period < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "EMA period must be >= 1, got %d", period)
	}

	return &EMA{
		period: period,
		weight: 1.0 / float64(period+1),
	}, nil
}

// DefaultEMA creates an EMA with DefaultEMAPeriod.
func DefaultEMA() *EMA {
	return &EMA{
		period: DefaultEMAPeriod,
		weight: 1.0 / float64(DefaultEMAPeriod+1),
	}
}

// Update feeds one sample and returns the updated average.
func (inc *EMA) Update(value float64) float64 {
	if !inc.seeded {
		inc.value = value
		inc.seeded = true
	} else {
		inc.value = inc.weight*value + (1-inc.weight)*inc.value
	}

	inc.EmitUpdate(inc.value)
	return inc.value
}

// PushK feeds the close price of k.
func (inc *EMA) PushK(k types.ClosePricer) float64 {
	return inc.Update(k.GetClose())
}

// Reset drops the accumulated value, the next Update seeds the average again.
func (inc *EMA) Reset() {
	inc.value = 0
	inc.seeded = false
}

func (inc *EMA) Period() int {
	return inc.period
}

func (inc *EMA) Weight() float64 {
	return inc.weight
}

// Last returns the current average, or 0 before the first sample.
func (inc *EMA) Last() float64 {
	return inc.value
}

func (inc *EMA) Seeded() bool {
	return inc.seeded
}

func (inc *EMA) String() string {
	return fmt.Sprintf("EMA(%d)", inc.period)
}

func (inc *EMA) BindK(target KLineClosedEmitter, symbol string, interval types.Interval) {
	target.OnKLineClosed(types.KLineWith(symbol, interval, func(k types.KLine) {
		inc.PushK(k)
	}))
}
