package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/bbgo-ema/pkg/indicator"
	"github.com/c9s/bbgo-ema/pkg/types"
)

var EMAValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "ema_value",
		Help: "the last smoothed value of the EMA",
	}, []string{"symbol", "interval", "period"})

var EMASamplesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ema_samples_total",
		Help: "the number of samples fed into the EMA",
	}, []string{"symbol", "interval"})

func init() {
	prometheus.MustRegister(EMAValueMetrics, EMASamplesMetrics)
}

// Observe exports every update of ema under the given symbol and interval.
func Observe(ema *indicator.EMA, symbol string, interval types.Interval) {
	valueGauge := EMAValueMetrics.With(prometheus.Labels{
		"symbol":   symbol,
		"interval": interval.String(),
		"period":   strconv.Itoa(ema.Period()),
	})
	samplesCounter := EMASamplesMetrics.With(prometheus.Labels{
		"symbol":   symbol,
		"interval": interval.String(),
	})

	ema.OnUpdate(func(value float64) {
		valueGauge.Set(value)
		samplesCounter.Inc()
	})
}
