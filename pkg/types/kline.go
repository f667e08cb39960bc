package types

import (
	"fmt"
	"time"
)

// ClosePricer is the only capability the indicators need from a market data record.
type ClosePricer interface {
	GetClose() float64
}

// KLine is a single OHLCV bar.
type KLine struct {
	Symbol   string   `json:"symbol"`
	Interval Interval `json:"interval"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`

	Closed bool `json:"closed"`
}

var _ ClosePricer = KLine{}

func (k KLine) GetClose() float64 {
	return k.Close
}

func (k KLine) GetOpen() float64 {
	return k.Open
}

func (k KLine) GetHigh() float64 {
	return k.High
}

func (k KLine) GetLow() float64 {
	return k.Low
}

// GetChange returns Close - Open
func (k KLine) GetChange() float64 {
	return k.Close - k.Open
}

func (k KLine) String() string {
	return fmt.Sprintf("%s %s %s O: %.4f H: %.4f L: %.4f C: %.4f CHG: %.4f V: %.4f",
		k.StartTime.Format("2006-01-02 15:04"),
		k.Symbol, k.Interval, k.Open, k.High, k.Low, k.Close, k.GetChange(), k.Volume)
}

type KLineCallback func(k KLine)

// KLineWith filters the kline callback by the given symbol and interval.
// Klines without an interval are passed through.
func KLineWith(symbol string, interval Interval, callback KLineCallback) KLineCallback {
	return func(k KLine) {
		if k.Symbol != symbol || (k.Interval != "" && k.Interval != interval) {
			return
		}
		callback(k)
	}
}
