package csvsource

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/c9s/bbgo-ema/pkg/types"
)

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid time unix milli format.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")

	// ErrUnknownDecoder is returned by DecoderByName for an unregistered decoder name.
	ErrUnknownDecoder = errors.New("unknown csv kline decoder")
)

// CSVKLineDecoder is an extension point for CSVKLineReader to support custom file formats.
type CSVKLineDecoder func(record []string, interval time.Duration) (types.KLine, error)

var decoders = map[string]CSVKLineDecoder{
	"binance": BinanceCSVKLineDecoder,
	"close":   CloseCSVKLineDecoder,
}

// DecoderByName looks up a decoder by its config name, "binance" or "close".
func DecoderByName(name string) (CSVKLineDecoder, error) {
	if d, ok := decoders[strings.ToLower(name)]; ok {
		return d, nil
	}

	return nil, ErrUnknownDecoder
}

// BinanceCSVKLineDecoder decodes a CSV record from Binance or Bybit into a KLine.
// Columns: unix milli open time, open, high, low, close and an optional volume.
func BinanceCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	if len(record) < 5 {
		return k, ErrNotEnoughColumns
	}

	startTime, err := parseUnixMilli(record[0])
	if err != nil {
		return empty, err
	}
	k.StartTime = startTime
	k.EndTime = startTime.Add(interval)

	prices := []*float64{&k.Open, &k.High, &k.Low, &k.Close}
	for i, p := range prices {
		v, err := parsePrice(record[i+1])
		if err != nil {
			return empty, err
		}
		*p = v
	}

	if len(record) > 5 {
		k.Volume, err = strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		if err != nil {
			return empty, ErrInvalidVolumeFormat
		}
	}

	k.Closed = true
	return k, nil
}

// CloseCSVKLineDecoder decodes a bare close price series.
// A record is either [close] or [unix milli time, close].
func CloseCSVKLineDecoder(record []string, interval time.Duration) (types.KLine, error) {
	var k, empty types.KLine

	switch len(record) {
	case 0:
		return empty, ErrNotEnoughColumns

	case 1:
		c, err := parsePrice(record[0])
		if err != nil {
			return empty, err
		}
		k.Open, k.High, k.Low, k.Close = c, c, c, c

	default:
		startTime, err := parseUnixMilli(record[0])
		if err != nil {
			return empty, err
		}

		c, err := parsePrice(record[1])
		if err != nil {
			return empty, err
		}

		k.StartTime = startTime
		k.EndTime = startTime.Add(interval)
		k.Open, k.High, k.Low, k.Close = c, c, c, c
	}

	k.Closed = true
	return k, nil
}

func parseUnixMilli(s string) (time.Time, error) {
	msec, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalidTimeFormat
	}

	return time.UnixMilli(msec).UTC(), nil
}

func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrInvalidPriceFormat
	}

	return v, nil
}
