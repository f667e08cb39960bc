package csvsource

import (
	"encoding/csv"
	"time"

	"github.com/c9s/bbgo-ema/pkg/types"
)

// KLineReader reads one kline at a time from a data source.
type KLineReader interface {
	Read(interval time.Duration) (types.KLine, error)
}

var _ KLineReader = (*CSVKLineReader)(nil)

// CSVKLineReader is a KLineReader that reads from a CSV file.
type CSVKLineReader struct {
	csv     *csv.Reader
	decoder CSVKLineDecoder
}

// NewCSVKLineReader creates a new CSVKLineReader with the default Binance decoder.
func NewCSVKLineReader(csv *csv.Reader) *CSVKLineReader {
	return NewCSVKLineReaderWithDecoder(csv, BinanceCSVKLineDecoder)
}

// NewCSVKLineReaderWithDecoder creates a new CSVKLineReader with the given decoder.
func NewCSVKLineReaderWithDecoder(csv *csv.Reader, decoder CSVKLineDecoder) *CSVKLineReader {
	// rows of a close-only file have fewer fields than OHLCV rows
	csv.FieldsPerRecord = -1
	csv.Comment = '#'
	return &CSVKLineReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next KLine from the underlying CSV data.
// Decoding errors leave the reader positioned on the next record.
func (r *CSVKLineReader) Read(interval time.Duration) (types.KLine, error) {
	var k types.KLine

	rec, err := r.csv.Read()
	if err != nil {
		return k, err
	}

	return r.decoder(rec, interval)
}
