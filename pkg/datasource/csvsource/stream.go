package csvsource

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/bbgo-ema/pkg/types"
	"github.com/c9s/bbgo-ema/pkg/util"
)

var log = logrus.WithField("component", "csvsource")

type StreamConfig struct {
	Symbol   string
	Interval types.Interval
	Decoder  CSVKLineDecoder
}

// Stream replays a CSV kline file as closed kline events, one record at a time.
//
//go:generate callbackgen -type Stream
type Stream struct {
	config StreamConfig
	reader *CSVKLineReader
	logger *util.WarnFirstLogger

	skipped int

	kLineClosedCallbacks []types.KLineCallback
}

func NewStream(r io.Reader, config StreamConfig) *Stream {
	if config.Decoder == nil {
		config.Decoder = BinanceCSVKLineDecoder
	}

	return &Stream{
		config: config,
		reader: NewCSVKLineReaderWithDecoder(csv.NewReader(r), config.Decoder),
		logger: util.NewWarnFirstLogger(5, time.Minute, log),
	}
}

// Skipped returns the number of records dropped because they could not be decoded.
func (s *Stream) Skipped() int {
	return s.skipped
}

// Run reads the records until EOF and emits each decoded kline.
// Undecodable records are logged and skipped.
func (s *Stream) Run(ctx context.Context) error {
	interval := s.config.Interval.Duration()

	for row := 1; ; row++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		k, err := s.reader.Read(interval)
		if err == io.EOF {
			return nil
		}

		if err != nil {
			var parseErr *csv.ParseError
			if !isDecodeError(err) && !errors.As(err, &parseErr) {
				return errors.Wrapf(err, "unable to read csv row %d", row)
			}

			s.skipped++
			s.logger.WarnOrError(err, "skipping csv row %d", row)
			continue
		}

		k.Symbol = s.config.Symbol
		k.Interval = s.config.Interval
		s.EmitKLineClosed(k)
	}
}

func isDecodeError(err error) bool {
	switch err {
	case ErrNotEnoughColumns, ErrInvalidTimeFormat, ErrInvalidPriceFormat, ErrInvalidVolumeFormat:
		return true
	}

	return false
}
