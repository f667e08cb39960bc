package csvsource

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/bbgo-ema/pkg/indicator"
	"github.com/c9s/bbgo-ema/pkg/types"
)

func TestStream_Run(t *testing.T) {
	errDiskGone := errors.New("disk gone")

	tests := []struct {
		name        string
		give        io.Reader
		wantErr     error
		wantSkipped int
		want        []float64
	}{
		{
			name: "skip undecodable row",
			give: strings.NewReader(strings.Join([]string{
				"1609459200000,1,3,0.5,2.0",
				"1609459260000,2,6,1.5,5.0",
				"1609459320000,bad,1,1,1",
				"1609459380000,5,5,0.5,1.0",
				"1609459440000,1,7,1,6.25",
			}, "\n")),
			wantSkipped: 1,
			want:        []float64{2.0, 2.75, 2.3125, 3.296875},
		},
		{
			name: "skip row with bare quote",
			give: strings.NewReader(strings.Join([]string{
				"1609459200000,1,3,0.5,2.0",
				"1609459260000,2,6,1.5,5\"0",
				"1609459320000,2,6,1.5,5.0",
			}, "\n")),
			wantSkipped: 1,
			want:        []float64{2.0, 2.75},
		},
		{
			name:    "abort on read error",
			give:    iotest.ErrReader(errDiskGone),
			wantErr: errDiskGone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := NewStream(tt.give, StreamConfig{
				Symbol:   "BTCUSDT",
				Interval: types.Interval1m,
			})

			var klines []types.KLine
			stream.OnKLineClosed(func(k types.KLine) {
				klines = append(klines, k)
			})

			ema, err := indicator.NewEMA(3)
			require.NoError(t, err)
			ema.BindK(stream, "BTCUSDT", types.Interval1m)

			var values []float64
			ema.OnUpdate(func(v float64) {
				values = append(values, v)
			})

			err = stream.Run(context.Background())
			if tt.wantErr != nil {
				if assert.Error(t, err) {
					assert.True(t, errors.Is(err, tt.wantErr))
					assert.Contains(t, err.Error(), "unable to read csv row 1")
				}
				assert.Empty(t, values)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSkipped, stream.Skipped())
			if assert.Len(t, klines, len(tt.want)) {
				assert.Equal(t, "BTCUSDT", klines[0].Symbol)
				assert.Equal(t, types.Interval1m, klines[0].Interval)
			}

			if assert.Len(t, values, len(tt.want)) {
				for i := range tt.want {
					assert.InDelta(t, tt.want[i], values[i], 1e-12)
				}
			}
		})
	}
}

func TestStream_RunCanceled(t *testing.T) {
	stream := NewStream(strings.NewReader("1.0\n2.0\n"), StreamConfig{
		Symbol:   "BTCUSDT",
		Interval: types.Interval1m,
		Decoder:  CloseCSVKLineDecoder,
	})

	var cnt int
	stream.OnKLineClosed(func(k types.KLine) { cnt++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := stream.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, cnt)
}
