package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/c9s/bbgo-ema/pkg/indicator"
	"github.com/c9s/bbgo-ema/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	type args struct {
		configFile string
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		f       func(t *testing.T, config *Config)
	}{
		{
			name: "full",
			args: args{configFile: "testdata/ema.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, "ETHUSDT", config.Symbol)
				assert.Equal(t, types.Interval5m, config.Interval)
				assert.Equal(t, 21, config.Period)
				assert.Equal(t, "close", config.Decoder)
				assert.Equal(t, "testdata/closes.csv", config.CSVPath)
				assert.Equal(t, ":9090", config.Metrics.Bind)
				assert.NoError(t, config.Validate())
			},
		},
		{
			name: "defaults",
			args: args{configFile: "testdata/partial.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, "ETHUSDT", config.Symbol)
				assert.Equal(t, types.Interval1m, config.Interval)
				assert.Equal(t, indicator.DefaultEMAPeriod, config.Period)
				assert.Equal(t, "binance", config.Decoder)
				assert.NoError(t, config.Validate())
			},
		},
		{
			name: "invalid",
			args: args{configFile: "testdata/invalid.yaml"},
			f: func(t *testing.T, config *Config) {
				err := config.Validate()
				assert.Len(t, multierr.Errors(err), 4)
				assert.True(t, errors.Is(err, indicator.ErrInvalidParameter))
			},
		},
		{
			name:    "missing",
			args:    args{configFile: "testdata/missing.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.args.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestConfig_NewEMA(t *testing.T) {
	config := Default()
	ema, err := config.NewEMA()
	require.NoError(t, err)
	assert.Equal(t, "EMA(9)", ema.String())

	config.Period = 0
	_, err = config.NewEMA()
	assert.True(t, errors.Is(err, indicator.ErrInvalidParameter))
}
