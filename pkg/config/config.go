package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/c9s/bbgo-ema/pkg/datasource/csvsource"
	"github.com/c9s/bbgo-ema/pkg/indicator"
	"github.com/c9s/bbgo-ema/pkg/types"
)

type Metrics struct {
	// Bind is the listen address of the prometheus handler, empty to disable
	Bind string `json:"bind" yaml:"bind"`
}

// Config describes one smoothing session: which csv source to replay and
// which EMA to run over it.
type Config struct {
	Symbol   string         `json:"symbol" yaml:"symbol"`
	Interval types.Interval `json:"interval" yaml:"interval"`
	Period   int            `json:"period" yaml:"period"`

	// Decoder is the csv kline decoder name, "binance" or "close"
	Decoder string `json:"decoder" yaml:"decoder"`
	CSVPath string `json:"csvPath" yaml:"csvPath"`

	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

func Default() *Config {
	return &Config{
		Symbol:   "BTCUSDT",
		Interval: types.Interval1m,
		Period:   indicator.DefaultEMAPeriod,
		Decoder:  "binance",
	}
}

// Load reads the yaml file over the default config.
func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", configFile)
	}

	return config, nil
}

// Validate returns every problem of the config combined into one error.
func (c *Config) Validate() (err error) {
	if c.Symbol == "" {
		err = multierr.Append(err, errors.New("symbol is required"))
	}

	if _, e := types.ParseInterval(c.Interval.String()); e != nil {
		err = multierr.Append(err, e)
	}

	if _, e := indicator.NewEMA(c.Period); e != nil {
		err = multierr.Append(err, e)
	}

	if _, e := csvsource.DecoderByName(c.Decoder); e != nil {
		err = multierr.Append(err, errors.Wrapf(e, "decoder %q", c.Decoder))
	}

	return err
}

// NewEMA creates the EMA described by the config.
func (c *Config) NewEMA() (*indicator.EMA, error) {
	return indicator.NewEMA(c.Period)
}
