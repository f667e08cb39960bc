package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/c9s/bbgo-ema/pkg/config"
	"github.com/c9s/bbgo-ema/pkg/datasource/csvsource"
	"github.com/c9s/bbgo-ema/pkg/indicator"
	"github.com/c9s/bbgo-ema/pkg/metrics"
	"github.com/c9s/bbgo-ema/pkg/style"
	"github.com/c9s/bbgo-ema/pkg/types"
	"github.com/c9s/bbgo-ema/pkg/util"
)

func init() {
	SmoothCmd.Flags().String("symbol", "", "symbol of the klines")
	SmoothCmd.Flags().String("interval", "", "interval of the klines, e.g. 1m, 1h")
	SmoothCmd.Flags().Int("period", indicator.DefaultEMAPeriod, "EMA period")
	SmoothCmd.Flags().String("decoder", "", "csv decoder, binance or close")
	SmoothCmd.Flags().String("csv", "", "csv file to read, - or empty for stdin")
	SmoothCmd.Flags().String("metrics-bind", "", "serve prometheus metrics on this address")
	SmoothCmd.Flags().Bool("no-color", false, "disable colored output")
	SmoothCmd.Flags().Bool("summary", true, "print a summary table at the end")
	RootCmd.AddCommand(SmoothCmd)
}

var SmoothCmd = &cobra.Command{
	Use:          "smooth",
	Short:        "smooth the close prices of a csv kline file",
	SilenceUsage: true,

	PreRunE: func(cmd *cobra.Command, args []string) error {
		return viper.BindPFlags(cmd.Flags())
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadSmoothConfig()
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if conf.CSVPath != "" && conf.CSVPath != "-" {
			f, err := os.Open(conf.CSVPath)
			if err != nil {
				return errors.Wrapf(err, "unable to open csv file %s", conf.CSVPath)
			}
			defer f.Close()
			in = f
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if conf.Metrics.Bind != "" {
			srv := &http.Server{Addr: conf.Metrics.Bind, Handler: promhttp.Handler()}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					util.LogErr(log.StandardLogger(), err, "metrics server error")
				}
			}()
			defer func() {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				util.LogErr(log.StandardLogger(), srv.Shutdown(shutdownCtx), "unable to shutdown metrics server")
			}()
			log.Infof("serving metrics on %s", conf.Metrics.Bind)
		}

		opts := smoothOptions{
			colored: !viper.GetBool("no-color"),
			summary: viper.GetBool("summary"),
		}
		return runSmooth(ctx, conf, in, cmd.OutOrStdout(), opts)
	},
}

// loadSmoothConfig loads the config file if any, then applies flags and EMA_* env vars over it.
func loadSmoothConfig() (*config.Config, error) {
	conf := config.Default()

	if configFile := viper.GetString("config"); configFile != "" {
		var err error
		conf, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	if viper.IsSet("symbol") {
		conf.Symbol = viper.GetString("symbol")
	}
	if viper.IsSet("interval") {
		conf.Interval = types.Interval(viper.GetString("interval"))
	}
	if viper.IsSet("period") {
		conf.Period = viper.GetInt("period")
	}
	if viper.IsSet("decoder") {
		conf.Decoder = viper.GetString("decoder")
	}
	if viper.IsSet("csv") {
		conf.CSVPath = viper.GetString("csv")
	}
	if viper.IsSet("metrics-bind") {
		conf.Metrics.Bind = viper.GetString("metrics-bind")
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return conf, nil
}

type smoothOptions struct {
	colored bool
	summary bool
}

// runSmooth feeds every kline of in through the EMA described by conf and
// writes one line per kline to out.
func runSmooth(ctx context.Context, conf *config.Config, in io.Reader, out io.Writer, opts smoothOptions) error {
	ema, err := conf.NewEMA()
	if err != nil {
		return err
	}

	decoder, err := csvsource.DecoderByName(conf.Decoder)
	if err != nil {
		return err
	}

	stream := csvsource.NewStream(in, csvsource.StreamConfig{
		Symbol:   conf.Symbol,
		Interval: conf.Interval,
		Decoder:  decoder,
	})

	metrics.Observe(ema, conf.Symbol, conf.Interval)
	ema.BindK(stream, conf.Symbol, conf.Interval)

	logger := log.WithFields(log.Fields{
		"symbol":    conf.Symbol,
		"interval":  conf.Interval,
		"indicator": ema.String(),
	})
	logger.Infof("start smoothing")

	// a failed write stops the replay, the first write error is returned
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var writeErr error
	samples := 0
	prev := 0.0
	stream.OnKLineClosed(func(k types.KLine) {
		if writeErr != nil {
			return
		}

		samples++
		last := ema.Last()

		delta := 0.0
		if samples > 1 {
			delta = last - prev
		}
		prev = last

		ts := "-"
		if !k.StartTime.IsZero() {
			ts = k.StartTime.Format(time.RFC3339)
		}

		line := fmt.Sprintf("%s %.4f %.6f %s\n", ts, k.Close, last, style.TrendSignString(delta, 6))
		if opts.colored {
			_, writeErr = style.TrendColor(delta).Fprint(out, line)
		} else {
			_, writeErr = fmt.Fprint(out, line)
		}

		if writeErr != nil {
			cancel()
		}
	})

	err = stream.Run(ctx)
	if writeErr != nil {
		return errors.Wrap(writeErr, "unable to write smoothed value")
	}

	if err != nil {
		return err
	}

	logger.Infof("processed %d klines, skipped %d rows", samples, stream.Skipped())

	if opts.summary {
		t := style.NewKeyValueTable(out, ema.String(), opts.colored && !color.NoColor)
		t.AppendRows([]table.Row{
			{"symbol", conf.Symbol},
			{"interval", conf.Interval},
			{"samples", samples},
			{"skipped", stream.Skipped()},
			{"last", fmt.Sprintf("%.6f", ema.Last())},
		})
		t.Render()
	}

	return nil
}
