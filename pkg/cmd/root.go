package cmd

import (
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var RootCmd = &cobra.Command{
	Use:   "emasmooth",
	Short: "exponential moving average smoother",
	Long:  "stream kline data through an exponential moving average",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := bindViper(cmd.Root()); err != nil {
			return err
		}

		// the dotenv file must be loaded before the logger reads EMA_DEBUG and EMA_ENV
		dotenvFile := viper.GetString("dotenv")
		loaded := false
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return errors.Wrapf(err, "unable to load dotenv file %s", dotenvFile)
			}
			loaded = true
		}

		setupLogger()

		if loaded {
			log.Debugf("loaded dotenv file %s", dotenvFile)
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file you want to load")
	RootCmd.PersistentFlags().String("log-dir", "log", "log directory used in production environment")
}

func setupLogger() {
	log.SetFormatter(&prefixed.TextFormatter{})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	environment := os.Getenv("EMA_ENV")
	switch environment {
	case "production", "prod":
		writer := &lumberjack.Logger{
			Filename:   path.Join(viper.GetString("log-dir"), "emasmooth.log"),
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     28,
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}
}

// bindViper binds the EMA_* env vars and the root flags to viper.
// The env vars are looked up lazily, so values loaded from the dotenv file later are still seen.
func bindViper(root *cobra.Command) error {
	viper.SetEnvPrefix("EMA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		return errors.Wrap(err, "failed to bind persistent flags")
	}

	if err := viper.BindPFlags(root.Flags()); err != nil {
		return errors.Wrap(err, "failed to bind local flags")
	}

	return nil
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
