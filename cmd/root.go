package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/internal/config"
	"github.com/btraven00/geobridge/internal/extractor"
	"github.com/btraven00/geobridge/internal/resolver"
)

var (
	cfgFile   string
	envFile   string
	verbose   bool
	quiet     bool
	output    string
	colorMode string
	timeout   time.Duration
	userAgent string
)

// Resolved by initConfig before any subcommand runs.
var (
	cfg    config.Config
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geobridge",
	Short: "Extract coordinates from map links and open them anywhere",
	Long: `Geobridge reads a map link or a coordinate pair, works out the
latitude and longitude it points at, and prints equivalent links for
Apple Maps, Google Maps, Google Earth, Waze, OpenStreetMap, Bing Maps,
Yandex Maps and Here WeGo.

Short links (maps.app.goo.gl, goo.gl, bit.ly, maps.apple) are expanded over
the network; everything else is decoded offline.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geobridge.yaml)")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file with GEOBRIDGE_* variables (ignored when missing)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	flags.StringVarP(&output, "output", "o", bridge.FormatHuman, "output format (human, json, csv)")
	flags.StringVar(&colorMode, "color", bridge.ColorAuto, "color output: auto, always, never")
	flags.DurationVar(&timeout, "timeout", resolver.DefaultTimeout, "timeout for each network request")
	flags.StringVar(&userAgent, "user-agent", resolver.DefaultUserAgent, "User-Agent sent when expanding short links")
}

// initConfig merges defaults, the dotenv file, the config file, GEOBRIDGE_*
// variables and flags into cfg, and builds the logger.
func initConfig(cmd *cobra.Command, _ []string) error {
	logger = newLogger(cmd.ErrOrStderr())

	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	v := viper.New()
	config.Configure(v)

	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".geobridge")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}

	cfg = loaded

	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeyOutput:    "output",
		config.KeyColor:     "color",
		config.KeyTimeout:   "timeout",
		config.KeyUserAgent: "user-agent",
		config.KeyWorkers:   "workers",
	}

	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newResolver() *resolver.Resolver {
	return resolver.New(cfg.Timeout,
		resolver.WithUserAgent(cfg.UserAgent),
		resolver.WithMaxBodyBytes(cfg.MaxBodyBytes),
		resolver.WithLogger(logger))
}

// newService builds the extraction pipeline. Without expansion it stays offline.
func newService(expand bool) *extractor.Service {
	var exp extractor.Expander
	if expand {
		exp = newResolver()
	}

	return extractor.New(exp,
		extractor.WithShortLinkHosts(cfg.ShortLinkHosts),
		extractor.WithLogger(logger))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func newPrinter(cmd *cobra.Command) *bridge.Printer {
	out := cmd.OutOrStdout()
	return bridge.NewPrinter(out, cfg.Output, bridge.ColorEnabled(cfg.Color, out))
}
