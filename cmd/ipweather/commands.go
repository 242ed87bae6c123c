package main

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ipweather/internal/config"
	"ipweather/internal/weather"
)

// appFactory builds the App once configuration is loaded
type appFactory func(cfg *config.Config, logger *slog.Logger) (*App, error)

var negativeCount = regexp.MustCompile(`^-[0-9]+$`)

// execute runs root with args. A bare negative count such as -3 is moved
// behind "--" so pflag does not read it as a shorthand flag.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(countArgs(root, args))
	return root.Execute()
}

func countArgs(root *cobra.Command, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !negativeCount.MatchString(arg) || isFlagValue(root, args, i) {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, args[i+1:]...)
		if !slices.Contains(out, "--") {
			out = append(out, "--")
		}
		return append(out, arg)
	}
	return args
}

// isFlagValue reports whether args[i] is the separate value of the flag before it
func isFlagValue(root *cobra.Command, args []string, i int) bool {
	if i == 0 {
		return false
	}
	prev := args[i-1]
	if !strings.HasPrefix(prev, "--") || strings.Contains(prev, "=") {
		return false
	}
	name := strings.TrimPrefix(prev, "--")
	f := root.Flags().Lookup(name)
	if f == nil {
		f = root.PersistentFlags().Lookup(name)
	}
	return f != nil && f.NoOptDefVal == ""
}

func newRootCmd(newApp appFactory) *cobra.Command {
	var chartPath string

	root := &cobra.Command{
		Use:   "ipweather [count]",
		Short: "Show the 7Timer! forecast for your IP address location",
		Long: `ipweather geolocates your public IP address, fetches the 7Timer! civil
forecast for that location and prints the 3-hour entries starting with the
most recent one. Type "view" at the closing prompt to open the graphical
forecast in a browser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			count, err := parseCount(args, cfg.App.Count)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			return app.RunForecast(cmd.OutOrStdout(), cmd.InOrStdin(), count, chartPath)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./config.yaml or $HOME/.ipweather/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.Duration("timeout", 0, "HTTP timeout for upstream calls, 0 waits indefinitely")
	pf.String("time-source", config.TimeSourceLocal, "clock to align the forecast with: local or location")

	f := root.Flags()
	f.Bool("no-prompt", false, "exit without waiting for input")
	f.Int("width", 80, "width of a forecast block")
	f.StringVar(&chartPath, "chart", "", "also write an HTML temperature chart to this file")

	root.AddCommand(newServeCmd(newApp))

	return root
}

func newServeCmd(newApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve forecasts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("starting server", "addr", cfg.GetServerAddr())
			if err := app.Serve(cfg.GetServerAddr()); err != nil {
				logger.Error("server failed", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().Int("port", 8080, "port to listen on")

	return cmd
}

// setup loads configuration and installs the default logger
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	return cfg, logger, nil
}

// parseCount reads the optional entry count argument. A missing or
// non-positive count becomes 1, a non-integer is an error.
func parseCount(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return weather.NormalizeCount(fallback), nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: must be an integer", args[0])
	}
	return weather.NormalizeCount(n), nil
}
