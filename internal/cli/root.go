// Package cli provides the command-line interface of spinwheel.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/internal/config"
	"github.com/ayn2op/spinwheel/internal/demo"
	"github.com/ayn2op/spinwheel/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set by the main package at startup.
var Version = "v0.1.0-dev"

// ErrInvalidSize is returned for a malformed --snapshot size.
var ErrInvalidSize = errors.New("size must look like 80x24")

// rootOptions holds the persistent flags and the state built from them.
type rootOptions struct {
	cfgFile    string
	verbose    bool
	logFile    string
	visible    int
	cyclic     bool
	horizontal bool
	snapshot   string

	logger *logging.Logger
}

// NewRootCmd creates the root command. Without a subcommand it runs the demo
// named by its argument.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{logger: logging.Nop()})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spinwheel [" + strings.Join(demo.Names(), "|") + "]",
		Short: "Picker wheels for the terminal",
		Long: `spinwheel ` + Version + `
Scrollable picker wheels with inertial scrolling, snapping and wraparound.

Demos:
  time    - hours, minutes and AM/PM
  date    - day, month and year; the day wheel follows the month length
  slot    - a slot machine spun by the Mix button
  color   - hue, saturation and value mixed into a swatch
  cities  - the city wheel is repopulated when the country changes

Settings are read from spinwheel.conf (see "spinwheel config path") and can be
overridden with flags.`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     demo.Names(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
			logger, err := logging.Open(opts.logFile)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := demo.DefaultName
			if len(args) == 1 {
				name = args[0]
			}
			return opts.run(cmd, name)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "Configuration file path")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages (requires --log-file)")
	flags.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")

	rootCmd.Flags().IntVar(&opts.visible, "visible", 0, "Number of visible items (overrides config)")
	rootCmd.Flags().BoolVar(&opts.cyclic, "cyclic", false, "Wrap wheels around (overrides config)")
	rootCmd.Flags().BoolVar(&opts.horizontal, "horizontal", false, "Scroll horizontally (overrides config)")
	rootCmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Print one frame of the given size, e.g. 80x24, instead of running")

	rootCmd.Version = Version
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig loads the configuration file and applies the flags set on cmd.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("visible") {
		cfg.Wheel.VisibleItems = o.visible
	}
	if flags.Changed("cyclic") {
		cfg.Wheel.Cyclic = o.cyclic
	}
	if flags.Changed("horizontal") {
		cfg.Wheel.Orientation = config.OrientationVertical
		if o.horizontal {
			cfg.Wheel.Orientation = config.OrientationHorizontal
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// demoOptions converts cfg into the options of a demo.
func (o *rootOptions) demoOptions(cfg *config.Config) demo.Options {
	return demo.Options{
		Engine:      cfg.Engine(),
		Horizontal:  cfg.Horizontal(),
		DimmedAlpha: cfg.Wheel.DimmedAlpha,
		BorderSet:   cfg.BorderSet(),
		Logger:      o.logger.Zerolog(),
	}
}

func (o *rootOptions) run(cmd *cobra.Command, name string) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	screen, err := demo.New(name, o.demoOptions(cfg))
	if err != nil {
		return err
	}

	if o.snapshot != "" {
		width, height, err := parseSize(o.snapshot)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), spinwheel.Snapshot(screen, width, height))
		return err
	}

	o.logger.Info().Str("demo", name).Int("visible", cfg.Wheel.VisibleItems).Str("orientation", cfg.Wheel.Orientation).Msg("starting")
	app := spinwheel.NewApplication().
		SetLogger(o.logger.Zerolog()).
		SetRoot(screen)
	if err := app.Run(); err != nil {
		return fmt.Errorf("run %s demo: %w", name, err)
	}
	o.logger.Info().Str("demo", name).Msg("stopped")
	return nil
}

// parseSize parses "WxH" into positive dimensions.
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return width, height, nil
}

// newListCmd creates the 'list' command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range demo.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
