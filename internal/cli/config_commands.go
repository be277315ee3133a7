package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ayn2op/spinwheel/internal/config"
	"github.com/spf13/cobra"
)

// ErrConfigExists is returned by 'config init' when the file exists and
// --force is not set.
var ErrConfigExists = errors.New("configuration file already exists (use --force to overwrite)")

// newConfigCmd creates the 'config' command group.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the spinwheel configuration",
		Long: `Configuration management commands for spinwheel.

Commands:
  init  - Write a configuration file with the defaults
  show  - Display the effective configuration
  path  - Show the configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd(opts))
	configCmd.AddCommand(newConfigShowCmd(opts))
	configCmd.AddCommand(newConfigPathCmd(opts))
	return configCmd
}

// configPath returns the --config path or the default one.
func (o *rootOptions) configPath() (string, error) {
	if o.cfgFile != "" {
		return o.cfgFile, nil
	}
	return config.DefaultPath()
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s", ErrConfigExists, path)
			}
			if err := config.Save(config.New(), path); err != nil {
				return err
			}
			opts.logger.Info().Str("path", path).Msg("configuration written")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")
	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			return config.Write(cfg, cmd.OutOrStdout())
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.configPath()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
