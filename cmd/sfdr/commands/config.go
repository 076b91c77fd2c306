package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridis/sfdr-engine/config"
	"github.com/veridis/sfdr-engine/errors"
)

// ConfigCmd manages configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage SFDR engine configuration",
	Long: `Inspect the effective configuration.

Configuration merges, in increasing precedence:
  /etc/sfdr/config.toml   (system)
  ~/.sfdr/config.toml     (user)
  ./sfdr.toml             (project, found by walking up from cwd)
  SFDR_* environment variables`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration (secrets masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		fmt.Println(cfg.String())
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Println("Configuration is valid")
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}
