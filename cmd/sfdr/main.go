package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veridis/sfdr-engine/cmd/sfdr/commands"
	"github.com/veridis/sfdr-engine/logger"
)

var rootCmd = &cobra.Command{
	Use:   "sfdr",
	Short: "SFDR disclosure classification engine",
	Long: `SFDR disclosure classification for financial products.

Classifies fund disclosures into SFDR Article 6, 8, or 9 using a
dual-strategy engine (model plus regulatory rules) with compliance
validation, benchmarking, and audit trails.

Available commands:
  classify - Classify a disclosure document from a file or stdin
  serve    - Start the classification HTTP server
  config   - Show the effective configuration
  version  - Show version information

Examples:
  sfdr classify prospectus.txt
  echo "ESG screening fund" | sfdr classify -
  sfdr serve --port 8787
  sfdr config show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logger.SetLevel(logger.VerbosityToLevel(verbosity))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.ClassifyCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
