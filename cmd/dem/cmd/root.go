package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var (
	verbose   bool
	configDir string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "dem",
		Level:  log.WarnLevel,
	})
)

var rootCmd = &cobra.Command{
	Use:   "dem",
	Short: "Manage containerized Development Environments",
	Long: `dem manages Development Environments built from containerized tools.

Each Development Environment assigns one tool image per tool type
(build system, toolchain, debugger, deployer, test framework).
Inspect them with list and info, and change them with modify.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dem %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.dem, or $DEM_CONFIG_DIR)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
