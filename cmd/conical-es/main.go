package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/borsuksoftware/conical-es/cmd/commands"
	"github.com/borsuksoftware/conical-es/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	verbose bool
	quiet   bool
	noColor bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "conical-es",
	Short: "Create Conical evidence sets from arbitrary search criteria",
	Long: `conical-es makes it easy to create evidence sets within a Conical instance
based off of arbitrary search criteria. A typical use is a CI process which,
after a series of test run sets have been uploaded, collates them together
for analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(quiet, noColor)

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		commands.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of conical-es",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "conical-es version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and results")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewValuesCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.Fatal(err)
	}
}
