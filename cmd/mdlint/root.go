package mdlint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the mdlint CLI. Running it with no
// subcommand performs the check itself.
var rootCmd = &cobra.Command{
	Use:           "mdlint [files...]",
	Short:         "Lint markdown files",
	Long:          "mdlint scans a directory tree for markdown files and reports code fences opened without a language specifier (MD040) and runs of three or more consecutive blank lines (MD012).",
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the mdlint CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
