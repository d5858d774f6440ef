package mdlint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdlint/mdlint/internal/engine"
	"github.com/mdlint/mdlint/internal/files"
	"github.com/mdlint/mdlint/internal/report"
	"github.com/spf13/cobra"
)

const baselineFile = "mdlint.baseline.json"

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage the accepted-violations baseline",
	}

	var (
		blRoot    string
		blCheck   string
		addIgnore bool
	)
	update := &cobra.Command{
		Use:   "update [files...]",
		Short: "Update baseline from a fresh check",
		RunE: func(_ *cobra.Command, args []string) error {
			abs, _ := filepath.Abs(blRoot)
			res, err := engine.Scan(engine.Config{Root: abs, Files: args, Check: blCheck})
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(baselineFile, res.Violations); err != nil {
				return err
			}
			if addIgnore {
				if err := files.AppendIgnore(abs, baselineFile); err != nil {
					fmt.Fprintln(os.Stderr, "gitignore warning:", err)
				}
			}
			fmt.Fprintln(os.Stdout, "Baseline updated.")
			return nil
		},
	}
	update.Flags().StringVar(&blRoot, "root", ".", "root directory to search when no files are given")
	update.Flags().StringVar(&blCheck, "check", "all", "which checks to run: md040, md012 or all")
	update.Flags().BoolVar(&addIgnore, "add-ignore", false, "add the baseline file to .gitignore")

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
