package mdlint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mdlint/mdlint/internal/config"
	"github.com/mdlint/mdlint/internal/engine"
	"github.com/mdlint/mdlint/internal/report"
	"github.com/mdlint/mdlint/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagRoot       string
	flagCheck      string
	flagListFiles  bool
	flagExcludeDir string
	flagInclude    string
	flagExclude    string
	flagMaxBytes   int64
	flagBaseline   string
)

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", ".", "root directory to search when no files are given")
	rootCmd.Flags().StringVar(&flagCheck, "check", "all", "which checks to run: md040, md012 or all")
	rootCmd.Flags().BoolVar(&flagListFiles, "list-files", false, "list files with violations, without line detail")
	rootCmd.Flags().StringVar(&flagExcludeDir, "exclude-dir", "", "comma-separated directory names to skip during discovery (overrides defaults)")
	rootCmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	rootCmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (0 = no limit)")
	rootCmd.Flags().StringVar(&flagBaseline, "baseline", "", "baseline file of accepted violations")
}

func runCheck(cmd *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(flagRoot)
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if !noColor && !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	// --check carries a non-empty default, so config only applies when the
	// flag was not set on the command line.
	check := flagCheck
	if !cmd.Flags().Changed("check") {
		if v := pickString("", lcfg.Check, gcfg.Check); v != "" {
			check = v
		}
	}

	cfg := engine.Config{
		Root:         abs,
		Files:        args,
		Check:        check,
		ExcludeDirs:  splitList(pickString(flagExcludeDir, lcfg.ExcludeDirs, gcfg.ExcludeDirs)),
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
	}

	res, err := engine.Scan(cfg)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	violations := res.Violations
	if bl := pickString(flagBaseline, lcfg.Baseline, gcfg.Baseline); bl != "" {
		base, err := report.LoadBaseline(bl)
		if err != nil {
			// fail open: an unusable baseline reports everything
			fmt.Fprintln(os.Stderr, "baseline warning:", err)
		}
		violations = report.FilterNewViolations(violations, base)
	}
	table := types.Tabulate(violations)

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, violations); err != nil {
			return fmt.Errorf("sarif error: %w", err)
		}
	case flagJSON:
		if violations == nil {
			violations = []types.Violation{}
		} // no `null` in JSON
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(violations); err != nil {
			return err
		}
	default:
		report.Print(os.Stdout, table, report.PrintOptions{
			ListFiles:    pickBool(flagListFiles, lcfg.ListFiles, gcfg.ListFiles),
			NoColor:      noColor,
			FilesChecked: res.FilesChecked,
		})
	}

	if report.HasViolations(table) {
		os.Exit(1)
	}
	return nil
}
