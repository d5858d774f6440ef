package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mdlint/mdlint/internal/rules"
	"github.com/mdlint/mdlint/internal/types"
)

const separator = "================================================================================"

// PrintOptions controls report rendering.
type PrintOptions struct {
	ListFiles    bool
	NoColor      bool
	FilesChecked int
}

// Print writes the sectioned violation report followed by the summary
// block. Sections appear in fixed rule order and only for rules with at
// least one violating file; files within a section are sorted by path.
func Print(w io.Writer, table types.Table, opts PrintOptions) {
	for _, r := range types.AllRules() {
		if table.FilesWith(r) == 0 {
			continue
		}
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "%s: %s\n", ruleID(r), rules.Describe(r))
		fmt.Fprintln(w, separator)
		for _, path := range table.Files(r) {
			if opts.ListFiles {
				fmt.Fprintln(w, path)
				continue
			}
			fmt.Fprintf(w, "\n%s:\n", path)
			for _, line := range table[r][path] {
				fmt.Fprintf(w, "  Line %d: %s\n", line, rules.Detail(r))
			}
		}
		fmt.Fprintf(w, "\nTotal files with %s violations: %d\n\n", ruleID(r), table.FilesWith(r))
	}

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Total markdown files checked: %d\n", opts.FilesChecked)
	fmt.Fprintf(w, "Files with violations: %d\n", table.DistinctFiles())
	fmt.Fprintf(w, "  - MD040 (missing language): %d files\n", table.FilesWith(types.RuleMD040))
	fmt.Fprintf(w, "  - MD012 (multiple blanks): %d files\n", table.FilesWith(types.RuleMD012))

	if table.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, colorGreen("✓ No violations found!", opts.NoColor))
	}
}

// HasViolations reports whether the run should exit non-zero.
func HasViolations(table types.Table) bool { return !table.Empty() }

func ruleID(r types.Rule) string { return strings.ToUpper(string(r)) }

func colorGreen(s string, noColor bool) string {
	if noColor {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}
