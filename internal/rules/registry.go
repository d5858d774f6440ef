package rules

import (
	"fmt"

	"github.com/mdlint/mdlint/internal/types"
)

// ScanFunc checks one file's content and returns its violations.
type ScanFunc func(path string, data []byte) []types.Violation

var registry = map[types.Rule]ScanFunc{
	types.RuleMD040: MissingFenceLanguage,
	types.RuleMD012: ConsecutiveBlanks,
}

var titles = map[types.Rule]string{
	types.RuleMD040: "Code blocks without language specifiers",
	types.RuleMD012: "Multiple consecutive blank lines",
}

var details = map[types.Rule]string{
	types.RuleMD040: "Opening ``` without language specifier",
	types.RuleMD012: "3+ consecutive blank lines",
}

// Lookup returns the scan function for a rule.
func Lookup(r types.Rule) ScanFunc { return registry[r] }

// Describe returns the human title used in report section headers.
func Describe(r types.Rule) string { return titles[r] }

// Detail returns the per-line message for a rule's violations.
func Detail(r types.Rule) string { return details[r] }

// ForSelection resolves a --check value to the ordered list of rules to
// run. The empty string and "all" select every rule.
func ForSelection(sel string) ([]types.Rule, error) {
	if sel == "" || sel == "all" {
		return types.AllRules(), nil
	}
	for _, r := range types.AllRules() {
		if string(r) == sel {
			return []types.Rule{r}, nil
		}
	}
	return nil, fmt.Errorf("unknown check %q (want md040, md012 or all)", sel)
}
