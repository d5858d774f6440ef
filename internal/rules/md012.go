package rules

import (
	"strings"

	"github.com/mdlint/mdlint/internal/types"
)

// ConsecutiveBlanks reports runs of three or more consecutive blank lines
// (MD012). A line is blank when its trimmed content is empty. Only the
// line where a run first reaches three blanks is recorded, so each maximal
// run yields exactly one violation.
func ConsecutiveBlanks(path string, data []byte) []types.Violation {
	var out []types.Violation
	blanks := 0
	for i, raw := range splitLines(data) {
		if strings.TrimSpace(string(raw)) != "" {
			blanks = 0
			continue
		}
		blanks++
		if blanks == 3 {
			out = append(out, types.Violation{
				Path:    path,
				Line:    i + 1,
				Rule:    types.RuleMD012,
				Message: Detail(types.RuleMD012),
			})
		}
	}
	return out
}
