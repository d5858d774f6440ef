package types

import "sort"

// Rule identifies one of the lint checks mdlint can run.
type Rule string

const (
	RuleMD040 Rule = "md040" // code fence opened without a language specifier
	RuleMD012 Rule = "md012" // three or more consecutive blank lines
)

// AllRules returns every rule in fixed report order.
func AllRules() []Rule { return []Rule{RuleMD040, RuleMD012} }

// Violation describes a single lint issue detected at a path and 1-based
// line, including the rule ID and a short human-readable message.
type Violation struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Table maps rule -> file path -> violating line numbers. A path appears
// under a rule only when at least one violation of that rule was found in
// it; clean files are absent, never present with an empty slice.
type Table map[Rule]map[string][]int

// Add records one violating line for a rule and path.
func (t Table) Add(r Rule, path string, line int) {
	if t[r] == nil {
		t[r] = map[string][]int{}
	}
	t[r][path] = append(t[r][path], line)
}

// Files returns the violating paths for a rule, sorted for display.
func (t Table) Files(r Rule) []string {
	out := make([]string, 0, len(t[r]))
	for p := range t[r] {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// FilesWith reports how many files violate the given rule.
func (t Table) FilesWith(r Rule) int { return len(t[r]) }

// DistinctFiles reports how many files violate at least one rule.
func (t Table) DistinctFiles() int {
	seen := map[string]bool{}
	for _, files := range t {
		for p := range files {
			seen[p] = true
		}
	}
	return len(seen)
}

// Empty reports whether the table holds no violations at all.
func (t Table) Empty() bool {
	for _, files := range t {
		if len(files) > 0 {
			return false
		}
	}
	return true
}

// Tabulate builds a Table from a flat violation list.
func Tabulate(vs []Violation) Table {
	t := Table{}
	for _, v := range vs {
		t.Add(v.Rule, v.Path, v.Line)
	}
	return t
}
