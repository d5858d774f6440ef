package core

import (
	"github.com/mdlint/mdlint/internal/engine"
	"github.com/mdlint/mdlint/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type Config = engine.Config
type Violation = types.Violation
type Table = types.Table
type Result = engine.Result

// Check is the stable entrypoint for other programs.
func Check(cfg Config) ([]Violation, error) {
	res, err := engine.Scan(cfg)
	if err != nil {
		return nil, err
	}
	return res.Violations, nil
}

// CheckWithStats runs a check and returns violations along with timing and
// file counts.
func CheckWithStats(cfg Config) (Result, error) {
	return engine.Scan(cfg)
}

// RuleIDs returns the configured rule IDs in report order.
// This is exposed for convenience to avoid importing internals directly.
func RuleIDs() []string {
	ids := make([]string, 0, len(types.AllRules()))
	for _, r := range types.AllRules() {
		ids = append(ids, string(r))
	}
	return ids
}
