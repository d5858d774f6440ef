// Package core provides a small, stable facade over mdlint's internal
// engine for external integrations. It deliberately re-exports a narrow
// API surface so other tools can depend on a stable import path without
// reaching into internal implementation packages.
//
// Example:
//
//	cfg := core.Config{Root: "."}
//	violations, err := core.Check(cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalViolations(os.Stdout, violations)
package core
