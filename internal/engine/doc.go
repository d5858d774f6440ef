// Package engine contains the core lint logic for mdlint. It discovers
// markdown files, runs the selected rules on each one, and returns the
// aggregated violations. This package is internal; external consumers
// should use the stable facade in pkg/core.
package engine
