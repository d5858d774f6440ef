package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Directories never descended into during discovery. Matching is by exact
// path component, never by substring.
var defaultExcludeDirs = []string{"node_modules", "build", "target", "dist"}

func excludeSet(dirs []string) map[string]bool {
	if len(dirs) == 0 {
		dirs = defaultExcludeDirs
	}
	set := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		if d = strings.TrimSpace(d); d != "" {
			set[d] = true
		}
	}
	return set
}

// hasExcludedSegment reports whether any path component of p is in the
// excluded set. This catches roots that already sit inside an excluded
// directory, which SkipDir alone never sees.
func hasExcludedSegment(p string, excluded map[string]bool) bool {
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if excluded[seg] {
			return true
		}
	}
	return false
}

// allowedByGlobs returns true if the given path is allowed by the include/
// exclude glob configuration. Include globs are comma-separated and, if
// provided, act as a positive filter. Exclude globs are subtracted last.
// Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
