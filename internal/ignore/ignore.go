package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher matches relative paths against .mdlintignore patterns.
type Matcher struct {
	patterns []string
}

// Load reads patterns from path, one per line. Blank lines and # comments
// are skipped; a trailing slash marks a directory prefix. A missing file
// yields a matcher that matches nothing.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			line += "**"
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel matches any pattern, tested against both the
// full slash-separated path and its basename.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, pat := range m.patterns {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, path.Base(rel)); ok {
			return true
		}
	}
	return false
}
