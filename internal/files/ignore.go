package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures the given pattern is present in .gitignore at
// repoRoot. It creates the file if missing and appends the pattern on its
// own line. Idempotent.
func AppendIgnore(repoRoot, pattern string) error {
	path := filepath.Join(repoRoot, ".gitignore")
	existing := map[string]bool{}
	if f, err := os.Open(path); err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			existing[strings.TrimSpace(sc.Text())] = true
		}
		_ = f.Close()
	}
	if existing[pattern] {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return err
	}
	return nil
}
