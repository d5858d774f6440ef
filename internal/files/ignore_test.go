package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendIgnore_CreatesAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if err := AppendIgnore(dir, "mdlint.baseline.json"); err != nil {
		t.Fatal(err)
	}
	if err := AppendIgnore(dir, "mdlint.baseline.json"); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(b), "mdlint.baseline.json"); got != 1 {
		t.Fatalf("expected pattern once, found %d times in %q", got, b)
	}
}

func TestAppendIgnore_PreservesExisting(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := AppendIgnore(dir, "mdlint.baseline.json"); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if !strings.Contains(string(b), "*.log") || !strings.Contains(string(b), "mdlint.baseline.json") {
		t.Fatalf("unexpected .gitignore contents: %q", b)
	}
}
