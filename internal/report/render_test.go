package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdlint/mdlint/internal/types"
)

func TestPrint_SectionsInFixedOrder(t *testing.T) {
	tab := types.Table{}
	tab.Add(types.RuleMD012, "b.md", 7)
	tab.Add(types.RuleMD040, "a.md", 3)

	var buf bytes.Buffer
	Print(&buf, tab, PrintOptions{NoColor: true, FilesChecked: 2})
	out := buf.String()

	i040 := strings.Index(out, "MD040: Code blocks without language specifiers")
	i012 := strings.Index(out, "MD012: Multiple consecutive blank lines")
	if i040 < 0 || i012 < 0 || i040 > i012 {
		t.Fatalf("expected MD040 section before MD012; got: %q", out)
	}
	if !strings.Contains(out, "Line 3: Opening ``` without language specifier") {
		t.Fatalf("expected md040 line detail; got: %q", out)
	}
	if !strings.Contains(out, "Total markdown files checked: 2") {
		t.Fatalf("expected summary total; got: %q", out)
	}
	if !strings.Contains(out, "Files with violations: 2") {
		t.Fatalf("expected distinct file count; got: %q", out)
	}
}

func TestPrint_OnlyViolatingRulesGetSections(t *testing.T) {
	tab := types.Table{}
	tab.Add(types.RuleMD040, "a.md", 1)

	var buf bytes.Buffer
	Print(&buf, tab, PrintOptions{NoColor: true, FilesChecked: 1})
	out := buf.String()
	if strings.Contains(out, "MD012: Multiple consecutive blank lines") {
		t.Fatalf("clean rule must not get a section; got: %q", out)
	}
	if !strings.Contains(out, "  - MD012 (multiple blanks): 0 files") {
		t.Fatalf("summary still lists every rule; got: %q", out)
	}
}

func TestPrint_ListFilesSuppressesDetail(t *testing.T) {
	tab := types.Table{}
	tab.Add(types.RuleMD040, "docs/a.md", 3)
	tab.Add(types.RuleMD040, "docs/a.md", 9)

	var buf bytes.Buffer
	Print(&buf, tab, PrintOptions{ListFiles: true, NoColor: true, FilesChecked: 1})
	out := buf.String()
	if strings.Contains(out, "Line 3") {
		t.Fatalf("list-files mode must suppress line detail; got: %q", out)
	}
	if !strings.Contains(out, "docs/a.md") {
		t.Fatalf("expected path listing; got: %q", out)
	}
}

func TestPrint_CleanRun(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, types.Table{}, PrintOptions{NoColor: true, FilesChecked: 0})
	out := buf.String()
	if !strings.Contains(out, "Total markdown files checked: 0") {
		t.Fatalf("expected zero-file summary; got: %q", out)
	}
	if !strings.Contains(out, "No violations found!") {
		t.Fatalf("expected friendly clean message; got: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("NoColor must strip ANSI codes; got: %q", out)
	}
}

func TestHasViolations(t *testing.T) {
	if HasViolations(types.Table{}) {
		t.Fatal("empty table should not fail the run")
	}
	tab := types.Table{}
	tab.Add(types.RuleMD012, "a.md", 4)
	if !HasViolations(tab) {
		t.Fatal("violations must fail the run")
	}
}
