package types

import "testing"

func TestTable_AddAndFilesSorted(t *testing.T) {
	tab := Table{}
	tab.Add(RuleMD040, "docs/b.md", 3)
	tab.Add(RuleMD040, "a.md", 1)
	tab.Add(RuleMD040, "docs/b.md", 9)

	files := tab.Files(RuleMD040)
	if len(files) != 2 || files[0] != "a.md" || files[1] != "docs/b.md" {
		t.Fatalf("expected sorted [a.md docs/b.md], got %v", files)
	}
	if got := tab[RuleMD040]["docs/b.md"]; len(got) != 2 || got[0] != 3 || got[1] != 9 {
		t.Fatalf("expected appended lines [3 9], got %v", got)
	}
}

func TestTable_DistinctFiles(t *testing.T) {
	tab := Table{}
	tab.Add(RuleMD040, "a.md", 1)
	tab.Add(RuleMD012, "a.md", 5)
	tab.Add(RuleMD012, "b.md", 2)
	if got := tab.DistinctFiles(); got != 2 {
		t.Fatalf("expected 2 distinct files, got %d", got)
	}
	if tab.Empty() {
		t.Fatal("table with violations should not be empty")
	}
	if !(Table{}).Empty() {
		t.Fatal("fresh table should be empty")
	}
}

func TestTabulate(t *testing.T) {
	vs := []Violation{
		{Path: "a.md", Line: 4, Rule: RuleMD040},
		{Path: "a.md", Line: 8, Rule: RuleMD012},
	}
	tab := Tabulate(vs)
	if tab.FilesWith(RuleMD040) != 1 || tab.FilesWith(RuleMD012) != 1 {
		t.Fatalf("unexpected table: %#v", tab)
	}
}
