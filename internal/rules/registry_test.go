package rules

import (
	"testing"

	"github.com/mdlint/mdlint/internal/types"
)

func TestForSelection(t *testing.T) {
	all, err := ForSelection("all")
	if err != nil {
		t.Fatalf("ForSelection(all): %v", err)
	}
	if len(all) != 2 || all[0] != types.RuleMD040 || all[1] != types.RuleMD012 {
		t.Fatalf("expected [md040 md012], got %v", all)
	}

	one, err := ForSelection("md012")
	if err != nil {
		t.Fatalf("ForSelection(md012): %v", err)
	}
	if len(one) != 1 || one[0] != types.RuleMD012 {
		t.Fatalf("expected [md012], got %v", one)
	}

	if _, err := ForSelection("md999"); err == nil {
		t.Fatal("expected error for unknown check")
	}
}

func TestRegistryComplete(t *testing.T) {
	for _, r := range types.AllRules() {
		if Lookup(r) == nil {
			t.Fatalf("rule %s has no scan function", r)
		}
		if Describe(r) == "" || Detail(r) == "" {
			t.Fatalf("rule %s missing description", r)
		}
	}
}
