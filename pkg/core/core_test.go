package core

import (
	"bytes"
	"testing"
)

func TestCheck_Smoke(t *testing.T) {
	violations, err := Check(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("empty tree should be clean, got %v", violations)
	}
	ids := RuleIDs()
	if len(ids) != 2 {
		t.Fatalf("expected two rule IDs, got %v", ids)
	}
}

func TestMarshalViolations_RoundTrip(t *testing.T) {
	in := []Violation{{Path: "a.md", Line: 3, Rule: "md040", Message: "Opening ``` without language specifier"}}
	var buf bytes.Buffer
	if err := MarshalViolations(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := UnmarshalViolations(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %v", out)
	}
}
