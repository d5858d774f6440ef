package core_test

import (
	"fmt"
	"os"

	"github.com/mdlint/mdlint/pkg/core"
)

// ExampleCheck demonstrates a simple check of a directory tree.
func ExampleCheck() {
	cfg := core.Config{
		Root:  ".",
		Check: "all",
	}

	violations, err := core.Check(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
		return
	}

	if len(violations) == 0 {
		fmt.Println("No violations found.")
	} else {
		fmt.Printf("Found %d violations.\n", len(violations))
		_ = core.MarshalViolations(os.Stdout, violations)
	}
}

// ExampleCheckWithStats shows how to retrieve run statistics.
func ExampleCheckWithStats() {
	result, err := core.CheckWithStats(core.Config{Root: "docs"})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Checked %d files in %s\n", result.FilesChecked, result.Duration)
	fmt.Printf("Found %d violations\n", len(result.Violations))
}
