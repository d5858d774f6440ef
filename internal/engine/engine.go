package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mdlint/mdlint/internal/rules"
	"github.com/mdlint/mdlint/internal/types"
)

// Config controls a lint run: scope, rule selection and filters.
type Config struct {
	Root         string   // discovery root; ignored when Files is set
	Files        []string // explicit paths; bypasses discovery, order kept, no dedup
	Check        string   // md040, md012 or all ("" = all)
	ExcludeDirs  []string // directory names skipped during discovery (nil = defaults)
	IncludeGlobs string   // comma-separated include globs
	ExcludeGlobs string   // comma-separated exclude globs
	MaxBytes     int64    // skip files larger than this when > 0
	Stderr       io.Writer
}

// Result holds the aggregated violations and basic run statistics.
type Result struct {
	Violations   []types.Violation
	Table        types.Table
	FilesChecked int
	Duration     time.Duration
}

// Scan resolves the file list, runs the selected rules on each file in
// sequence and aggregates violations. Missing explicit files and per-file
// read failures are reported to cfg.Stderr and never abort the run; a
// failed file contributes no violations. Discovery failures are fatal.
func Scan(cfg Config) (Result, error) {
	res := Result{Table: types.Table{}}
	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	selected, err := rules.ForSelection(cfg.Check)
	if err != nil {
		return res, err
	}

	files := cfg.Files
	if len(files) == 0 {
		files, err = FindMarkdownFiles(cfg)
		if err != nil {
			return res, fmt.Errorf("discover markdown files: %w", err)
		}
	}

	started := time.Now()
	res.FilesChecked = len(files)
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(stderr, "File not found: %s\n", path)
			continue
		}
		if cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			fmt.Fprintf(stderr, "Skipping %s: larger than %d bytes\n", path, cfg.MaxBytes)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
			continue
		}
		for _, r := range selected {
			for _, v := range rules.Lookup(r)(path, data) {
				res.Violations = append(res.Violations, v)
				res.Table.Add(v.Rule, v.Path, v.Line)
			}
		}
	}
	res.Duration = time.Since(started)
	return res, nil
}
