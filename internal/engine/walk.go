package engine

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/mdlint/mdlint/internal/ignore"
)

// FindMarkdownFiles walks cfg.Root and returns the sorted list of *.md
// files. Directories whose name equals an excluded segment are skipped
// wholesale, so no returned path contains one as a component. Paths
// matched by .mdlintignore or rejected by the include/exclude globs are
// dropped. A traversal failure (e.g. unreadable root) is fatal and
// propagates to the caller.
func FindMarkdownFiles(cfg Config) ([]string, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	excluded := excludeSet(cfg.ExcludeDirs)
	ign, err := ignore.Load(filepath.Join(root, ".mdlintignore"))
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && excluded[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(p) != ".md" {
			return nil
		}
		// the root itself may live under an excluded directory
		if hasExcludedSegment(p, excluded) {
			return nil
		}
		rel, rerr := filepath.Rel(root, p)
		if rerr != nil {
			rel = p
		}
		if ign.Match(rel) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
