package rules

import (
	"bytes"
	"strings"

	"github.com/mdlint/mdlint/internal/types"
)

const fenceMarker = "```"

// MissingFenceLanguage reports opening code fences that carry no language
// token (MD040). Lines are trimmed before the test; a closing fence is
// never inspected for trailing content. An odd number of fence markers
// leaves the rest of the file inside the block with no diagnostic.
func MissingFenceLanguage(path string, data []byte) []types.Violation {
	var out []types.Violation
	inFence := false
	for i, raw := range splitLines(data) {
		trimmed := strings.TrimSpace(string(raw))
		if !strings.HasPrefix(trimmed, fenceMarker) {
			continue
		}
		if inFence {
			inFence = false
			continue
		}
		inFence = true
		if trimmed == fenceMarker {
			out = append(out, types.Violation{
				Path:    path,
				Line:    i + 1,
				Rule:    types.RuleMD040,
				Message: Detail(types.RuleMD040),
			})
		}
	}
	return out
}

// splitLines breaks file bytes into lines. The data is already fully in
// memory, so lines of any length are handled and a scan never stops early.
// A trailing newline does not produce a phantom final blank line.
func splitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.Split(data, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
