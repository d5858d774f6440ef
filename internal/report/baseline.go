package report

import (
	"encoding/json"
	"os"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/mdlint/mdlint/internal/types"
)

// Baseline records previously accepted violations so CI can fail only on
// new ones.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file. On read or parse failure it returns
// the error along with an empty baseline, so callers can warn and keep
// going with every violation reported.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return Baseline{Items: map[string]bool{}}, err
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

func SaveBaseline(path string, vs []types.Violation) error {
	b := Baseline{Items: map[string]bool{}}
	for _, v := range vs {
		b.Items[key(v)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

// FilterNewViolations drops violations already present in the baseline.
func FilterNewViolations(vs []types.Violation, base Baseline) []types.Violation {
	var out []types.Violation
	for _, v := range vs {
		if !base.Items[key(v)] {
			out = append(out, v)
		}
	}
	return out
}

func key(v types.Violation) string {
	sum := xxhash.Sum64String(v.Path + "|" + string(v.Rule) + "|" + strconv.Itoa(v.Line))
	return strconv.FormatUint(sum, 16)
}
