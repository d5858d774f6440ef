// internal/report/sarif.go
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/mdlint/mdlint/internal/types"
)

type sarif struct {
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// WriteSARIF writes violations as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, vs []types.Violation) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{Name: "mdlint", Version: time.Now().Format("2006.01.02")}},
	}
	for _, v := range vs {
		run.Results = append(run.Results, sarifResult{
			RuleID:  string(v.Rule),
			Level:   "warning",
			Message: sarifMessage{Text: v.Message},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: v.Path},
					Region:           sarifRegion{StartLine: v.Line},
				},
			}},
		})
	}
	doc := sarif{Version: "2.1.0", Runs: []sarifRun{run}}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
