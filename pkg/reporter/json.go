package reporter

import (
	"encoding/json"
	"io"

	"github.com/release-baseline-finder/pkg/baseline"
)

type JSONReporter struct{}

func (r *JSONReporter) Report(w io.Writer, candidates []baseline.Candidate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	type output struct {
		Count      int                  `json:"count"`
		Candidates []baseline.Candidate `json:"candidates"`
	}

	return enc.Encode(output{
		Count:      len(candidates),
		Candidates: candidates,
	})
}
