package reporter

import (
	"io"

	"github.com/release-baseline-finder/pkg/baseline"
)

type Reporter interface {
	Report(w io.Writer, candidates []baseline.Candidate) error
}

func New(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "markdown":
		return &MarkdownReporter{}
	default:
		return &TableReporter{}
	}
}
