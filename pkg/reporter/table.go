package reporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/release-baseline-finder/pkg/baseline"
)

type TableReporter struct{}

func (r *TableReporter) Report(w io.Writer, candidates []baseline.Candidate) error {
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(w, "No releases found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tVERSION\tSTATUS")
	fmt.Fprintln(tw, "---\t-------\t------")

	for _, c := range candidates {
		version := "(none)"
		if c.Version != nil {
			version = c.Version.String()
		}
		status := "released"
		if c.Excluded != "" {
			status = "excluded: " + c.Excluded
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Tag, version, status)
	}
	return tw.Flush()
}
