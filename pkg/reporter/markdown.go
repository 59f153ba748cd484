package reporter

import (
	"io"
	"text/template"

	"github.com/release-baseline-finder/pkg/baseline"
)

// markdownTmpl renders an evaluation summary suitable for CI step
// summaries and pull-request comments.
var markdownTmpl = template.Must(template.New("candidates").Parse(`## Release Evaluation

{{ if not .Candidates }}No releases found.
{{ else }}{{ .Released }} of {{ len .Candidates }} releases eligible as baseline candidates.

| Tag | Version | Status |
|-----|---------|--------|
{{ range .Candidates }}| ` + "`{{ .Tag }}`" + ` | {{ if .Version }}{{ .Version }}{{ else }}(none){{ end }} | {{ if .Excluded }}excluded: {{ .Excluded }}{{ else }}released{{ end }} |
{{ end }}{{ end }}`))

type MarkdownReporter struct{}

func (r *MarkdownReporter) Report(w io.Writer, candidates []baseline.Candidate) error {
	released := 0
	for _, c := range candidates {
		if c.Excluded == "" {
			released++
		}
	}

	return markdownTmpl.Execute(w, struct {
		Candidates []baseline.Candidate
		Released   int
	}{candidates, released})
}
