package output

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/runner"
)

// HTMLOutput represents the complete HTML output structure
type HTMLOutput struct {
	Version        string
	Summary        HTMLSummary
	Tests          []HTMLTest
	Duration       float64
	Time           string
	PassedPercent  float64
	FailedPercent  float64
	SkippedPercent float64
}

// HTMLSummary represents the test summary for HTML output
type HTMLSummary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// HTMLTest represents a single case result for HTML output
type HTMLTest struct {
	Name        string
	File        string
	Mode        string
	Passed      bool
	Skipped     bool
	SkipReason  string
	Duration    float64
	StatusClass string
	Failures    []string
}

// HTMLFormatter formats test results as HTML
type HTMLFormatter struct {
	writer  io.Writer
	results []HTMLTest
	version string
}

// HTMLOption is a functional option for HTMLFormatter
type HTMLOption func(*HTMLFormatter)

// NewHTMLFormatter creates a new HTML formatter
func NewHTMLFormatter(opts ...HTMLOption) *HTMLFormatter {
	f := &HTMLFormatter{
		writer:  os.Stdout,
		results: make([]HTMLTest, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HTMLWithWriter sets the output writer
func HTMLWithWriter(w io.Writer) HTMLOption {
	return func(f *HTMLFormatter) {
		f.writer = w
	}
}

// FormatResult accumulates a test result
func (f *HTMLFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		test := HTMLTest{
			Name:       r.Name,
			File:       result.File,
			Passed:     r.Passed,
			Skipped:    r.Skipped,
			SkipReason: shownSkipReason(r.SkipReason),
			Duration:   float64(r.Duration.Milliseconds()),
			Failures:   r.Failures,
		}

		switch {
		case r.Skipped:
			test.StatusClass = "skipped"
		case r.Passed:
			test.StatusClass = "passed"
		default:
			test.StatusClass = "failed"
		}
		if !r.Skipped {
			test.Mode = r.Mode.String()
		}

		f.results = append(f.results, test)
	}
}

// FormatError handles errors (no-op for HTML, errors are in test results)
func (f *HTMLFormatter) FormatError(err error) {
	// Errors are included in individual test results
}

// FormatHeader captures the version for the HTML report
func (f *HTMLFormatter) FormatHeader(version string) {
	f.version = version
}

// Flush writes the accumulated HTML output
func (f *HTMLFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped int
	for _, t := range f.results {
		if t.Skipped {
			skipped++
		} else if t.Passed {
			passed++
		} else {
			failed++
		}
	}

	total := len(f.results)
	var passedPct, failedPct, skippedPct float64
	if total > 0 {
		passedPct = float64(passed) / float64(total) * 100
		failedPct = float64(failed) / float64(total) * 100
		skippedPct = float64(skipped) / float64(total) * 100
	}

	output := HTMLOutput{
		Version: f.version,
		Summary: HTMLSummary{
			Total:   total,
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Tests:          f.results,
		Duration:       float64(totalDuration.Milliseconds()),
		Time:           time.Now().Format("2006-01-02 15:04:05"),
		PassedPercent:  passedPct,
		FailedPercent:  failedPct,
		SkippedPercent: skippedPct,
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse HTML template: %w", err)
	}

	return tmpl.Execute(f.writer, output)
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>chaigo report</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; color: #222; }
.bar { display: flex; height: 8px; border-radius: 4px; overflow: hidden; margin: 1rem 0; }
.bar .passed { background: #2da44e; } .bar .failed { background: #cf222e; } .bar .skipped { background: #bf8700; }
table { border-collapse: collapse; width: 100%; }
td, th { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #eee; vertical-align: top; }
tr.failed td.status { color: #cf222e; } tr.passed td.status { color: #2da44e; } tr.skipped td.status { color: #bf8700; }
pre { margin: 0; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>chaigo {{.Version}}</h1>
<p>{{.Summary.Passed}} passed, {{.Summary.Failed}} failed, {{.Summary.Skipped}} skipped, {{.Summary.Total}} total in {{.Duration}}ms ({{.Time}})</p>
<div class="bar">
<div class="passed" style="width: {{printf "%.1f" .PassedPercent}}%"></div>
<div class="failed" style="width: {{printf "%.1f" .FailedPercent}}%"></div>
<div class="skipped" style="width: {{printf "%.1f" .SkippedPercent}}%"></div>
</div>
<table>
<tr><th></th><th>Case</th><th>File</th><th>Mode</th><th>Time</th><th>Failures</th></tr>
{{range .Tests}}<tr class="{{.StatusClass}}">
<td class="status">{{.StatusClass}}</td>
<td>{{.Name}}{{if .SkipReason}} ({{.SkipReason}}){{end}}</td>
<td>{{.File}}</td>
<td>{{.Mode}}</td>
<td>{{.Duration}}ms</td>
<td>{{range .Failures}}<pre>{{.}}</pre>{{end}}</td>
</tr>
{{end}}</table>
</body>
</html>
`
