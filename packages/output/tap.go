package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/runner"
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
	"gopkg.in/yaml.v3"
)

// TAPFormatter writes TAP version 13. Failed cases carry a YAML diagnostic
// block listing every unmet expectation.
type TAPFormatter struct {
	writer io.Writer
	points []tapPoint
}

type tapPoint struct {
	ok         bool
	name       string
	skipReason string
	skipped    bool
	diag       *tapDiagnostic
}

type tapDiagnostic struct {
	File     string   `yaml:"file,omitempty"`
	Line     int      `yaml:"line,omitempty"`
	Mode     string   `yaml:"mode,omitempty"`
	Kind     string   `yaml:"kind,omitempty"`
	Failures []string `yaml:"failures"`
}

type TAPOption func(*TAPFormatter)

func NewTAPFormatter(opts ...TAPOption) *TAPFormatter {
	f := &TAPFormatter{writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func TAPWithWriter(w io.Writer) TAPOption {
	return func(f *TAPFormatter) {
		f.writer = w
	}
}

func (f *TAPFormatter) FormatResult(result *runner.RunResult) {
	for _, r := range result.Results {
		p := tapPoint{
			ok:         r.Passed || r.Skipped,
			name:       r.Name,
			skipped:    r.Skipped,
			skipReason: shownSkipReason(r.SkipReason),
		}
		if !p.ok {
			p.diag = &tapDiagnostic{
				File:     result.File,
				Line:     r.Line,
				Mode:     r.Mode.String(),
				Failures: r.Failures,
			}
			if r.Error != nil {
				p.diag.Kind = failure.TypeName(r.Error)
			}
		}
		f.points = append(f.points, p)
	}
}

// FormatError turns a file that could not be run into a failed point so the
// plan still accounts for it.
func (f *TAPFormatter) FormatError(err error) {
	f.points = append(f.points, tapPoint{
		name: "load",
		diag: &tapDiagnostic{Failures: []string{err.Error()}},
	})
}

func (f *TAPFormatter) FormatHeader(version string) {}

func (f *TAPFormatter) Flush(totalDuration time.Duration) error {
	var sb strings.Builder
	sb.WriteString("TAP version 13\n")
	fmt.Fprintf(&sb, "1..%d\n", len(f.points))

	for i, p := range f.points {
		n := i + 1
		switch {
		case p.skipped:
			reason := p.skipReason
			if reason == "" {
				reason = "filtered"
			}
			fmt.Fprintf(&sb, "ok %d - %s # SKIP %s\n", n, p.name, reason)
		case p.ok:
			fmt.Fprintf(&sb, "ok %d - %s\n", n, p.name)
		default:
			fmt.Fprintf(&sb, "not ok %d - %s\n", n, p.name)
			if err := writeDiagnostic(&sb, p.diag); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(&sb, "# time=%dms\n", totalDuration.Milliseconds())

	_, err := io.WriteString(f.writer, sb.String())
	return err
}

func writeDiagnostic(sb *strings.Builder, d *tapDiagnostic) error {
	if d == nil {
		return nil
	}
	body, err := yaml.Marshal(d)
	if err != nil {
		return err
	}
	sb.WriteString("  ---\n")
	for _, line := range strings.Split(strings.TrimRight(string(body), "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("  ...\n")
	return nil
}
