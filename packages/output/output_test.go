package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/runner"
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *runner.RunResult {
	agg := failure.NewAggregate([]failure.Signal{
		failure.NewAssertionFailure("Expected 42 to be above 43."),
		failure.NewAssertionFailure("answer: Expected 42 to be below 10."),
	})
	return &runner.RunResult{
		File:     "orders.yaml",
		Suite:    "orders",
		Duration: 12 * time.Millisecond,
		Passed:   1,
		Failed:   1,
		Skipped:  1,
		Results: []*runner.CaseResult{
			{Name: "totals", Mode: reporter.Single, Checks: 2, Passed: true, Duration: 2 * time.Millisecond},
			{
				Name:     "collecting",
				Mode:     reporter.Multiple,
				Checks:   2,
				Duration: 3 * time.Millisecond,
				Failures: failure.Messages(agg),
				Error:    agg,
			},
			{Name: "later", Skipped: true, SkipReason: "not ready"},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range Formats {
		t.Run(name, func(t *testing.T) {
			f, err := NewFormatter(name, Options{Writer: &bytes.Buffer{}})
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}

	_, err := NewFormatter("yaml", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "yaml"`)

	f, err := NewFormatter("", Options{})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, f)
}

func TestConsoleFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithVerbose(true))
	f.FormatHeader("1.0.0")
	f.FormatResult(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "chaigo 1.0.0")
	assert.Contains(t, out, "Running: orders (orders.yaml)")
	assert.Contains(t, out, "✓ totals (2ms)")
	assert.Contains(t, out, "✗ collecting (3ms)")
	assert.Contains(t, out, "→ Expected 42 to be above 43.")
	assert.Contains(t, out, "→ answer: Expected 42 to be below 10.")
	assert.Contains(t, out, "- later (not ready)")
	assert.Contains(t, out, "Mode: multiple, checks: 2")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped, 3 total")
	assert.Contains(t, out, "Cases: p50=")

	buf.Reset()
	f.FormatError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf), JSONWithRunID("run-1"))
	f.FormatResult(sampleResult())
	f.FormatError(errors.New("bad.yaml: invalid suite"))
	require.NoError(t, f.Flush(20*time.Millisecond))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "run-1", out.RunID)
	assert.Equal(t, JSONSummary{Total: 3, Passed: 1, Failed: 1, Skipped: 1}, out.Summary)
	assert.Equal(t, []string{"bad.yaml: invalid suite"}, out.Errors)
	require.Len(t, out.Tests, 3)

	collecting := out.Tests[1]
	assert.Equal(t, "multiple", collecting.Mode)
	assert.Equal(t, "failure.AggregateFailure", collecting.Kind)
	assert.Len(t, collecting.Failures, 2)
	assert.True(t, strings.HasPrefix(collecting.Error, "There were 2 errors:"))

	assert.Empty(t, out.Tests[2].Mode)
	assert.Equal(t, "not ready", out.Tests[2].SkipReason)
}

func TestJSONFormatter_GeneratesRunID(t *testing.T) {
	a := NewJSONFormatter()
	b := NewJSONFormatter()
	assert.Len(t, a.runID, 36)
	assert.NotEqual(t, a.runID, b.runID)
}

func TestJUnitFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJUnitFormatter(JUnitWithWriter(&buf))
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(time.Second))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))

	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal([]byte(out[strings.Index(out, "\n")+1:]), &suites))
	assert.Equal(t, "chaigo", suites.Name)
	assert.Equal(t, 3, suites.Tests)
	assert.Equal(t, 1, suites.Failures)
	require.Len(t, suites.TestSuites, 1)

	suite := suites.TestSuites[0]
	assert.Equal(t, "orders", suite.Name)
	require.Len(t, suite.TestCases, 3)
	assert.Equal(t, 1, suite.Failures)
	assert.Equal(t, 0, suite.Errors)
	require.Len(t, suite.Properties, 1)
	assert.Equal(t, "orders.yaml", suite.Properties[0].Value)
	assert.Empty(t, suite.TestCases[0].Failures)

	fails := suite.TestCases[1].Failures
	require.Len(t, fails, 2)
	assert.Equal(t, "Expected 42 to be above 43.", fails[0].Message)
	assert.Equal(t, "failure.AssertionFailure", fails[0].Type)
	assert.Equal(t, "answer: Expected 42 to be below 10.", fails[1].Content)
	assert.Empty(t, suite.TestCases[1].Errors)

	require.NotNil(t, suite.TestCases[2].Skipped)
	assert.Equal(t, "not ready", suite.TestCases[2].Skipped.Message)
}

func TestJUnitFormatter_Errors(t *testing.T) {
	broken := failure.NewAggregate([]failure.Signal{
		failure.NewAssertionFailure("Expected 1 to equal 2."),
		failure.Wrap(errors.New("unknown assertion \"huge\"")),
	})
	result := &runner.RunResult{
		File:   "broken.yaml",
		Failed: 1,
		Results: []*runner.CaseResult{
			{Name: "mixed", Mode: reporter.Multiple, Failures: failure.Messages(broken), Error: broken},
		},
	}

	var buf bytes.Buffer
	f := NewJUnitFormatter(JUnitWithWriter(&buf))
	f.FormatResult(result)
	f.FormatError(errors.New("bad.yaml:3: unknown field"))
	require.NoError(t, f.Flush(time.Second))

	out := buf.String()
	var suites JUnitTestSuites
	require.NoError(t, xml.Unmarshal([]byte(out[strings.Index(out, "\n")+1:]), &suites))
	assert.Equal(t, 2, suites.Tests)
	assert.Equal(t, 0, suites.Failures)
	assert.Equal(t, 2, suites.Errors)
	require.Len(t, suites.TestSuites, 2)

	mixed := suites.TestSuites[0].TestCases[0]
	require.Len(t, mixed.Failures, 1)
	require.Len(t, mixed.Errors, 1)
	assert.Equal(t, "failure.WrappedFailure", mixed.Errors[0].Type)
	assert.Equal(t, `errors.errorString: unknown assertion "huge"`, mixed.Errors[0].Message)

	load := suites.TestSuites[1]
	assert.Equal(t, "load", load.Name)
	require.Len(t, load.TestCases[0].Errors, 1)
	assert.Equal(t, "bad.yaml:3: unknown field", load.TestCases[0].Errors[0].Message)
}

func TestTAPFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewTAPFormatter(TAPWithWriter(&buf))
	f.FormatResult(sampleResult())
	f.FormatError(errors.New("bad.yaml:3: unknown field"))
	require.NoError(t, f.Flush(time.Second))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "TAP version 13\n1..4\nok 1 - totals\nnot ok 2 - collecting\n  ---\n"))
	assert.Contains(t, out, "  file: orders.yaml\n")
	assert.Contains(t, out, "  mode: multiple\n")
	assert.Contains(t, out, "  kind: failure.AggregateFailure\n")
	assert.Contains(t, out, "Expected 42 to be above 43.\n")
	assert.Contains(t, out, "answer: Expected 42 to be below 10.")
	assert.Contains(t, out, "ok 3 - later # SKIP not ready\n")
	assert.Contains(t, out, "not ok 4 - load\n")
	assert.Contains(t, out, "bad.yaml:3: unknown field")
	assert.True(t, strings.HasSuffix(out, "# time=1000ms\n"))

	var diag tapDiagnostic
	block := out[strings.Index(out, "  ---\n")+6 : strings.Index(out, "  ...\n")]
	require.NoError(t, yaml.Unmarshal([]byte(block), &diag))
	assert.Equal(t, []string{"Expected 42 to be above 43.", "answer: Expected 42 to be below 10."}, diag.Failures)
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewHTMLFormatter(HTMLWithWriter(&buf))
	f.FormatHeader("1.0.0")
	f.FormatResult(sampleResult())
	require.NoError(t, f.Flush(time.Second))

	out := buf.String()
	assert.Contains(t, out, "<h1>chaigo 1.0.0</h1>")
	assert.Contains(t, out, `<tr class="failed">`)
	assert.Contains(t, out, "answer: Expected 42 to be below 10.")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped, 3 total")
}

func TestTimings(t *testing.T) {
	tm := NewTimings()
	assert.Empty(t, tm.Summary())

	for i := 1; i <= 100; i++ {
		tm.Record(time.Duration(i) * time.Millisecond)
	}
	tm.Record(2 * time.Hour)

	assert.Equal(t, int64(101), tm.Count())
	assert.InDelta(t, float64(50*time.Millisecond), float64(tm.Percentile(50)), float64(2*time.Millisecond))
	assert.InDelta(t, float64(time.Minute), float64(tm.Max()), float64(100*time.Millisecond))
	assert.Contains(t, tm.Summary(), "p99=")
}
