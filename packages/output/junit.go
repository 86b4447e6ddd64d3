package output

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/runner"
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
)

// JUnitTestSuites is the root element
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr,omitempty"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Skipped    int              `xml:"skipped,attr"`
	Time       float64          `xml:"time,attr"`
	Timestamp  string           `xml:"timestamp,attr,omitempty"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite is one suite file.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr,omitempty"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// JUnitTestCase is one case. A collecting case that found several problems
// carries one failure or error element per problem, in detection order.
type JUnitTestCase struct {
	XMLName   xml.Name       `xml:"testcase"`
	Name      string         `xml:"name,attr"`
	ClassName string         `xml:"classname,attr"`
	Time      float64        `xml:"time,attr"`
	Failures  []JUnitProblem `xml:"failure,omitempty"`
	Errors    []JUnitProblem `xml:"error,omitempty"`
	Skipped   *JUnitSkipped  `xml:"skipped,omitempty"`
}

// JUnitProblem is the body of a failure or error element.
type JUnitProblem struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitFormatter formats test results as JUnit XML. Unmet expectations are
// reported as failures; anything else a case raised (a broken check, a panic)
// is reported as an error.
type JUnitFormatter struct {
	writer     io.Writer
	testSuites []JUnitTestSuite
}

type JUnitOption func(*JUnitFormatter)

func NewJUnitFormatter(opts ...JUnitOption) *JUnitFormatter {
	f := &JUnitFormatter{writer: os.Stdout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JUnitWithWriter(w io.Writer) JUnitOption {
	return func(f *JUnitFormatter) {
		f.writer = w
	}
}

func (f *JUnitFormatter) FormatResult(result *runner.RunResult) {
	name := result.File
	if result.Suite != "" {
		name = result.Suite
	}
	suite := JUnitTestSuite{
		Name:       name,
		Tests:      len(result.Results),
		Skipped:    result.Skipped,
		Time:       result.Duration.Seconds(),
		Timestamp:  time.Now().Format(time.RFC3339),
		Properties: []JUnitProperty{{Name: "file", Value: result.File}},
		TestCases:  make([]JUnitTestCase, 0, len(result.Results)),
	}

	for _, r := range result.Results {
		tc := JUnitTestCase{
			Name:      r.Name,
			ClassName: result.File,
			Time:      r.Duration.Seconds(),
		}

		switch {
		case r.Skipped:
			tc.Skipped = &JUnitSkipped{Message: r.SkipReason}
		case !r.Passed:
			tc.Failures, tc.Errors = classify(r.Error)
			if len(tc.Errors) > 0 {
				suite.Errors++
			} else {
				suite.Failures++
			}
		}

		suite.TestCases = append(suite.TestCases, tc)
	}

	f.testSuites = append(f.testSuites, suite)
}

// FormatError records a file that could not be run as a suite with a single
// erroring case.
func (f *JUnitFormatter) FormatError(err error) {
	f.testSuites = append(f.testSuites, JUnitTestSuite{
		Name:      "load",
		Tests:     1,
		Errors:    1,
		Timestamp: time.Now().Format(time.RFC3339),
		TestCases: []JUnitTestCase{{
			Name:   "load",
			Errors: []JUnitProblem{problem(err)},
		}},
	})
}

func (f *JUnitFormatter) FormatHeader(version string) {}

// classify splits the outcome of a case into assertion failures and other
// errors.
func classify(err error) (failures, errs []JUnitProblem) {
	if err == nil {
		return []JUnitProblem{{Message: "Expectation not met"}}, nil
	}
	signals := []error{err}
	var agg *failure.AggregateFailure
	if errors.As(err, &agg) {
		signals = signals[:0]
		for _, s := range agg.Failures() {
			signals = append(signals, s)
		}
	}
	for _, s := range signals {
		var af *failure.AssertionFailure
		if errors.As(s, &af) {
			failures = append(failures, problem(s))
		} else {
			errs = append(errs, problem(s))
		}
	}
	return failures, errs
}

func problem(err error) JUnitProblem {
	return JUnitProblem{
		Message: err.Error(),
		Type:    failure.TypeName(err),
		Content: err.Error(),
	}
}

// Flush writes the accumulated JUnit XML output
func (f *JUnitFormatter) Flush(totalDuration time.Duration) error {
	suites := JUnitTestSuites{
		Name:       "chaigo",
		Time:       totalDuration.Seconds(),
		Timestamp:  time.Now().Format(time.RFC3339),
		TestSuites: f.testSuites,
	}
	for _, s := range f.testSuites {
		suites.Tests += s.Tests
		suites.Failures += s.Failures
		suites.Errors += s.Errors
		suites.Skipped += s.Skipped
	}

	if _, err := fmt.Fprint(f.writer, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	return encoder.Encode(suites)
}
