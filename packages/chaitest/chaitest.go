// Package chaitest runs test bodies with expectation failures wired into the
// Go testing package.
//
// Without chaitest a failing expectation panics. Wrapping the body reports
// the failure through t.Fatal instead:
//
//	func TestOrder(t *testing.T) {
//		chaitest.Multiple(t, func() {
//			expect.Int(order.Items).To().Be().Above(0)
//			expect.Double(order.Total).To().Be().CloseTo(9.99, 0.001)
//		})
//	}
//
// Rule picks the mode per test, the way a suite-wide default plus per-test
// overrides would.
package chaitest

import (
	"slices"

	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
)

// TB is the part of testing.TB used here.
type TB interface {
	Helper()
	Error(args ...any)
	Fatal(args ...any)
}

// Mark overrides a Rule's default for one test.
type Mark int

const (
	// SingleExpectation forces fail-fast reporting.
	SingleExpectation Mark = iota + 1
	// MultipleExpectation forces collecting.
	MultipleExpectation
)

// Single runs body fail-fast: the first unmet expectation fails the test.
func Single(t TB, body func()) {
	t.Helper()
	run(t, reporter.Single, body)
}

// Multiple runs body collecting every unmet expectation and fails the test
// once with all of them.
func Multiple(t TB, body func()) {
	t.Helper()
	run(t, reporter.Multiple, body)
}

func run(t TB, mode reporter.Mode, body func()) {
	t.Helper()
	wrapped := func() error {
		body()
		return nil
	}
	var err error
	if mode == reporter.Multiple {
		// t.FailNow inside body exits the goroutine; report what was
		// collected until then.
		err = reporter.RunCollectingOrAbort(wrapped, func(err error) {
			t.Error(err.Error())
		})
	} else {
		err = reporter.Run(mode, wrapped)
	}
	if err != nil {
		t.Fatal(err.Error())
	}
}

// Rule decides per test whether failures are collected.
type Rule struct {
	multipleByDefault bool
}

// AllMultiple collects in every test not marked SingleExpectation.
func AllMultiple() Rule {
	return Rule{multipleByDefault: true}
}

// NoneMultiple collects only in tests marked MultipleExpectation.
func NoneMultiple() Rule {
	return Rule{}
}

// Mode resolves the reporting mode for a test carrying marks.
func (r Rule) Mode(marks ...Mark) reporter.Mode {
	if r.multipleByDefault {
		if slices.Contains(marks, SingleExpectation) {
			return reporter.Single
		}
		return reporter.Multiple
	}
	if slices.Contains(marks, MultipleExpectation) {
		return reporter.Multiple
	}
	return reporter.Single
}

// Run runs body in the mode selected by marks.
func (r Rule) Run(t TB, body func(), marks ...Mark) {
	t.Helper()
	run(t, r.Mode(marks...), body)
}
