package expect

import (
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
)

// Expectation is the state shared by every typed expectation: the negation
// flag and an optional label prepended to failure messages.
//
// Custom expectation types embed it and route every comparison through Decide.
type Expectation struct {
	negated bool
	label   string
}

// NewExpectation returns an Expectation with the given instance label.
func NewExpectation(label string) Expectation {
	return Expectation{label: label}
}

// Negated reports whether comparisons are currently inverted.
func (e *Expectation) Negated() bool {
	return e.negated
}

// Label returns the instance label.
func (e *Expectation) Label() string {
	return e.label
}

func (e *Expectation) toggle() {
	e.negated = !e.negated
}

// Decide applies the pass/fail rule to the raw outcome of a comparison.
//
// The expectation fails when held == Negated(). On failure the message
// "<label: ><first> <not ><second()>" is reported; label overrides the instance
// label when non-empty. second is only evaluated on failure. Decide returns
// whether the expectation held; in fail-fast mode a failing Decide does not
// return.
func (e *Expectation) Decide(held bool, label, first string, second func() string) bool {
	if held != e.negated {
		return true
	}
	if label == "" {
		label = e.label
	}
	var tail string
	if second != nil {
		tail = second()
	}
	reporter.Report(failure.NewAssertionFailure(compose(label, first, e.negated, tail)))
	return false
}

func (e *Expectation) decide(held bool, labels []string, first string, second func() string) bool {
	return e.Decide(held, callLabel(labels), first, second)
}

func compose(label, first string, negated bool, second string) string {
	msg := first
	if negated {
		msg += " not "
	} else {
		msg += " "
	}
	msg += second
	if label != "" {
		msg = label + ": " + msg
	}
	return msg
}

func callLabel(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return labels[0]
}
