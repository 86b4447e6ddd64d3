package expect

import (
	"fmt"
	"strconv"
)

// BoolExpectation holds expectations about a bool.
type BoolExpectation struct {
	Expectation
	value bool
}

// Bool starts an expectation chain for value.
func Bool(value bool, label ...string) *BoolExpectation {
	return &BoolExpectation{Expectation: NewExpectation(callLabel(label)), value: value}
}

func (e *BoolExpectation) check(o outcome, label []string) *BoolExpectation {
	first := o.first
	if first == "" {
		first = "Expected " + strconv.FormatBool(e.value) + " to"
	}
	e.decide(o.held, label, first, o.second)
	return e
}

// Value returns the value under test.
func (e *BoolExpectation) Value() bool {
	return e.value
}

// Not toggles negation for the comparisons that follow.
func (e *BoolExpectation) Not() *BoolExpectation {
	e.toggle()
	return e
}

// OK checks for a true value.
func (e *BoolExpectation) OK(label ...string) *BoolExpectation {
	return e.check(outcome{held: e.value, first: "Expected a", second: describe("ok-ish boolean.")}, label)
}

// True checks for a true value.
func (e *BoolExpectation) True(label ...string) *BoolExpectation {
	return e.check(outcome{held: e.value, first: "Expected a", second: describe("true boolean.")}, label)
}

// False checks for a false value.
func (e *BoolExpectation) False(label ...string) *BoolExpectation {
	return e.check(outcome{held: !e.value, first: "Expected a", second: describe("false boolean.")}, label)
}

// Equal checks value == expected.
func (e *BoolExpectation) Equal(expected bool, label ...string) *BoolExpectation {
	return e.check(equal(e.value, expected), label)
}

// String describes the expectation for debugging.
func (e *BoolExpectation) String() string {
	return fmt.Sprintf("BoolExpectation(value=%t, label=%s)", e.value, e.label)
}
