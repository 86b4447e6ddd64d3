package expect

import (
	"fmt"
	"math"
	"strconv"
)

// IntExpectation holds expectations about an int.
type IntExpectation struct {
	Expectation
	value int
}

// Int starts an expectation chain for value. An optional label is prepended to
// every failure message of the chain.
func Int(value int, label ...string) *IntExpectation {
	return &IntExpectation{Expectation: NewExpectation(callLabel(label)), value: value}
}

func (e *IntExpectation) check(o outcome, label []string) *IntExpectation {
	first := o.first
	if first == "" {
		first = "Expected " + strconv.Itoa(e.value) + " to"
	}
	e.decide(o.held, label, first, o.second)
	return e
}

// Value returns the value under test.
func (e *IntExpectation) Value() int {
	return e.value
}

// Not toggles negation for the comparisons that follow.
func (e *IntExpectation) Not() *IntExpectation {
	e.toggle()
	return e
}

// Equal checks value == expected.
func (e *IntExpectation) Equal(expected int, label ...string) *IntExpectation {
	return e.check(equal(e.value, expected), label)
}

// Above checks value > lowerBound.
func (e *IntExpectation) Above(lowerBound int, label ...string) *IntExpectation {
	return e.check(above(e.value, lowerBound), label)
}

// Least checks value >= lowerBound.
func (e *IntExpectation) Least(lowerBound int, label ...string) *IntExpectation {
	return e.check(least(e.value, lowerBound), label)
}

// Below checks value < upperBound.
func (e *IntExpectation) Below(upperBound int, label ...string) *IntExpectation {
	return e.check(below(e.value, upperBound), label)
}

// Most checks value <= upperBound.
func (e *IntExpectation) Most(upperBound int, label ...string) *IntExpectation {
	return e.check(most(e.value, upperBound), label)
}

// Within checks min <= value <= max.
func (e *IntExpectation) Within(min, max int, label ...string) *IntExpectation {
	return e.check(within(e.value, min, max), label)
}

// Match checks value against predicate.
func (e *IntExpectation) Match(predicate func(int) bool, label ...string) *IntExpectation {
	return e.check(match(e.value, predicate), label)
}

// Satisfy is Match with a different message.
func (e *IntExpectation) Satisfy(predicate func(int) bool, label ...string) *IntExpectation {
	return e.check(satisfy(e.value, predicate), label)
}

// CloseTo checks |value - expected| <= delta.
func (e *IntExpectation) CloseTo(expected, delta int, label ...string) *IntExpectation {
	return e.check(closeTo(e.value, expected, delta), label)
}

// OneOf checks that value is contained in set. Use OneOfLabeled to attach a label.
func (e *IntExpectation) OneOf(set ...int) *IntExpectation {
	return e.check(oneOf(e.value, set), nil)
}

// OneOfLabeled is OneOf with a per-call label.
func (e *IntExpectation) OneOfLabeled(label string, set ...int) *IntExpectation {
	return e.check(oneOf(e.value, set), []string{label})
}

// ValidByte checks that the value fits in a signed 8-bit integer.
func (e *IntExpectation) ValidByte(label ...string) *IntExpectation {
	return e.check(fitsIn(e.value, math.MinInt8, math.MaxInt8, "byte"), label)
}

// ValidShort checks that the value fits in a signed 16-bit integer.
func (e *IntExpectation) ValidShort(label ...string) *IntExpectation {
	return e.check(fitsIn(e.value, math.MinInt16, math.MaxInt16, "short"), label)
}

// String describes the expectation for debugging.
func (e *IntExpectation) String() string {
	return fmt.Sprintf("IntExpectation(value=%d, label=%s)", e.value, e.label)
}
