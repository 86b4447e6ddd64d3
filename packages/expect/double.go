package expect

import (
	"fmt"
	"math"
)

// DoubleExpectation holds expectations about a float64.
type DoubleExpectation struct {
	Expectation
	value float64
}

// Double starts an expectation chain for value.
func Double(value float64, label ...string) *DoubleExpectation {
	return &DoubleExpectation{Expectation: NewExpectation(callLabel(label)), value: value}
}

func (e *DoubleExpectation) check(o outcome, label []string) *DoubleExpectation {
	first := o.first
	if first == "" {
		first = "Expected " + formatDouble(e.value) + " to"
	}
	e.decide(o.held, label, first, o.second)
	return e
}

// Value returns the value under test.
func (e *DoubleExpectation) Value() float64 {
	return e.value
}

// Not toggles negation for the comparisons that follow.
func (e *DoubleExpectation) Not() *DoubleExpectation {
	e.toggle()
	return e
}

// Finite checks that the value is neither infinite nor NaN.
func (e *DoubleExpectation) Finite(label ...string) *DoubleExpectation {
	finite := !math.IsInf(e.value, 0) && !math.IsNaN(e.value)
	return e.check(outcome{held: finite, second: describe("be finite.")}, label)
}

// Infinite checks for positive or negative infinity.
func (e *DoubleExpectation) Infinite(label ...string) *DoubleExpectation {
	return e.check(outcome{held: math.IsInf(e.value, 0), second: describe("be infinite.")}, label)
}

// NaN checks that the value is NaN.
func (e *DoubleExpectation) NaN(label ...string) *DoubleExpectation {
	return e.check(outcome{held: math.IsNaN(e.value), second: describe("be NaN.")}, label)
}

// Equal compares with ==, so NaN never equals anything.
func (e *DoubleExpectation) Equal(expected float64, label ...string) *DoubleExpectation {
	return e.check(equal(e.value, expected), label)
}

// Above checks value > lowerBound.
func (e *DoubleExpectation) Above(lowerBound float64, label ...string) *DoubleExpectation {
	return e.check(above(e.value, lowerBound), label)
}

// Least checks value >= lowerBound.
func (e *DoubleExpectation) Least(lowerBound float64, label ...string) *DoubleExpectation {
	return e.check(least(e.value, lowerBound), label)
}

// Below checks value < upperBound.
func (e *DoubleExpectation) Below(upperBound float64, label ...string) *DoubleExpectation {
	return e.check(below(e.value, upperBound), label)
}

// Most checks value <= upperBound.
func (e *DoubleExpectation) Most(upperBound float64, label ...string) *DoubleExpectation {
	return e.check(most(e.value, upperBound), label)
}

// Within checks min <= value <= max.
func (e *DoubleExpectation) Within(min, max float64, label ...string) *DoubleExpectation {
	return e.check(within(e.value, min, max), label)
}

// Match checks value against predicate.
func (e *DoubleExpectation) Match(predicate func(float64) bool, label ...string) *DoubleExpectation {
	return e.check(match(e.value, predicate), label)
}

// Satisfy is Match with a different message.
func (e *DoubleExpectation) Satisfy(predicate func(float64) bool, label ...string) *DoubleExpectation {
	return e.check(satisfy(e.value, predicate), label)
}

// CloseTo checks |value - expected| <= delta.
func (e *DoubleExpectation) CloseTo(expected, delta float64, label ...string) *DoubleExpectation {
	return e.check(closeTo(e.value, expected, delta), label)
}

// OneOf checks that value is contained in set. Use OneOfLabeled to attach a label.
func (e *DoubleExpectation) OneOf(set ...float64) *DoubleExpectation {
	return e.check(oneOf(e.value, set), nil)
}

// OneOfLabeled is OneOf with a per-call label.
func (e *DoubleExpectation) OneOfLabeled(label string, set ...float64) *DoubleExpectation {
	return e.check(oneOf(e.value, set), []string{label})
}

// String describes the expectation for debugging.
func (e *DoubleExpectation) String() string {
	return fmt.Sprintf("DoubleExpectation(value=%f, label=%s)", e.value, e.label)
}
