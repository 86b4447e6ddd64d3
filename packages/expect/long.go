package expect

import (
	"fmt"
	"math"
	"strconv"
)

// LongExpectation holds expectations about an int64.
type LongExpectation struct {
	Expectation
	value int64
}

// Long starts an expectation chain for value.
func Long(value int64, label ...string) *LongExpectation {
	return &LongExpectation{Expectation: NewExpectation(callLabel(label)), value: value}
}

func (e *LongExpectation) check(o outcome, label []string) *LongExpectation {
	first := o.first
	if first == "" {
		first = "Expected " + strconv.FormatInt(e.value, 10) + " to"
	}
	e.decide(o.held, label, first, o.second)
	return e
}

// Value returns the value under test.
func (e *LongExpectation) Value() int64 {
	return e.value
}

// Not toggles negation for the comparisons that follow.
func (e *LongExpectation) Not() *LongExpectation {
	e.toggle()
	return e
}

// Equal checks value == expected.
func (e *LongExpectation) Equal(expected int64, label ...string) *LongExpectation {
	return e.check(equal(e.value, expected), label)
}

// Above checks value > lowerBound.
func (e *LongExpectation) Above(lowerBound int64, label ...string) *LongExpectation {
	return e.check(above(e.value, lowerBound), label)
}

// Least checks value >= lowerBound.
func (e *LongExpectation) Least(lowerBound int64, label ...string) *LongExpectation {
	return e.check(least(e.value, lowerBound), label)
}

// Below checks value < upperBound.
func (e *LongExpectation) Below(upperBound int64, label ...string) *LongExpectation {
	return e.check(below(e.value, upperBound), label)
}

// Most checks value <= upperBound.
func (e *LongExpectation) Most(upperBound int64, label ...string) *LongExpectation {
	return e.check(most(e.value, upperBound), label)
}

// Within checks min <= value <= max.
func (e *LongExpectation) Within(min, max int64, label ...string) *LongExpectation {
	return e.check(within(e.value, min, max), label)
}

// Match checks value against predicate.
func (e *LongExpectation) Match(predicate func(int64) bool, label ...string) *LongExpectation {
	return e.check(match(e.value, predicate), label)
}

// Satisfy is Match with a different message.
func (e *LongExpectation) Satisfy(predicate func(int64) bool, label ...string) *LongExpectation {
	return e.check(satisfy(e.value, predicate), label)
}

// CloseTo checks |value - expected| <= delta.
func (e *LongExpectation) CloseTo(expected, delta int64, label ...string) *LongExpectation {
	return e.check(closeTo(e.value, expected, delta), label)
}

// OneOf checks that value is contained in set. Use OneOfLabeled to attach a label.
func (e *LongExpectation) OneOf(set ...int64) *LongExpectation {
	return e.check(oneOf(e.value, set), nil)
}

// OneOfLabeled is OneOf with a per-call label.
func (e *LongExpectation) OneOfLabeled(label string, set ...int64) *LongExpectation {
	return e.check(oneOf(e.value, set), []string{label})
}

// ValidByte checks that the value fits in a signed 8-bit integer.
func (e *LongExpectation) ValidByte(label ...string) *LongExpectation {
	return e.check(fitsIn(e.value, math.MinInt8, math.MaxInt8, "byte"), label)
}

// ValidShort checks that the value fits in a signed 16-bit integer.
func (e *LongExpectation) ValidShort(label ...string) *LongExpectation {
	return e.check(fitsIn(e.value, math.MinInt16, math.MaxInt16, "short"), label)
}

// ValidInt checks that the value fits in 32 bits.
func (e *LongExpectation) ValidInt(label ...string) *LongExpectation {
	return e.check(fitsIn(e.value, math.MinInt32, math.MaxInt32, "integer"), label)
}

// String describes the expectation for debugging.
func (e *LongExpectation) String() string {
	return fmt.Sprintf("LongExpectation(value=%d, label=%s)", e.value, e.label)
}
