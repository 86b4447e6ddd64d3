package expect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongExpectation(t *testing.T) {
	big := int64(math.MaxInt32) + 1

	runChainCases(t, []chainCase{
		{name: "equal", run: func() { Long(big).To().Equal(big) }},
		{name: "equal fail", run: func() { Long(big).To().Equal(1) }, want: "Expected 2147483648 to equal 1."},
		{name: "above", run: func() { Long(10).To().Be().Above(9) }},
		{name: "not above", run: func() { Long(10).To().Not().Be().Above(9) }, want: "Expected 10 to not be above 9."},
		{name: "least", run: func() { Long(10).To().Be().At().Least(11) }, want: "Expected 10 to be at least 11."},
		{name: "below", run: func() { Long(10).To().Be().Below(9) }, want: "Expected 10 to be below 9."},
		{name: "most", run: func() { Long(10).To().Be().At().Most(10) }},
		{name: "within", run: func() { Long(10).To().Be().Within(11, 20) }, want: "Expected 10 to be within 11 and 20."},
		{name: "match", run: func() { Long(10).To().Match(func(v int64) bool { return v > 0 }) }},
		{name: "satisfy", run: func() { Long(10).To().Satisfy(func(v int64) bool { return v < 0 }) }, want: "Expected 10 to satisfy a custom predicate."},
		{name: "close to", run: func() { Long(10).To().Be().CloseTo(13, 2) }, want: "Expected 10 to be close to 13 with a delta of 2."},
		{name: "one of", run: func() { Long(10).To().Be().OneOf(10, 20) }},
		{name: "one of fail", run: func() { Long(10).To().Be().OneOf(20, 30) }, want: "Expected 10 to be one of [20, 30]."},
		{name: "valid byte fail", run: func() { Long(-129).To().Be().ValidByte() }, want: "Expected -129 to be a valid byte value."},
		{name: "valid short", run: func() { Long(-32768).To().Be().ValidShort() }},
		{name: "valid int", run: func() { Long(math.MinInt32).To().Be().ValidInt() }},
		{name: "valid int fail", run: func() { Long(big).To().Be().ValidInt() }, want: "Expected 2147483648 to be a valid integer value."},
		{name: "not valid int", run: func() { Long(big).To().Not().Be().ValidInt() }},
	})
}

func TestLongExpectation_String(t *testing.T) {
	assert.Equal(t, "LongExpectation(value=7, label=)", Long(7).String())
}
