package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type chainCase struct {
	name string
	run  func()
	want string
}

func runChainCases(t *testing.T, tests []chainCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failureOf(t, tt.run))
		})
	}
}

func TestIntExpectation(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	runChainCases(t, []chainCase{
		{name: "equal pass", run: func() { Int(5).To().Equal(5) }},
		{name: "equal fail", run: func() { Int(5).To().Equal(6) }, want: "Expected 5 to equal 6."},
		{name: "not equal", run: func() { Int(5).To().Not().Equal(5) }, want: "Expected 5 to not equal 5."},
		{name: "above", run: func() { Int(5).To().Be().Above(4) }},
		{name: "above boundary", run: func() { Int(5).To().Be().Above(5) }, want: "Expected 5 to be above 5."},
		{name: "least boundary", run: func() { Int(5).To().Be().At().Least(5) }},
		{name: "least fail", run: func() { Int(5).To().Be().At().Least(6) }, want: "Expected 5 to be at least 6."},
		{name: "below", run: func() { Int(5).To().Be().Below(6) }},
		{name: "below fail", run: func() { Int(5).To().Be().Below(5) }, want: "Expected 5 to be below 5."},
		{name: "most", run: func() { Int(5).To().Be().At().Most(5) }},
		{name: "most fail", run: func() { Int(5).To().Be().At().Most(4) }, want: "Expected 5 to be at most 4."},
		{name: "within", run: func() { Int(5).To().Be().Within(5, 6) }},
		{name: "within fail", run: func() { Int(5).To().Be().Within(1, 4) }, want: "Expected 5 to be within 1 and 4."},
		{name: "match", run: func() { Int(4).To().Match(even) }},
		{name: "match fail", run: func() { Int(5).To().Match(even) }, want: "Expected 5 to match a custom predicate."},
		{name: "satisfy fail", run: func() { Int(5).To().Satisfy(even) }, want: "Expected 5 to satisfy a custom predicate."},
		{name: "close to", run: func() { Int(5).To().Be().CloseTo(7, 2) }},
		{name: "close to below", run: func() { Int(5).To().Be().CloseTo(3, 2) }},
		{name: "close to fail", run: func() { Int(5).To().Be().CloseTo(8, 2) }, want: "Expected 5 to be close to 8 with a delta of 2."},
		{name: "one of", run: func() { Int(2).To().Be().OneOf(1, 2, 3) }},
		{name: "one of fail", run: func() { Int(5).To().Be().OneOf(1, 2, 3) }, want: "Expected 5 to be one of [1, 2, 3]."},
		{name: "one of empty", run: func() { Int(5).To().Be().OneOf() }, want: "Expected 5 to be one of []."},
		{name: "one of labeled", run: func() { Int(5).OneOfLabeled("digits", 1) }, want: "digits: Expected 5 to be one of [1]."},
		{name: "valid byte", run: func() { Int(-128).To().Be().ValidByte() }},
		{name: "valid byte fail", run: func() { Int(128).To().Be().ValidByte() }, want: "Expected 128 to be a valid byte value."},
		{name: "valid short", run: func() { Int(32767).To().Be().ValidShort() }},
		{name: "valid short fail", run: func() { Int(-32769).To().Be().ValidShort() }, want: "Expected -32769 to be a valid short value."},
		{name: "instance label", run: func() { Int(5, "count").To().Equal(6) }, want: "count: Expected 5 to equal 6."},
		{name: "call label overrides", run: func() { Int(5, "count").To().Equal(6, "retries") }, want: "retries: Expected 5 to equal 6."},
	})
}

func TestIntExpectation_String(t *testing.T) {
	assert.Equal(t, "IntExpectation(value=42, label=answer)", Int(42, "answer").String())
	assert.Equal(t, 42, Int(42).Value())
}
