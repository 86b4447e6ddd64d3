package expect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoubleExpectation(t *testing.T) {
	runChainCases(t, []chainCase{
		{name: "finite", run: func() { Double(1.5).To().Be().Finite() }},
		{name: "finite fail", run: func() { Double(math.Inf(1)).To().Be().Finite() }, want: "Expected Infinity to be finite."},
		{name: "nan is not finite", run: func() { Double(math.NaN()).To().Be().Finite() }, want: "Expected NaN to be finite."},
		{name: "infinite", run: func() { Double(math.Inf(-1)).To().Be().Infinite() }},
		{name: "infinite fail", run: func() { Double(2).To().Be().Infinite() }, want: "Expected 2.0 to be infinite."},
		{name: "nan", run: func() { Double(math.NaN()).To().Be().NaN() }},
		{name: "not nan", run: func() { Double(1).To().Not().Be().NaN() }},
		{name: "nan fail", run: func() { Double(0.5).To().Be().NaN() }, want: "Expected 0.5 to be NaN."},
		{name: "equal", run: func() { Double(0.25).To().Equal(0.25) }},
		{name: "nan never equal", run: func() { Double(math.NaN()).To().Equal(math.NaN()) }, want: "Expected NaN to equal NaN."},
		{name: "above", run: func() { Double(1.5).To().Be().Above(1.4) }},
		{name: "above fail", run: func() { Double(1.5).To().Be().Above(2) }, want: "Expected 1.5 to be above 2.0."},
		{name: "least", run: func() { Double(1.5).To().Be().At().Least(1.5) }},
		{name: "below fail", run: func() { Double(1.5).To().Be().Below(1.5) }, want: "Expected 1.5 to be below 1.5."},
		{name: "most fail", run: func() { Double(1.5).To().Be().At().Most(1.25) }, want: "Expected 1.5 to be at most 1.25."},
		{name: "within", run: func() { Double(1.5).To().Be().Within(1, 2) }},
		{name: "not within", run: func() { Double(1.5).To().Not().Be().Within(1, 2) }, want: "Expected 1.5 to not be within 1.0 and 2.0."},
		{name: "match", run: func() { Double(1.5).To().Match(func(v float64) bool { return v > 1 }) }},
		{name: "satisfy fail", run: func() { Double(1.5).To().Satisfy(func(v float64) bool { return v > 2 }) }, want: "Expected 1.5 to satisfy a custom predicate."},
		{name: "close to", run: func() { Double(0.1 + 0.2).To().Be().CloseTo(0.3, 1e-9) }},
		{name: "close to fail", run: func() { Double(1).To().Be().CloseTo(1.5, 0.25) }, want: "Expected 1.0 to be close to 1.5 with a delta of 0.25."},
		{name: "one of", run: func() { Double(0.5).To().Be().OneOf(0.25, 0.5) }},
		{name: "one of fail", run: func() { Double(0.75).To().Be().OneOf(0.25, 0.5) }, want: "Expected 0.75 to be one of [0.25, 0.5]."},
		{name: "label", run: func() { Double(1, "ratio").To().Be().Above(2) }, want: "ratio: Expected 1.0 to be above 2.0."},
	})
}

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 42, want: "42.0"},
		{in: -3, want: "-3.0"},
		{in: 0.1, want: "0.1"},
		{in: 1.25, want: "1.25"},
		{in: math.Copysign(0, -1), want: "-0.0"},
		{in: 1e7, want: "1.0E7"},
		{in: 1.5e-4, want: "1.5E-4"},
		{in: -2.5e10, want: "-2.5E10"},
		{in: math.NaN(), want: "NaN"},
		{in: math.Inf(1), want: "Infinity"},
		{in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDouble(tt.in))
		})
	}
}

func TestDoubleExpectation_String(t *testing.T) {
	assert.Equal(t, "DoubleExpectation(value=1.500000, label=x)", Double(1.5, "x").String())
}
