package expect

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Integer | constraints.Float
}

type signed interface {
	constraints.Signed | constraints.Float
}

// outcome is a comparison result before negation is applied.
type outcome struct {
	held bool
	// first overrides the default "Expected <value> to" fragment.
	first  string
	second func() string
}

func describe(format string, args ...any) func() string {
	return func() string {
		shown := make([]any, len(args))
		for i, a := range args {
			shown[i] = formatValue(a)
		}
		return fmt.Sprintf(format, shown...)
	}
}

func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return formatDouble(n)
	case float32:
		return formatDouble(float64(n))
	default:
		return fmt.Sprint(v)
	}
}

// formatDouble renders v the way Java's Double.toString does, so whole values
// keep their ".0" and large or tiny magnitudes use an exponent.
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
		if !strings.Contains(mantissa, ".") {
			mantissa += ".0"
		}
		e, _ := strconv.Atoi(exp)
		return mantissa + "E" + strconv.Itoa(e)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func equal[T comparable](v, expected T) outcome {
	return outcome{held: v == expected, second: describe("equal %v.", expected)}
}

func above[T number](v, bound T) outcome {
	return outcome{held: v > bound, second: describe("be above %v.", bound)}
}

func least[T number](v, bound T) outcome {
	return outcome{held: v >= bound, second: describe("be at least %v.", bound)}
}

func below[T number](v, bound T) outcome {
	return outcome{held: v < bound, second: describe("be below %v.", bound)}
}

func most[T number](v, bound T) outcome {
	return outcome{held: v <= bound, second: describe("be at most %v.", bound)}
}

func within[T number](v, lo, hi T) outcome {
	return outcome{held: lo <= v && v <= hi, second: describe("be within %v and %v.", lo, hi)}
}

func closeTo[T signed](v, expected, delta T) outcome {
	diff := v - expected
	if diff < 0 {
		diff = -diff
	}
	return outcome{
		held:   diff <= delta,
		second: describe("be close to %v with a delta of %v.", expected, delta),
	}
}

func oneOf[T comparable](v T, set []T) outcome {
	return outcome{
		held: slices.Contains(set, v),
		second: func() string {
			return "be one of " + formatList(set) + "."
		},
	}
}

func match[T any](v T, predicate func(T) bool) outcome {
	return outcome{held: predicate(v), second: describe("match a custom predicate.")}
}

func satisfy[T any](v T, predicate func(T) bool) outcome {
	return outcome{held: predicate(v), second: describe("satisfy a custom predicate.")}
}

func fitsIn[T constraints.Integer](v T, lo, hi int64, what string) outcome {
	n := int64(v)
	return outcome{held: lo <= n && n <= hi, second: describe("be a valid %s value.", what)}
}

func formatList[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
