package runner

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/abdul-hamid-achik/chaigo/packages/expect"
)

// variadic marks assertions taking one or more arguments.
const variadic = -1

type assertion[E, T any] struct {
	arity int
	call  func(e E, args []T, label string)
}

// assertions maps lower-cased assertion names to expectation methods.
type assertions[E, T any] map[string]assertion[E, T]

func (t assertions[E, T]) apply(e E, chk *parser.Check, convert func(any) (T, error)) error {
	a, ok := t[strings.ToLower(chk.Assert)]
	if !ok {
		return fmt.Errorf("unknown assertion %q", chk.Assert)
	}

	switch {
	case a.arity == variadic && len(chk.Args) == 0:
		return fmt.Errorf("%s needs at least one argument", chk.Assert)
	case a.arity != variadic && len(chk.Args) != a.arity:
		return fmt.Errorf("%s takes %d argument(s), got %d", chk.Assert, a.arity, len(chk.Args))
	}

	args := make([]T, len(chk.Args))
	for i, raw := range chk.Args {
		v, err := convert(raw)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = v
	}

	a.call(e, args, chk.Message)
	return nil
}

var intAssertions = assertions[*expect.IntExpectation, int]{
	"equal":      {1, func(e *expect.IntExpectation, a []int, l string) { e.Equal(a[0], l) }},
	"above":      {1, func(e *expect.IntExpectation, a []int, l string) { e.Above(a[0], l) }},
	"least":      {1, func(e *expect.IntExpectation, a []int, l string) { e.Least(a[0], l) }},
	"below":      {1, func(e *expect.IntExpectation, a []int, l string) { e.Below(a[0], l) }},
	"most":       {1, func(e *expect.IntExpectation, a []int, l string) { e.Most(a[0], l) }},
	"within":     {2, func(e *expect.IntExpectation, a []int, l string) { e.Within(a[0], a[1], l) }},
	"closeto":    {2, func(e *expect.IntExpectation, a []int, l string) { e.CloseTo(a[0], a[1], l) }},
	"oneof":      {variadic, func(e *expect.IntExpectation, a []int, l string) { e.OneOfLabeled(l, a...) }},
	"validbyte":  {0, func(e *expect.IntExpectation, _ []int, l string) { e.ValidByte(l) }},
	"validshort": {0, func(e *expect.IntExpectation, _ []int, l string) { e.ValidShort(l) }},
}

var longAssertions = assertions[*expect.LongExpectation, int64]{
	"equal":      {1, func(e *expect.LongExpectation, a []int64, l string) { e.Equal(a[0], l) }},
	"above":      {1, func(e *expect.LongExpectation, a []int64, l string) { e.Above(a[0], l) }},
	"least":      {1, func(e *expect.LongExpectation, a []int64, l string) { e.Least(a[0], l) }},
	"below":      {1, func(e *expect.LongExpectation, a []int64, l string) { e.Below(a[0], l) }},
	"most":       {1, func(e *expect.LongExpectation, a []int64, l string) { e.Most(a[0], l) }},
	"within":     {2, func(e *expect.LongExpectation, a []int64, l string) { e.Within(a[0], a[1], l) }},
	"closeto":    {2, func(e *expect.LongExpectation, a []int64, l string) { e.CloseTo(a[0], a[1], l) }},
	"oneof":      {variadic, func(e *expect.LongExpectation, a []int64, l string) { e.OneOfLabeled(l, a...) }},
	"validbyte":  {0, func(e *expect.LongExpectation, _ []int64, l string) { e.ValidByte(l) }},
	"validshort": {0, func(e *expect.LongExpectation, _ []int64, l string) { e.ValidShort(l) }},
	"validint":   {0, func(e *expect.LongExpectation, _ []int64, l string) { e.ValidInt(l) }},
}

var doubleAssertions = assertions[*expect.DoubleExpectation, float64]{
	"finite":   {0, func(e *expect.DoubleExpectation, _ []float64, l string) { e.Finite(l) }},
	"infinite": {0, func(e *expect.DoubleExpectation, _ []float64, l string) { e.Infinite(l) }},
	"nan":      {0, func(e *expect.DoubleExpectation, _ []float64, l string) { e.NaN(l) }},
	"equal":    {1, func(e *expect.DoubleExpectation, a []float64, l string) { e.Equal(a[0], l) }},
	"above":    {1, func(e *expect.DoubleExpectation, a []float64, l string) { e.Above(a[0], l) }},
	"least":    {1, func(e *expect.DoubleExpectation, a []float64, l string) { e.Least(a[0], l) }},
	"below":    {1, func(e *expect.DoubleExpectation, a []float64, l string) { e.Below(a[0], l) }},
	"most":     {1, func(e *expect.DoubleExpectation, a []float64, l string) { e.Most(a[0], l) }},
	"within":   {2, func(e *expect.DoubleExpectation, a []float64, l string) { e.Within(a[0], a[1], l) }},
	"closeto":  {2, func(e *expect.DoubleExpectation, a []float64, l string) { e.CloseTo(a[0], a[1], l) }},
	"oneof":    {variadic, func(e *expect.DoubleExpectation, a []float64, l string) { e.OneOfLabeled(l, a...) }},
}

var boolAssertions = assertions[*expect.BoolExpectation, bool]{
	"ok":    {0, func(e *expect.BoolExpectation, _ []bool, l string) { e.OK(l) }},
	"true":  {0, func(e *expect.BoolExpectation, _ []bool, l string) { e.True(l) }},
	"false": {0, func(e *expect.BoolExpectation, _ []bool, l string) { e.False(l) }},
	"equal": {1, func(e *expect.BoolExpectation, a []bool, l string) { e.Equal(a[0], l) }},
}
