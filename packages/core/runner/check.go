package runner

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/abdul-hamid-achik/chaigo/packages/expect"
	"github.com/tidwall/gjson"
)

// evaluate builds the expectation a check describes and applies its
// comparison. Unmet expectations go through the reporter; the returned
// error is for checks that cannot be evaluated at all.
func evaluate(chk *parser.Check, data gjson.Result) error {
	raw, err := resolve(chk, data)
	if err != nil {
		return checkError(chk, err)
	}

	kind := chk.Kind
	if kind == parser.KindAuto {
		kind = infer(raw)
	}

	switch kind {
	case parser.KindInt:
		v, err := toInt(raw)
		if err != nil {
			return checkError(chk, err)
		}
		e := expect.Int(v, chk.Label)
		for range int(chk.Not) {
			e.Not()
		}
		err = intAssertions.apply(e, chk, toInt)
		return checkError(chk, err)
	case parser.KindLong:
		v, err := toInt64(raw)
		if err != nil {
			return checkError(chk, err)
		}
		e := expect.Long(v, chk.Label)
		for range int(chk.Not) {
			e.Not()
		}
		err = longAssertions.apply(e, chk, toInt64)
		return checkError(chk, err)
	case parser.KindDouble:
		v, err := toFloat64(raw)
		if err != nil {
			return checkError(chk, err)
		}
		e := expect.Double(v, chk.Label)
		for range int(chk.Not) {
			e.Not()
		}
		err = doubleAssertions.apply(e, chk, toFloat64)
		return checkError(chk, err)
	case parser.KindBool:
		v, err := toBool(raw)
		if err != nil {
			return checkError(chk, err)
		}
		e := expect.Bool(v, chk.Label)
		for range int(chk.Not) {
			e.Not()
		}
		err = boolAssertions.apply(e, chk, toBool)
		return checkError(chk, err)
	default:
		return checkError(chk, fmt.Errorf("unsupported type %s", kind))
	}
}

func checkError(chk *parser.Check, err error) error {
	if err == nil {
		return nil
	}
	if chk.Line > 0 {
		return fmt.Errorf("line %d: %s: %w", chk.Line, chk.Describe(), err)
	}
	return fmt.Errorf("%s: %w", chk.Describe(), err)
}

func resolve(chk *parser.Check, data gjson.Result) (any, error) {
	if chk.Subject == "" {
		if chk.Value == nil {
			return nil, fmt.Errorf("no value")
		}
		return chk.Value, nil
	}

	res := data.Get(chk.Subject)
	switch res.Type {
	case gjson.Number:
		if strings.ContainsAny(res.Raw, ".eE") {
			return res.Float(), nil
		}
		return res.Int(), nil
	case gjson.True, gjson.False:
		return res.Bool(), nil
	case gjson.Null:
		if !res.Exists() {
			return nil, fmt.Errorf("subject %q not found in data", chk.Subject)
		}
		return nil, fmt.Errorf("subject %q is null", chk.Subject)
	default:
		return nil, fmt.Errorf("subject %q is a %s, not a number or boolean", chk.Subject, res.Type)
	}
}

func infer(raw any) parser.Kind {
	switch raw.(type) {
	case bool:
		return parser.KindBool
	case float64, float32:
		return parser.KindDouble
	case int64:
		return parser.KindLong
	default:
		return parser.KindInt
	}
}
