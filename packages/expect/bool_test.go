package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolExpectation(t *testing.T) {
	runChainCases(t, []chainCase{
		{name: "ok", run: func() { Bool(true).To().Be().OK() }},
		{name: "ok fail", run: func() { Bool(false).To().Be().OK() }, want: "Expected a ok-ish boolean."},
		{name: "not ok", run: func() { Bool(true).To().Not().Be().OK() }, want: "Expected a not ok-ish boolean."},
		{name: "true", run: func() { Bool(true).To().Be().True() }},
		{name: "true fail", run: func() { Bool(false).To().Be().True() }, want: "Expected a true boolean."},
		{name: "false", run: func() { Bool(false).To().Be().False() }},
		{name: "false fail", run: func() { Bool(true).To().Be().False() }, want: "Expected a false boolean."},
		{name: "not false", run: func() { Bool(true).To().Not().Be().False() }},
		{name: "equal", run: func() { Bool(true).To().Equal(true) }},
		{name: "equal fail", run: func() { Bool(true).To().Equal(false) }, want: "Expected true to equal false."},
		{name: "labels", run: func() { Bool(false, "enabled").To().Be().True("feature flag") }, want: "feature flag: Expected a true boolean."},
	})
}

func TestBoolExpectation_String(t *testing.T) {
	assert.Equal(t, "BoolExpectation(value=true, label=)", Bool(true).String())
	assert.True(t, Bool(true).Value())
}
