package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a parsed expectation suite file.
type Suite struct {
	Name  string  `yaml:"name,omitempty"`
	Mode  string  `yaml:"mode,omitempty"`
	Data  string  `yaml:"data,omitempty"` // JSON fixture, relative to the suite file
	Cases []*Case `yaml:"cases"`
	Path  string  `yaml:"-"`
}

// Case is one named group of checks, evaluated as a single test body.
type Case struct {
	Name   string   `yaml:"name"`
	Tags   []string `yaml:"tags,omitempty"`
	Skip   string   `yaml:"skip,omitempty"`
	Only   bool     `yaml:"only,omitempty"`
	Mode   string   `yaml:"mode,omitempty"`
	Expect []*Check `yaml:"expect"`
	Line   int      `yaml:"-"`
}

// Check is a single expectation chain: a value, optional negations and one
// comparison.
type Check struct {
	Value   any     `yaml:"value,omitempty"`
	Subject string  `yaml:"subject,omitempty"` // gjson path into the suite data
	Kind    Kind    `yaml:"type,omitempty"`
	Label   string  `yaml:"label,omitempty"`
	Not     Toggles `yaml:"not,omitempty"`
	Assert  string  `yaml:"assert"`
	Args    []any   `yaml:"args,omitempty"`
	Message string  `yaml:"message,omitempty"` // per-call label
	Line    int     `yaml:"-"`
}

func (c *Case) UnmarshalYAML(node *yaml.Node) error {
	type plain Case
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	c.Line = node.Line
	return nil
}

func (c *Check) UnmarshalYAML(node *yaml.Node) error {
	type plain Check
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	c.Line = node.Line
	return nil
}

// Describe renders the check roughly as it would be written in Go.
func (c *Check) Describe() string {
	var sb strings.Builder
	if c.Subject != "" {
		sb.WriteString(c.Subject)
	} else {
		fmt.Fprintf(&sb, "%v", c.Value)
	}
	for i := 0; i < int(c.Not); i++ {
		sb.WriteString(" not")
	}
	sb.WriteString(" " + c.Assert)
	for _, a := range c.Args {
		fmt.Fprintf(&sb, " %v", a)
	}
	return sb.String()
}

// Kind is the expectation type a check is evaluated with.
type Kind int

const (
	KindAuto Kind = iota
	KindInt
	KindLong
	KindDouble
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name as written in suite files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return KindAuto, nil
	case "int", "integer":
		return KindInt, nil
	case "long", "int64":
		return KindLong, nil
	case "double", "float", "number":
		return KindDouble, nil
	case "bool", "boolean":
		return KindBool, nil
	default:
		return KindAuto, fmt.Errorf("unknown type %q", s)
	}
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (any, error) {
	if k == KindAuto {
		return nil, nil
	}
	return k.String(), nil
}

// Toggles counts how many times Not is applied. `not: true` is one toggle.
type Toggles int

func (t *Toggles) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		if b {
			*t = 1
		} else {
			*t = 0
		}
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("line %d: not must be a boolean or a count", node.Line)
	}
	if n < 0 {
		return fmt.Errorf("line %d: not must not be negative", node.Line)
	}
	*t = Toggles(n)
	return nil
}

// Negated reports whether an odd number of toggles is applied.
func (t Toggles) Negated() bool {
	return t%2 == 1
}

// Assertions lists the comparison names understood for each kind.
var Assertions = map[Kind][]string{
	KindInt:    {"equal", "above", "least", "below", "most", "within", "closeTo", "oneOf", "validByte", "validShort"},
	KindLong:   {"equal", "above", "least", "below", "most", "within", "closeTo", "oneOf", "validByte", "validShort", "validInt"},
	KindDouble: {"finite", "infinite", "nan", "equal", "above", "least", "below", "most", "within", "closeTo", "oneOf"},
	KindBool:   {"ok", "true", "false", "equal"},
}

// Supports reports whether kind understands the assertion name (case insensitive).
func Supports(kind Kind, assert string) bool {
	if kind == KindAuto {
		for k := range Assertions {
			if Supports(k, assert) {
				return true
			}
		}
		return false
	}
	for _, name := range Assertions[kind] {
		if strings.EqualFold(name, assert) {
			return true
		}
	}
	return false
}
