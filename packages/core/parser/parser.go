package parser

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
	"gopkg.in/yaml.v3"
)

// ParseError reports a problem at a position in a suite file.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + e.Message
	case e.File != "":
		return e.File + ": " + e.Message
	case e.Line > 0:
		return "line " + strconv.Itoa(e.Line) + ": " + e.Message
	default:
		return e.Message
	}
}

func ParseFile(path string) (*Suite, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(content, path)
}

// Parse validates input against the suite schema, decodes it and checks
// that modes, types and assertion names are understood.
func Parse(input []byte, filename string) (*Suite, error) {
	if err := validate(input, filename); err != nil {
		return nil, err
	}

	suite := &Suite{}
	dec := yaml.NewDecoder(bytes.NewReader(input))
	dec.KnownFields(true)
	if err := dec.Decode(suite); err != nil {
		return nil, &ParseError{File: filename, Message: err.Error()}
	}
	suite.Path = filename

	if err := check(suite); err != nil {
		return nil, err
	}
	return suite, nil
}

func check(s *Suite) error {
	if s.Mode != "" {
		if _, err := reporter.ParseMode(s.Mode); err != nil {
			return &ParseError{File: s.Path, Message: err.Error()}
		}
	}

	for _, c := range s.Cases {
		if c.Mode != "" {
			if _, err := reporter.ParseMode(c.Mode); err != nil {
				return &ParseError{File: s.Path, Line: c.Line, Message: fmt.Sprintf("case %q: %v", c.Name, err)}
			}
		}
		for _, chk := range c.Expect {
			if !Supports(chk.Kind, chk.Assert) {
				msg := fmt.Sprintf("unknown assertion %q", chk.Assert)
				if chk.Kind != KindAuto {
					msg = fmt.Sprintf("assertion %q is not available for type %s", chk.Assert, chk.Kind)
				}
				return &ParseError{File: s.Path, Line: chk.Line, Message: msg}
			}
			if chk.Subject != "" && s.Data == "" {
				return &ParseError{File: s.Path, Line: chk.Line, Message: fmt.Sprintf("subject %q needs suite data", chk.Subject)}
			}
		}
	}
	return nil
}

// Tags returns the distinct tags used by the suite's cases, in first-seen order.
func (s *Suite) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range s.Cases {
		for _, t := range c.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}
