package reporter

import (
	"fmt"
	"strings"
)

// Mode selects how failures of a test body are reported.
type Mode int

const (
	// Single stops at the first failure.
	Single Mode = iota
	// Multiple collects every failure and reports them together.
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "single" or "multiple" (case insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "fail-fast", "failfast":
		return Single, nil
	case "multiple", "multi", "collect":
		return Multiple, nil
	default:
		return Single, fmt.Errorf("unknown mode %q (want single or multiple)", s)
	}
}
