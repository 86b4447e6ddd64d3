package failure

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// DefaultMessage replaces an empty assertion message.
const DefaultMessage = "Expectation not met."

// Signal is a failure that can be reported to the reporter package.
type Signal interface {
	error
	// Kind is the stable type name used when rendering aggregates.
	Kind() string
}

// AssertionFailure is a single unmet expectation.
type AssertionFailure struct {
	Message string
}

// NewAssertionFailure returns a failure carrying msg, or DefaultMessage when msg is empty.
func NewAssertionFailure(msg string) *AssertionFailure {
	if msg == "" {
		msg = DefaultMessage
	}
	return &AssertionFailure{Message: msg}
}

func (f *AssertionFailure) Error() string {
	if f.Message == "" {
		return DefaultMessage
	}
	return f.Message
}

func (f *AssertionFailure) Kind() string {
	return "failure.AssertionFailure"
}

// WrappedFailure carries an error raised by test code while failures were
// being collected.
type WrappedFailure struct {
	Cause error
}

// Wrap returns err as a WrappedFailure.
func Wrap(err error) *WrappedFailure {
	return &WrappedFailure{Cause: err}
}

func (f *WrappedFailure) Error() string {
	if f.Cause == nil {
		return "failure.WrappedFailure: <nil>"
	}
	return TypeName(f.Cause) + ": " + f.Cause.Error()
}

func (f *WrappedFailure) Kind() string {
	return "failure.WrappedFailure"
}

func (f *WrappedFailure) Unwrap() error {
	return f.Cause
}

// PanicError is the error form of a recovered panic value that was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Recovered converts a value obtained from recover() into a Signal.
func Recovered(v any) Signal {
	switch val := v.(type) {
	case Signal:
		return val
	case error:
		return Wrap(val)
	default:
		return Wrap(&PanicError{Value: v, Stack: debug.Stack()})
	}
}

// FromError converts an error returned by test code into a Signal.
// Signals are returned unchanged.
func FromError(err error) Signal {
	if sig, ok := err.(Signal); ok {
		return sig
	}
	return Wrap(err)
}

// AggregateFailure holds every failure from one collecting run in detection order.
type AggregateFailure struct {
	failures []Signal
}

// NewAggregate copies signals into a new AggregateFailure.
func NewAggregate(signals []Signal) *AggregateFailure {
	return &AggregateFailure{failures: append([]Signal(nil), signals...)}
}

func (a *AggregateFailure) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "There were %d errors:", len(a.failures))
	for _, f := range a.failures {
		fmt.Fprintf(&sb, "\n - %s(%s)", f.Kind(), f.Error())
		if cause := errors.Unwrap(f); cause != nil {
			fmt.Fprintf(&sb, " with cause\n    %s(%s)", TypeName(cause), cause.Error())
		}
	}
	return sb.String()
}

func (a *AggregateFailure) Kind() string {
	return "failure.AggregateFailure"
}

// Failures returns a copy of the collected failures.
func (a *AggregateFailure) Failures() []Signal {
	return append([]Signal(nil), a.failures...)
}

func (a *AggregateFailure) Unwrap() []error {
	errs := make([]error, len(a.failures))
	for i, f := range a.failures {
		errs[i] = f
	}
	return errs
}

// Combine turns the signals of a finished collecting run into its outcome:
// nil for none, the signal itself for one, an AggregateFailure otherwise.
func Combine(signals []Signal) error {
	switch len(signals) {
	case 0:
		return nil
	case 1:
		return signals[0]
	default:
		return NewAggregate(signals)
	}
}

// Messages flattens err into the messages of its individual failures.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var agg *AggregateFailure
	if errors.As(err, &agg) {
		msgs := make([]string, len(agg.failures))
		for i, f := range agg.failures {
			msgs[i] = f.Error()
		}
		return msgs
	}
	return []string{err.Error()}
}

// TypeName is the dynamic type of v without the pointer marker.
func TypeName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}
