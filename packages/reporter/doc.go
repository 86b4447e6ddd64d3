// Package reporter routes expectation failures.
//
// By default a reported failure panics immediately (fail-fast). Inside
// RunCollecting, failures raised on the same goroutine are buffered instead and
// returned together once the body finishes:
//   - no failures: nil
//   - one failure: that failure, message unchanged
//   - two or more: a *failure.AggregateFailure in detection order
//
// Collecting state belongs to the goroutine that called RunCollecting.
// Goroutines started from inside the body report fail-fast. Nested runs push a
// fresh frame and the outer frame is restored when the inner run returns.
package reporter
