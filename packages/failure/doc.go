// Package failure defines the errors raised by unmet expectations.
//
// Failure kinds:
//   - AssertionFailure: a single expectation that did not hold
//   - WrappedFailure: an unexpected error or panic captured while collecting
//   - AggregateFailure: two or more failures from one collecting run
//
// Aggregate messages are part of the observable contract and look like:
//
//	There were 2 errors:
//	 - failure.AssertionFailure(Expected 42 to be above 43.)
//	 - failure.WrappedFailure(errors.errorString: boom) with cause
//	    errors.errorString(boom)
package failure
