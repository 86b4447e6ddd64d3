// Package expect provides chai-style fluent expectations.
//
//	expect.Int(42).To().Be().Above(41)
//	expect.Int(42).To().Not().Be().Above(43)
//	expect.Double(0.1+0.2, "sum").To().Be().CloseTo(0.3, 1e-9)
//	expect.Bool(ok).To().Be().True()
//
// Every comparison evaluates its condition and hands it to Expectation.Decide,
// which applies the negation flag and, on failure, reports a
// *failure.AssertionFailure through the reporter package. Not toggles, so
// calling it twice restores the original behaviour. Linker words (To, Be, Is,
// That, ...) only exist for readability and return the receiver.
//
// Failure messages read "<label: >Expected <value> to <not >be above 43."
package expect
