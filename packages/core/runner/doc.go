// Package runner executes chaigo expectation suites.
//
// Each case becomes one test body: its checks are turned into typed
// expectations and evaluated under the reporter in the case's mode, so a
// fail-fast case stops at its first unmet check while a collecting case
// reports them all together.
//
// It provides:
//   - Name and tag filters, only and skip markers
//   - Bail on first failed case (sequential runs)
//   - Parallel execution with bounded concurrency
//   - gjson subjects resolved against the suite's JSON data
package runner
