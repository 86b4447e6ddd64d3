// Package parser reads chaigo expectation suites.
//
// A suite is a YAML document holding named cases. Each case is a list of
// checks, and each check is one expectation chain: a value (or a gjson
// subject into the suite's JSON data), an optional label, a number of Not
// toggles, and one comparison with its arguments.
//
// Documents are validated against an embedded JSON Schema before they are
// decoded, so structural mistakes are reported all at once with their
// paths. Modes, types and assertion names are checked after decoding and
// reported with the line of the offending case or check.
package parser
