// Package cmd implements the chaigo CLI commands using Cobra.
//
// Available commands:
//   - run: Execute expectation suites
//   - validate: Check suite files against the schema without running them
//   - list: Display all cases defined in suite files
//   - init: Create a new chaigo project with an example suite
//   - version: Show chaigo version information
//   - completion: Generate shell completion scripts
//
// Commands return an ExitError to pick the process exit code; Execute
// prints it and exits.
package cmd
