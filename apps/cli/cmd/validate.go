package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/spf13/cobra"
)

var printSchema bool

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate suite files without running them",
	Long: `Validate suite files against the suite schema and check that every
mode, type and assertion name is known, without running anything.

Examples:
  chaigo validate orders.chaigo.yaml
  chaigo validate ./suites/
  chaigo validate --schema > chaigo.schema.json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if printSchema {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().BoolVar(&printSchema, "schema", false, "Print the suite JSON Schema and exit")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	if printSchema {
		_, err := cmd.OutOrStdout().Write(parser.Schema())
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return exitWith(ExitUsageError, err)
	}

	if len(files) == 0 {
		return exitWith(ExitUsageError, fmt.Errorf("no suite files found"))
	}

	hasErrors := false
	for _, file := range files {
		_, err := parser.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		return exitWith(ExitParseError, fmt.Errorf("validation failed"))
	}

	return nil
}
