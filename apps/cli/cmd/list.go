package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>...",
	Short: "List all cases in suite files",
	Long: `List all cases defined in suite files.

Examples:
  chaigo list orders.chaigo.yaml
  chaigo list ./suites/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return exitWith(ExitUsageError, err)
	}

	if len(files) == 0 {
		return exitWith(ExitUsageError, fmt.Errorf("no suite files found"))
	}

	out := cmd.OutOrStdout()
	for _, file := range files {
		suite, err := parser.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		title := file
		if suite.Name != "" {
			title = suite.Name + " (" + file + ")"
		}
		fmt.Fprintf(out, "\n%s:\n", title)
		for _, c := range suite.Cases {
			var notes []string
			notes = append(notes, fmt.Sprintf("%d checks", len(c.Expect)))
			if c.Mode != "" {
				notes = append(notes, c.Mode)
			}
			if c.Only {
				notes = append(notes, "only")
			}
			if c.Skip != "" {
				notes = append(notes, "skip: "+c.Skip)
			}
			fmt.Fprintf(out, "  - %s (%s)\n", c.Name, strings.Join(notes, ", "))
			if len(c.Tags) > 0 {
				fmt.Fprintf(out, "    tags: %v\n", c.Tags)
			}
		}
	}

	return nil
}
