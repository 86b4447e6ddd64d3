package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/chaigo/packages/core/config"
	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new chaigo project",
	Long: `Initialize a new chaigo project in the current directory.

This creates:
  - .chaigo.config.json  - Configuration file
  - example.chaigo.yaml  - Example suite
  - example.json         - Data the example suite checks

Examples:
  chaigo init
  chaigo init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

// exampleSuite is written by init and doubles as documentation of the format.
func exampleSuite() *parser.Suite {
	return &parser.Suite{
		Name: "example",
		Mode: "multiple",
		Data: "example.json",
		Cases: []*parser.Case{
			{
				Name: "order totals",
				Tags: []string{"smoke"},
				Expect: []*parser.Check{
					{Subject: "order.total", Kind: parser.KindDouble, Assert: "closeTo", Args: []any{19.99, 0.001}},
					{Subject: "order.items", Label: "item count", Assert: "within", Args: []any{1, 10}},
					{Subject: "order.paid", Assert: "true"},
				},
			},
			{
				Name: "status code",
				Mode: "single",
				Expect: []*parser.Check{
					{Subject: "status", Assert: "oneOf", Args: []any{200, 201, 204}},
					{Subject: "status", Not: 1, Assert: "above", Args: []any{299}, Message: "no error statuses"},
				},
			},
		},
	}
}

const exampleData = `{
  "status": 200,
  "order": {
    "total": 19.99,
    "items": 3,
    "paid": true
  }
}
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	suiteFile := filepath.Join(cwd, "example.chaigo.yaml")
	dataFile := filepath.Join(cwd, "example.json")

	if !forceInit {
		for _, f := range []string{configFile, suiteFile, dataFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	suiteYAML, err := yaml.Marshal(exampleSuite())
	if err != nil {
		return fmt.Errorf("failed to render example suite: %w", err)
	}
	if err := os.WriteFile(suiteFile, suiteYAML, 0644); err != nil {
		return fmt.Errorf("failed to create example suite: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", suiteFile)

	if err := os.WriteFile(dataFile, []byte(exampleData), 0644); err != nil {
		return fmt.Errorf("failed to create example data: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", dataFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nchaigo project initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'chaigo run example.chaigo.yaml' to execute the example suite.\n")

	return nil
}
