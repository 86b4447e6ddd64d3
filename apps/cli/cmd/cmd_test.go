package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its exit code and output.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		resetFlags(c)
	}
	printSchema = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	code := run(rootCmd)
	return code, stdout.String(), stderr.String()
}

func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const failingSuite = `name: numbers
cases:
  - name: passes
    expect:
      - value: 3
        assert: within
        args: [1, 5]
  - name: fails twice
    tags: [slow]
    mode: multiple
    expect:
      - value: 42
        assert: above
        args: [43]
      - value: 42
        assert: below
        args: [10]
`

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "version")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "chaigo version dev")
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "numbers.chaigo.yaml", failingSuite)
	t.Chdir(dir)

	code, out, _ := execute(t, "run", path, "--no-color")
	assert.Equal(t, ExitTestFailure, code)
	assert.Contains(t, out, "✓ passes")
	assert.Contains(t, out, "→ Expected 42 to be above 43.")
	assert.Contains(t, out, "→ Expected 42 to be below 10.")

	code, _, _ = execute(t, "run", path, "--no-color", "--tags", "fast")
	assert.Equal(t, ExitSuccess, code)

	code, _, _ = execute(t, "run", path, "--no-color", "--name", "pass*")
	assert.Equal(t, ExitSuccess, code)
}

func TestRun_JSONOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "numbers.chaigo.yaml", failingSuite)
	report := filepath.Join(dir, "report.json")
	t.Chdir(dir)

	code, _, _ := execute(t, "run", path, "--output", "json", "--output-file", report)
	assert.Equal(t, ExitTestFailure, code)

	content, err := os.ReadFile(report)
	require.NoError(t, err)

	var out struct {
		RunID   string `json:"runId"`
		Summary struct {
			Passed int `json:"passed"`
			Failed int `json:"failed"`
		} `json:"summary"`
		Tests []struct {
			Name     string   `json:"name"`
			Failures []string `json:"failures"`
		} `json:"tests"`
	}
	require.NoError(t, json.Unmarshal(content, &out))
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, 1, out.Summary.Passed)
	assert.Equal(t, 1, out.Summary.Failed)
	assert.Len(t, out.Tests[1].Failures, 2)
}

func TestRun_ModeFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "twice.chaigo.yaml", `cases:
  - name: twice
    expect:
      - value: 1
        assert: equal
        args: [2]
      - value: 3
        assert: equal
        args: [4]
`)
	writeFile(t, dir, ".chaigo.config.json", `{"mode": "multiple"}`)
	t.Chdir(dir)

	code, out, _ := execute(t, "run", path, "--no-color")
	assert.Equal(t, ExitTestFailure, code)
	assert.Contains(t, out, "→ Expected 3 to equal 4.")

	code, out, _ = execute(t, "run", path, "--no-color", "--mode", "single")
	assert.Equal(t, ExitTestFailure, code)
	assert.Contains(t, out, "→ Expected 1 to equal 2.")
	assert.NotContains(t, out, "Expected 3 to equal 4.")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, _, errOut := execute(t, "run", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, ExitUsageError, code)
	assert.Contains(t, errOut, "cannot access")

	bad := writeFile(t, dir, "bad.chaigo.yaml", "name: nothing\n")
	code, out, _ := execute(t, "run", bad, "--no-color")
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, out, "cases is required")

	code, _, errOut = execute(t, "run", bad, "--mode", "sometimes")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, errOut, `unknown mode "sometimes"`)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.chaigo.yaml", failingSuite)
	writeFile(t, dir, "bad.chaigo.yaml", "cases:\n  - name: x\n    expect:\n      - value: 1\n        assert: shiny\n")
	writeFile(t, dir, "notes.yaml", "not a suite")

	code, out, errOut := execute(t, "validate", dir)
	assert.Equal(t, ExitParseError, code)
	assert.Contains(t, out, "Valid: "+filepath.Join(dir, "good.chaigo.yaml"))
	assert.Contains(t, errOut, `unknown assertion "shiny"`)
	assert.NotContains(t, out+errOut, "notes.yaml")

	code, out, _ = execute(t, "validate", "--schema")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, `"$schema"`)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "numbers.chaigo.yaml", failingSuite)

	code, out, _ := execute(t, "list", path)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "numbers ("+path+"):")
	assert.Contains(t, out, "  - passes (1 checks)")
	assert.Contains(t, out, "  - fails twice (2 checks, multiple)")
	assert.Contains(t, out, "    tags: [slow]")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	code, out, _ := execute(t, "init")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "chaigo project initialized!")

	code, _, errOut := execute(t, "init")
	assert.NotEqual(t, ExitSuccess, code)
	assert.Contains(t, errOut, "use --force to overwrite")

	// the generated suite is valid and passes against its data
	code, _, errOut = execute(t, "validate", "example.chaigo.yaml")
	assert.Equal(t, ExitSuccess, code, errOut)

	code, out, _ = execute(t, "run", "example.chaigo.yaml", "--no-color")
	assert.Equal(t, ExitSuccess, code, out)
	assert.Contains(t, out, "2 passed")
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	a := writeFile(t, dir, "a.chaigo.yaml", "")
	b := writeFile(t, filepath.Join(dir, "nested"), "b.chaigo.yml", "")
	writeFile(t, dir, "other.yaml", "")
	writeFile(t, dir, "data.json", "")
	plain := writeFile(t, dir, "plain.yml", "")

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)

	files, err = collectFiles([]string{plain})
	require.NoError(t, err)
	assert.Equal(t, []string{plain}, files)

	_, err = collectFiles([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestSession_Refresh(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.chaigo.yaml", failingSuite)

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	s := &session{files: files}

	second := writeFile(t, dir, "second.chaigo.yaml", failingSuite)
	require.NoError(t, s.refresh([]string{dir}))
	assert.ElementsMatch(t, []string{first, second}, s.files)

	require.NoError(t, os.Remove(first))
	require.NoError(t, os.Remove(second))
	assert.Error(t, s.refresh([]string{dir}))
	assert.ElementsMatch(t, []string{first, second}, s.files)
}
