package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/config"
	"github.com/abdul-hamid-achik/chaigo/packages/core/runner"
	"github.com/abdul-hamid-achik/chaigo/packages/output"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file|directory>...",
	Short: "Run expectation suites",
	Long: `Run expectation suites defined in YAML files.

Directories are searched for *.chaigo.yaml and *.chaigo.yml files; files
named explicitly may use any .yaml or .yml name.

Examples:
  chaigo run orders.chaigo.yaml
  chaigo run ./suites/ --tags smoke
  chaigo run ./suites/ --mode multiple --output junit --output-file report.xml
  chaigo run orders.chaigo.yaml --name "total*" --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCommand,
}

var (
	modeFlag        string
	nameFlag        string
	tagsFlag        string
	verboseFlag     bool
	bailFlag        bool
	noColorFlag     bool
	outputFlag      string
	outputFileFlag  string
	parallelFlag    bool
	concurrencyFlag int
	watchFlag       bool
	configFlag      string
)

func init() {
	runCmd.Flags().StringVarP(&modeFlag, "mode", "m", getEnvString("CHAIGO_MODE", ""), "Failure mode: single or multiple (env: CHAIGO_MODE)")
	runCmd.Flags().StringVar(&configFlag, "config", getEnvString("CHAIGO_CONFIG", ""), "Path to config file (env: CHAIGO_CONFIG)")
	runCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only cases matching name pattern")
	runCmd.Flags().StringVarP(&tagsFlag, "tags", "t", getEnvString("CHAIGO_TAGS", ""), "Run only cases with specified tags (comma-separated) (env: CHAIGO_TAGS)")

	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("CHAIGO_NO_COLOR", false), "Disable colored output (env: CHAIGO_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("CHAIGO_OUTPUT", ""), "Output format: "+strings.Join(output.Formats, ", ")+" (env: CHAIGO_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("CHAIGO_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: CHAIGO_OUTPUT_FILE)")

	runCmd.Flags().BoolVar(&bailFlag, "bail", getEnvBool("CHAIGO_BAIL", false), "Stop on first failed case (env: CHAIGO_BAIL)")
	runCmd.Flags().BoolVarP(&parallelFlag, "parallel", "p", getEnvBool("CHAIGO_PARALLEL", false), "Run cases in parallel (env: CHAIGO_PARALLEL)")
	runCmd.Flags().IntVar(&concurrencyFlag, "concurrency", getEnvInt("CHAIGO_CONCURRENCY", config.DefaultConcurrency), "Number of concurrent cases when running in parallel (env: CHAIGO_CONCURRENCY)")
	runCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch files for changes and re-run suites")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// explicit reports whether a flag was given on the command line or through
// its environment variable, so it should override the config file.
func explicit(cmd *cobra.Command, flag, envKey string) bool {
	if cmd.Flags().Changed(flag) {
		return true
	}
	return envKey != "" && os.Getenv(envKey) != ""
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{}
	if explicit(cmd, "mode", "CHAIGO_MODE") {
		overrides.Mode = modeFlag
	}
	if explicit(cmd, "output", "CHAIGO_OUTPUT") {
		overrides.Reporters = []string{outputFlag}
	}
	if explicit(cmd, "output-file", "CHAIGO_OUTPUT_FILE") {
		overrides.OutputFile = outputFileFlag
	}
	if explicit(cmd, "tags", "CHAIGO_TAGS") {
		overrides.Tags = splitList(tagsFlag)
	}
	if explicit(cmd, "concurrency", "CHAIGO_CONCURRENCY") {
		overrides.Concurrency = concurrencyFlag
	}
	if explicit(cmd, "parallel", "CHAIGO_PARALLEL") {
		overrides.Parallel = config.BoolPtr(parallelFlag)
	}
	if explicit(cmd, "bail", "CHAIGO_BAIL") {
		overrides.Bail = config.BoolPtr(bailFlag)
	}
	if explicit(cmd, "verbose", "") {
		overrides.Verbose = config.BoolPtr(verboseFlag)
	}
	if explicit(cmd, "no-color", "CHAIGO_NO_COLOR") {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}

	cfg := fileConfig.Merge(overrides)
	if _, err := cfg.GetMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// session runs a set of suite files with one formatter configuration.
type session struct {
	cfg    *config.Config
	runner *runner.Runner
	files  []string
	out    io.Writer
}

func newSession(cfg *config.Config, files []string, out io.Writer) (*session, error) {
	mode, err := cfg.GetMode()
	if err != nil {
		return nil, err
	}
	return &session{
		cfg: cfg,
		runner: runner.NewRunner(&runner.Config{
			Mode:        mode,
			Verbose:     cfg.GetVerbose(),
			Bail:        cfg.GetBail(),
			NameFilter:  nameFlag,
			TagsFilter:  cfg.Tags,
			Parallel:    cfg.GetParallel(),
			Concurrency: cfg.Concurrency,
		}),
		files: files,
		out:   out,
	}, nil
}

type summary struct {
	Passed   int
	Failed   int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// run executes every file once and flushes the formatter.
func (s *session) run() (*summary, error) {
	w := s.out
	if s.cfg.OutputFile != "" {
		f, err := os.Create(s.cfg.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	formatter, err := output.NewFormatter(s.cfg.Reporter(), output.Options{
		Writer:  w,
		Verbose: s.cfg.GetVerbose(),
		NoColor: s.cfg.GetNoColor(),
	})
	if err != nil {
		return nil, err
	}
	formatter.FormatHeader(version)

	sum := &summary{}
	start := time.Now()
	for _, file := range s.files {
		result, err := s.runner.RunFile(file)
		if err != nil {
			formatter.FormatError(err)
			sum.Errors++
			if s.cfg.GetBail() {
				break
			}
			continue
		}

		formatter.FormatResult(result)
		sum.Passed += result.Passed
		sum.Failed += result.Failed
		sum.Skipped += result.Skipped

		if s.cfg.GetBail() && result.Failed > 0 {
			break
		}
	}
	sum.Duration = time.Since(start)

	if flushable, ok := formatter.(output.Flushable); ok {
		if err := flushable.Flush(sum.Duration); err != nil {
			return nil, fmt.Errorf("error writing output: %w", err)
		}
	}
	return sum, nil
}

func (s *summary) exitCode() int {
	switch {
	case s.Errors > 0:
		return ExitParseError
	case s.Failed > 0:
		return ExitTestFailure
	default:
		return ExitSuccess
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return exitWith(ExitConfigError, err)
	}

	files, err := collectFiles(args)
	if err != nil {
		return exitWith(ExitUsageError, err)
	}
	if len(files) == 0 {
		return exitWith(ExitUsageError, fmt.Errorf("no suite files found"))
	}

	s, err := newSession(cfg, files, cmd.OutOrStdout())
	if err != nil {
		return exitWith(ExitConfigError, err)
	}

	if watchFlag {
		return s.watch(cmd, args)
	}

	sum, err := s.run()
	if err != nil {
		return err
	}
	if code := sum.exitCode(); code != ExitSuccess {
		return exitWith(code, nil)
	}
	return nil
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isSuiteFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else if isYAMLFile(arg) {
			files = append(files, arg)
		}
	}

	return files, nil
}

func isSuiteFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".chaigo.yaml") || strings.HasSuffix(base, ".chaigo.yml")
}

func isYAMLFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}
