package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/abdul-hamid-achik/chaigo/packages/core/parser"
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
	"github.com/abdul-hamid-achik/chaigo/packages/reporter"
	"github.com/tidwall/gjson"
)

const (
	// DefaultConcurrency is the default number of concurrent cases in parallel mode
	DefaultConcurrency = 5
)

type Runner struct {
	config *Config
}

type Config struct {
	Mode        reporter.Mode // used when neither the case nor the suite sets one
	Verbose     bool
	Bail        bool
	NameFilter  string
	TagsFilter  []string
	Parallel    bool
	Concurrency int
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Runner{config: cfg}
}

type RunResult struct {
	File     string
	Suite    string
	Results  []*CaseResult
	Duration time.Duration
	Passed   int
	Failed   int
	Skipped  int
}

type CaseResult struct {
	Name       string
	Tags       []string
	Line       int
	Mode       reporter.Mode
	Checks     int
	Passed     bool
	Skipped    bool
	SkipReason string
	Duration   time.Duration
	Failures   []string // one message per failure, in report order
	Error      error    // the failure as reported by the aggregator
}

func (r *Runner) RunFile(path string) (*RunResult, error) {
	suite, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return r.RunSuite(suite)
}

// RunSuite runs an already parsed suite. Data paths are resolved relative
// to the suite's Path.
func (r *Runner) RunSuite(suite *parser.Suite) (*RunResult, error) {
	data, err := loadData(suite)
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}

	suiteMode := r.config.Mode
	if suite.Mode != "" {
		if suiteMode, err = reporter.ParseMode(suite.Mode); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	result := &RunResult{
		File:  suite.Path,
		Suite: suite.Name,
	}

	hasOnly := false
	for _, c := range suite.Cases {
		if c.Only {
			hasOnly = true
			break
		}
	}

	var selected []*parser.Case
	for _, c := range suite.Cases {
		if !r.shouldRun(c, hasOnly) {
			result.Results = append(result.Results, skipped(c, "filtered out"))
			result.Skipped++
			continue
		}
		if c.Skip != "" {
			result.Results = append(result.Results, skipped(c, c.Skip))
			result.Skipped++
			continue
		}
		selected = append(selected, c)
	}

	if r.config.Parallel {
		for _, cr := range r.runParallel(selected, suiteMode, data) {
			result.Results = append(result.Results, cr)
			if cr.Passed {
				result.Passed++
			} else {
				result.Failed++
			}
		}
	} else {
		for _, c := range selected {
			cr := r.runCase(c, suiteMode, data)
			result.Results = append(result.Results, cr)
			if cr.Passed {
				result.Passed++
				continue
			}
			result.Failed++
			if r.config.Bail {
				break
			}
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

func skipped(c *parser.Case, reason string) *CaseResult {
	return &CaseResult{
		Name:       c.Name,
		Tags:       c.Tags,
		Line:       c.Line,
		Checks:     len(c.Expect),
		Skipped:    true,
		SkipReason: reason,
	}
}

// runParallel runs each case on its own goroutine, so each case gets its
// own aggregation frame.
func (r *Runner) runParallel(cases []*parser.Case, mode reporter.Mode, data gjson.Result) []*CaseResult {
	concurrency := r.config.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*CaseResult, len(cases))
	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for i, c := range cases {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, c *parser.Case) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = r.runCase(c, mode, data)
		}(i, c)
	}

	wg.Wait()
	return results
}

func (r *Runner) shouldRun(c *parser.Case, hasOnly bool) bool {
	if hasOnly && !c.Only {
		return false
	}

	if r.config.NameFilter != "" {
		if c.Name == "" || !matchesPattern(c.Name, r.config.NameFilter) {
			return false
		}
	}

	if len(r.config.TagsFilter) > 0 {
		if !hasAnyTag(c.Tags, r.config.TagsFilter) {
			return false
		}
	}

	return true
}

func (r *Runner) runCase(c *parser.Case, suiteMode reporter.Mode, data gjson.Result) *CaseResult {
	mode := suiteMode
	if c.Mode != "" {
		m, err := reporter.ParseMode(c.Mode)
		if err != nil {
			return &CaseResult{Name: c.Name, Tags: c.Tags, Line: c.Line, Error: err, Failures: []string{err.Error()}}
		}
		mode = m
	}

	start := time.Now()
	err := runBody(mode, func() error {
		for _, chk := range c.Expect {
			if err := evaluate(chk, data); err != nil {
				return err
			}
		}
		return nil
	})

	return &CaseResult{
		Name:     c.Name,
		Tags:     c.Tags,
		Line:     c.Line,
		Mode:     mode,
		Checks:   len(c.Expect),
		Passed:   err == nil,
		Duration: time.Since(start),
		Failures: failure.Messages(err),
		Error:    err,
	}
}

// runBody is reporter.Run that also turns stray panics in fail-fast mode
// into failures instead of crashing the run.
func runBody(mode reporter.Mode, body func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = failure.Recovered(v)
		}
	}()
	return reporter.Run(mode, body)
}

func loadData(suite *parser.Suite) (gjson.Result, error) {
	if suite.Data == "" {
		return gjson.Result{}, nil
	}

	path := suite.Data
	if !filepath.IsAbs(path) && suite.Path != "" {
		path = filepath.Join(filepath.Dir(suite.Path), path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(content) {
		return gjson.Result{}, fmt.Errorf("%s is not valid JSON", path)
	}
	return gjson.ParseBytes(content), nil
}

func matchesPattern(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	if pattern[0] == '*' && pattern[len(pattern)-1] == '*' {
		if len(pattern) == 1 {
			return true
		}
		substr := pattern[1 : len(pattern)-1]
		for i := 0; i <= len(name)-len(substr); i++ {
			if name[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	}

	if pattern[0] == '*' {
		suffix := pattern[1:]
		return len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix
	}

	if pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(name) >= len(prefix) && name[:len(prefix)] == prefix
	}

	return name == pattern
}

func hasAnyTag(tags []string, filters []string) bool {
	for _, filter := range filters {
		for _, tag := range tags {
			if tag == filter {
				return true
			}
		}
	}
	return false
}
