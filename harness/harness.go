package harness

import (
	"fmt"
	"io"
	"regexp"
)

// Config holds the configuration for running the harness.
type Config struct {
	HostPath    string
	TestPaths   []string
	NamePattern string // Go regex pattern to filter test names
	Output      io.Writer
	ErrOutput   io.Writer
	Verbose     bool
}

// testFullName returns the display name for a test case: "suite > test".
func testFullName(suite *TestSuite, tc *TestCase) string {
	return fmt.Sprintf("%s > %s", suite.Name, tc.Name)
}

// filterCases returns the cases of suite whose full name matches cfg's
// NamePattern (all of them, when no pattern is configured).
func filterCases(cfg Config, suite *TestSuite) ([]TestCase, error) {
	if cfg.NamePattern == "" {
		return suite.Cases, nil
	}
	pattern, err := regexp.Compile(cfg.NamePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	var kept []TestCase
	for i := range suite.Cases {
		tc := &suite.Cases[i]
		if pattern.MatchString(testFullName(suite, tc)) {
			kept = append(kept, *tc)
		}
	}
	return kept, nil
}

// List prints all test case names from the given paths, one per line.
// Returns 0 on success, 1 on error.
func List(cfg Config) int {
	testFiles, err := CollectTestFiles(cfg.TestPaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	if len(testFiles) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no test files found")
		return 1
	}

	for _, testFile := range testFiles {
		suite, err := ParseFile(testFile)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", testFile, err)
			return 1
		}
		cases, err := filterCases(cfg, suite)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}
		for i := range cases {
			fmt.Fprintln(cfg.Output, testFullName(suite, &cases[i]))
		}
	}
	return 0
}

// Run executes the test harness with the given configuration. Returns 0 if
// every test file parsed and every test case passed, 1 otherwise.
func Run(cfg Config) int {
	testFiles, err := CollectTestFiles(cfg.TestPaths)
	if err != nil {
		fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
		return 1
	}
	if len(testFiles) == 0 {
		fmt.Fprintln(cfg.ErrOutput, "error: no test files found")
		return 1
	}

	runner := NewRunner(cfg.HostPath, cfg.Output)
	reporter := NewReporter(cfg.Output, cfg.Verbose)
	var allResults []TestResult
	hasErrors := false

	for _, testFile := range testFiles {
		suite, err := ParseFile(testFile)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error parsing %s: %v\n", testFile, err)
			hasErrors = true
			continue
		}
		cases, err := filterCases(cfg, suite)
		if err != nil {
			fmt.Fprintf(cfg.ErrOutput, "error: %v\n", err)
			return 1
		}
		suite.Cases = cases

		results := runner.RunSuite(suite)
		allResults = append(allResults, results...)
		for _, result := range results {
			reporter.ReportResult(testFile, result)
		}
	}

	summary := Summarize(allResults)
	reporter.ReportSummary(summary)

	if hasErrors || summary.Failed > 0 {
		return 1
	}
	return 0
}
