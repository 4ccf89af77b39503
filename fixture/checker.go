package fixture

import (
	"github.com/Marat-Tanalin/integer-scaling/api"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	"strings"
	"time"
)

type Result struct {
	testCase   *Case
	outcome    Outcome
	mismatches []string
	err        error
}

func (s *Result) Case() *Case {
	return s.testCase
}

func (s *Result) Outcome() Outcome {
	return s.outcome
}

func (s *Result) Err() error {
	return s.err
}

func (s *Result) Passed() bool {
	return s.err == nil && len(s.mismatches) == 0
}

func (s *Result) Message() string {
	if s.err != nil {
		return "invalid test case: " + s.err.Error()
	}
	return strings.Join(s.mismatches, "; ")
}

type Report struct {
	source  string
	results []*Result
}

func NewReport(source string, results []*Result) *Report {
	return &Report{
		source:  source,
		results: results,
	}
}

func (s *Report) Source() string {
	return s.source
}

func (s *Report) Results() []*Result {
	return s.results
}

func (s *Report) Total() int {
	return len(s.results)
}

func (s *Report) Passed() int {
	passed := 0
	for _, result := range s.results {
		if result.Passed() {
			passed++
		}
	}
	return passed
}

func (s *Report) Failed() int {
	return s.Total() - s.Passed()
}

func (s *Report) Failures() []*Result {
	var failures []*Result
	for _, result := range s.results {
		if !result.Passed() {
			failures = append(failures, result)
		}
	}
	return failures
}

type Checker struct {
	sender   api.Sender
	progress api.ProgressReporter
}

func NewChecker(sender api.Sender, progress api.ProgressReporter) *Checker {
	return &Checker{
		sender:   sender,
		progress: progress,
	}
}

func Check(testCase *Case) *Result {
	if err := testCase.Validate(); err != nil {
		return &Result{testCase: testCase, err: err}
	}
	outcome := testCase.Evaluate()
	return &Result{
		testCase:   testCase,
		outcome:    outcome,
		mismatches: testCase.Mismatches(outcome),
	}
}

// Run checks every case, publishing a CaseChecked command per case and a
// CheckCompleted command at the end
func (s *Checker) Run(source string, cases []*Case) *Report {
	startTime := time.Now()
	report := NewReport(source, make([]*Result, 0, len(cases)))

	total := len(cases)
	for i, testCase := range cases {
		s.progress.Update("Checking test cases", i, total)

		result := Check(testCase)
		report.results = append(report.results, result)

		if result.Passed() {
			logger.Trace.Printf("%s: passed", testCase.Name)
		} else {
			logger.Warn.Printf("%s: %s", testCase.Name, result.Message())
		}

		s.sender.SendCommandToTopic(api.CaseChecked, &api.CaseCheckedCommand{
			Name:    testCase.Name,
			Index:   i,
			Passed:  result.Passed(),
			Message: result.Message(),
		})
	}
	s.progress.Update("Checking test cases", total, total)

	logger.Info.Printf("Checked %d test cases from %s in %s: %d passed, %d failed",
		report.Total(), source, time.Since(startTime).String(), report.Passed(), report.Failed())
	s.sender.SendCommandToTopic(api.CheckCompleted, &api.CheckCompletedCommand{
		Source: source,
		Total:  report.Total(),
		Passed: report.Passed(),
		Failed: report.Failed(),
	})
	return report
}
