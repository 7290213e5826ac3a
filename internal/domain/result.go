package domain

import "time"

// CaseFailure describes one failed test case from a run.
type CaseFailure struct {
	ID       string `json:"id"`
	Suite    string `json:"suite"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Resolved bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}

// RunMeta contains metadata about one test run.
type RunMeta struct {
	Executable      string  `json:"executable"`
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	CancelledCases  int     `json:"cancelled_cases,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunResultsOutput is the complete persisted record of one run.
type RunResultsOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

// NewRunMeta fills run metadata from counters and a wall-clock duration.
func NewRunMeta(executable string, passed, failed, cancelled int, duration time.Duration) RunMeta {
	return RunMeta{
		Executable:      executable,
		TotalCases:      passed + failed + cancelled,
		PassedCases:     passed,
		FailedCases:     failed,
		CancelledCases:  cancelled,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       time.Now().Format(time.RFC3339),
	}
}
