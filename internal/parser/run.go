package parser

import (
	"regexp"

	"btp/internal/domain"
)

// Run-mode status markers, matched per line in priority order, first
// match wins. Unmatched lines are arbitrary diagnostic text and are
// dropped.
var (
	caseEnterPattern  = regexp.MustCompile(`: Entering test case "([^"]+)"`)
	caseLeavePattern  = regexp.MustCompile(`: Leaving test case "([^"]+)"; testing time: \d+\w+`)
	caseErrorPattern  = regexp.MustCompile(`: error: in "([^"]+)": (.*)`)
	suiteEnterPattern = regexp.MustCompile(`: Entering test suite "([^"]+)"`)
	suiteLeavePattern = regexp.MustCompile(`: Leaving test suite "([^"]+)"; testing time: \d+\w+`)
)

// RunState threads the mutable parsing context across lines of a run's
// output stream. Case names arrive bare in the stream and must be
// qualified with the enclosing suite to match catalog identifiers, so
// the state carries the current suite. ProcessLine is a pure function of
// (state, line): it advances the state and returns the events the line
// produced, in emission order.
type RunState struct {
	// CurrentSuite is the suite most recently entered and not yet left.
	CurrentSuite string
	// pendingError is the error message captured since the last case
	// exit, attached to the next CaseFailed event.
	pendingError string
	hasError     bool
}

// ProcessLine consumes one output line and returns zero or more progress
// events.
func (s *RunState) ProcessLine(line string) []domain.ProgressEvent {
	if m := caseEnterPattern.FindStringSubmatch(line); m != nil {
		return []domain.ProgressEvent{{
			Kind: domain.CaseRunning,
			ID:   domain.CaseID(s.CurrentSuite, m[1]),
		}}
	}

	if m := caseLeavePattern.FindStringSubmatch(line); m != nil {
		ev := domain.ProgressEvent{
			Kind: domain.CasePassed,
			ID:   domain.CaseID(s.CurrentSuite, m[1]),
		}
		if s.hasError {
			ev.Kind = domain.CaseFailed
			ev.Message = s.pendingError
		}
		s.pendingError = ""
		s.hasError = false
		return []domain.ProgressEvent{ev}
	}

	if m := caseErrorPattern.FindStringSubmatch(line); m != nil {
		s.pendingError = m[2]
		s.hasError = true
		return nil
	}

	if m := suiteEnterPattern.FindStringSubmatch(line); m != nil {
		s.CurrentSuite = m[1]
		return []domain.ProgressEvent{{Kind: domain.SuiteStarted, ID: m[1]}}
	}

	if m := suiteLeavePattern.FindStringSubmatch(line); m != nil {
		s.CurrentSuite = ""
		return []domain.ProgressEvent{{Kind: domain.SuiteCompleted, ID: m[1]}}
	}

	return nil
}
