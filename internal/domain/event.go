package domain

// EventKind classifies a progress event emitted during a run.
type EventKind int

const (
	// SuiteStarted marks entry into a test suite.
	SuiteStarted EventKind = iota
	// SuiteCompleted marks exit from a test suite.
	SuiteCompleted
	// CaseRunning marks entry into a test case.
	CaseRunning
	// CasePassed marks a case exit with no recorded error.
	CasePassed
	// CaseFailed marks a case exit with a recorded error message.
	CaseFailed
	// CaseCancelled marks a case that was in flight when the run was
	// cancelled.
	CaseCancelled
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case SuiteStarted:
		return "suite-started"
	case SuiteCompleted:
		return "suite-completed"
	case CaseRunning:
		return "case-running"
	case CasePassed:
		return "case-passed"
	case CaseFailed:
		return "case-failed"
	case CaseCancelled:
		return "case-cancelled"
	}
	return "unknown"
}

// ProgressEvent is one incremental status update during a run. Events
// are emitted in the order the executable reports them, never reordered
// or batched.
type ProgressEvent struct {
	Kind EventKind
	// ID is the suite identifier for suite events, the compound
	// "<suite>/<case>" identifier for case events.
	ID string
	// Message carries the captured error text for CaseFailed events.
	Message string
}
