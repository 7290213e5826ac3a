package domain

import "strings"

// Node is a single entry in a catalog tree, either a *Suite or a *Case.
type Node interface {
	// NodeID returns the identifier, unique within the whole catalog.
	NodeID() string
	// NodeLabel returns the display label.
	NodeLabel() string
	// NodeSource returns the source file and 0-based line, if known.
	NodeSource() (file string, line int)
}

// Suite is a named grouping of test cases. The catalog root is a Suite
// whose ID is the resolved path of the test executable.
type Suite struct {
	ID       string
	Label    string
	File     string // optional source file
	Line     int    // 0-based
	Children []Node // Suites or Cases, in discovery order
}

// NodeID returns the suite identifier.
func (s *Suite) NodeID() string { return s.ID }

// NodeLabel returns the suite display label.
func (s *Suite) NodeLabel() string { return s.Label }

// NodeSource returns the suite's source location.
func (s *Suite) NodeSource() (string, int) { return s.File, s.Line }

// Case is a single executable test within a suite. Its ID is
// "<suiteID>/<caseLabel>", which is also the wire format used to
// request runs.
type Case struct {
	ID    string
	Label string
	File  string
	Line  int
}

// NodeID returns the case identifier.
func (c *Case) NodeID() string { return c.ID }

// NodeLabel returns the case display label.
func (c *Case) NodeLabel() string { return c.Label }

// NodeSource returns the case's source location.
func (c *Case) NodeSource() (string, int) { return c.File, c.Line }

// CaseID builds the compound identifier of a case inside a suite.
func CaseID(suiteID, caseLabel string) string {
	return suiteID + "/" + caseLabel
}

// SplitID splits an identifier on the first "/" into its suite part and
// case part. A bare suite identifier returns an empty case part.
func SplitID(id string) (suite, kase string) {
	if i := strings.Index(id, "/"); i >= 0 {
		return id[:i], id[i+1:]
	}
	return id, ""
}
