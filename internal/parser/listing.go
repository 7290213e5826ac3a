package parser

import (
	"fmt"
	"regexp"
	"strings"

	"btp/internal/domain"
)

// Plain --list_content output: a suite name at column 0 opens a suite,
// indented names below it are its cases. A trailing "*" (enabled marker)
// is ignored on both.
var (
	suiteLinePattern = regexp.MustCompile(`^(\w+)\*?$`)
	caseLinePattern  = regexp.MustCompile(`^\s+(\w+)\*?$`)
)

// ParseListing builds a catalog from plain-text --list_content output.
// The plain format carries no module label, so the root label defaults
// to the executable path (rootLabel). Lines matching neither pattern are
// ignored.
func ParseListing(text, rootID, rootLabel string) (*domain.Catalog, error) {
	root := &domain.Suite{ID: rootID, Label: rootLabel}
	var current *domain.Suite

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")

		if m := suiteLinePattern.FindStringSubmatch(line); m != nil {
			current = &domain.Suite{ID: m[1], Label: m[1]}
			root.Children = append(root.Children, current)
			continue
		}

		if current == nil {
			continue
		}

		if m := caseLinePattern.FindStringSubmatch(line); m != nil {
			name := m[1]
			current.Children = append(current.Children, &domain.Case{
				ID:    domain.CaseID(current.ID, name),
				Label: name,
			})
		}
	}

	if len(root.Children) == 0 {
		return nil, fmt.Errorf("listing: no test suites found")
	}

	return domain.NewCatalog(root), nil
}
