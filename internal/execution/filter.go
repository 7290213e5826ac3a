package execution

import (
	"strings"

	"btp/internal/domain"
)

// BuildFilter turns requested identifiers into the colon-joined filter
// string for the executable's -t argument. Identifiers are partitioned
// into bare suite identifiers and case identifiers; a case already
// covered by a requested suite is dropped so the filter never carries
// redundant entries. Suites come first, then cases.
func BuildFilter(ids []string) string {
	suiteSet := make(map[string]bool)
	var suites []string
	for _, id := range ids {
		suite, kase := domain.SplitID(id)
		if kase != "" {
			continue
		}
		if !suiteSet[suite] {
			suiteSet[suite] = true
			suites = append(suites, suite)
		}
	}

	var cases []string
	for _, id := range ids {
		suite, kase := domain.SplitID(id)
		if kase == "" || suiteSet[suite] {
			continue
		}
		cases = append(cases, id)
	}

	return strings.Join(append(suites, cases...), ":")
}
