package parser

import (
	"testing"

	"btp/internal/domain"
)

func TestParseListing(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    map[string][]string // suite -> case IDs
		wantErr bool
	}{
		{
			name: "one suite with two cases",
			text: "MySuite\n  case_one\n  case_two\n",
			want: map[string][]string{
				"MySuite": {"MySuite/case_one", "MySuite/case_two"},
			},
		},
		{
			name: "enabled markers are ignored",
			text: "MySuite*\n  case_one*\n",
			want: map[string][]string{
				"MySuite": {"MySuite/case_one"},
			},
		},
		{
			name: "multiple suites keep their own cases",
			text: "SuiteA\n  a_one\n  a_two\nSuiteB\n  b_one\n",
			want: map[string][]string{
				"SuiteA": {"SuiteA/a_one", "SuiteA/a_two"},
				"SuiteB": {"SuiteB/b_one"},
			},
		},
		{
			name: "preamble before the first suite is ignored",
			text: "Test setup notice: something\n\nMySuite\n  case_one\n",
			want: map[string][]string{
				"MySuite": {"MySuite/case_one"},
			},
		},
		{
			name:    "empty output",
			text:    "",
			wantErr: true,
		},
		{
			name:    "only unmatched lines",
			text:    "no suites here!\n  or here?\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseListing(tt.text, "/bin/tests", "/bin/tests")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if catalog.RootID() != "/bin/tests" {
				t.Errorf("expected root ID /bin/tests, got %s", catalog.RootID())
			}

			if len(catalog.Root.Children) != len(tt.want) {
				t.Fatalf("expected %d suites, got %d", len(tt.want), len(catalog.Root.Children))
			}

			for _, child := range catalog.Root.Children {
				suite, ok := child.(*domain.Suite)
				if !ok {
					t.Fatalf("expected suite child, got %T", child)
				}
				wantCases, ok := tt.want[suite.ID]
				if !ok {
					t.Fatalf("unexpected suite %s", suite.ID)
				}
				if len(suite.Children) != len(wantCases) {
					t.Fatalf("suite %s: expected %d cases, got %d", suite.ID, len(wantCases), len(suite.Children))
				}
				for i, c := range suite.Children {
					if c.NodeID() != wantCases[i] {
						t.Errorf("suite %s case %d: expected %s, got %s", suite.ID, i, wantCases[i], c.NodeID())
					}
				}
			}
		})
	}
}

func TestParseListingOrder(t *testing.T) {
	catalog, err := ParseListing("B\n  b1\nA\n  a1\n", "/bin/tests", "/bin/tests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := catalog.CaseIDs()
	want := []string{"B/b1", "A/a1"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d cases, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("case %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}
