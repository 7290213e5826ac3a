package parser

import (
	"testing"

	"btp/internal/domain"
)

const wellFormedGraph = `digraph G {
tu1[label="MyModule|main.cpp(1)"];
subgraph suites {
tu2[label="MySuite|suite.cpp(15)"];
subgraph group2 {
tu3[label="case_one|suite.cpp(17)"];
tu4[label="case_two|suite.cpp(25)"];
}
tu5[label="OtherSuite|other.cpp(5)"];
subgraph group5 {
tu6[label="other_case|other.cpp(7)"];
}
}
}`

func TestParseGraph(t *testing.T) {
	catalog, err := ParseGraph(wellFormedGraph, "/bin/tests", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog.RootID() != "/bin/tests" {
		t.Errorf("expected root ID /bin/tests, got %s", catalog.RootID())
	}
	if catalog.Root.Label != "MyModule" {
		t.Errorf("expected module label MyModule, got %s", catalog.Root.Label)
	}

	ids := catalog.CaseIDs()
	want := []string{"MySuite/case_one", "MySuite/case_two", "OtherSuite/other_case"}
	if len(ids) != len(want) {
		t.Fatalf("expected cases %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("case %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestParseGraphSourceLocations(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		id       string
		wantFile string
		wantLine int
	}{
		{
			name:     "lines are converted to 0-based",
			id:       "MySuite/case_one",
			wantFile: "suite.cpp",
			wantLine: 16,
		},
		{
			name:     "suite location",
			id:       "MySuite",
			wantFile: "suite.cpp",
			wantLine: 14,
		},
		{
			name:     "relative paths resolve against the source prefix",
			prefix:   "/src/project",
			id:       "OtherSuite/other_case",
			wantFile: "/src/project/other.cpp",
			wantLine: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseGraph(wellFormedGraph, "/bin/tests", tt.prefix)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			node := catalog.Find(tt.id)
			if node == nil {
				t.Fatalf("node %s not found", tt.id)
			}
			file, line := node.NodeSource()
			if file != tt.wantFile {
				t.Errorf("expected file %s, got %s", tt.wantFile, file)
			}
			if line != tt.wantLine {
				t.Errorf("expected line %d, got %d", tt.wantLine, line)
			}
		})
	}
}

func TestParseGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "not a graph at all",
			text: "MySuite\n  case_one\n",
		},
		{
			name: "missing module node",
			text: `digraph G {
subgraph suites {
tu2[label="MySuite|suite.cpp(15)"];
}
}`,
		},
		{
			name: "missing suite list",
			text: `digraph G {
tu1[label="MyModule|main.cpp(1)"];
}`,
		},
		{
			name: "module node without label",
			text: `digraph G {
tu1;
subgraph suites {
tu2[label="MySuite|suite.cpp(15)"];
}
}`,
		},
		{
			name: "malformed suite label",
			text: `digraph G {
tu1[label="MyModule|main.cpp(1)"];
subgraph suites {
tu2[label="MySuite"];
}
}`,
		},
		{
			name: "malformed case label",
			text: `digraph G {
tu1[label="MyModule|main.cpp(1)"];
subgraph suites {
tu2[label="MySuite|suite.cpp(15)"];
subgraph group2 {
tu3[label="case one - no location"];
}
}
}`,
		},
		{
			name: "empty suite list",
			text: `digraph G {
tu1[label="MyModule|main.cpp(1)"];
subgraph suites {
}
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseGraph(tt.text, "/bin/tests", "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if catalog != nil {
				t.Error("no partial catalog may be returned on failure")
			}
		})
	}
}

func TestParseGraphIdentifierScheme(t *testing.T) {
	catalog, err := ParseGraph(wellFormedGraph, "/bin/tests", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range catalog.CaseIDs() {
		suite, kase := domain.SplitID(id)
		if kase == "" {
			t.Errorf("case ID %s is not compound", id)
			continue
		}
		parent := catalog.Find(suite)
		if parent == nil {
			t.Errorf("case ID %s: suite %s not in catalog", id, suite)
		}
	}
}
