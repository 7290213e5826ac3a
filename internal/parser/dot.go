package parser

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"btp/internal/domain"
)

// --list_content=DOT labels carry name and source location as
// "name|file(line)". Reported lines are 1-based.
var unitLabelPattern = regexp.MustCompile(`^(\w+)\|(.+)\((\d+)\)$`)

// ParseGraph builds a catalog from --list_content=DOT output. The graph
// carries one top-level node (the module) and one top-level subgraph
// listing the suites; each suite node is followed by a subgraph holding
// that suite's case nodes. Node statements keep their emission order,
// which pairs every case group with the suite emitted just before it.
// Relative source paths are resolved against sourcePrefix. Any
// structural or label defect aborts the whole discovery, no partial
// catalog is returned.
func ParseGraph(text, rootID, sourcePrefix string) (*domain.Catalog, error) {
	graphAst, err := gographviz.ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("graph listing: %w", err)
	}
	g := gographviz.NewGraph()
	if err := gographviz.Analyse(graphAst, g); err != nil {
		return nil, fmt.Errorf("graph listing: %w", err)
	}

	suiteList, err := suiteListName(g)
	if err != nil {
		return nil, err
	}

	root := &domain.Suite{ID: rootID}
	moduleFound := false
	var current *domain.Suite

	for _, n := range g.Nodes.Nodes {
		parent := parentOf(g, n.Name)
		switch {
		case parent == g.Name:
			if moduleFound {
				continue
			}
			label, ok := nodeLabel(n)
			if !ok {
				return nil, fmt.Errorf("graph listing: module node %q has no label", n.Name)
			}
			// The module label may use the same name|file(line) record
			// format as the test units; keep only the name part then.
			if m := unitLabelPattern.FindStringSubmatch(label); m != nil {
				label = m[1]
			}
			root.Label = label
			moduleFound = true

		case parent == suiteList:
			label, file, line, err := parseUnitLabel(n)
			if err != nil {
				return nil, err
			}
			current = &domain.Suite{
				ID:    label,
				Label: label,
				File:  resolveSource(sourcePrefix, file),
				Line:  line,
			}
			root.Children = append(root.Children, current)

		case isCaseGroup(g, parent, suiteList):
			if current == nil {
				return nil, fmt.Errorf("graph listing: case group %q precedes any suite", parent)
			}
			label, file, line, err := parseUnitLabel(n)
			if err != nil {
				return nil, err
			}
			current.Children = append(current.Children, &domain.Case{
				ID:    domain.CaseID(current.ID, label),
				Label: label,
				File:  resolveSource(sourcePrefix, file),
				Line:  line,
			})
		}
	}

	if !moduleFound {
		return nil, fmt.Errorf("graph listing: missing module node")
	}
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("graph listing: no test suites found")
	}

	return domain.NewCatalog(root), nil
}

// suiteListName locates the single top-level subgraph holding the
// suites.
func suiteListName(g *gographviz.Graph) (string, error) {
	for name := range g.SubGraphs.SubGraphs {
		if parentOf(g, name) == g.Name {
			return name, nil
		}
	}
	return "", fmt.Errorf("graph listing: missing suite list")
}

// parentOf returns the immediate parent of a node or subgraph.
func parentOf(g *gographviz.Graph, name string) string {
	for parent := range g.Relations.ChildToParents[name] {
		return parent
	}
	return ""
}

// isCaseGroup reports whether parent is a subgraph directly under the
// suite list.
func isCaseGroup(g *gographviz.Graph, parent, suiteList string) bool {
	if _, ok := g.SubGraphs.SubGraphs[parent]; !ok {
		return false
	}
	return parentOf(g, parent) == suiteList
}

// parseUnitLabel extracts {name, file, line} from a test-unit node
// label, converting the 1-based reported line to 0-based.
func parseUnitLabel(n *gographviz.Node) (name, file string, line int, err error) {
	label, ok := nodeLabel(n)
	if !ok {
		return "", "", 0, fmt.Errorf("graph listing: node %q has no label", n.Name)
	}
	m := unitLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return "", "", 0, fmt.Errorf("graph listing: malformed label %q on node %q", label, n.Name)
	}
	parsed, err := strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("graph listing: malformed line in label %q: %w", label, err)
	}
	return m[1], m[2], parsed - 1, nil
}

func nodeLabel(n *gographviz.Node) (string, bool) {
	label, ok := n.Attrs["label"]
	if !ok {
		return "", false
	}
	return unquote(label), true
}

// unquote strips the surrounding quotes gographviz keeps on attribute
// values.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func resolveSource(prefix, file string) string {
	if file == "" || prefix == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(prefix, file)
}
