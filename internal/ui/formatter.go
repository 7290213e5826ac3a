package ui

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"btp/internal/config"
	"btp/internal/domain"
)

// Formatter formats and displays catalogs and run summaries
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintCatalog displays the discovered suite/case tree, or its JSON
// encoding when asJSON is set
func (f *Formatter) PrintCatalog(catalog *domain.Catalog, asJSON bool) error {
	if catalog == nil {
		color.Yellow("No tests found")
		return nil
	}

	if asJSON {
		data, err := json.MarshalIndent(catalogJSON(catalog.Root), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal catalog: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	color.Cyan("%s", catalog.Root.Label)
	for _, child := range catalog.Root.Children {
		f.printNode(child, "  ")
	}

	fmt.Println()
	color.White("%d test case(s) in %d suite(s)",
		catalog.CountCases(), len(catalog.Root.Children))
	return nil
}

func (f *Formatter) printNode(node domain.Node, indent string) {
	switch n := node.(type) {
	case *domain.Suite:
		color.Yellow("%s%s", indent, n.Label)
		for _, child := range n.Children {
			f.printNode(child, indent+"  ")
		}
	case *domain.Case:
		if file, line := n.NodeSource(); file != "" {
			fmt.Printf("%s%s  %s\n", indent, n.Label,
				color.HiBlackString("%s:%d", file, line+1))
			return
		}
		fmt.Printf("%s%s\n", indent, n.Label)
	}
}

// nodeJSON mirrors the catalog tree for JSON output
type nodeJSON struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	File     string     `json:"file,omitempty"`
	Line     int        `json:"line,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
}

func catalogJSON(s *domain.Suite) nodeJSON {
	out := nodeJSON{ID: s.ID, Label: s.Label, File: s.File, Line: s.Line}
	for _, child := range s.Children {
		switch n := child.(type) {
		case *domain.Suite:
			out.Children = append(out.Children, catalogJSON(n))
		case *domain.Case:
			out.Children = append(out.Children, nodeJSON{
				ID: n.ID, Label: n.Label, File: n.File, Line: n.Line,
			})
		}
	}
	return out
}

// PrintRunSummary displays the totals of a finished run and lists its
// failures
func (f *Formatter) PrintRunSummary(output *domain.RunResultsOutput) {
	meta := output.Meta

	fmt.Println()
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Test Cases")
	color.White("%-27d │\n", meta.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Test Cases")
	color.Green("%-27d │\n", meta.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedCases)

	if meta.CancelledCases > 0 {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
		fmt.Printf("│ %-31s │ ", "Cancelled Test Cases")
		color.Yellow("%-27d │\n", meta.CancelledCases)
	}

	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Println()

	if meta.FailedCases == 0 && meta.CancelledCases == 0 {
		color.Green("✓ All tests passed!")
		return
	}

	if meta.FailedCases > 0 {
		color.Red("✗ %d test case(s) failed:", meta.FailedCases)
		for _, failure := range output.Details {
			fmt.Printf("  %s\n", color.RedString("%s", failure.ID))
			if failure.Message != "" {
				fmt.Printf("    %s\n", failure.Message)
			}
			if failure.File != "" {
				fmt.Printf("    %s\n", color.HiBlackString("%s:%d", failure.File, failure.Line+1))
			}
		}
	}
}
