package ui

import "btp/internal/domain"

// Viewer displays run results in an interactive TUI
type Viewer interface {
	View(results *domain.RunResultsOutput) error
}
