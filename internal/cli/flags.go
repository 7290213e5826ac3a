package cli

import "btp/internal/config"

// Flags holds command-line flags
type Flags struct {
	Exe          string
	SourcePrefix string
	Format       string
	Filter       string
	JSON         bool
	View         bool
	Verbose      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Exe:          f.Exe,
		SourcePrefix: f.SourcePrefix,
		Format:       f.Format,
		Filter:       f.Filter,
		JSON:         f.JSON,
		View:         f.View,
		Verbose:      f.Verbose,
	}
}
