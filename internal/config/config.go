package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ListFormat selects the discovery wire format of the test executable.
type ListFormat string

const (
	// ListPlain is the plain-text --list_content format (names only).
	ListPlain ListFormat = "plain"
	// ListDOT is the --list_content=DOT graph format (names plus source
	// file and line).
	ListDOT ListFormat = "dot"
)

// Config holds all configuration for the application
type Config struct {
	// Path to the test executable under management
	ExePath string
	// SourcePrefix resolves relative source paths from discovery labels
	SourcePrefix string
	// ListFormat selects the discovery invocation variant
	ListFormat ListFormat

	// Output settings
	ResultsFile string
	ResultsDir  string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ListFormat:  DefaultListFormat,
		ResultsFile: DefaultResultsFile,
		ResultsDir:  DefaultResultsDir,
	}
}

// Load creates a config from defaults, the environment (including a .env
// file in the working directory when present) and flags, in increasing
// precedence.
func Load(flags Flags) *Config {
	// .env is optional, plain environment variables still apply
	_ = godotenv.Load()

	cfg := New()
	cfg.Flags = flags

	if v := os.Getenv(EnvExe); v != "" {
		cfg.ExePath = v
	}
	if v := os.Getenv(EnvSourcePrefix); v != "" {
		cfg.SourcePrefix = v
	}
	if v := os.Getenv(EnvListFormat); v != "" {
		cfg.ListFormat = ListFormat(v)
	}
	if v := os.Getenv(EnvResultsFile); v != "" {
		cfg.ResultsFile = v
	}
	if v := os.Getenv(EnvResultsDir); v != "" {
		cfg.ResultsDir = v
	}

	// Apply flag overrides
	if flags.Exe != "" {
		cfg.ExePath = flags.Exe
	}
	if flags.SourcePrefix != "" {
		cfg.SourcePrefix = flags.SourcePrefix
	}
	if flags.Format != "" {
		cfg.ListFormat = ListFormat(flags.Format)
	}

	return cfg
}

// Validate reports configuration defects that no command can work
// around.
func (c *Config) Validate() error {
	if c.ExePath == "" {
		return fmt.Errorf("no test executable configured (set --exe or %s)", EnvExe)
	}
	switch c.ListFormat {
	case ListPlain, ListDOT:
	default:
		return fmt.Errorf("unknown list format %q (want %q or %q)", c.ListFormat, ListPlain, ListDOT)
	}
	return nil
}

// ResolvedExePath returns the absolute path of the test executable. This
// is also the catalog root identifier.
func (c *Config) ResolvedExePath() string {
	if abs, err := filepath.Abs(c.ExePath); err == nil {
		return abs
	}
	return c.ExePath
}

// GetResultsPath returns the full path to the results JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// DatabaseConfigured reports whether the MySQL run-history store is
// enabled.
func (c *Config) DatabaseConfigured() bool {
	return os.Getenv(EnvDBDatabase) != ""
}

// DatabaseName returns the configured history database name.
func (c *Config) DatabaseName() string {
	return os.Getenv(EnvDBDatabase)
}

// DatabaseDSN returns the MySQL DSN for the history store, without a
// database so the store can create it on first use.
func (c *Config) DatabaseDSN() string {
	host := os.Getenv(EnvDBHost)
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv(EnvDBPort)
	if port == "" {
		port = "3306"
	}
	user := os.Getenv(EnvDBUser)
	if user == "" {
		user = "root"
	}
	password := os.Getenv(EnvDBPassword)

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", user, password, host, port)
}
