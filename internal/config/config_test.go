package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.ListFormat != ListDOT {
		t.Errorf("expected default list format %q, got %q", ListDOT, cfg.ListFormat)
	}
	if cfg.ResultsFile != "run-results.json" {
		t.Errorf("unexpected results file: %s", cfg.ResultsFile)
	}
	if cfg.ResultsDir != "storage" {
		t.Errorf("unexpected results dir: %s", cfg.ResultsDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvExe, "/build/tests")
	t.Setenv(EnvSourcePrefix, "/src")
	t.Setenv(EnvListFormat, "plain")
	t.Setenv(EnvResultsDir, "out")

	cfg := Load(Flags{})

	if cfg.ExePath != "/build/tests" {
		t.Errorf("unexpected exe path: %s", cfg.ExePath)
	}
	if cfg.SourcePrefix != "/src" {
		t.Errorf("unexpected source prefix: %s", cfg.SourcePrefix)
	}
	if cfg.ListFormat != ListPlain {
		t.Errorf("unexpected list format: %s", cfg.ListFormat)
	}
	if cfg.ResultsDir != "out" {
		t.Errorf("unexpected results dir: %s", cfg.ResultsDir)
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvExe, "/env/tests")
	t.Setenv(EnvListFormat, "plain")

	cfg := Load(Flags{Exe: "/flag/tests", Format: "dot"})

	if cfg.ExePath != "/flag/tests" {
		t.Errorf("flag must win over env, got %s", cfg.ExePath)
	}
	if cfg.ListFormat != ListDOT {
		t.Errorf("flag must win over env, got %s", cfg.ListFormat)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) { c.ExePath = "/build/tests" },
		},
		{
			name:    "missing executable",
			mutate:  func(c *Config) {},
			wantErr: "no test executable",
		},
		{
			name: "unknown list format",
			mutate: func(c *Config) {
				c.ExePath = "/build/tests"
				c.ListFormat = "xml"
			},
			wantErr: "unknown list format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolvedExePathIsAbsolute(t *testing.T) {
	cfg := New()
	cfg.ExePath = "build/tests"

	if got := cfg.ResolvedExePath(); !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestGetResultsPath(t *testing.T) {
	cfg := New()
	cfg.ResultsDir = "out"
	cfg.ResultsFile = "results.json"

	got := cfg.GetResultsPath()
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
	if filepath.Base(got) != "results.json" || filepath.Base(filepath.Dir(got)) != "out" {
		t.Errorf("unexpected results path: %s", got)
	}
}

func TestDatabaseSettings(t *testing.T) {
	cfg := New()
	if cfg.DatabaseConfigured() {
		t.Error("database must be off without a configured name")
	}

	t.Setenv(EnvDBDatabase, "btp_history")
	t.Setenv(EnvDBHost, "db.local")
	t.Setenv(EnvDBPort, "3307")
	t.Setenv(EnvDBUser, "btp")
	t.Setenv(EnvDBPassword, "secret")

	if !cfg.DatabaseConfigured() {
		t.Error("database must be on once a name is configured")
	}
	if cfg.DatabaseName() != "btp_history" {
		t.Errorf("unexpected database name: %s", cfg.DatabaseName())
	}
	if got, want := cfg.DatabaseDSN(), "btp:secret@tcp(db.local:3307)/"; got != want {
		t.Errorf("expected DSN %s, got %s", want, got)
	}
}
