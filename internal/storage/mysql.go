package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"btp/internal/config"
	"btp/internal/domain"
)

// History appends run results to a MySQL table so runs can be compared
// over time. It is optional; it only participates when the database
// environment is configured.
type History struct {
	cfg *config.Config
}

// NewHistory creates a new History.
func NewHistory(cfg *config.Config) *History {
	return &History{cfg: cfg}
}

// Record appends one run to the history table, creating the database
// and schema on first use.
func (h *History) Record(output *domain.RunResultsOutput) error {
	db, err := sql.Open("mysql", h.cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("connect to history database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping history database: %w", err)
	}

	name := h.cfg.DatabaseName()
	if err := h.ensureSchema(db, name); err != nil {
		return err
	}

	details, err := json.Marshal(output.Details)
	if err != nil {
		return fmt.Errorf("marshal failure details: %w", err)
	}

	_, err = db.Exec(fmt.Sprintf(
		`INSERT INTO %s.run_history
			(executable, total_cases, passed_cases, failed_cases, duration_seconds, ran_at, details)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`, name),
		output.Meta.Executable,
		output.Meta.TotalCases,
		output.Meta.PassedCases,
		output.Meta.FailedCases,
		output.Meta.DurationSeconds,
		output.Meta.Timestamp,
		details,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (h *History) ensureSchema(db *sql.DB, name string) error {
	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", name)); err != nil {
		return fmt.Errorf("create history database %s: %w", name, err)
	}
	_, err := db.Exec(fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s.run_history (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			executable VARCHAR(1024) NOT NULL,
			total_cases INT NOT NULL,
			passed_cases INT NOT NULL,
			failed_cases INT NOT NULL,
			duration_seconds DOUBLE NOT NULL,
			ran_at VARCHAR(64) NOT NULL,
			details JSON
		)`, name))
	if err != nil {
		return fmt.Errorf("create history table: %w", err)
	}
	return nil
}
