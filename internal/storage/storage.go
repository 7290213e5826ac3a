package storage

import (
	"btp/internal/config"
	"btp/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(output *domain.RunResultsOutput) error
	Load() (*domain.RunResultsOutput, error)
}

// JSONStorage stores the latest run results in a JSON file under the
// configured results path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// results JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
