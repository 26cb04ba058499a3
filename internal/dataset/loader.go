package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"SpaceXLaunchDashboard/internal/models"
	"SpaceXLaunchDashboard/internal/storage"

	"github.com/gabriel-vasile/mimetype"
)

const sqliteMIME = "application/vnd.sqlite3"

// Load reads the launch dataset at path into an immutable Table.
// The source kind is detected from the file contents: SQLite databases written
// by the importer are read through storage, anything else is parsed as CSV.
// Every failure is reported as a *LoadError.
func Load(ctx context.Context, path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("detect source type: %w", err)}
	}

	var records []models.LaunchRecord
	if mtype.Is(sqliteMIME) {
		records, err = loadSQLite(ctx, path)
	} else {
		records, err = loadCSV(path)
	}
	if err != nil {
		return nil, withPath(err, path)
	}

	table, err := NewTable(records)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	slog.Info("dataset.Load(): dataset loaded",
		"path", path,
		"source", mtype.String(),
		"records", table.Len(),
		"min_payload", table.MinPayload(),
		"max_payload", table.MaxPayload())
	return table, nil
}

func loadCSV(path string) ([]models.LaunchRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

func loadSQLite(ctx context.Context, path string) ([]models.LaunchRecord, error) {
	store, err := storage.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.ListLaunches(ctx)
}

func withPath(err error, path string) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
		return le
	}
	return &LoadError{Path: path, Err: err}
}
