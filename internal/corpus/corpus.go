// Package corpus loads and prepares the scriptural record collection.
// The serving pipeline treats the result as a fixed, ordered,
// zero-indexed store: positions returned by the vector index point
// straight into the loaded slice.
package corpus

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dharmaqa/internal/domain"
)

// Load reads one JSON metadata file containing an array of records.
func Load(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return records, nil
}

// LoadAll concatenates the records of several metadata files in
// argument order. Missing files are skipped so per-book files can be
// added over time; any other read error aborts the load.
func LoadAll(paths ...string) ([]domain.Record, error) {
	var merged []domain.Record
	for _, p := range paths {
		records, err := Load(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		merged = append(merged, records...)
	}
	return merged, nil
}

// Save writes records as an indented JSON array, the same format Load
// reads back.
func Save(path string, records []domain.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
