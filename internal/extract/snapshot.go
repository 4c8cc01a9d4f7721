package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aexlabs/servicesync/internal/logger"
)

// WriteSnapshot serializes the composite records to path as one JSON
// document, fully replacing any previous snapshot. A nil record set is
// written as an empty array so the artifact always parses.
func WriteSnapshot(path string, records []Composite) error {
	if records == nil {
		records = []Composite{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	logger.Info("Data saved to %s", path)
	return nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) ([]Composite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []Composite
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return records, nil
}
