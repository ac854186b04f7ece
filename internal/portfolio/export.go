package portfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ExportSnapshot writes the current portfolio snapshot as indented JSON. It
// fails when neither slot has loaded yet.
func ExportSnapshot(w io.Writer, service Service) error {
	snapshot, ok := service.Portfolio()
	if !ok {
		return fmt.Errorf("no portfolio data loaded")
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}
	return nil
}

// ExportSnapshotFile writes the current portfolio snapshot to path
func ExportSnapshotFile(path string, service Service) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	return ExportSnapshot(file, service)
}
