package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ResultsFileName is the record file written inside each run directory.
const ResultsFileName = "results.json"

// Write stores record under outputDir/<run-id>/results.json and returns
// the file path. Records that do not match the record schema are not written.
func Write(outputDir string, record Record) (string, error) {
	if outputDir == "" {
		return "", fmt.Errorf("output directory is required")
	}
	if record.RunID == "" {
		return "", fmt.Errorf("run id is required")
	}
	data, err := marshalJSON(record)
	if err != nil {
		return "", err
	}
	if err := ValidateJSON(data); err != nil {
		return "", err
	}
	runDir := filepath.Join(outputDir, record.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(runDir, ResultsFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", ResultsFileName, err)
	}
	return path, nil
}

// Read loads a record written by Write, rejecting files that do not match
// the record schema.
func Read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read results: %w", err)
	}
	if err := ValidateJSON(data); err != nil {
		return Record{}, err
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("decode results: %w", err)
	}
	return record, nil
}

// marshalJSON renders a payload as pretty JSON with a trailing newline.
func marshalJSON(payload any) ([]byte, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(data, '\n'), nil
}
