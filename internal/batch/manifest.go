package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Manifest describes one batch run.
type Manifest struct {
	Scheme  string          `json:"scheme"`
	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one input file in the output manifest.
type ManifestEntry struct {
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	Vectors int    `json:"vectors"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing the results, creating its
// directory if needed.
func WriteManifest(path, scheme string, results []Result) error {
	m := Manifest{Scheme: scheme, Entries: make([]ManifestEntry, len(results))}
	for i, r := range results {
		e := ManifestEntry{Input: r.Input, Vectors: r.Vectors, Error: r.Error}
		if r.Success {
			e.Output = r.Output
		}
		m.Entries[i] = e
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "batch: manifest")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, "batch: create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "batch: write %s", path)
	}
	return nil
}
