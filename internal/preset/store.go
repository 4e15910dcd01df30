package preset

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store reads the preset data file. Load re-reads the file on every call so
// edits to the data file show up on the next request without a restart;
// pre-generated images still need a restart to resync.
type Store struct {
	path string
}

// NewStore returns a Store backed by the JSON data file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// dataFile is the on-disk layout: an ordered array under a "qrCodes" key.
type dataFile struct {
	QRCodes []Preset `json:"qrCodes"`
}

// Load reads and parses the data file, returning presets in file order.
func (s *Store) Load() ([]Preset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}
	var f dataFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse preset file: %w", err)
	}
	return f.QRCodes, nil
}
