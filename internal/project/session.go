package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/panelworks/cutlist/internal/model"
)

// SaveSession writes a working session (pieces, edge bands and the
// catalog they were computed against) to a JSON file.
func SaveSession(path string, s model.Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSession reads a session from a JSON file. A session saved with an
// empty catalog falls back to the default one, so old files stay usable.
func LoadSession(path string) (model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to read session file: %w", err)
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if s.Pieces == nil {
		s.Pieces = []model.Piece{}
	}
	if s.Bands == nil {
		s.Bands = []model.EdgeBand{}
	}
	if len(s.Catalog.Entries) == 0 {
		s.Catalog = model.DefaultCatalog()
	}
	return s, nil
}
