package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/panelworks/cutlist/internal/model"
)

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat := model.Catalog{}
	cat.Add(model.NewFormatEntry("MDF Crudo", 18, 2440, 1830))
	cat.Add(model.NewFormatEntry("OSB", 9.5, 2440, 1220))

	if err := SaveCatalog(path, cat); err != nil {
		t.Fatalf("SaveCatalog returned error: %v", err)
	}

	loaded, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if len(loaded.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(loaded.Entries))
	}
	if loaded.Entries[0].MaterialKey != "MDF_CRUDO" {
		t.Errorf("unexpected key %q after round trip", loaded.Entries[0].MaterialKey)
	}
	if e := loaded.Lookup("OSB", 9.5); e == nil {
		t.Error("expected lookup to work on the loaded catalog")
	}
}

func TestLoadCatalogMissingFileSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.json")

	cat, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog returned error: %v", err)
	}
	if len(cat.Entries) == 0 {
		t.Fatal("expected default entries for a missing file")
	}
	// The defaults must now exist on disk for the user to edit.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected catalog file to be created: %v", err)
	}
	if cat.Lookup("MADECOR_MUF_BLANCO", 15) == nil {
		t.Error("expected the seeded catalog to contain the default boards")
	}
}

func TestLoadOrCreateCatalogUsesDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cat, path, err := LoadOrCreateCatalog()
	if err != nil {
		t.Fatalf("LoadOrCreateCatalog returned error: %v", err)
	}
	if want := DefaultCatalogPath(); path != want {
		t.Errorf("expected path %q, got %q", want, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected catalog file to be created: %v", err)
	}
	if len(cat.Entries) == 0 {
		t.Error("expected seeded default entries")
	}
}

func TestLoadCatalogCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Error("expected error for corrupt catalog file")
	}
}

func TestSaveAndLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cocina.json")

	s := model.NewSession()
	s.Name = "Mueble cocina"
	s.Pieces = append(s.Pieces, model.NewPiece("Costado", "MADECOR MUF BLANCO", 15, 1829, 1003, 1))
	s.Bands = append(s.Bands, model.NewEdgeBand("PVC Blanco 0.45", 1000, 2))

	if err := SaveSession(path, s); err != nil {
		t.Fatalf("SaveSession returned error: %v", err)
	}
	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("LoadSession returned error: %v", err)
	}
	if loaded.Name != "Mueble cocina" {
		t.Errorf("unexpected session name %q", loaded.Name)
	}
	if len(loaded.Pieces) != 1 || len(loaded.Bands) != 1 {
		t.Errorf("expected 1 piece and 1 band, got %d and %d", len(loaded.Pieces), len(loaded.Bands))
	}
	if len(loaded.Catalog.Entries) == 0 {
		t.Error("expected the session catalog to survive the round trip")
	}
}

func TestLoadSessionMissingFile(t *testing.T) {
	if _, err := LoadSession(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing session file")
	}
}

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "cutlist-backup.json")

	cat := model.DefaultCatalog()
	if err := ExportAllData(path, cat); err != nil {
		t.Fatalf("ExportAllData returned error: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData returned error: %v", err)
	}
	if backup.Version == "" || backup.CreatedAt == "" {
		t.Error("expected version and timestamp in backup")
	}
	if len(backup.Catalog.Entries) != len(cat.Entries) {
		t.Errorf("expected %d entries, got %d", len(cat.Entries), len(backup.Catalog.Entries))
	}
}
