package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/panelworks/cutlist/internal/project"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "cutlist.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveOutputPath(t *testing.T) {
	cases := []struct {
		exportDir string
		path      string
		want      string
	}{
		{"", "report.xlsx", "report.xlsx"},
		{"/srv/out", "report.xlsx", "/srv/out/report.xlsx"},
		{"/srv/out", "/tmp/report.xlsx", "/tmp/report.xlsx"},
		{"/srv/out", "", ""},
	}
	for _, c := range cases {
		if got := resolveOutputPath(c.exportDir, c.path); got != c.want {
			t.Errorf("resolveOutputPath(%q, %q) = %q, want %q", c.exportDir, c.path, got, c.want)
		}
	}
}

func TestRunExportDirFromConfig(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "salidas")

	csv := "Material,Espesor,Largo,Ancho,Cantidad\nMDF Crudo,18,600,400,2\n"
	piecesPath := filepath.Join(tmp, "piezas.csv")
	if err := os.WriteFile(piecesPath, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	cfgPath := writeConfig(t, tmp, fmt.Sprintf(
		"catalog_path: %s\nexport_dir: %s\n", filepath.Join(tmp, "catalog.json"), outDir))

	err := run(discardLogger(), options{
		piecesPath: piecesPath,
		configPath: cfgPath,
		xlsxPath:   "consumo.xlsx",
	})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "consumo.xlsx")); err != nil {
		t.Errorf("expected workbook under the configured export dir: %v", err)
	}
}

func TestRunBackupAndRestore(t *testing.T) {
	tmp := t.TempDir()
	catalogPath := filepath.Join(tmp, "catalog.json")
	backupPath := filepath.Join(tmp, "respaldo.json")
	cfgPath := writeConfig(t, tmp, "catalog_path: "+catalogPath+"\n")

	err := run(discardLogger(), options{configPath: cfgPath, backupPath: backupPath})
	if err != nil {
		t.Fatalf("backup run returned error: %v", err)
	}
	backup, err := project.ImportAllData(backupPath)
	if err != nil {
		t.Fatalf("cannot read backup file: %v", err)
	}
	if len(backup.Catalog.Entries) == 0 {
		t.Fatal("expected seeded catalog entries in the backup")
	}

	if err := os.Remove(catalogPath); err != nil {
		t.Fatal(err)
	}
	err = run(discardLogger(), options{configPath: cfgPath, restorePath: backupPath})
	if err != nil {
		t.Fatalf("restore run returned error: %v", err)
	}
	restored, err := project.LoadCatalog(catalogPath)
	if err != nil {
		t.Fatalf("cannot read restored catalog: %v", err)
	}
	if len(restored.Entries) != len(backup.Catalog.Entries) {
		t.Errorf("expected %d restored entries, got %d", len(backup.Catalog.Entries), len(restored.Entries))
	}
}

func TestRunRejectsConflictingInputs(t *testing.T) {
	err := run(discardLogger(), options{piecesPath: "a.csv", sessionPath: "b.json"})
	if err == nil {
		t.Error("expected an error for -pieces together with -session")
	}
}

func TestRunNothingToDo(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := run(discardLogger(), options{}); err == nil {
		t.Error("expected an error when no inputs are given")
	}
}
