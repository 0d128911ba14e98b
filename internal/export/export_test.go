package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/panelworks/cutlist/internal/model"
)

// buildTestReport runs the real pipeline over a small cut list.
func buildTestReport() model.Report {
	catalog := model.DefaultCatalog()

	costado := model.NewPiece("Costado", "MADECOR MUF BLANCO", 15, 1829, 1003, 1)
	costado.Grain = model.GrainHorizontal
	tooLong := model.NewPiece("Repisa larga", "MADECOR MUF BLANCO", 15, 2500, 400, 1)
	tooLong.Grain = model.GrainHorizontal
	unknown := model.NewPiece("Trasera", "AGLOMERADO GRIS", 12, 800, 600, 2)

	bands := []model.EdgeBand{
		model.NewEdgeBand("PVC Blanco 0.45", 1000, 2),
		model.NewEdgeBand("PVC Roble 2.0", 2000, 1),
	}

	return model.BuildReport([]model.Piece{costado, tooLong, unknown}, bands, &catalog)
}

func TestExportXLSX_CreatesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	report := buildTestReport()

	if err := ExportXLSX(path, report); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 {
		t.Fatalf("expected 3 sheets, got %v", sheets)
	}
	for i, want := range []string{SheetPieces, SheetMaterials, SheetBands} {
		if sheets[i] != want {
			t.Errorf("sheet %d: expected %q, got %q", i, want, sheets[i])
		}
	}

	rows, err := f.GetRows(SheetPieces)
	if err != nil {
		t.Fatalf("cannot read pieces sheet: %v", err)
	}
	// Header plus one row per input piece.
	if len(rows) != 1+len(report.Pieces) {
		t.Errorf("expected %d rows, got %d", 1+len(report.Pieces), len(rows))
	}

	bandRows, err := f.GetRows(SheetBands)
	if err != nil {
		t.Fatalf("cannot read bands sheet: %v", err)
	}
	if len(bandRows) != 1+len(report.Bands) {
		t.Errorf("expected %d band rows, got %d", 1+len(report.Bands), len(bandRows))
	}
	if bandRows[1][0] != "PVC Blanco 0.45" {
		t.Errorf("unexpected first band type %q", bandRows[1][0])
	}
}

func TestExportXLSX_UnresolvedMarkedWithDash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	report := buildTestReport()

	if err := ExportXLSX(path, report); err != nil {
		t.Fatalf("ExportXLSX returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetPieces)
	if err != nil {
		t.Fatalf("cannot read pieces sheet: %v", err)
	}
	// Third piece (Trasera) has no catalog match.
	format := rows[3][8]
	if format != "-" {
		t.Errorf("expected '-' format for unresolved piece, got %q", format)
	}
}

func TestExportXLSX_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := ExportXLSX(path, model.Report{}); err != nil {
		t.Fatalf("empty report should still export headers, got error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook was not created: %v", err)
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	report := buildTestReport()

	if err := ExportPDF(path, report); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, model.Report{}); err == nil {
		t.Fatal("expected error for empty report, got nil")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	report := buildTestReport()

	if err := ExportLabels(path, report.Pieces); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("labels PDF was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("labels PDF seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoPieces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, nil); err == nil {
		t.Fatal("expected error for empty piece list, got nil")
	}
}

func TestExportLabels_ManyPagesDoesNotFail(t *testing.T) {
	catalog := model.DefaultCatalog()
	var pieces []model.Piece
	for i := 0; i < 35; i++ { // more than one label page
		pieces = append(pieces, model.NewPiece("Pieza", "MDF CRUDO", 18, 500, 300, 1))
	}
	report := model.BuildReport(pieces, nil, &catalog)

	path := filepath.Join(t.TempDir(), "labels.pdf")
	if err := ExportLabels(path, report.Pieces); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
}
