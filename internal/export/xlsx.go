// Package export writes calculation reports to spreadsheet and PDF
// files, including QR-coded piece labels for the workshop.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/panelworks/cutlist/internal/model"
)

// Sheet names of the exported workbook, one per report output.
const (
	SheetPieces    = "Piezas"
	SheetMaterials = "Resumen"
	SheetBands     = "Cantos"
)

// ExportXLSX writes the report as a workbook with one sheet per output:
// enriched pieces, material summary and edge-band summary.
func ExportXLSX(path string, report model.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, SheetPieces); err != nil {
		return fmt.Errorf("failed to name pieces sheet: %w", err)
	}
	if err := writePiecesSheet(f, report.Pieces); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetMaterials); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeMaterialsSheet(f, report.Materials); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetBands); err != nil {
		return fmt.Errorf("failed to create bands sheet: %w", err)
	}
	if err := writeBandsSheet(f, report.Bands); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writePiecesSheet(f *excelize.File, pieces []model.EnrichedPiece) error {
	header := []interface{}{
		"Nombre", "Material", "Clave", "Espesor (mm)", "Largo (mm)", "Ancho (mm)",
		"Cantidad", "Veta", "Formato (mm)", "Área (m²)", "Área placa (m²)", "Control veta",
	}
	if err := f.SetSheetRow(SheetPieces, "A1", &header); err != nil {
		return fmt.Errorf("failed to write pieces header: %w", err)
	}
	for i, p := range pieces {
		format := "-"
		sheetArea := interface{}("-")
		if p.FormatResolved {
			format = fmt.Sprintf("%.0fx%.0f", p.ResolvedLengthMM, p.ResolvedWidthMM)
			sheetArea = p.SheetAreaM2
		}
		row := []interface{}{
			p.Name, p.Material, p.MaterialKey, p.ThicknessMM, p.LengthMM, p.WidthMM,
			p.Quantity, p.Grain.String(), format, p.AreaM2, sheetArea, p.GrainCheck.String(),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetPieces, cell, &row); err != nil {
			return fmt.Errorf("failed to write pieces row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeMaterialsSheet(f *excelize.File, rows []model.MaterialSummaryRow) error {
	header := []interface{}{
		"Material", "Clave", "Espesor (mm)", "Área placa (m²)",
		"Área total (m²)", "Placas", "Rendimiento (%)",
	}
	if err := f.SetSheetRow(SheetMaterials, "A1", &header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}
	for i, r := range rows {
		sheetArea := interface{}("-")
		if r.SheetAreaM2 > 0 {
			sheetArea = r.SheetAreaM2
		}
		yield := interface{}("-")
		if r.YieldPercent != nil {
			yield = *r.YieldPercent
		}
		row := []interface{}{
			r.Material, r.MaterialKey, r.ThicknessMM, sheetArea,
			r.TotalAreaM2, r.SheetsNeeded, yield,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetMaterials, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeBandsSheet(f *excelize.File, rows []model.EdgeBandSummaryRow) error {
	header := []interface{}{"Tipo", "Metros lineales"}
	if err := f.SetSheetRow(SheetBands, "A1", &header); err != nil {
		return fmt.Errorf("failed to write bands header: %w", err)
	}
	for i, r := range rows {
		row := []interface{}{r.Type, r.TotalLinearMeters}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetBands, cell, &row); err != nil {
			return fmt.Errorf("failed to write bands row %d: %w", i+2, err)
		}
	}
	return nil
}
