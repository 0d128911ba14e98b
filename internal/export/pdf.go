package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/panelworks/cutlist/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginRight  = 15.0
	marginBottom = 15.0
	rowHeight    = 6.0
	titleHeight  = 10.0
)

// ExportPDF generates a printable consumption report: the material
// summary, the full piece table with grain violations highlighted, and
// the edge-band totals.
func ExportPDF(path string, report model.Report) error {
	if report.Empty() {
		return fmt.Errorf("no data to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	writeTitle(pdf, "Consumo de materiales")
	renderMaterialTable(pdf, report.Materials)

	if len(report.Pieces) > 0 {
		pdf.Ln(4)
		writeTitle(pdf, "Piezas")
		renderPieceTable(pdf, report.Pieces)
	}

	if len(report.Bands) > 0 {
		pdf.Ln(4)
		writeTitle(pdf, "Cantos")
		renderBandTable(pdf, report.Bands)
	}

	return pdf.OutputFileAndClose(path)
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, titleHeight, title, "", 1, "L", false, 0, "")
}

func tableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, label := range labels {
		pdf.CellFormat(widths[i], rowHeight, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)
	pdf.SetFont("Helvetica", "", 9)
}

func renderMaterialTable(pdf *fpdf.Fpdf, rows []model.MaterialSummaryRow) {
	widths := []float64{80, 25, 30, 32, 25, 35}
	tableHeader(pdf, widths, []string{
		"Material", "Espesor", "Área placa (m²)", "Área total (m²)", "Placas", "Rendimiento",
	})
	for _, r := range rows {
		sheetArea := "-"
		if r.SheetAreaM2 > 0 {
			sheetArea = fmt.Sprintf("%.4f", r.SheetAreaM2)
		}
		yield := "-"
		if r.YieldPercent != nil {
			yield = fmt.Sprintf("%.1f%%", *r.YieldPercent)
		}
		pdf.CellFormat(widths[0], rowHeight, r.Material, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%.1f", r.ThicknessMM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], rowHeight, sheetArea, "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], rowHeight, fmt.Sprintf("%.4f", r.TotalAreaM2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], rowHeight, fmt.Sprintf("%d", r.SheetsNeeded), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], rowHeight, yield, "1", 0, "R", false, 0, "")
		pdf.Ln(rowHeight)
	}
}

func renderPieceTable(pdf *fpdf.Fpdf, pieces []model.EnrichedPiece) {
	widths := []float64{50, 55, 18, 20, 20, 15, 22, 28, 39}
	tableHeader(pdf, widths, []string{
		"Nombre", "Material", "Espesor", "Largo", "Ancho", "Cant.", "Veta", "Formato", "Control veta",
	})
	for _, p := range pieces {
		format := "-"
		if p.FormatResolved {
			format = fmt.Sprintf("%.0fx%.0f", p.ResolvedLengthMM, p.ResolvedWidthMM)
		}
		violation := p.GrainCheck != model.GrainOK
		if violation {
			pdf.SetFillColor(255, 205, 210)
		}
		pdf.CellFormat(widths[0], rowHeight, p.Name, "1", 0, "L", violation, 0, "")
		pdf.CellFormat(widths[1], rowHeight, p.Material, "1", 0, "L", violation, 0, "")
		pdf.CellFormat(widths[2], rowHeight, fmt.Sprintf("%.1f", p.ThicknessMM), "1", 0, "R", violation, 0, "")
		pdf.CellFormat(widths[3], rowHeight, fmt.Sprintf("%.0f", p.LengthMM), "1", 0, "R", violation, 0, "")
		pdf.CellFormat(widths[4], rowHeight, fmt.Sprintf("%.0f", p.WidthMM), "1", 0, "R", violation, 0, "")
		pdf.CellFormat(widths[5], rowHeight, fmt.Sprintf("%d", p.Quantity), "1", 0, "R", violation, 0, "")
		pdf.CellFormat(widths[6], rowHeight, p.Grain.String(), "1", 0, "C", violation, 0, "")
		pdf.CellFormat(widths[7], rowHeight, format, "1", 0, "C", violation, 0, "")
		pdf.CellFormat(widths[8], rowHeight, p.GrainCheck.String(), "1", 0, "C", violation, 0, "")
		pdf.Ln(rowHeight)
	}
}

func renderBandTable(pdf *fpdf.Fpdf, rows []model.EdgeBandSummaryRow) {
	widths := []float64{120, 40}
	tableHeader(pdf, widths, []string{"Tipo", "Metros lineales"})
	for _, r := range rows {
		pdf.CellFormat(widths[0], rowHeight, r.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], rowHeight, fmt.Sprintf("%.2f", r.TotalLinearMeters), "1", 0, "R", false, 0, "")
		pdf.Ln(rowHeight)
	}
}
