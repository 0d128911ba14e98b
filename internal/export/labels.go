package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/panelworks/cutlist/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	Name        string  `json:"name"`
	Material    string  `json:"material"`
	ThicknessMM float64 `json:"thickness_mm"`
	LengthMM    float64 `json:"length_mm"`
	WidthMM     float64 `json:"width_mm"`
	Quantity    int     `json:"quantity"`
	Grain       string  `json:"grain"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page on US Letter).
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per piece row.
// Each label carries the piece name, material and dimensions, plus a QR
// code encoding the same data as JSON. Labels are laid out on a standard
// Avery 5160 sheet.
func ExportLabels(path string, pieces []model.EnrichedPiece) error {
	if len(pieces) == 0 {
		return fmt.Errorf("no pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, p := range pieces {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		info := LabelInfo{
			Name:        p.Name,
			Material:    p.Material,
			ThicknessMM: p.ThicknessMM,
			LengthMM:    p.LengthMM,
			WidthMM:     p.WidthMM,
			Quantity:    p.Quantity,
			Grain:       p.Grain.String(),
		}
		if err := renderLabel(pdf, x, y, p.ID, info); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", p.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, id string, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", id)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text block on the left
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4, info.Name, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+4.5)
	pdf.CellFormat(textW, 3.5, info.Material, "", 0, "L", false, 0, "")
	pdf.SetXY(textX, y+labelPadding+8)
	dims := fmt.Sprintf("%.0f x %.0f x %.1f mm", info.LengthMM, info.WidthMM, info.ThicknessMM)
	pdf.CellFormat(textW, 3.5, dims, "", 0, "L", false, 0, "")
	pdf.SetXY(textX, y+labelPadding+11.5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("x%d  %s", info.Quantity, info.Grain), "", 0, "L", false, 0, "")

	return nil
}
