package model

import (
	"math"
	"testing"
)

func TestSheetsNeededRoundsUp(t *testing.T) {
	if got := SheetsNeeded(4.51, 4.4652); got != 2 {
		t.Errorf("expected 2 sheets for 1.01x demand, got %d", got)
	}
	if got := SheetsNeeded(0.1, 4.4652); got != 1 {
		t.Errorf("expected 1 sheet for a fractional demand, got %d", got)
	}
}

func TestSheetsNeededExactMultiple(t *testing.T) {
	// A total exactly equal to the sheet area needs one sheet, not two.
	// The comparison is exact, no tolerance in either direction.
	if got := SheetsNeeded(4.4652, 4.4652); got != 1 {
		t.Errorf("expected exactly 1 sheet, got %d", got)
	}
	if got := SheetsNeeded(2*4.4652, 4.4652); got != 2 {
		t.Errorf("expected exactly 2 sheets, got %d", got)
	}
}

func TestSheetsNeededZeroOrNegativeSheetArea(t *testing.T) {
	if got := SheetsNeeded(1.5, 0); got != 0 {
		t.Errorf("expected 0 sheets for zero sheet area, got %d", got)
	}
	if got := SheetsNeeded(1.5, -1); got != 0 {
		t.Errorf("expected 0 sheets for negative sheet area, got %d", got)
	}
}

func TestYieldPercentUndefined(t *testing.T) {
	if y := YieldPercent(1.5, 0, 0); y != nil {
		t.Errorf("expected nil yield for zero sheet area, got %f", *y)
	}
	if y := YieldPercent(0, 4.4652, 0); y != nil {
		t.Errorf("expected nil yield when no sheets are bought, got %f", *y)
	}
}

func TestYieldPercentValue(t *testing.T) {
	y := YieldPercent(2.2326, 4.4652, 1)
	if y == nil {
		t.Fatal("expected a defined yield")
	}
	if math.Abs(*y-50.0) > 1e-9 {
		t.Errorf("expected 50%%, got %f", *y)
	}
}

func TestSummarizeGroupsByMaterialAndThickness(t *testing.T) {
	cat := DefaultCatalog()
	pieces := []Piece{
		NewPiece("A", "MDF CRUDO", 18, 1000, 500, 2),
		NewPiece("B", "MDF CRUDO", 18, 500, 500, 1),
		NewPiece("C", "MDF CRUDO", 15, 500, 500, 1),
	}
	rows := Summarize(Resolve(pieces, &cat))
	if len(rows) != 2 {
		t.Fatalf("expected 2 groups (18mm and 15mm), got %d", len(rows))
	}
	if rows[0].ThicknessMM != 18 || rows[1].ThicknessMM != 15 {
		t.Error("expected groups in first-appearance order")
	}
	if math.Abs(rows[0].TotalAreaM2-1.25) > 1e-9 {
		t.Errorf("expected 18mm total 1.25, got %f", rows[0].TotalAreaM2)
	}
}

func TestSummarizeOverrideSplitsGroup(t *testing.T) {
	// Same material and thickness, but one row carries a format override:
	// the differing sheet area must produce a second summary row.
	cat := DefaultCatalog()
	a := NewPiece("A", "MDF CRUDO", 18, 1000, 500, 1)
	b := NewPiece("B", "MDF CRUDO", 18, 1000, 500, 1)
	b.FormatLengthMM = 2100
	b.FormatWidthMM = 1400

	rows := Summarize(Resolve([]Piece{a, b}, &cat))
	if len(rows) != 2 {
		t.Fatalf("expected override to split the group, got %d rows", len(rows))
	}
	if rows[0].SheetAreaM2 == rows[1].SheetAreaM2 {
		t.Error("expected distinct sheet areas per group")
	}
}

func TestSummarizeUnresolvedGroup(t *testing.T) {
	cat := DefaultCatalog()
	p := NewPiece("X", "MATERIAL DESCONOCIDO", 18, 1000, 500, 3)

	rows := Summarize(Resolve([]Piece{p}, &cat))
	if len(rows) != 1 {
		t.Fatalf("expected 1 group, got %d", len(rows))
	}
	row := rows[0]
	if row.SheetAreaM2 != 0 {
		t.Errorf("expected zero sheet area for unresolved group, got %f", row.SheetAreaM2)
	}
	if row.SheetsNeeded != 0 {
		t.Errorf("expected 0 sheets for unresolved group, got %d", row.SheetsNeeded)
	}
	if row.YieldPercent != nil {
		t.Error("expected undefined yield for unresolved group")
	}
	if math.Abs(row.TotalAreaM2-1.5) > 1e-9 {
		t.Errorf("expected total area 1.5, got %f", row.TotalAreaM2)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	rows := Summarize(nil)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
