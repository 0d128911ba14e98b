package model

import "math"

// Summarize partitions enriched pieces into material groups and computes
// the aggregate consumption of each. Groups are keyed by the full
// GroupKey, so two rows of the same board resolved to different sheet
// areas stay separate. Output order follows the first appearance of each
// group in the input.
func Summarize(enriched []EnrichedPiece) []MaterialSummaryRow {
	var order []GroupKey
	totals := make(map[GroupKey]float64)

	for _, ep := range enriched {
		key := GroupKey{
			Material:    ep.Material,
			MaterialKey: ep.MaterialKey,
			ThicknessMM: ep.ThicknessMM,
			SheetAreaM2: ep.SheetAreaM2,
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += ep.AreaM2
	}

	rows := make([]MaterialSummaryRow, 0, len(order))
	for _, key := range order {
		total := totals[key]
		sheets := SheetsNeeded(total, key.SheetAreaM2)
		rows = append(rows, MaterialSummaryRow{
			GroupKey:     key,
			TotalAreaM2:  total,
			SheetsNeeded: sheets,
			YieldPercent: YieldPercent(total, key.SheetAreaM2, sheets),
		})
	}
	return rows
}

// SheetsNeeded returns the number of whole stock sheets covering the
// given total area. Any positive fraction rounds up: 1.01 sheets of
// demand means buying 2. A zero or negative sheet area (unresolved
// format) yields 0 rather than a division fault.
//
// The comparison at exact multiples is deliberately exact: a total equal
// to one sheet area needs one sheet, with no tolerance applied either way.
func SheetsNeeded(totalAreaM2, sheetAreaM2 float64) int {
	if sheetAreaM2 <= 0 {
		return 0
	}
	return int(math.Ceil(totalAreaM2 / sheetAreaM2))
}

// YieldPercent returns how much of the purchased sheet area the pieces
// actually use, or nil when it is undefined (no resolvable sheet, or
// nothing to buy).
func YieldPercent(totalAreaM2, sheetAreaM2 float64, sheets int) *float64 {
	purchased := float64(sheets) * sheetAreaM2
	if purchased <= 0 {
		return nil
	}
	y := totalAreaM2 / purchased * 100.0
	return &y
}
