package model

// SummarizeEdgeBands sums the linear banding length per band type.
// The type string is taken as-is, with no normalization or validation;
// an empty input produces an empty summary. Output order follows the
// first appearance of each type.
func SummarizeEdgeBands(bands []EdgeBand) []EdgeBandSummaryRow {
	var order []string
	totals := make(map[string]float64)

	for _, b := range bands {
		if _, seen := totals[b.Type]; !seen {
			order = append(order, b.Type)
		}
		totals[b.Type] += b.LinearMeters()
	}

	rows := make([]EdgeBandSummaryRow, 0, len(order))
	for _, t := range order {
		rows = append(rows, EdgeBandSummaryRow{Type: t, TotalLinearMeters: totals[t]})
	}
	return rows
}
