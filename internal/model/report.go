package model

// Report bundles the three artifacts of one calculation run: the
// enriched piece rows, the material summary and the edge-band summary.
// These are what gets displayed and exported.
type Report struct {
	Pieces    []EnrichedPiece      `json:"pieces"`
	Materials []MaterialSummaryRow `json:"materials"`
	Bands     []EdgeBandSummaryRow `json:"bands"`
}

// BuildReport runs the full pipeline over in-memory tables: resolve each
// piece against the catalog, summarize material consumption and
// aggregate edge banding. The pipeline is a deterministic batch
// transform; re-running it with the same inputs yields the same report.
func BuildReport(pieces []Piece, bands []EdgeBand, catalog *Catalog) Report {
	enriched := Resolve(pieces, catalog)
	return Report{
		Pieces:    enriched,
		Materials: Summarize(enriched),
		Bands:     SummarizeEdgeBands(bands),
	}
}

// Empty reports whether the report carries no rows at all.
func (r Report) Empty() bool {
	return len(r.Pieces) == 0 && len(r.Materials) == 0 && len(r.Bands) == 0
}
