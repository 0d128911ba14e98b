package model

// Resolve joins each piece to its stock format and computes the derived
// consumption figures. It produces exactly one EnrichedPiece per input
// piece, in input order; resolution never drops or merges rows.
//
// Per-row override dimensions win unconditionally: the catalog is not
// consulted for dimensions, although the material key is still computed
// for grouping. Without an override the format comes from an exact
// catalog lookup on (key, thickness); when that misses, the piece stays
// unresolved, which is not an error here. It surfaces downstream as a
// summary group with no sheet figures.
//
// The catalog is snapshotted first so edits made while results are being
// consumed cannot produce rows resolved against different catalogs.
func Resolve(pieces []Piece, catalog *Catalog) []EnrichedPiece {
	snap := catalog.Snapshot()

	enriched := make([]EnrichedPiece, 0, len(pieces))
	for _, p := range pieces {
		ep := EnrichedPiece{
			Piece:       p,
			MaterialKey: NormalizeKey(p.Material),
		}

		switch {
		case p.HasOverride():
			ep.ResolvedLengthMM = p.FormatLengthMM
			ep.ResolvedWidthMM = p.FormatWidthMM
			ep.FormatResolved = true
		default:
			if entry := snap.Lookup(ep.MaterialKey, p.ThicknessMM); entry != nil {
				ep.ResolvedLengthMM = entry.FormatLengthMM
				ep.ResolvedWidthMM = entry.FormatWidthMM
				ep.FormatResolved = true
			}
		}

		ep.AreaM2 = p.LengthMM * p.WidthMM * float64(p.Quantity) / 1e6
		if ep.FormatResolved {
			ep.SheetAreaM2 = ep.ResolvedLengthMM * ep.ResolvedWidthMM / 1e6
		}
		ep.GrainCheck = CheckGrain(p, ep.ResolvedLengthMM, ep.ResolvedWidthMM, ep.FormatResolved)

		enriched = append(enriched, ep)
	}
	return enriched
}

// GrainViolations returns the subset of enriched pieces whose grain check
// failed, preserving order. The annotations are advisory; this is a
// convenience filter for display and export.
func GrainViolations(enriched []EnrichedPiece) []EnrichedPiece {
	var out []EnrichedPiece
	for _, ep := range enriched {
		if ep.GrainCheck != GrainOK {
			out = append(out, ep)
		}
	}
	return out
}
