package model

// CheckGrain validates a piece's declared grain orientation against its
// resolved stock format.
//
// The check is a coarse bound: the relevant piece dimension is compared
// against the larger of the two format dimensions, regardless of which
// way the grain actually runs on the sheet. A piece that passes may still
// be uncuttable along the grain on the short side of the sheet. Free
// grain and unresolved formats always pass, since there is nothing to
// check against.
func CheckGrain(p Piece, formatLength, formatWidth float64, resolved bool) GrainCheck {
	if !resolved || p.Grain == GrainFree {
		return GrainOK
	}
	limit := formatLength
	if formatWidth > limit {
		limit = formatWidth
	}
	switch p.Grain {
	case GrainHorizontal:
		if p.LengthMM > limit {
			return GrainLengthExceedsFormat
		}
	case GrainVertical:
		if p.WidthMM > limit {
			return GrainWidthExceedsFormat
		}
	}
	return GrainOK
}
