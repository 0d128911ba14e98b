package model

import "github.com/google/uuid"

// Grain represents the declared grain orientation of a piece.
type Grain int

const (
	GrainFree       Grain = iota // No grain constraint, orientation is free
	GrainHorizontal              // Grain runs along the piece length
	GrainVertical                // Grain runs along the piece width
)

func (g Grain) String() string {
	switch g {
	case GrainHorizontal:
		return "Horizontal"
	case GrainVertical:
		return "Vertical"
	default:
		return "Free"
	}
}

// GrainCheck is the advisory result of validating a piece's grain
// orientation against its resolved stock format.
type GrainCheck int

const (
	GrainOK                  GrainCheck = iota // Piece fits, or no check was possible
	GrainLengthExceedsFormat                   // Horizontal grain: piece length exceeds both format dimensions
	GrainWidthExceedsFormat                    // Vertical grain: piece width exceeds both format dimensions
)

func (c GrainCheck) String() string {
	switch c {
	case GrainLengthExceedsFormat:
		return "LENGTH_EXCEEDS_FORMAT"
	case GrainWidthExceedsFormat:
		return "WIDTH_EXCEEDS_FORMAT"
	default:
		return "OK"
	}
}

// Piece represents one row of the cut list: a rectangular panel piece to
// be cut from stock, in one or more copies.
type Piece struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Material    string  `json:"material"` // Free text as entered by the user
	ThicknessMM float64 `json:"thickness_mm"`
	LengthMM    float64 `json:"length_mm"`
	WidthMM     float64 `json:"width_mm"`
	Quantity    int     `json:"quantity"`
	Grain       Grain   `json:"grain"`

	// Optional per-row stock format override. When both are > 0 they win
	// over any catalog entry.
	FormatLengthMM float64 `json:"format_length_mm,omitempty"`
	FormatWidthMM  float64 `json:"format_width_mm,omitempty"`
}

// NewPiece creates a Piece with a generated ID and free grain.
func NewPiece(name, material string, thickness, length, width float64, qty int) Piece {
	return Piece{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Material:    material,
		ThicknessMM: thickness,
		LengthMM:    length,
		WidthMM:     width,
		Quantity:    qty,
		Grain:       GrainFree,
	}
}

// HasOverride reports whether the piece carries its own stock format
// dimensions instead of relying on the catalog.
func (p Piece) HasOverride() bool {
	return p.FormatLengthMM > 0 && p.FormatWidthMM > 0
}

// FormatEntry maps a normalized material key and thickness to the stock
// sheet dimensions sold for that board.
type FormatEntry struct {
	ID             string  `json:"id"`
	MaterialKey    string  `json:"material_key"`
	ThicknessMM    float64 `json:"thickness_mm"`
	FormatLengthMM float64 `json:"format_length_mm"`
	FormatWidthMM  float64 `json:"format_width_mm"`
}

// NewFormatEntry creates a FormatEntry with a generated ID. The material
// name is normalized into the lookup key.
func NewFormatEntry(material string, thickness, formatLength, formatWidth float64) FormatEntry {
	return FormatEntry{
		ID:             uuid.New().String()[:8],
		MaterialKey:    NormalizeKey(material),
		ThicknessMM:    thickness,
		FormatLengthMM: formatLength,
		FormatWidthMM:  formatWidth,
	}
}

// SheetAreaM2 returns the stock sheet area in square meters.
func (e FormatEntry) SheetAreaM2() float64 {
	return e.FormatLengthMM * e.FormatWidthMM / 1e6
}

// EnrichedPiece is a Piece joined with its resolved stock format and the
// derived consumption figures. It is built once per resolution pass and
// not mutated afterwards.
type EnrichedPiece struct {
	Piece

	MaterialKey string `json:"material_key"`

	// Resolved stock format. ResolvedLengthMM and ResolvedWidthMM are only
	// meaningful when FormatResolved is true.
	ResolvedLengthMM float64 `json:"resolved_length_mm,omitempty"`
	ResolvedWidthMM  float64 `json:"resolved_width_mm,omitempty"`
	FormatResolved   bool    `json:"format_resolved"`

	AreaM2      float64    `json:"area_m2"`                 // Total area of all copies
	SheetAreaM2 float64    `json:"sheet_area_m2,omitempty"` // 0 when the format is unresolved
	GrainCheck  GrainCheck `json:"grain_check"`
}

// GroupKey identifies one material summary group. SheetAreaM2 is part of
// the key on purpose: pieces of the same board resolved to different sheet
// formats (per-row override) must land in separate rows.
type GroupKey struct {
	Material    string  `json:"material"`
	MaterialKey string  `json:"material_key"`
	ThicknessMM float64 `json:"thickness_mm"`
	SheetAreaM2 float64 `json:"sheet_area_m2"` // 0 identifies the unresolved group
}

// MaterialSummaryRow aggregates the consumption of one group.
type MaterialSummaryRow struct {
	GroupKey

	TotalAreaM2  float64  `json:"total_area_m2"`
	SheetsNeeded int      `json:"sheets_needed"`
	YieldPercent *float64 `json:"yield_percent,omitempty"` // nil when undefined (no resolvable sheet)
}

// EdgeBand represents one row of the edge-banding list.
type EdgeBand struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	LengthMM float64 `json:"length_mm"`
	Quantity int     `json:"quantity"`
}

// NewEdgeBand creates an EdgeBand with a generated ID.
func NewEdgeBand(bandType string, length float64, qty int) EdgeBand {
	return EdgeBand{
		ID:       uuid.New().String()[:8],
		Type:     bandType,
		LengthMM: length,
		Quantity: qty,
	}
}

// LinearMeters returns the banding length of this row in meters across
// all its copies.
func (b EdgeBand) LinearMeters() float64 {
	return b.LengthMM * float64(b.Quantity) / 1000.0
}

// EdgeBandSummaryRow aggregates banding length per band type.
type EdgeBandSummaryRow struct {
	Type              string  `json:"type"`
	TotalLinearMeters float64 `json:"total_linear_meters"`
}

// Session ties a working cut list together for save/load.
type Session struct {
	Name    string     `json:"name"`
	Pieces  []Piece    `json:"pieces"`
	Bands   []EdgeBand `json:"bands"`
	Catalog Catalog    `json:"catalog"`
}

// NewSession creates an empty session backed by the default catalog.
func NewSession() Session {
	return Session{
		Name:    "Untitled",
		Pieces:  []Piece{},
		Bands:   []EdgeBand{},
		Catalog: DefaultCatalog(),
	}
}
