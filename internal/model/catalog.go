package model

// Catalog holds the editable set of stock format entries for one session.
//
// Entries are kept as an ordered list rather than a map: duplicate
// (material key, thickness) pairs are allowed, and Lookup resolves them
// with last-match-wins semantics. LookupAll exposes every match so a
// caller can apply its own policy instead of relying on the overwrite.
type Catalog struct {
	Entries []FormatEntry `json:"entries"`
}

// DefaultCatalog returns a catalog seeded with common stock boards.
func DefaultCatalog() Catalog {
	return Catalog{
		Entries: []FormatEntry{
			NewFormatEntry("MADECOR MUF BLANCO", 15, 2440, 1830),
			NewFormatEntry("MADECOR MUF BLANCO", 18, 2440, 1830),
			NewFormatEntry("MELAMINA BLANCA", 18, 2440, 1830),
			NewFormatEntry("MDF CRUDO", 3, 2440, 1830),
			NewFormatEntry("MDF CRUDO", 5.5, 2440, 1830),
			NewFormatEntry("MDF CRUDO", 9, 2440, 1830),
			NewFormatEntry("MDF CRUDO", 15, 2440, 1830),
			NewFormatEntry("MDF CRUDO", 18, 2440, 1830),
			NewFormatEntry("TERCIADO ESTRUCTURAL", 9, 2440, 1220),
			NewFormatEntry("TERCIADO ESTRUCTURAL", 12, 2440, 1220),
			NewFormatEntry("TERCIADO ESTRUCTURAL", 15, 2440, 1220),
			NewFormatEntry("TERCIADO ESTRUCTURAL", 18, 2440, 1220),
			NewFormatEntry("OSB", 9.5, 2440, 1220),
			NewFormatEntry("OSB", 11.1, 2440, 1220),
		},
	}
}

// Lookup returns the last entry matching the given material key and
// thickness exactly, or nil when no entry matches. Thickness is compared
// with exact float equality: 18.0 does not match 18.01, and no nearest
// or fuzzy fallback is attempted.
func (c *Catalog) Lookup(materialKey string, thicknessMM float64) *FormatEntry {
	matches := c.LookupAll(materialKey, thicknessMM)
	if len(matches) == 0 {
		return nil
	}
	return &matches[len(matches)-1]
}

// LookupAll returns every entry matching the key and thickness, in
// catalog order. More than one match means the catalog carries duplicate
// rows for the same board; Lookup picks the last.
func (c *Catalog) LookupAll(materialKey string, thicknessMM float64) []FormatEntry {
	var matches []FormatEntry
	for _, e := range c.Entries {
		if e.MaterialKey == materialKey && e.ThicknessMM == thicknessMM {
			matches = append(matches, e)
		}
	}
	return matches
}

// Add appends an entry to the catalog.
func (c *Catalog) Add(e FormatEntry) {
	c.Entries = append(c.Entries, e)
}

// Update replaces the entry with the same ID. Returns true if found.
func (c *Catalog) Update(e FormatEntry) bool {
	for i := range c.Entries {
		if c.Entries[i].ID == e.ID {
			c.Entries[i] = e
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given ID. Returns true if found.
func (c *Catalog) Remove(id string) bool {
	for i, e := range c.Entries {
		if e.ID == id {
			c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the entry with the given ID, or nil.
func (c *Catalog) FindByID(id string) *FormatEntry {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i]
		}
	}
	return nil
}

// Snapshot returns a copy of the catalog. Resolution runs against a
// snapshot so that catalog edits made afterwards cannot leak into results
// computed earlier.
func (c *Catalog) Snapshot() Catalog {
	entries := make([]FormatEntry, len(c.Entries))
	copy(entries, c.Entries)
	return Catalog{Entries: entries}
}
