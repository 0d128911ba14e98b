package model

import "strings"

// NormalizeKey canonicalizes a free-text material name into a catalog
// lookup key: surrounding whitespace is trimmed, letters are uppercased
// and internal whitespace runs collapse to a single underscore.
// A blank input yields the empty key, which never matches the catalog.
func NormalizeKey(material string) string {
	fields := strings.Fields(material)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Join(fields, "_"))
}
