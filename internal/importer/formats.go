package importer

import (
	"fmt"
	"strings"

	"github.com/panelworks/cutlist/internal/model"
)

// FormatAliases is the built-in header alias table for the stock format
// catalog.
func FormatAliases() Aliases {
	return Aliases{
		"material":      {"material", "board", "tablero", "placa"},
		"thickness":     {"thickness", "thick", "espesor", "grosor"},
		"format_length": {"format length", "sheet length", "length", "largo", "largo formato", "formato largo"},
		"format_width":  {"format width", "sheet width", "width", "ancho", "ancho formato", "formato ancho"},
	}
}

// FormatImport holds the outcome of importing a format catalog.
type FormatImport struct {
	Entries  []model.FormatEntry
	Errors   []string
	Warnings []string
}

// ImportFormats loads stock format entries from a CSV or Excel file.
// Duplicate (material, thickness) rows are kept in file order; the
// catalog's last-match-wins lookup decides between them.
func ImportFormats(path string, aliases Aliases) FormatImport {
	result := FormatImport{}
	rows, warnings, err := ReadTable(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, hasHeader := detectColumns(rows[0], aliases)
	if !hasHeader {
		result.Errors = append(result.Errors, "No recognizable header row: need Material, Espesor/Thickness, Largo/Length and Ancho/Width columns")
		return result
	}
	missing := missingRoles(mapping, "material", "thickness", "format_length", "format_width")
	if len(missing) > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("Row %d", i+1)

		material := getCell(row, mapping["material"])
		if material == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing material", rowLabel))
			continue
		}
		thickness, err := parseDecimal(getCell(row, mapping["thickness"]))
		if err != nil || thickness < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid thickness '%s'", rowLabel, getCell(row, mapping["thickness"])))
			continue
		}
		length, err := parseDecimal(getCell(row, mapping["format_length"]))
		if err != nil || length <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid format length '%s'", rowLabel, getCell(row, mapping["format_length"])))
			continue
		}
		width, err := parseDecimal(getCell(row, mapping["format_width"]))
		if err != nil || width <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid format width '%s'", rowLabel, getCell(row, mapping["format_width"])))
			continue
		}

		result.Entries = append(result.Entries, model.NewFormatEntry(material, thickness, length, width))
	}
	return result
}
