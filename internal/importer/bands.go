package importer

import (
	"fmt"
	"strings"

	"github.com/panelworks/cutlist/internal/model"
)

// BandAliases is the built-in header alias table for the edge-band list.
func BandAliases() Aliases {
	return Aliases{
		"type":     {"type", "band", "edge band", "edgeband", "tipo", "canto", "tapacanto"},
		"length":   {"length", "len", "largo", "longitud"},
		"quantity": {"quantity", "qty", "count", "pcs", "cantidad", "unidades", "cant"},
	}
}

// BandImport holds the outcome of importing an edge-band list.
type BandImport struct {
	Bands    []model.EdgeBand
	Errors   []string
	Warnings []string
}

// ImportEdgeBands loads edge-band rows from a CSV or Excel file.
func ImportEdgeBands(path string, aliases Aliases) BandImport {
	result := BandImport{}
	rows, warnings, err := ReadTable(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, hasHeader := detectColumns(rows[0], aliases)
	if !hasHeader {
		result.Errors = append(result.Errors, "No recognizable header row: need Tipo/Type, Largo/Length and Cantidad/Quantity columns")
		return result
	}
	missing := missingRoles(mapping, "type", "length", "quantity")
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

		bandType := getCell(row, mapping["type"])
		if bandType == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing band type", rowLabel))
			continue
		}
		length, err := parseDecimal(getCell(row, mapping["length"]))
		if err != nil || length <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, getCell(row, mapping["length"])))
			continue
		}
		qty, err := parsePositiveInt(getCell(row, mapping["quantity"]))
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, getCell(row, mapping["quantity"])))
			continue
		}

		result.Bands = append(result.Bands, model.NewEdgeBand(bandType, length, qty))
	}
	return result
}
