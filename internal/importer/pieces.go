package importer

import (
	"fmt"
	"strings"

	"github.com/panelworks/cutlist/internal/model"
)

// PieceAliases is the built-in header alias table for the piece list.
func PieceAliases() Aliases {
	return Aliases{
		"name":          {"name", "label", "piece", "part", "description", "nombre", "pieza", "descripcion", "descripción"},
		"material":      {"material", "board", "tablero", "placa"},
		"thickness":     {"thickness", "thick", "espesor", "grosor"},
		"length":        {"length", "len", "largo", "longitud"},
		"width":         {"width", "ancho"},
		"quantity":      {"quantity", "qty", "count", "pcs", "cantidad", "unidades", "cant"},
		"grain":         {"grain", "grain direction", "orientation", "veta", "grano", "orientacion", "orientación"},
		"format_length": {"format length", "sheet length", "largo formato", "formato largo"},
		"format_width":  {"format width", "sheet width", "ancho formato", "formato ancho"},
	}
}

// PieceImport holds the outcome of importing a piece list.
type PieceImport struct {
	Pieces   []model.Piece
	Errors   []string
	Warnings []string
}

// ImportPieces loads a piece list from a CSV or Excel file.
func ImportPieces(path string, aliases Aliases) PieceImport {
	result := PieceImport{}
	rows, warnings, err := ReadTable(path)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Warnings = warnings

	mapping, hasHeader := detectColumns(rows[0], aliases)
	if !hasHeader {
		result.Errors = append(result.Errors, "No recognizable header row: need at least Material, Espesor/Thickness, Largo/Length, Ancho/Width and Cantidad/Quantity columns")
		return result
	}

	missing := missingRoles(mapping, "material", "thickness", "length", "width", "quantity")
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
		piece, errMsg, warnings := parsePieceRow(row, mapping, rowLabel, len(result.Pieces))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Pieces = append(result.Pieces, piece)
	}
	return result
}

func parsePieceRow(row []string, mapping map[string]int, rowLabel string, count int) (model.Piece, string, []string) {
	name := getCell(row, mapping["name"])
	if name == "" {
		name = fmt.Sprintf("Piece %d", count+1)
	}

	material := getCell(row, mapping["material"])
	if material == "" {
		return model.Piece{}, fmt.Sprintf("%s: Missing material", rowLabel), nil
	}

	thickness, err := parseDecimal(getCell(row, mapping["thickness"]))
	if err != nil || thickness < 0 {
		return model.Piece{}, fmt.Sprintf("%s: Invalid thickness '%s'", rowLabel, getCell(row, mapping["thickness"])), nil
	}
	length, err := parseDecimal(getCell(row, mapping["length"]))
	if err != nil || length <= 0 {
		return model.Piece{}, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, getCell(row, mapping["length"])), nil
	}
	width, err := parseDecimal(getCell(row, mapping["width"]))
	if err != nil || width <= 0 {
		return model.Piece{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, getCell(row, mapping["width"])), nil
	}
	qty, err := parsePositiveInt(getCell(row, mapping["quantity"]))
	if err != nil {
		return model.Piece{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, getCell(row, mapping["quantity"])), nil
	}

	piece := model.NewPiece(name, material, thickness, length, width, qty)

	var warnings []string
	if grainStr := getCell(row, mapping["grain"]); grainStr != "" {
		grain, ok := ParseGrain(grainStr)
		if ok {
			piece.Grain = grain
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown grain orientation '%s', defaulting to Free", rowLabel, grainStr))
		}
	}

	// Format override requires both dimensions; a lone value is ignored.
	flStr := getCell(row, mapping["format_length"])
	fwStr := getCell(row, mapping["format_width"])
	if flStr != "" || fwStr != "" {
		fl, errL := parseDecimal(flStr)
		fw, errW := parseDecimal(fwStr)
		if errL == nil && errW == nil && fl > 0 && fw > 0 {
			piece.FormatLengthMM = fl
			piece.FormatWidthMM = fw
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Incomplete format override, ignored", rowLabel))
		}
	}

	return piece, "", warnings
}

// ParseGrain converts a grain orientation string to a model.Grain value.
// The second return value reports whether the string was recognized.
func ParseGrain(s string) (model.Grain, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return model.GrainHorizontal, true
	case "vertical", "v":
		return model.GrainVertical, true
	case "", "free", "none", "libre", "-":
		return model.GrainFree, true
	default:
		return model.GrainFree, false
	}
}

// missingRoles returns the roles without a mapped column.
func missingRoles(mapping map[string]int, roles ...string) []string {
	var missing []string
	for _, role := range roles {
		if mapping[role] == -1 {
			missing = append(missing, strings.ReplaceAll(role, "_", " "))
		}
	}
	return missing
}
