// Package importer loads cut-list tables (pieces, stock formats, edge
// bands) from CSV and Excel files. It detects the CSV delimiter and text
// encoding automatically and maps columns by header name, accepting both
// English and Spanish synonyms. Rows that fail validation are reported
// per line and never reach the calculation core.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// Aliases maps a semantic column role to the accepted header spellings,
// all lowercase. Extra spellings from user configuration are merged on
// top of the built-in table.
type Aliases map[string][]string

// Merge returns a copy of a with the extra spellings appended per role.
func (a Aliases) Merge(extra map[string][]string) Aliases {
	merged := Aliases{}
	for role, names := range a {
		merged[role] = append([]string(nil), names...)
	}
	for role, names := range extra {
		for _, n := range names {
			merged[role] = append(merged[role], strings.ToLower(strings.TrimSpace(n)))
		}
	}
	return merged
}

// utf8BOM is the byte order mark Excel prepends to UTF-8 CSV exports.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText strips a UTF-8 BOM and, when the data is not valid UTF-8,
// reinterprets it as Windows-1252 (the usual encoding of legacy
// spreadsheet exports). The second return value reports whether the
// fallback was applied.
func DecodeText(data []byte) ([]byte, bool) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, false
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		// Keep the raw bytes; the CSV reader will still do its best.
		return data, false
	}
	return decoded, true
}

// DetectCSVDelimiter determines the most likely delimiter among comma,
// semicolon, tab and pipe. The candidate producing the most consistent
// multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// ReadTable loads a CSV or Excel file into raw string rows. The format is
// chosen by file extension; anything that is not .xlsx/.xlsm/.xls is
// treated as delimited text. Warnings describe delimiter and encoding
// fallbacks.
func ReadTable(path string) ([][]string, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return readExcel(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) ([][]string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, fmt.Errorf("file is empty")
	}

	var warnings []string
	data, reencoded := DecodeText(data)
	if reencoded {
		warnings = append(warnings, "File is not UTF-8, decoded as Windows-1252")
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		name := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", name))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, warnings, fmt.Errorf("cannot read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, warnings, fmt.Errorf("file is empty")
	}
	return records, warnings, nil
}

func readExcel(path string) ([][]string, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("Excel file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read Excel data: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}
	return rows, nil, nil
}

// detectColumns maps each role in the alias table to its column index in
// the header row, or -1. The second return value reports whether any
// role matched at all, i.e. whether the row looks like a header.
func detectColumns(row []string, aliases Aliases) (map[string]int, bool) {
	mapping := make(map[string]int, len(aliases))
	for role := range aliases {
		mapping[role] = -1
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, names := range aliases {
			for _, name := range names {
				if normalized == name && mapping[role] == -1 {
					mapping[role] = i
					isHeader = true
				}
			}
		}
	}
	return mapping, isHeader
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDecimal parses a number accepting both decimal points and decimal
// commas, with optional thousands separators ("1.234,5" and "1,234.5"
// both parse to 1234.5).
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Whichever separator comes last is the decimal one.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return strconv.ParseFloat(s, 64)
}

// parsePositiveInt parses a strictly positive integer.
func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}
