// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package spreadsheet turns uploaded CSV and XLSX files into a
// [models.Table] of text cells and parses the date formats found in them.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/MKhiriev/go-delivery-board/models"
)

// Supported file extensions.
const (
	ExtCSV  = ".csv"
	ExtXLSX = ".xlsx"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Supported reports whether name has an extension that [Read] understands.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ExtCSV, ExtXLSX:
		return true
	}
	return false
}

// Read parses r according to the extension of name.
//
// The first non-blank row becomes the header. Blank rows are skipped and
// rows shorter than the header are padded with empty cells.
func Read(name string, r io.Reader) (models.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ExtCSV:
		return ReadCSV(r)
	case ExtXLSX:
		return ReadXLSX(r)
	default:
		return models.Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV parses a delimited text file. The delimiter is sniffed from the
// first non-blank line among comma, semicolon and tab. Input that is not valid UTF-8
// is decoded as Windows-1252, the usual encoding of spreadsheet exports.
func ReadCSV(r io.Reader) (models.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		if data, err = charmap.Windows1252.NewDecoder().Bytes(data); err != nil {
			return models.Table{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return buildTable(records)
}

// ReadXLSX parses the first sheet of an Office Open XML workbook. Cells are
// read raw, so dates come through as Excel serial numbers.
func ReadXLSX(r io.Reader) (models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return models.Table{}, ErrNoSheets
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	table, err := buildTable(rows)
	table.SerialDates = err == nil
	return table, err
}

func buildTable(rows [][]string) (models.Table, error) {
	var table models.Table
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if table.Headers == nil {
			table.Headers = trimAll(row)
			continue
		}
		table.Rows = append(table.Rows, pad(row, len(table.Headers)))
	}

	if table.Headers == nil {
		return models.Table{}, ErrEmptyFile
	}
	return table, nil
}

// sniffDelimiter picks the delimiter occurring most often on the first
// non-blank line. Comma wins when none occurs.
func sniffDelimiter(data []byte) rune {
	var line []byte
	for rest := data; len(rest) > 0; {
		line, rest, _ = bytes.Cut(rest, []byte("\n"))
		if len(bytes.TrimSpace(line)) > 0 {
			break
		}
	}

	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
