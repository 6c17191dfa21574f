package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"winequality/pkg/features"
)

// Table is a batch of raw rows plus the header columns that were not features
// (for example "quality" in the public dataset). Those columns are ignored.
type Table struct {
	Rows    []features.RawInput
	Ignored []string
}

// ReadFile loads a batch from a .csv or .xlsx file. The first row is the header.
func ReadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported batch file %q", filepath.Ext(path))
	}
}

// ReadCSV reads comma or semicolon separated rows. The delimiter is taken
// from the whole header line.
func ReadCSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	reader := csv.NewReader(io.MultiReader(strings.NewReader(header), br))
	if strings.Count(header, ";") > strings.Count(header, ",") {
		reader.Comma = ';'
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSX reads the first sheet of a workbook.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("batch file is empty")
	}
	header := records[0]
	cols := make(map[int]string, len(header))
	t := &Table{}
	for i, h := range header {
		name := strings.Trim(strings.TrimSpace(h), `"`)
		if features.Wine.Has(name) {
			cols[i] = name
			continue
		}
		t.Ignored = append(t.Ignored, name)
	}
	if len(cols) == 0 {
		return nil, errors.New("header names none of the wine features")
	}

	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(features.RawInput, len(cols))
		for i, name := range cols {
			// Short rows (common in spreadsheets) leave trailing features empty.
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// Record is one scored row for output.
type Record struct {
	Row      int
	Score    float64
	Category string
	Err      error
}

// WriteCSV writes one line per record: row, score, category, error.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"row", "score", "category", "error"}); err != nil {
		return err
	}
	for _, r := range records {
		line := []string{strconv.Itoa(r.Row), "", "", ""}
		if r.Err != nil {
			line[3] = r.Err.Error()
		} else {
			line[1] = strconv.FormatFloat(r.Score, 'f', 2, 64)
			line[2] = r.Category
		}
		if err := writer.Write(line); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
