// Package pointset reads point sets (one point per row) from CSV, JSON and
// Excel files into dense matrices.
package pointset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KelvyHsu/bake/utils"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported point set format")
	ErrEmpty             = errors.New("point set is empty")
)

// Load reads the point set at path. The format follows the extension:
// .csv, .json or .xlsx.
func Load(path string) (*mat.Dense, error) {
	var (
		rows [][]float64
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		rows, err = ReadCSV(f)
	case ".json":
		var f *os.File
		if f, err = os.Open(path); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		rows, err = ReadJSON(f)
	case ".xlsx":
		rows, err = readExcel(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return build(rows)
}

func build(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	m, err := utils.FromRows(rows)
	if err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: points have no coordinates", ErrEmpty)
	}
	return m, nil
}

// ReadCSV parses comma separated rows of numbers. Lines starting with '#'
// are skipped, and so is a leading header row that does not parse.
func ReadCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRecords(records)
}

// ReadJSON parses a JSON array of rows, e.g. [[0, 1], [2, 3]].
func ReadJSON(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func readExcel(path string) ([][]float64, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmpty
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return parseRecords(records)
}

func parseRecords(records [][]string) ([][]float64, error) {
	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		row, err := parseRow(rec)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for j, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[j] = v
	}
	return row, nil
}

// ParseFloats parses a comma separated list of numbers such as "0.5,1,2".
func ParseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}
