package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet as a table whose first row is the header.
// Column types are inferred from the cell values below the header.
func ReadSheet(f *excelize.File, sheetName string) (*models.Dataset, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	ds := &models.Dataset{SheetName: sheetName, Rows: [][]interface{}{}}

	lastRow, lastCol := findDataBounds(rows)
	if lastRow < 0 {
		return ds, nil
	}
	rows = rows[:lastRow+1]
	width := lastCol + 1

	reader := newCellReader(f, sheetName)

	header := make([]string, len(rows[0]))
	for colIdx, raw := range rows[0] {
		cellName, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return nil, err
		}
		v, err := reader.value(cellName, raw)
		if err != nil {
			return nil, err
		}
		header[colIdx] = headerText(v)
	}
	names := resolveHeaders(header, width)

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		values := make([]interface{}, width)
		for colIdx := 0; colIdx < width && colIdx < len(row); colIdx++ {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			v, err := reader.value(cellName, row[colIdx])
			if err != nil {
				return nil, err
			}
			values[colIdx] = v
		}
		ds.Rows = append(ds.Rows, values)
	}

	ds.Columns = make([]models.Column, width)
	for colIdx, name := range names {
		colType := InferColumnType(ds.ColumnValues(colIdx), len(ds.Rows))
		CoerceColumn(ds, colIdx, colType)
		ds.Columns[colIdx] = models.Column{Name: name, Type: colType}
	}

	return ds, nil
}

// cellReader turns raw cell text into typed values for one sheet.
type cellReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	dates    map[int]bool // style index -> has a date number format
}

func newCellReader(f *excelize.File, sheetName string) *cellReader {
	r := &cellReader{
		f:     f,
		sheet: sheetName,
		dates: make(map[int]bool),
	}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// value converts the raw text of a cell into nil, bool, string, int64,
// float64 or time.Time depending on the stored cell type and its style.
func (r *cellReader) value(cellName, raw string) (interface{}, error) {
	if raw == "" {
		return nil, nil
	}

	cellType, err := r.f.GetCellType(r.sheet, cellName)
	if err != nil {
		return nil, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw, nil
	case excelize.CellTypeDate:
		if t, ok := parseISOTime(raw); ok {
			return t, nil
		}
		return raw, nil
	}

	num, ok := parseValue(raw)
	if !ok {
		return raw, nil
	}

	isDate, err := r.hasDateFormat(cellName)
	if err != nil {
		return nil, err
	}
	if isDate {
		if t, err := excelize.ExcelDateToTime(toFloat(num), r.date1904); err == nil {
			return t, nil
		}
	}
	return num, nil
}

// hasDateFormat reports whether the cell's number format renders a date or time.
func (r *cellReader) hasDateFormat(cellName string) (bool, error) {
	styleIdx, err := r.f.GetCellStyle(r.sheet, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dates[styleIdx]; ok {
		return isDate, nil
	}

	isDate := false
	if style, err := r.f.GetStyle(styleIdx); err == nil && style != nil {
		custom := ""
		if style.CustomNumFmt != nil {
			custom = *style.CustomNumFmt
		}
		isDate = IsDateNumFmt(style.NumFmt, custom)
	}
	r.dates[styleIdx] = isDate
	return isDate, nil
}

// headerText renders a typed header cell as a column name. Timestamps use
// the "2006-01-02 15:04:05" form and booleans read True or False.
func headerText(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	}
	return ""
}

// maxExactInt is the largest magnitude a float64 holds without losing integer precision.
const maxExactInt = 1 << 53

// parseValue attempts to parse a string value as a number.
// Returns int64 for integral values, float64 for decimals, and false when
// the text is not numeric.
func parseValue(s string) (interface{}, bool) {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == math.Trunc(f) && math.Abs(f) < maxExactInt {
		return int64(f), true
	}
	return f, true
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return math.NaN()
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func parseISOTime(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
