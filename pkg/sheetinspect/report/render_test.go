package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

func salesWorkbook() *models.WorkbookData {
	return &models.WorkbookData{
		SheetNames: []string{"매출", "Sheet2"},
		Data: &models.Dataset{
			SheetName: "매출",
			Columns: []models.Column{
				{Name: "상품명", Type: models.TypeObject},
				{Name: "qty", Type: models.TypeInt64},
				{Name: "date", Type: models.TypeDatetime},
			},
			Rows: [][]interface{}{
				{"더블레스 티셔츠", int64(2), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
				{nil, int64(4), nil},
			},
		},
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summarize(salesWorkbook(), 5)))
	out := buf.String()

	assert.Contains(t, out, "Sheets found: ['매출', 'Sheet2']")
	assert.Contains(t, out, "Total rows: 2")
	assert.Contains(t, out, "Total columns: 3")
	assert.Contains(t, out, "Columns: ['상품명', 'qty', 'date']")
	assert.Contains(t, out, "더블레스 티셔츠")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "NaT")
	assert.Contains(t, out, "datetime64[ns]")
	assert.Contains(t, out, "3.000000") // mean of qty

	sections := []string{"=== Data overview ===", "=== First 2 rows ===", "=== Data types ===", "=== Descriptive statistics ==="}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		require.NotEqual(t, -1, idx, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestPrintDatetimeStats(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	wb := &models.WorkbookData{
		SheetNames: []string{"Sheet1"},
		Data: &models.Dataset{
			SheetName: "Sheet1",
			Columns: []models.Column{
				{Name: "name", Type: models.TypeObject},
				{Name: "sold", Type: models.TypeDatetime},
			},
			Rows: [][]interface{}{
				{"a", day},
				{"b", day.Add(12 * time.Hour)},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summarize(wb, 5)))
	stats := buf.String()[strings.Index(buf.String(), "=== Descriptive statistics ==="):]

	assert.Contains(t, stats, "2.000000")
	assert.Contains(t, stats, "2024-05-01 06:00:00") // mean
	assert.Contains(t, stats, "2024-05-01 12:00:00") // max
	assert.NotContains(t, stats, "std")
	assert.NotContains(t, stats, "unique")
}

func TestPrintMixedNumericAndDatetimeStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summarize(salesWorkbook(), 5)))
	stats := buf.String()[strings.Index(buf.String(), "=== Descriptive statistics ==="):]

	assert.Contains(t, stats, "std")
	assert.Contains(t, stats, "2024-05-01 00:00:00")
	assert.Contains(t, stats, "NaN") // datetime std
}

func TestFormatTimeStat(t *testing.T) {
	ns := float64(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).UnixNano())
	assert.Equal(t, "2024-01-02 03:04:05", formatTimeStat(ns))
	assert.Equal(t, "NaN", formatTimeStat(math.NaN()))
}

func TestPrintHeaderOnly(t *testing.T) {
	wb := &models.WorkbookData{
		SheetNames: []string{"Sheet1"},
		Data: &models.Dataset{
			SheetName: "Sheet1",
			Columns:   []models.Column{{Name: "a", Type: models.TypeObject}},
			Rows:      [][]interface{}{},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, Summarize(wb, 5)))
	assert.Contains(t, buf.String(), "Total rows: 0")
	assert.Contains(t, buf.String(), "Empty table")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	err := Print(failingWriter{}, Summarize(salesWorkbook(), 5))
	assert.EqualError(t, err, "disk full")
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		value    interface{}
		colType  models.ColumnType
		expected string
	}{
		{nil, models.TypeFloat64, "NaN"},
		{nil, models.TypeDatetime, "NaT"},
		{nil, models.TypeObject, "None"},
		{int64(42), models.TypeInt64, "42"},
		{float64(3), models.TypeFloat64, "3.0"},
		{0.25, models.TypeFloat64, "0.25"},
		{true, models.TypeBool, "True"},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), models.TypeDatetime, "2024-01-02 03:04:05"},
		{"텍스트", models.TypeObject, "텍스트"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatCell(tt.value, tt.colType), "FormatCell(%v, %s)", tt.value, tt.colType)
	}
}
