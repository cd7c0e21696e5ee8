// Package report derives and renders the diagnostic summary of a dataset.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

// Summarize builds the summary of a loaded workbook with up to headRows preview rows.
func Summarize(wb *models.WorkbookData, headRows int) *models.Summary {
	ds := wb.Data
	s := &models.Summary{
		SheetNames: wb.SheetNames,
		SheetName:  ds.SheetName,
		RowCount:   ds.NumRows(),
		ColCount:   ds.NumColumns(),
		Columns:    ds.Columns,
		Head:       ds.Head(headRows),
	}

	for idx, col := range ds.Columns {
		switch {
		case col.Type.IsNumeric():
			s.Numeric = append(s.Numeric, DescribeNumeric(col.Name, ds.ColumnValues(idx)))
		case col.Type == models.TypeDatetime:
			s.Numeric = append(s.Numeric, DescribeDatetime(col.Name, ds.ColumnValues(idx)))
		}
	}
	if len(s.Numeric) == 0 {
		for idx, col := range ds.Columns {
			s.Objects = append(s.Objects, DescribeObject(col.Name, ds.ColumnValues(idx)))
		}
	}

	return s
}

// DescribeNumeric computes count, mean, sample standard deviation, min,
// quartiles and max over the non-null numeric values.
func DescribeNumeric(name string, values []interface{}) models.NumericStats {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case int64:
			data = append(data, float64(n))
		case float64:
			if !math.IsNaN(n) {
				data = append(data, n)
			}
		}
	}
	return describeFloats(name, data)
}

// DescribeDatetime computes count, mean, min, quartiles and max over the
// non-null timestamps of a column. The statistics are Unix nanoseconds.
func DescribeDatetime(name string, values []interface{}) models.NumericStats {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if t, ok := v.(time.Time); ok {
			data = append(data, float64(t.UnixNano()))
		}
	}
	st := describeFloats(name, data)
	st.Datetime = true
	st.Std = math.NaN()
	return st
}

func describeFloats(name string, data stats.Float64Data) models.NumericStats {
	nan := math.NaN()
	st := models.NumericStats{
		Column: name,
		Count:  len(data),
		Mean:   nan,
		Std:    nan,
		Min:    nan,
		Q25:    nan,
		Q50:    nan,
		Q75:    nan,
		Max:    nan,
	}
	if len(data) == 0 {
		return st
	}

	st.Mean, _ = stats.Mean(data)
	st.Min, _ = stats.Min(data)
	st.Max, _ = stats.Max(data)
	if len(data) > 1 {
		st.Std, _ = stats.StandardDeviationSample(data)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	st.Q25 = quantile(sorted, 0.25)
	st.Q50 = quantile(sorted, 0.50)
	st.Q75 = quantile(sorted, 0.75)

	return st
}

// quantile interpolates linearly between the closest ranks at position (n-1)p.
// sorted must be non-empty and ascending.
func quantile(sorted []float64, p float64) float64 {
	pos := float64(len(sorted)-1) * p
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// DescribeObject counts the non-null values of a column, its distinct
// values, and the most frequent one. Ties go to the value seen first.
func DescribeObject(name string, values []interface{}) models.ObjectStats {
	st := models.ObjectStats{Column: name}

	counts := make(map[string]int)
	var order []string
	first := make(map[string]interface{})
	for _, v := range values {
		if v == nil {
			continue
		}
		st.Count++
		key := valueKey(v)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
			first[key] = v
		}
		counts[key]++
	}

	st.Unique = len(order)
	for _, key := range order {
		if counts[key] > st.Freq {
			st.Freq = counts[key]
			st.Top = first[key]
		}
	}
	return st
}

// valueKey distinguishes values by kind as well as text, so "1" and 1 differ.
func valueKey(v interface{}) string {
	if t, ok := v.(time.Time); ok {
		return "t:" + t.Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%T:%v", v, v)
}
