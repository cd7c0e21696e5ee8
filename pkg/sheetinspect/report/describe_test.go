package report

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

func TestDescribeNumeric(t *testing.T) {
	values := []interface{}{int64(1), int64(2), int64(3), int64(4), nil}
	st := DescribeNumeric("qty", values)

	assert.Equal(t, "qty", st.Column)
	assert.Equal(t, 4, st.Count)
	assert.InDelta(t, 2.5, st.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487358056, st.Std, 1e-12)
	assert.Equal(t, 1.0, st.Min)
	assert.InDelta(t, 1.75, st.Q25, 1e-12)
	assert.InDelta(t, 2.5, st.Q50, 1e-12)
	assert.InDelta(t, 3.25, st.Q75, 1e-12)
	assert.Equal(t, 4.0, st.Max)
}

func TestDescribeNumericSingleValue(t *testing.T) {
	st := DescribeNumeric("x", []interface{}{7.5})

	assert.Equal(t, 1, st.Count)
	assert.Equal(t, 7.5, st.Mean)
	assert.True(t, math.IsNaN(st.Std), "std of one value should be NaN")
	assert.Equal(t, 7.5, st.Q25)
	assert.Equal(t, 7.5, st.Max)
}

func TestDescribeNumericEmpty(t *testing.T) {
	st := DescribeNumeric("x", []interface{}{nil, nil})

	assert.Equal(t, 0, st.Count)
	for _, v := range []float64{st.Mean, st.Std, st.Min, st.Q25, st.Q50, st.Q75, st.Max} {
		assert.True(t, math.IsNaN(v))
	}
}

func TestQuantile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 10.0, quantile(sorted, 0))
	assert.Equal(t, 20.0, quantile(sorted, 0.25))
	assert.Equal(t, 30.0, quantile(sorted, 0.5))
	assert.Equal(t, 50.0, quantile(sorted, 1))

	assert.InDelta(t, 12.5, quantile([]float64{10, 20}, 0.25), 1e-12)
}

func TestDescribeObject(t *testing.T) {
	values := []interface{}{"b", "a", "a", nil, "b", int64(1), "1"}
	st := DescribeObject("name", values)

	assert.Equal(t, 6, st.Count)
	assert.Equal(t, 4, st.Unique)
	assert.Equal(t, "b", st.Top)
	assert.Equal(t, 2, st.Freq)

	empty := DescribeObject("none", []interface{}{nil})
	assert.Equal(t, 0, empty.Count)
	assert.Nil(t, empty.Top)
}

func TestSummarize(t *testing.T) {
	wb := &models.WorkbookData{
		SheetNames: []string{"Sales", "Notes"},
		Data: &models.Dataset{
			SheetName: "Sales",
			Columns: []models.Column{
				{Name: "name", Type: models.TypeObject},
				{Name: "qty", Type: models.TypeInt64},
				{Name: "price", Type: models.TypeFloat64},
			},
			Rows: [][]interface{}{
				{"a", int64(1), 1.5},
				{"b", int64(2), nil},
				{"c", int64(3), 2.5},
			},
		},
	}

	s := Summarize(wb, 2)
	assert.Equal(t, []string{"Sales", "Notes"}, s.SheetNames)
	assert.Equal(t, 3, s.RowCount)
	assert.Equal(t, 3, s.ColCount)
	assert.Len(t, s.Head, 2)
	require.Len(t, s.Numeric, 2)
	assert.Equal(t, "qty", s.Numeric[0].Column)
	assert.Equal(t, "price", s.Numeric[1].Column)
	assert.Equal(t, 2, s.Numeric[1].Count)
	assert.Empty(t, s.Objects)
}

func TestSummarizeObjectFallback(t *testing.T) {
	wb := &models.WorkbookData{
		SheetNames: []string{"Sheet1"},
		Data: &models.Dataset{
			SheetName: "Sheet1",
			Columns:   []models.Column{{Name: "name", Type: models.TypeObject}},
			Rows:      [][]interface{}{{"x"}, {"x"}},
		},
	}

	s := Summarize(wb, 5)
	assert.Empty(t, s.Numeric)
	require.Len(t, s.Objects, 1)
	assert.Equal(t, 2, s.Objects[0].Freq)
}

func TestDescribeDatetime(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	values := []interface{}{day, nil, day.AddDate(0, 0, 2), day.AddDate(0, 0, 4)}
	st := DescribeDatetime("sold", values)

	assert.True(t, st.Datetime)
	assert.Equal(t, 3, st.Count)
	assert.True(t, math.IsNaN(st.Std), "datetime std should be NaN")
	assert.Equal(t, float64(day.UnixNano()), st.Min)
	assert.InDelta(t, float64(day.AddDate(0, 0, 2).UnixNano()), st.Mean, 1e3)
	assert.InDelta(t, float64(day.Add(24*time.Hour).UnixNano()), st.Q25, 1e3)
	assert.Equal(t, float64(day.AddDate(0, 0, 4).UnixNano()), st.Max)

	empty := DescribeDatetime("none", []interface{}{nil})
	assert.Equal(t, 0, empty.Count)
	assert.True(t, math.IsNaN(empty.Min))
}

func TestSummarizeKeepsDatetimeColumnsInOrder(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	wb := &models.WorkbookData{
		SheetNames: []string{"Sheet1"},
		Data: &models.Dataset{
			SheetName: "Sheet1",
			Columns: []models.Column{
				{Name: "sold", Type: models.TypeDatetime},
				{Name: "name", Type: models.TypeObject},
				{Name: "qty", Type: models.TypeInt64},
			},
			Rows: [][]interface{}{
				{day, "a", int64(1)},
				{day, "b", int64(2)},
			},
		},
	}

	s := Summarize(wb, 5)
	require.Len(t, s.Numeric, 2)
	assert.Equal(t, "sold", s.Numeric[0].Column)
	assert.True(t, s.Numeric[0].Datetime)
	assert.Equal(t, "qty", s.Numeric[1].Column)
	assert.False(t, s.Numeric[1].Datetime)
	assert.Empty(t, s.Objects)
}

func TestSummarizeDatetimeOnlySkipsObjectFallback(t *testing.T) {
	wb := &models.WorkbookData{
		SheetNames: []string{"Sheet1"},
		Data: &models.Dataset{
			SheetName: "Sheet1",
			Columns: []models.Column{
				{Name: "name", Type: models.TypeObject},
				{Name: "sold", Type: models.TypeDatetime},
			},
			Rows: [][]interface{}{{"a", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}},
		},
	}

	s := Summarize(wb, 5)
	require.Len(t, s.Numeric, 1)
	assert.Equal(t, "sold", s.Numeric[0].Column)
	assert.Empty(t, s.Objects)
}
