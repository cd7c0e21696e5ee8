package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

// maxCellWidth is the display width at which preview cells are truncated.
const maxCellWidth = 30

// Print writes the human-readable summary to w: sheet names, dimensions,
// column names, preview rows, column types and descriptive statistics.
func Print(w io.Writer, s *models.Summary) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Sheets found: %s\n", formatList(s.SheetNames))

	buf.WriteString("\n=== Data overview ===\n")
	fmt.Fprintf(&buf, "Total rows: %d\n", s.RowCount)
	fmt.Fprintf(&buf, "Total columns: %d\n", s.ColCount)
	fmt.Fprintf(&buf, "\nColumns: %s\n", formatList(s.ColumnNames()))

	fmt.Fprintf(&buf, "\n=== First %d rows ===\n", len(s.Head))
	writeHead(&buf, s)

	buf.WriteString("\n=== Data types ===\n")
	writeTypes(&buf, s.Columns)

	buf.WriteString("\n=== Descriptive statistics ===\n")
	switch {
	case len(s.Numeric) > 0:
		writeNumericStats(&buf, s.Numeric)
	case len(s.Objects) > 0:
		writeObjectStats(&buf, s.Objects)
	default:
		buf.WriteString("(no columns)\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func writeHead(w io.Writer, s *models.Summary) {
	if len(s.Columns) == 0 {
		fmt.Fprintln(w, "Empty sheet")
		return
	}
	if len(s.Head) == 0 {
		fmt.Fprintf(w, "Empty table\nColumns: %s\n", formatList(s.ColumnNames()))
		return
	}

	table := newTable(w, append([]string{""}, s.ColumnNames()...))
	for i, row := range s.Head {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, strconv.Itoa(i))
		for colIdx, v := range row {
			cells = append(cells, runewidth.Truncate(FormatCell(v, s.Columns[colIdx].Type), maxCellWidth, "..."))
		}
		table.Append(cells)
	}
	table.Render()
}

func writeTypes(w io.Writer, cols []models.Column) {
	width := 0
	for _, col := range cols {
		if cw := runewidth.StringWidth(col.Name); cw > width {
			width = cw
		}
	}
	for _, col := range cols {
		fmt.Fprintf(w, "%s    %s\n", runewidth.FillRight(col.Name, width), col.Type)
	}
}

func writeNumericStats(w io.Writer, numeric []models.NumericStats) {
	header := []string{""}
	for _, st := range numeric {
		header = append(header, st.Column)
	}
	table := newTable(w, header)

	rows := []struct {
		label string
		value func(models.NumericStats) float64
	}{
		{"count", func(st models.NumericStats) float64 { return float64(st.Count) }},
		{"mean", func(st models.NumericStats) float64 { return st.Mean }},
		{"std", func(st models.NumericStats) float64 { return st.Std }},
		{"min", func(st models.NumericStats) float64 { return st.Min }},
		{"25%", func(st models.NumericStats) float64 { return st.Q25 }},
		{"50%", func(st models.NumericStats) float64 { return st.Q50 }},
		{"75%", func(st models.NumericStats) float64 { return st.Q75 }},
		{"max", func(st models.NumericStats) float64 { return st.Max }},
	}
	for _, r := range rows {
		if r.label == "std" && !hasPlainNumeric(numeric) {
			continue
		}
		cells := []string{r.label}
		for _, st := range numeric {
			if st.Datetime && r.label != "count" {
				cells = append(cells, formatTimeStat(r.value(st)))
				continue
			}
			cells = append(cells, formatStat(r.value(st)))
		}
		table.Append(cells)
	}
	table.Render()
}

func writeObjectStats(w io.Writer, objects []models.ObjectStats) {
	header := []string{""}
	for _, st := range objects {
		header = append(header, st.Column)
	}
	table := newTable(w, header)

	count := []string{"count"}
	unique := []string{"unique"}
	top := []string{"top"}
	freq := []string{"freq"}
	for _, st := range objects {
		count = append(count, strconv.Itoa(st.Count))
		unique = append(unique, strconv.Itoa(st.Unique))
		if st.Top == nil {
			top = append(top, "NaN")
			freq = append(freq, "NaN")
		} else {
			top = append(top, runewidth.Truncate(FormatCell(st.Top, models.TypeObject), maxCellWidth, "..."))
			freq = append(freq, strconv.Itoa(st.Freq))
		}
	}
	table.AppendBulk([][]string{count, unique, top, freq})
	table.Render()
}

// FormatCell renders a value for console display. Nulls print as NaN in
// numeric columns, NaT in datetime columns and None elsewhere.
func FormatCell(v interface{}, colType models.ColumnType) string {
	switch val := v.(type) {
	case nil:
		switch {
		case colType.IsNumeric():
			return "NaN"
		case colType == models.TypeDatetime:
			return "NaT"
		}
		return "None"
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatFloat(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	case string:
		return val
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func formatStat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

// formatTimeStat renders a datetime statistic held as Unix nanoseconds.
// A missing statistic prints NaN.
func formatTimeStat(ns float64) string {
	if math.IsNaN(ns) {
		return "NaN"
	}
	return time.Unix(0, int64(math.Round(ns))).UTC().Format("2006-01-02 15:04:05")
}

// hasPlainNumeric reports whether any described column is numeric rather than datetime.
func hasPlainNumeric(numeric []models.NumericStats) bool {
	for _, st := range numeric {
		if !st.Datetime {
			return true
		}
	}
	return false
}

// formatList renders names as a bracketed, quoted list: ['a', 'b'].
func formatList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
