// Package models defines data structures for spreadsheet inspection.
package models

// ColumnType is the inferred type of a column, named the way dataframe
// libraries print dtypes.
type ColumnType string

const (
	// TypeInt64 holds whole numbers with no missing values.
	TypeInt64 ColumnType = "int64"
	// TypeFloat64 holds numbers, including whole numbers mixed with nulls.
	TypeFloat64 ColumnType = "float64"
	// TypeBool holds booleans with no missing values.
	TypeBool ColumnType = "bool"
	// TypeDatetime holds dates and timestamps.
	TypeDatetime ColumnType = "datetime64[ns]"
	// TypeObject holds strings or a mix of value kinds.
	TypeObject ColumnType = "object"
)

// IsNumeric reports whether descriptive statistics apply to the type.
func (t ColumnType) IsNumeric() bool {
	return t == TypeInt64 || t == TypeFloat64
}

// Column describes one column of a dataset.
type Column struct {
	// Name is the resolved header text.
	Name string `json:"name"`
	// Type is the inferred column type.
	Type ColumnType `json:"type"`
}

// Dataset is the tabular content of a single sheet.
//
// Every row holds exactly len(Columns) values. A nil value is null; other
// values are int64, float64, bool, string or time.Time.
type Dataset struct {
	// SheetName is the sheet the data was read from.
	SheetName string `json:"sheet_name"`
	// Columns lists the columns in sheet order.
	Columns []Column `json:"columns"`
	// Rows holds the data rows, excluding the header row.
	Rows [][]interface{} `json:"rows"`
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnValues returns the values of column idx, top to bottom.
func (d *Dataset) ColumnValues(idx int) []interface{} {
	values := make([]interface{}, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values
}

// Head returns up to n leading rows.
func (d *Dataset) Head(n int) [][]interface{} {
	if n < 0 {
		n = 0
	}
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}
