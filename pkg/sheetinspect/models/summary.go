package models

// NumericStats holds descriptive statistics for a numeric or datetime column.
// Fields other than Count are NaN when they cannot be computed.
type NumericStats struct {
	Column string `json:"column"`
	// Datetime marks a datetime column. Its values are Unix nanoseconds in
	// UTC and Std is always NaN.
	Datetime bool    `json:"datetime,omitempty"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Q50    float64 `json:"q50"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ObjectStats summarizes a non-numeric column.
type ObjectStats struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Unique int    `json:"unique"`
	// Top is the most frequent value, nil when the column has no values.
	Top  interface{} `json:"top"`
	Freq int         `json:"freq"`
}

// Summary is the diagnostic view of a loaded workbook.
type Summary struct {
	// SheetNames lists every sheet in the workbook.
	SheetNames []string `json:"sheet_names"`
	// SheetName is the sheet the summary describes.
	SheetName string   `json:"sheet_name"`
	RowCount  int      `json:"row_count"`
	ColCount  int      `json:"col_count"`
	Columns   []Column `json:"columns"`
	// Head holds the preview rows.
	Head [][]interface{} `json:"head"`
	// Numeric holds one entry per numeric or datetime column, in column order.
	Numeric []NumericStats `json:"numeric,omitempty"`
	// Objects is filled only when the sheet has no numeric or datetime column.
	Objects []ObjectStats `json:"objects,omitempty"`
}

// ColumnNames returns the summarized column names in order.
func (s *Summary) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}
