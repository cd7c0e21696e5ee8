package parser

import (
	"time"

	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

// InferColumnType picks the column type from the values of one column.
// rowCount is the number of data rows in the sheet; an all-null column is
// float64 when there are rows and object when there are none.
func InferColumnType(values []interface{}, rowCount int) models.ColumnType {
	var ints, floats, bools, times, others, nulls int

	for _, v := range values {
		switch v.(type) {
		case nil:
			nulls++
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		case time.Time:
			times++
		default:
			others++
		}
	}

	nonNull := len(values) - nulls
	switch {
	case nonNull == 0 && rowCount == 0:
		return models.TypeObject
	case nonNull == 0:
		return models.TypeFloat64
	case ints == nonNull && nulls == 0:
		return models.TypeInt64
	case ints+floats == nonNull:
		return models.TypeFloat64
	case bools == nonNull && nulls == 0:
		return models.TypeBool
	case times == nonNull:
		return models.TypeDatetime
	}
	return models.TypeObject
}

// CoerceColumn converts the values of column idx to the representation of colType.
// Only float64 columns change: their integral values become float64.
func CoerceColumn(ds *models.Dataset, idx int, colType models.ColumnType) {
	if colType != models.TypeFloat64 {
		return
	}
	for _, row := range ds.Rows {
		if n, ok := row[idx].(int64); ok {
			row[idx] = float64(n)
		}
	}
}
