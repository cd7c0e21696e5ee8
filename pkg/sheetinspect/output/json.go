// Package output serializes datasets as record-oriented JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetinspect/pkg/sheetinspect/models"
)

// DateFormat selects how time values are encoded.
type DateFormat string

const (
	// DateFormatEpoch writes times as milliseconds since the Unix epoch.
	DateFormatEpoch DateFormat = "epoch"
	// DateFormatISO writes times as ISO-8601 strings with millisecond precision.
	DateFormatISO DateFormat = "iso"
)

const isoLayout = "2006-01-02T15:04:05.000"

// ParseDateFormat validates a date format name.
func ParseDateFormat(s string) (DateFormat, error) {
	switch DateFormat(strings.ToLower(s)) {
	case "", DateFormatEpoch:
		return DateFormatEpoch, nil
	case DateFormatISO:
		return DateFormatISO, nil
	}
	return "", fmt.Errorf("invalid date format: %s (must be epoch or iso)", s)
}

// Options configures JSON encoding.
type Options struct {
	DateFormat DateFormat
	Pretty     bool
}

// ToJSON encodes the dataset as an array of objects, one per row, with keys
// in column order. Non-ASCII text is written literally.
func ToJSON(ds *models.Dataset, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	keys := make([][]byte, len(ds.Columns))
	for i, col := range ds.Columns {
		key, err := encodeString(col.Name)
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}

	buf.WriteByte('[')
	for rowIdx, row := range ds.Rows {
		if rowIdx > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for colIdx, v := range row {
			if colIdx > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[colIdx])
			buf.WriteByte(':')
			if err := encodeValue(&buf, v, opts.DateFormat); err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", rowIdx, ds.Columns[colIdx].Name, err)
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	if !opts.Pretty {
		return buf.Bytes(), nil
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return pretty.Bytes(), nil
}

// WriteFile encodes the dataset and writes it to path, replacing any
// existing file. It returns the number of bytes written.
func WriteFile(path string, ds *models.Dataset, opts Options) (int, error) {
	data, err := ToJSON(ds, opts)
	if err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, err
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}

func encodeValue(buf *bytes.Buffer, v interface{}, dateFormat DateFormat) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case float64:
		buf.WriteString(formatFloat(val))
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case string:
		s, err := encodeString(val)
		if err != nil {
			return err
		}
		buf.Write(s)
	case time.Time:
		if dateFormat == DateFormatISO {
			buf.WriteByte('"')
			buf.WriteString(val.UTC().Format(isoLayout))
			buf.WriteByte('"')
		} else {
			buf.WriteString(strconv.FormatInt(val.UnixMilli(), 10))
		}
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

// formatFloat renders a float so that it always reads back as a float:
// whole numbers keep a ".0" suffix and NaN or infinities become null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}

	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// encodeString quotes s without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
