// Package elevation parses elevation-profile CSV text into typed records.
//
// The parser is permissive and never returns an error: missing input
// yields no records, malformed numeric cells become 0, short rows are padded with
// empty cells and long rows are truncated to the header width. Callers that care
// about data quality validate the records themselves.
//
// Input format:
//
//	lat,lon,ele,time,segment_distance_km,distance_km_cum,...
//	45.1,7.2,1200.5,2023-01-01T10:00:00Z,0.012,0.012,...
//
// The first line is the header. Rows are split strictly on '\n' and cells strictly
// on ','; quoted fields are not supported. Surrounding whitespace (including a
// trailing '\r' and a byte-order mark) is trimmed from the text, every header and
// every cell.
package elevation

import (
	"strings"
)

// Known column names.
const (
	ColLat             = "lat"
	ColLon             = "lon"
	ColEle             = "ele"
	ColTime            = "time"
	ColSegmentDistance = "segment_distance_km"
	ColDistanceCum     = "distance_km_cum"
	ColSegmentTime     = "segment_time_s"
	ColElevDelta       = "elev_delta_m"
	ColElevGainPos     = "elev_gain_pos_m"
	ColElevGainPosCum  = "elev_gain_pos_cum_m"
	ColSlopePercent    = "slope_percent"
)

// numericColumns is the closed set of headers whose cells are converted to float64.
// Membership is decided by header name only, never by cell content.
var numericColumns = map[string]struct{}{
	ColLat:             {},
	ColLon:             {},
	ColEle:             {},
	ColSegmentDistance: {},
	ColDistanceCum:     {},
	ColSegmentTime:     {},
	ColElevDelta:       {},
	ColElevGainPos:     {},
	ColElevGainPosCum:  {},
	ColSlopePercent:    {},
}

// IsNumeric reports whether cells under header are parsed as numbers.
func IsNumeric(header string) bool {
	_, ok := numericColumns[header]
	return ok
}

// NumericColumns returns the numeric header names in canonical column order.
func NumericColumns() []string {
	return []string{
		ColLat, ColLon, ColEle,
		ColSegmentDistance, ColDistanceCum,
		ColSegmentTime, ColElevDelta,
		ColElevGainPos, ColElevGainPosCum, ColSlopePercent,
	}
}

// Table is a parsed CSV document: the header row in file order plus one record
// per data line.
type Table struct {
	Headers []string `json:"headers"`
	Records []Record `json:"records"`
}

// Parse converts CSV text into records, one per data line, in line order.
// Empty or header-only input returns an empty, non-nil slice.
func Parse(csvText string) []Record {
	return ParseTable(csvText).Records
}

// ParseValue is the loosely typed entry point. Strings, byte slices and non-nil
// string pointers are parsed; nil and every other type yield no records.
func ParseValue(v any) []Record {
	switch t := v.(type) {
	case string:
		return Parse(t)
	case []byte:
		return Parse(string(t))
	case *string:
		if t != nil {
			return Parse(*t)
		}
	}
	return []Record{}
}

// ParseTable is Parse that also returns the trimmed header row.
func ParseTable(csvText string) Table {
	empty := Table{Headers: []string{}, Records: []Record{}}

	text := trim(csvText)
	if text == "" {
		return empty
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return empty
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = trim(h)
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		records = append(records, parseRow(headers, line))
	}

	return Table{Headers: headers, Records: records}
}

// parseRow aligns the cells of one line to headers. Duplicate headers overwrite
// earlier values; cells beyond the header count are ignored.
func parseRow(headers []string, line string) Record {
	values := strings.Split(line, ",")
	row := make(Record, len(headers))

	for i, header := range headers {
		var val string
		if i < len(values) {
			val = trim(values[i])
		}

		if IsNumeric(header) {
			row[header] = parseNumber(val)
		} else {
			row[header] = val
		}
	}

	return row
}
