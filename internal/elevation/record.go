package elevation

// Record is one parsed data row keyed by header name. Values are float64 for
// numeric headers and string for every other header.
type Record map[string]any

// Float returns the numeric value stored under name, or 0 if the column is
// absent or not numeric.
func (r Record) Float(name string) float64 {
	if f, ok := r[name].(float64); ok {
		return f
	}
	return 0
}

// Text returns the string value stored under name, or "" if the column is
// absent or numeric.
func (r Record) Text(name string) string {
	if s, ok := r[name].(string); ok {
		return s
	}
	return ""
}

// Has reports whether the record carries a column named name.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Sample is the typed view of a record restricted to the known columns.
// Columns missing from the source are zero.
type Sample struct {
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	Ele               float64 `json:"ele"`
	Time              string  `json:"time"`
	SegmentDistanceKm float64 `json:"segment_distance_km"`
	DistanceKmCum     float64 `json:"distance_km_cum"`
	SegmentTimeS      float64 `json:"segment_time_s"`
	ElevDeltaM        float64 `json:"elev_delta_m"`
	ElevGainPosM      float64 `json:"elev_gain_pos_m"`
	ElevGainPosCumM   float64 `json:"elev_gain_pos_cum_m"`
	SlopePercent      float64 `json:"slope_percent"`
}

// Sample converts the record to its typed form.
func (r Record) Sample() Sample {
	return Sample{
		Lat:               r.Float(ColLat),
		Lon:               r.Float(ColLon),
		Ele:               r.Float(ColEle),
		Time:              r.Text(ColTime),
		SegmentDistanceKm: r.Float(ColSegmentDistance),
		DistanceKmCum:     r.Float(ColDistanceCum),
		SegmentTimeS:      r.Float(ColSegmentTime),
		ElevDeltaM:        r.Float(ColElevDelta),
		ElevGainPosM:      r.Float(ColElevGainPos),
		ElevGainPosCumM:   r.Float(ColElevGainPosCum),
		SlopePercent:      r.Float(ColSlopePercent),
	}
}

// Samples converts every record to its typed form, preserving order.
func Samples(records []Record) []Sample {
	out := make([]Sample, len(records))
	for i, r := range records {
		out[i] = r.Sample()
	}
	return out
}
