package elevation

// Summary holds the headline figures shown above an elevation chart.
type Summary struct {
	Points          int     `json:"points"`
	DistanceKm      float64 `json:"distance_km"`
	ElevationGainM  float64 `json:"elevation_gain_m"`
	MinElevationM   float64 `json:"min_elevation_m"`
	MaxElevationM   float64 `json:"max_elevation_m"`
	DurationS       float64 `json:"duration_s"`
	MinSlopePercent float64 `json:"min_slope_percent"`
	MaxSlopePercent float64 `json:"max_slope_percent"`
}

// Summarize computes a Summary from records in file order. Distance and gain
// come from the cumulative columns of the last record; duration is the sum of
// segment times. An empty slice yields the zero Summary.
func Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	first := records[0]
	s := Summary{
		Points:          len(records),
		MinElevationM:   first.Float(ColEle),
		MaxElevationM:   first.Float(ColEle),
		MinSlopePercent: first.Float(ColSlopePercent),
		MaxSlopePercent: first.Float(ColSlopePercent),
	}

	for _, r := range records {
		ele := r.Float(ColEle)
		s.MinElevationM = min(s.MinElevationM, ele)
		s.MaxElevationM = max(s.MaxElevationM, ele)

		slope := r.Float(ColSlopePercent)
		s.MinSlopePercent = min(s.MinSlopePercent, slope)
		s.MaxSlopePercent = max(s.MaxSlopePercent, slope)

		s.DurationS += r.Float(ColSegmentTime)
	}

	last := records[len(records)-1]
	s.DistanceKm = last.Float(ColDistanceCum)
	s.ElevationGainM = last.Float(ColElevGainPosCum)

	return s
}
