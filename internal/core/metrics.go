package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	profileLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmc_maps",
		Subsystem: "profiles",
		Name:      "loads_total",
		Help:      "Elevation profile loads by outcome (ok or an error code).",
	}, []string{"outcome"})

	profileRecords = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mmc_maps",
		Subsystem: "profiles",
		Name:      "records",
		Help:      "Number of records parsed per elevation profile.",
		Buckets:   prometheus.ExponentialBuckets(100, 4, 7),
	})

	profileLoadSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "mmc_maps",
		Subsystem: "profiles",
		Name:      "load_duration_seconds",
		Help:      "Time to read and parse an elevation profile.",
		Buckets:   prometheus.DefBuckets,
	})

	geoJSONLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmc_maps",
		Subsystem: "geojson",
		Name:      "loads_total",
		Help:      "GeoJSON loads by outcome (ok or an error code).",
	}, []string{"outcome"})

	activeLoads = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "mmc_maps",
		Subsystem: "profiles",
		Name:      "active_loads",
		Help:      "Profile and geometry loads currently holding a limiter slot.",
	})

	themeChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mmc_maps",
		Subsystem: "theme",
		Name:      "changes_total",
		Help:      "Theme preference changes by resulting mode.",
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(profileLoads, profileRecords, profileLoadSeconds, geoJSONLoads, activeLoads, themeChanges)
}

// outcome labels a load result: "ok" or the user-facing error code.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return MapError(err).Code
}

// RecordThemeChange counts a theme preference change.
func RecordThemeChange(mode string) {
	themeChanges.WithLabelValues(mode).Inc()
}
