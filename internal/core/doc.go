// Package core provides the route map service layer.
//
// It sits between an [assets.Source] and the web layer and owns the
// cross-cutting rules for loading route data: request timeouts, the
// concurrency limit on profile parsing, size caps and metrics. It can be used
// by web handlers, CLI tools, or tests without modification.
//
// # Loading a profile
//
//	svc := core.NewService(source, cfg)
//	p, err := svc.Profile(ctx, "utmb")
//	// p.Records hold the parsed CSV rows, p.Summary the chart figures
//
// [Service.Profile] acquires a slot from the [LoadLimiter], streams the
// route's elevation CSV through [elevation.ParseReader] with the configured
// byte cap, and summarizes the records. When all slots stay busy past the
// configured wait, it fails with [ErrTooManyLoads].
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages using [MapError].
// Each category has a code for support reference:
//
//   - ROUTE001-ROUTE002: unknown route or malformed id
//   - FILE001-FILE002: profile too large, invalid map geometry
//   - LOAD001: all load slots busy
//   - REQ001-REQ003: cancelled, timed out, malformed request
//   - DB001: asset store unreachable
//   - RATE001: rate limited
//   - ERR000: anything else
//
// # Metrics
//
// Loads are counted by outcome code and timed; see metrics.go for the
// exported series.
package core
