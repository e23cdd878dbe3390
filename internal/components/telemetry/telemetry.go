package telemetry

import (
	"fmt"
)

// API is where components send logs and counts, tests swap in MemoryAPI.
//
// Ids name the component and method that reported, `client.get-auth` or
// `cache.get-stats-response`, lowercase with dashes inside a method name. Details like the
// failing step or status go into params or the wrapped error, never into the id.
type API interface {
	// ReportBroken reports a failure that needs fixing or upstream breakage.
	ReportBroken(id string, params ...any)
	// ReportWarning reports something odd that did not fail the operation.
	ReportWarning(id string, params ...any)
	ReportDebug(msg string, params ...any)
	// ReportCount reports a gauge, like the current size of a cache.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a package scope, `waypoint_scraper: cache.get-auth`.
type ScopedAPI struct {
	scope string
	inner API
}

func NewScopedAPI(scope string, inner API) ScopedAPI {
	return ScopedAPI{scope: scope, inner: inner}
}

func (s ScopedAPI) id(id string) string {
	return fmt.Sprintf("%s: %s", s.scope, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.id(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.id(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.id(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.id(id), count)
}
