package api

import (
	"net/url"
	"strconv"

	"github.com/pathfinderhq/pathfinder/pkg/repository"
)

// listFilterFromQuery reads the shared listing parameters. Malformed limit or
// offset values fall back to the defaults so listing stays resilient to
// sloppy clients; the active filter defaults to active-only and flips when
// the caller passes isActive=false.
func listFilterFromQuery(q url.Values) repository.ListFilter {
	f := repository.ListFilter{Limit: 50}

	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			f.Limit = v
		}
	}
	if o := q.Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}
	if q.Get("isActive") == "false" {
		f.IncludeInactive = true
	}
	f.Search = q.Get("search")

	return f
}

// parseRadius reads the distance query parameter in miles (default 10).
func parseRadius(q url.Values) (float64, bool) {
	s := q.Get("distance")
	if s == "" {
		return 10, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
