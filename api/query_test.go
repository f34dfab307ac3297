package api

import (
	"net/url"
	"testing"
)

func TestListFilterFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantLimit    int
		wantOffset   int
		wantInactive bool
		wantSearch   string
	}{
		{"defaults", "", 50, 0, false, ""},
		{"explicit paging", "limit=10&offset=20", 10, 20, false, ""},
		{"limit clamped to cap", "limit=9999", 50, 0, false, ""},
		{"non-numeric falls back", "limit=abc&offset=xyz", 50, 0, false, ""},
		{"negative falls back", "limit=-1&offset=-5", 50, 0, false, ""},
		{"inactive flag", "isActive=false", 50, 0, true, ""},
		{"isActive true is the default", "isActive=true", 50, 0, false, ""},
		{"search term", "search=hope", 50, 0, false, "hope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			f := listFilterFromQuery(q)
			if f.Limit != tt.wantLimit || f.Offset != tt.wantOffset {
				t.Errorf("paging = (%d, %d), want (%d, %d)", f.Limit, f.Offset, tt.wantLimit, tt.wantOffset)
			}
			if f.IncludeInactive != tt.wantInactive {
				t.Errorf("IncludeInactive = %v, want %v", f.IncludeInactive, tt.wantInactive)
			}
			if f.Search != tt.wantSearch {
				t.Errorf("Search = %q, want %q", f.Search, tt.wantSearch)
			}
		})
	}
}

func TestParseRadius(t *testing.T) {
	tests := []struct {
		query  string
		want   float64
		wantOK bool
	}{
		{"", 10, true},
		{"distance=5", 5, true},
		{"distance=0.5", 0.5, true},
		{"distance=0", 0, true},
		{"distance=-3", 0, false},
		{"distance=ten", 0, false},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("parse query: %v", err)
		}
		got, ok := parseRadius(q)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("parseRadius(%q) = (%v, %v), want (%v, %v)", tt.query, got, ok, tt.want, tt.wantOK)
		}
	}
}
