// Package directory is the query layer of the business directory: pure
// functions that take a full snapshot of the collection plus the caller's
// filter state and produce a display-ready view. It performs no I/O and
// keeps no state, so callers can feed it one-shot fetches or live
// subscription snapshots interchangeably and recompute from scratch on
// every change.
package directory

import (
	"strings"

	"bizlist/internal/store"
)

// Filters is the user-selected filter state.
type Filters struct {
	Query    string
	Category string
}

// DisplayBusiness augments a stored record with its derived display fields.
type DisplayBusiness struct {
	store.Business
	AverageRating  *float64 `json:"average_rating"`
	ReviewCount    int      `json:"review_count"`
	DisplayAddress string   `json:"display_address"`
}

// Projection is a filtered view plus the facet list for the whole collection.
type Projection struct {
	Items      []DisplayBusiness `json:"items"`
	Categories []string          `json:"categories"`
}

// Project filters the snapshot and decorates each match. The facet list is
// always computed from the full collection, not the filtered subset, so the
// category picker keeps showing every option. Calling Project twice with the
// same inputs yields the same output.
func Project(businesses []store.Business, filters Filters) Projection {
	matched := Filter(businesses, filters.Query, filters.Category)

	items := make([]DisplayBusiness, 0, len(matched))
	for _, b := range matched {
		items = append(items, Display(b))
	}

	return Projection{
		Items:      items,
		Categories: Categories(businesses),
	}
}

// Display derives the per-business view fields. When the address yields no
// place name the raw address is the display fallback.
func Display(b store.Business) DisplayBusiness {
	summary := AggregateRatings(b.Reviews)

	displayAddress := NormalizeAddress(b.Address)
	if displayAddress == "" {
		displayAddress = strings.TrimSpace(b.Address)
	}

	return DisplayBusiness{
		Business:       b,
		AverageRating:  summary.Average,
		ReviewCount:    summary.Count,
		DisplayAddress: displayAddress,
	}
}
