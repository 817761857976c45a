package directory

import (
	"math"
	"strings"

	"bizlist/internal/store"
)

// Filter narrows a collection by free-text query and category.
//
// The query is lowercased and split on whitespace; a business matches when
// every token is a substring of at least one searchable field (name, about,
// category, raw address, or the normalized place name). An empty query
// matches everything. The category must match exactly unless it is "" or
// "All". Result order is input order.
func Filter(businesses []store.Business, query, category string) []store.Business {
	tokens := strings.Fields(strings.ToLower(query))
	categoryConstrained := category != "" && category != AllCategories

	matched := make([]store.Business, 0, len(businesses))
	for _, b := range businesses {
		if categoryConstrained && b.Category != category {
			continue
		}
		if !matchesAllTokens(b, tokens) {
			continue
		}
		matched = append(matched, b)
	}
	return matched
}

func matchesAllTokens(b store.Business, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	fields := []string{
		strings.ToLower(b.Name),
		strings.ToLower(b.About),
		strings.ToLower(b.Category),
		strings.ToLower(b.Address),
		strings.ToLower(NormalizeAddress(b.Address)),
	}

	for _, token := range tokens {
		if !anyFieldContains(fields, token) {
			return false
		}
	}
	return true
}

func anyFieldContains(fields []string, token string) bool {
	for _, field := range fields {
		if strings.Contains(field, token) {
			return true
		}
	}
	return false
}

// FilterByRoundedRating keeps businesses whose average rating rounds to
// exactly rating. Businesses without reviews average to 0, matching the
// admin view this filter came from.
func FilterByRoundedRating(businesses []store.Business, rating int) []store.Business {
	matched := make([]store.Business, 0, len(businesses))
	for _, b := range businesses {
		if int(math.Round(averageOrZero(b.Reviews))) == rating {
			matched = append(matched, b)
		}
	}
	return matched
}

// Popular keeps businesses with an average rating of at least 4.
func Popular(businesses []store.Business) []store.Business {
	matched := make([]store.Business, 0, len(businesses))
	for _, b := range businesses {
		if averageOrZero(b.Reviews) >= 4 {
			matched = append(matched, b)
		}
	}
	return matched
}
