package directory

import (
	"sort"
	"strings"

	"bizlist/internal/store"
)

// AllCategories is the synthetic facet that matches every business. It is
// never a stored category value.
const AllCategories = "All"

// Categories derives the facet list: distinct non-empty category values in
// alphabetical order, with the "All" sentinel first. Distinctness is
// case-sensitive, so "Cafe" and "cafe" are two facets; categories are free
// text and the directory surfaces them exactly as written.
func Categories(businesses []store.Business) []string {
	seen := make(map[string]struct{}, len(businesses))
	facets := []string{}
	for _, b := range businesses {
		if b.Category == "" {
			continue
		}
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		facets = append(facets, b.Category)
	}
	sort.Strings(facets)
	return append([]string{AllCategories}, facets...)
}

// SuggestCategories powers the listing form's autocomplete: distinct
// categories lowercased and trimmed, narrowed to those starting with prefix.
func SuggestCategories(businesses []store.Business, prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))

	seen := make(map[string]struct{}, len(businesses))
	suggestions := []string{}
	for _, b := range businesses {
		category := strings.ToLower(strings.TrimSpace(b.Category))
		if category == "" || !strings.HasPrefix(category, prefix) {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		suggestions = append(suggestions, category)
	}
	sort.Strings(suggestions)
	return suggestions
}
