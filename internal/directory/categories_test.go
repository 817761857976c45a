package directory

import (
	"reflect"
	"testing"

	"bizlist/internal/store"
)

func withCategories(categories ...string) []store.Business {
	businesses := make([]store.Business, len(categories))
	for i, c := range categories {
		businesses[i] = store.Business{Category: c}
	}
	return businesses
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name       string
		businesses []store.Business
		want       []string
	}{
		{
			name:       "empty collection still has the sentinel",
			businesses: nil,
			want:       []string{"All"},
		},
		{
			name:       "distinct sorted categories",
			businesses: withCategories("Grocery", "Cafe", "Books", "Cafe"),
			want:       []string{"All", "Books", "Cafe", "Grocery"},
		},
		{
			name:       "case sensitive distinct",
			businesses: withCategories("Cafe", "cafe"),
			want:       []string{"All", "Cafe", "cafe"},
		},
		{
			name:       "empty category values are dropped",
			businesses: withCategories("", "Books", ""),
			want:       []string{"All", "Books"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.businesses); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggestCategories(t *testing.T) {
	businesses := withCategories("Cafes", "cafes", " Cafeteria", "Books", "")

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix narrows and lowercases",
			prefix: "caf",
			want:   []string{"cafes", "cafeteria"},
		},
		{
			name:   "prefix is case insensitive",
			prefix: "CAF",
			want:   []string{"cafes", "cafeteria"},
		},
		{
			name:   "empty prefix returns every normalized category",
			prefix: "",
			want:   []string{"books", "cafes", "cafeteria"},
		},
		{
			name:   "no matches",
			prefix: "zzz",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SuggestCategories(businesses, tt.prefix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestCategories(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}
