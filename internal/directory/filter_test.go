package directory

import (
	"reflect"
	"testing"

	"bizlist/internal/store"
)

func testCollection() []store.Business {
	return []store.Business{
		{ID: "1", Name: "Joe's Cafe", About: "Espresso and pastries", Category: "Cafe", Address: "12 Hill Road"},
		{ID: "2", Name: "Best Bakery", About: "Fresh sourdough daily", Category: "Bakery", Address: "34 Lake Street"},
		{ID: "3", Name: "Corner Books", About: "Used and rare books", Category: "Books", Address: "https://maps.google.com/?q=Old+Town+Square"},
	}
}

func idsOf(businesses []store.Business) []string {
	ids := make([]string, len(businesses))
	for i, b := range businesses {
		ids[i] = b.ID
	}
	return ids
}

func TestFilterIdentity(t *testing.T) {
	collection := testCollection()

	for _, category := range []string{"", "All"} {
		got := Filter(collection, "", category)
		if !reflect.DeepEqual(got, collection) {
			t.Errorf("Filter(C, %q, %q) altered the collection: %v", "", category, idsOf(got))
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{
			name:     "single token on name",
			query:    "joe",
			category: "All",
			wantIDs:  []string{"1"},
		},
		{
			name:     "tokens must all match, across different fields",
			query:    "joe espresso",
			category: "All",
			wantIDs:  []string{"1"},
		},
		{
			name:     "token absent everywhere excludes",
			query:    "pizza",
			category: "All",
			wantIDs:  []string{},
		},
		{
			name:     "one matching and one absent token excludes",
			query:    "joe pizza",
			category: "All",
			wantIDs:  []string{},
		},
		{
			name:     "token on about field",
			query:    "sourdough",
			category: "All",
			wantIDs:  []string{"2"},
		},
		{
			name:     "token on raw address",
			query:    "lake",
			category: "All",
			wantIDs:  []string{"2"},
		},
		{
			name:     "token on normalized place name",
			query:    "town",
			category: "All",
			wantIDs:  []string{"3"},
		},
		{
			name:     "category narrows without a query",
			query:    "",
			category: "Cafe",
			wantIDs:  []string{"1"},
		},
		{
			name:     "category is exact and case sensitive",
			query:    "",
			category: "cafe",
			wantIDs:  []string{},
		},
		{
			name:     "category and query combine with AND",
			query:    "joe",
			category: "Bakery",
			wantIDs:  []string{},
		},
		{
			name:     "query is case insensitive and whitespace tolerant",
			query:    "  JOE   CAFE ",
			category: "",
			wantIDs:  []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCollection(), tt.query, tt.category)
			if !reflect.DeepEqual(idsOf(got), tt.wantIDs) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.query, tt.category, idsOf(got), tt.wantIDs)
			}
		})
	}
}

func TestFilterMatchesEncodedPlaceName(t *testing.T) {
	// The raw address hides the place name behind percent-encoding; only the
	// normalized field can match it.
	b := store.Business{ID: "1", Name: "x", Address: "https://maps.google.com/?q=Caf%C3%A9%20Roma"}

	got := Filter([]store.Business{b}, "café", "All")
	if len(got) != 1 {
		t.Fatalf("expected match via normalized place name, got %v", idsOf(got))
	}
}

func TestFilterKeepsInputOrder(t *testing.T) {
	collection := []store.Business{
		{ID: "c", Name: "Coffee Cart"},
		{ID: "a", Name: "Coffee House"},
		{ID: "b", Name: "Coffee Corner"},
	}

	got := Filter(collection, "coffee", "All")
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(idsOf(got), want) {
		t.Errorf("order changed: got %v, want %v", idsOf(got), want)
	}
}

func TestFilterByRoundedRating(t *testing.T) {
	collection := []store.Business{
		{ID: "1", Reviews: ratings(4, 5)}, // 4.5 rounds to 5
		{ID: "2", Reviews: ratings(4, 4)}, // 4
		{ID: "3"},                         // no reviews, counts as 0
	}

	tests := []struct {
		rating  int
		wantIDs []string
	}{
		{rating: 5, wantIDs: []string{"1"}},
		{rating: 4, wantIDs: []string{"2"}},
		{rating: 0, wantIDs: []string{"3"}},
		{rating: 2, wantIDs: []string{}},
	}

	for _, tt := range tests {
		got := FilterByRoundedRating(collection, tt.rating)
		if !reflect.DeepEqual(idsOf(got), tt.wantIDs) {
			t.Errorf("FilterByRoundedRating(%d) = %v, want %v", tt.rating, idsOf(got), tt.wantIDs)
		}
	}
}

func TestPopular(t *testing.T) {
	collection := []store.Business{
		{ID: "1", Reviews: ratings(4, 5)},
		{ID: "2", Reviews: ratings(3, 4)},
		{ID: "3"},
		{ID: "4", Reviews: ratings(4)},
	}

	got := Popular(collection)
	if want := []string{"1", "4"}; !reflect.DeepEqual(idsOf(got), want) {
		t.Errorf("Popular() = %v, want %v", idsOf(got), want)
	}
}
