package directory

import (
	"reflect"
	"testing"

	"bizlist/internal/store"
)

func TestProject(t *testing.T) {
	collection := []store.Business{
		{ID: "1", Name: "Joe's Cafe", Category: "Cafe", Address: "12 Hill Road", Reviews: ratings(4, 5)},
		{ID: "2", Name: "Best Bakery", Category: "Bakery", Address: "34 Lake Street"},
	}

	got := Project(collection, Filters{Query: "joe", Category: "All"})

	if len(got.Items) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(got.Items))
	}
	item := got.Items[0]
	if item.ID != "1" {
		t.Errorf("ID = %q, want %q", item.ID, "1")
	}
	if item.ReviewCount != 2 {
		t.Errorf("ReviewCount = %d, want 2", item.ReviewCount)
	}
	if item.AverageRating == nil || *item.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5", item.AverageRating)
	}
	if item.DisplayAddress != "12 Hill Road" {
		t.Errorf("DisplayAddress = %q, want %q", item.DisplayAddress, "12 Hill Road")
	}

	// Facets come from the whole collection, not the filtered subset.
	if want := []string{"All", "Bakery", "Cafe"}; !reflect.DeepEqual(got.Categories, want) {
		t.Errorf("Categories = %v, want %v", got.Categories, want)
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	collection := testCollection()
	filters := Filters{Query: "books", Category: "All"}

	first := Project(collection, filters)
	second := Project(collection, filters)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different projections")
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name        string
		business    store.Business
		wantAddress string
		wantCount   int
		wantNilAvg  bool
	}{
		{
			name:        "map url becomes place name",
			business:    store.Business{Address: "https://maps.google.com/?q=Central+Park", Reviews: ratings(5)},
			wantAddress: "Central Park",
			wantCount:   1,
		},
		{
			name:        "unextractable url falls back to the raw address",
			business:    store.Business{Address: "https://example.com"},
			wantAddress: "https://example.com",
			wantCount:   0,
			wantNilAvg:  true,
		},
		{
			name:        "plain address kept as is",
			business:    store.Business{Address: "5 Elm Street"},
			wantAddress: "5 Elm Street",
			wantCount:   0,
			wantNilAvg:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Display(tt.business)
			if got.DisplayAddress != tt.wantAddress {
				t.Errorf("DisplayAddress = %q, want %q", got.DisplayAddress, tt.wantAddress)
			}
			if got.ReviewCount != tt.wantCount {
				t.Errorf("ReviewCount = %d, want %d", got.ReviewCount, tt.wantCount)
			}
			if tt.wantNilAvg && got.AverageRating != nil {
				t.Errorf("AverageRating = %v, want nil", *got.AverageRating)
			}
		})
	}
}
