package directory

import (
	"testing"

	"bizlist/internal/store"
)

func ratings(values ...int) []store.Review {
	reviews := make([]store.Review, len(values))
	for i, v := range values {
		reviews[i] = store.Review{Rating: v}
	}
	return reviews
}

func TestAggregateRatings(t *testing.T) {
	tests := []struct {
		name        string
		reviews     []store.Review
		wantCount   int
		wantAverage float64
		wantNil     bool
	}{
		{
			name:      "no reviews means nil average",
			reviews:   nil,
			wantCount: 0,
			wantNil:   true,
		},
		{
			name:      "empty slice means nil average",
			reviews:   []store.Review{},
			wantCount: 0,
			wantNil:   true,
		},
		{
			name:        "all fives",
			reviews:     ratings(5, 5, 5),
			wantCount:   3,
			wantAverage: 5.0,
		},
		{
			name:        "mean rounded to one decimal",
			reviews:     ratings(4, 5),
			wantCount:   2,
			wantAverage: 4.5,
		},
		{
			name:        "rounding down",
			reviews:     ratings(3, 4, 4),
			wantCount:   3,
			wantAverage: 3.7,
		},
		{
			name:        "zero rating drags the average down but still counts",
			reviews:     ratings(0, 4),
			wantCount:   2,
			wantAverage: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateRatings(tt.reviews)
			if got.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", got.Count, tt.wantCount)
			}
			if tt.wantNil {
				if got.Average != nil {
					t.Errorf("Average = %v, want nil", *got.Average)
				}
				return
			}
			if got.Average == nil {
				t.Fatalf("Average = nil, want %v", tt.wantAverage)
			}
			if *got.Average != tt.wantAverage {
				t.Errorf("Average = %v, want %v", *got.Average, tt.wantAverage)
			}
		})
	}
}

func TestAggregateRatingsCountMatchesLength(t *testing.T) {
	for n := 0; n < 6; n++ {
		reviews := ratings(make([]int, n)...)
		if got := AggregateRatings(reviews); got.Count != len(reviews) {
			t.Errorf("Count = %d for %d reviews", got.Count, len(reviews))
		}
	}
}
