package directory

import (
	"math"

	"bizlist/internal/store"
)

// RatingSummary is the derived rating of one business. Average is nil when
// there are no reviews; a business without reviews has no rating, not a
// rating of zero.
type RatingSummary struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// AggregateRatings computes the review count and the mean rating rounded to
// one decimal place. A review with a zero rating (legacy documents written
// before ratings became mandatory) still counts and contributes 0 to the sum.
func AggregateRatings(reviews []store.Review) RatingSummary {
	summary := RatingSummary{Count: len(reviews)}
	if summary.Count == 0 {
		return summary
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}
	average := math.Round(float64(sum)/float64(summary.Count)*10) / 10
	summary.Average = &average
	return summary
}

// averageOrZero is the pre-projection shortcut used by the popularity and
// rating filters, which treat "no reviews" as 0 the way the mobile client did.
func averageOrZero(reviews []store.Review) float64 {
	summary := AggregateRatings(reviews)
	if summary.Average == nil {
		return 0
	}
	return *summary.Average
}
