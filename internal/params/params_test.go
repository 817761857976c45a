package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{name: "defaults", query: "", wantLimit: 20, wantPage: 1, wantOffset: 0},
		{name: "explicit values", query: "limit=10&page=3", wantLimit: 10, wantPage: 3, wantOffset: 20},
		{name: "limit capped", query: "limit=500", wantLimit: 50, wantPage: 1, wantOffset: 0},
		{name: "garbage ignored", query: "limit=abc&page=-2", wantLimit: 20, wantPage: 1, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			p := ParsePagination(values)
			if p.Limit != tt.wantLimit || p.Page != tt.wantPage || p.Offset != tt.wantOffset {
				t.Errorf("got limit=%d page=%d offset=%d, want limit=%d page=%d offset=%d",
					p.Limit, p.Page, p.Offset, tt.wantLimit, tt.wantPage, tt.wantOffset)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Pagination{Limit: 2, Page: 2, Offset: 2}
	got := Slice(&p, items)

	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("Slice = %v, want [3 4]", got)
	}
	if p.Total != 5 || p.TotalPages != 3 {
		t.Errorf("meta: total=%d pages=%d, want total=5 pages=3", p.Total, p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("meta: hasNext=%v hasPrev=%v, want both true", p.HasNext, p.HasPrev)
	}

	p = Pagination{Limit: 10, Page: 4, Offset: 30}
	if got := Slice(&p, items); len(got) != 0 {
		t.Errorf("out-of-range page should be empty, got %v", got)
	}
}
