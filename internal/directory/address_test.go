package directory

import "testing"

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "plain address passthrough",
			address: "123 Main St",
			want:    "123 Main St",
		},
		{
			name:    "plain address is trimmed",
			address: "  123 Main St  ",
			want:    "123 Main St",
		},
		{
			name:    "q parameter",
			address: "https://maps.google.com/?q=Central+Park",
			want:    "Central Park",
		},
		{
			name:    "q parameter with location suffix stripped",
			address: "https://maps.google.com/?q=Central+Park+location",
			want:    "Central Park",
		},
		{
			name:    "query parameter",
			address: "https://www.google.com/maps/search/?api=1&query=Blue+Bottle+Coffee",
			want:    "Blue Bottle Coffee",
		},
		{
			name:    "destination parameter",
			address: "https://www.google.com/maps/dir/?api=1&destination=Ferry+Building",
			want:    "Ferry Building",
		},
		{
			name:    "place path segment",
			address: "https://www.google.com/maps/place/Eiffel+Tower/@48.8583,2.2944,17z",
			want:    "Eiffel Tower",
		},
		{
			name:    "search path segment",
			address: "https://www.google.com/maps/search/Joe%27s+Cafe/",
			want:    "Joe's Cafe",
		},
		{
			name:    "last path segment skips coordinates",
			address: "https://maps.example.com/dir/40.7128,-74.0060/Rose+Garden",
			want:    "Rose Garden",
		},
		{
			name:    "last path segment skips numeric ids",
			address: "https://maps.example.com/venues/98765",
			want:    "venues",
		},
		{
			name:    "rlimm fragment token",
			address: "https://maps.google.com/?foo=#mid=abc&rlimm=Rose%20Garden",
			want:    "Rose Garden",
		},
		{
			name:    "url with nothing extractable",
			address: "https://example.com",
			want:    "",
		},
		{
			name:    "malformed url degrades to passthrough",
			address: "http://%zz not a url",
			want:    "http://%zz not a url",
		},
		{
			name:    "empty input",
			address: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAddress(tt.address); got != tt.want {
				t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.address, got, tt.want)
			}
		})
	}
}
