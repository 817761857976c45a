package main

import (
	"testing"
	"time"
)

func TestBanDuration(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		duration string
		want     *time.Time
	}{
		{duration: "day", want: ptr(now.Add(24 * time.Hour))},
		{duration: "week", want: ptr(now.Add(7 * 24 * time.Hour))},
		{duration: "month", want: ptr(now.Add(30 * 24 * time.Hour))},
		{duration: "lifetime", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			got := banDuration(tt.duration, now)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("banDuration(%q) = %v, want nil", tt.duration, got)
			case tt.want != nil && (got == nil || !got.Equal(*tt.want)):
				t.Errorf("banDuration(%q) = %v, want %v", tt.duration, got, tt.want)
			}
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
