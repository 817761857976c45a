package store

import (
	"testing"
	"time"
)

func TestBannedUserActive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		ban  BannedUser
		want bool
	}{
		{name: "permanent ban", ban: BannedUser{UserEmail: "a@b.com"}, want: true},
		{name: "future expiry", ban: BannedUser{UserEmail: "a@b.com", BannedUntil: &future}, want: true},
		{name: "expired", ban: BannedUser{UserEmail: "a@b.com", BannedUntil: &past}, want: false},
		{name: "expires exactly now", ban: BannedUser{UserEmail: "a@b.com", BannedUntil: &now}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ban.Active(now); got != tt.want {
				t.Errorf("Active(%v) = %v, want %v", now, got, tt.want)
			}
		})
	}
}
