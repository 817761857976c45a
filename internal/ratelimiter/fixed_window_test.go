package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	if allowed {
		t.Error("request over the limit should be denied")
	}
	if retryAfter != time.Minute {
		t.Errorf("retryAfter = %v, want %v", retryAfter, time.Minute)
	}
}

func TestFixedWindowLimiterIsPerClient(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)

	if allowed, _ := rl.Allow("10.0.0.1"); !allowed {
		t.Fatal("first client should be allowed")
	}
	if allowed, _ := rl.Allow("10.0.0.2"); !allowed {
		t.Error("second client should have its own budget")
	}
	if allowed, _ := rl.Allow("10.0.0.1"); allowed {
		t.Error("first client should be over its budget")
	}
}
