package notifications

import (
	"context"
	"log"
	"time"
)

// CallAsync runs a notification send off the request goroutine. Notifications
// are best effort: failures are logged and dropped.
func CallAsync(fn func(ctx context.Context) error, label string) {
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("%s: panic: %v", label, rec)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			log.Printf("%s: %v", label, err)
		}
	}()
}
