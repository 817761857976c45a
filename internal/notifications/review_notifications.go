package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/9ssi7/exponent"
)

// SendNewReviewNotification tells a business owner that someone reviewed
// their listing. tokens are the owner's registered Expo push tokens.
func SendNewReviewNotification(ctx context.Context, push PushSender, tokens []string, businessID, businessName, reviewerName string, rating int) error {
	if len(tokens) == 0 {
		return errors.New("no push tokens")
	}

	title := "New Review"
	body := fmt.Sprintf("%s rated %s %d/5 ⭐", reviewerName, businessName, rating)

	msgs := make([]*exponent.Message, 0, len(tokens))
	for _, t := range tokens {
		token := exponent.Token(t)
		msg := &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: title,
			Body:  body,
			// The data payload drives deep linking when the notification is
			// tapped: the client routes to /BusinessDetails/{businessId}.
			Data: map[string]string{
				"type":       "review",
				"businessId": businessID,
				"screen":     "business-details",
			},
		}
		msgs = append(msgs, msg)
	}

	_, err := push.Publish(ctx, msgs)
	return err
}
