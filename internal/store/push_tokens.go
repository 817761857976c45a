package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PushTokensStore struct {
	db *pgxpool.Pool
}

// AddOrUpdate upserts an Expo push token for a user.
func (s *PushTokensStore) AddOrUpdate(ctx context.Context, userID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO user_push_tokens (user_id, expo_push_token, last_updated)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, expo_push_token)
		DO UPDATE SET last_updated = now()
	`
	_, err := s.db.Exec(ctx, query, userID, token)
	return err
}

func (s *PushTokensStore) Remove(ctx context.Context, userID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx,
		`DELETE FROM user_push_tokens WHERE user_id = $1 AND expo_push_token = $2`,
		userID, token,
	)
	return err
}

func (s *PushTokensStore) GetByUserID(ctx context.Context, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT expo_push_token FROM user_push_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
