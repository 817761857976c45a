package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BannedUser gates sign-in. A nil BannedUntil means the ban is permanent.
type BannedUser struct {
	UserEmail   string     `json:"user_email"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
	Reason      string     `json:"reason"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Active reports whether the ban still applies at time now.
func (b *BannedUser) Active(now time.Time) bool {
	return b.BannedUntil == nil || b.BannedUntil.After(now)
}

type BansStore struct {
	db *pgxpool.Pool
}

// Ban upserts; re-banning an already banned user replaces the previous ban.
func (s *BansStore) Ban(ctx context.Context, ban *BannedUser) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO banned_users (user_email, banned_until, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_email)
		DO UPDATE SET banned_until = EXCLUDED.banned_until, reason = EXCLUDED.reason, created_at = now()
		RETURNING created_at
	`
	return s.db.QueryRow(ctx, query, ban.UserEmail, ban.BannedUntil, ban.Reason).Scan(&ban.CreatedAt)
}

func (s *BansStore) Unban(ctx context.Context, userEmail string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM banned_users WHERE user_email = $1`, userEmail)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BansStore) Get(ctx context.Context, userEmail string) (*BannedUser, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var ban BannedUser
	err := s.db.QueryRow(ctx,
		`SELECT user_email, banned_until, reason, created_at FROM banned_users WHERE user_email = $1`,
		userEmail,
	).Scan(&ban.UserEmail, &ban.BannedUntil, &ban.Reason, &ban.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ban, nil
}

func (s *BansStore) List(ctx context.Context) ([]BannedUser, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT user_email, banned_until, reason, created_at FROM banned_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bans := []BannedUser{}
	for rows.Next() {
		var ban BannedUser
		if err := rows.Scan(&ban.UserEmail, &ban.BannedUntil, &ban.Reason, &ban.CreatedAt); err != nil {
			return nil, err
		}
		bans = append(bans, ban)
	}
	return bans, rows.Err()
}
