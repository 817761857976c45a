package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	ErrNotOwner          = errors.New("not the owner of this resource")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Businesses interface {
		Create(context.Context, *Business) error
		GetByID(context.Context, string) (*Business, error)
		List(context.Context) ([]Business, error)
		ListByOwner(context.Context, string) ([]Business, error)
		CountByOwner(context.Context, string) (int, error)
		Update(context.Context, string, string, map[string]interface{}) error
		SetImageURL(context.Context, string, string) error
		Delete(context.Context, string, string) error
		AddReview(context.Context, string, Review) error
		UpdateReview(context.Context, string, string, int, string) error
		DeleteReview(context.Context, string, string) error
	}
	Bans interface {
		Ban(context.Context, *BannedUser) error
		Unban(context.Context, string) error
		Get(context.Context, string) (*BannedUser, error)
		List(context.Context) ([]BannedUser, error)
	}
	PushTokens interface {
		AddOrUpdate(ctx context.Context, userID, token string) error
		Remove(ctx context.Context, userID, token string) error
		GetByUserID(ctx context.Context, userID string) ([]string, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Businesses: &BusinessesStore{db},
		Bans:       &BansStore{db},
		PushTokens: &PushTokensStore{db},
	}
}
