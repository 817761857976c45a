package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Business is one directory listing. Reviews live inside the record as a
// jsonb document column, so every review mutation rewrites the whole array
// (last write wins on concurrent edits).
type Business struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	About     string    `json:"about"`
	Address   string    `json:"address"` // plain address or a map-service URL
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	Website   string    `json:"website,omitempty"`
	UserEmail string    `json:"user_email"`
	UserID    string    `json:"user_id"`
	Reviews   []Review  `json:"reviews"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is embedded in its parent Business. UserName and UserImage are a
// snapshot of the reviewer at submission time, not a live reference.
type Review struct {
	UserID    string     `json:"user_id"`
	Rating    int        `json:"rating"` // 1-5
	Comment   string     `json:"comment"`
	UserName  string     `json:"user_name"`
	UserImage string     `json:"user_image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

type BusinessesStore struct {
	db *pgxpool.Pool
}

const businessColumns = `
	id, name, about, address, category, image_url, website,
	user_email, user_id, reviews, created_at, updated_at`

func (s *BusinessesStore) Create(ctx context.Context, business *Business) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	business.ID = uuid.NewString()
	if business.Reviews == nil {
		business.Reviews = []Review{}
	}

	reviewsJSON, err := json.Marshal(business.Reviews)
	if err != nil {
		return fmt.Errorf("marshal reviews: %w", err)
	}

	query := `
		INSERT INTO businesses (id, name, about, address, category, image_url, website, user_email, user_id, reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err = s.db.QueryRow(ctx, query,
		business.ID,
		business.Name,
		business.About,
		business.Address,
		business.Category,
		business.ImageURL,
		business.Website,
		business.UserEmail,
		business.UserID,
		reviewsJSON,
	).Scan(&business.CreatedAt, &business.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert business: %w", err)
	}
	return nil
}

func (s *BusinessesStore) GetByID(ctx context.Context, businessID string) (*Business, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := scanBusiness(s.db.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return business, nil
}

// List returns the full collection. The directory layer always projects a
// complete snapshot, so there is no server-side filtering here.
func (s *BusinessesStore) List(ctx context.Context) ([]Business, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

func (s *BusinessesStore) ListByOwner(ctx context.Context, userEmail string) ([]Business, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `SELECT ` + businessColumns + ` FROM businesses WHERE user_email = $1 ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBusinesses(rows)
}

func (s *BusinessesStore) CountByOwner(ctx context.Context, userEmail string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(id) FROM businesses WHERE user_email = $1`, userEmail,
	).Scan(&count)
	return count, err
}

// Update applies a partial update. Only whitelisted fields are accepted;
// the owner check is part of the statement so a non-owner cannot update.
func (s *BusinessesStore) Update(ctx context.Context, businessID, userEmail string, updateData map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := "UPDATE businesses SET "
	args := []interface{}{}
	argCounter := 1

	for key, value := range updateData {
		switch key {
		case "name", "about", "address", "category", "image_url", "website":
			query += fmt.Sprintf("%s = $%d, ", key, argCounter)
			args = append(args, value)
			argCounter++
		default:
			return fmt.Errorf("unsupported field: %s", key)
		}
	}
	if len(args) == 0 {
		return errors.New("no fields to update")
	}

	query += fmt.Sprintf("updated_at = now() WHERE id = $%d AND user_email = $%d", argCounter, argCounter+1)
	args = append(args, businessID, userEmail)

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return s.notFoundOrNotOwner(ctx, businessID)
	}
	return nil
}

func (s *BusinessesStore) SetImageURL(ctx context.Context, businessID, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx,
		`UPDATE businesses SET image_url = $1, updated_at = now() WHERE id = $2`,
		imageURL, businessID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a listing. An empty userEmail skips the ownership check
// (admin removal).
func (s *BusinessesStore) Delete(ctx context.Context, businessID, userEmail string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `DELETE FROM businesses WHERE id = $1`
	args := []interface{}{businessID}
	if userEmail != "" {
		query += ` AND user_email = $2`
		args = append(args, userEmail)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.notFoundOrNotOwner(ctx, businessID)
	}
	return nil
}

// AddReview appends a review to the embedded array. One review per user per
// business; a second submission is a conflict.
func (s *BusinessesStore) AddReview(ctx context.Context, businessID string, review Review) error {
	business, err := s.GetByID(ctx, businessID)
	if err != nil {
		return err
	}

	for _, existing := range business.Reviews {
		if existing.UserID == review.UserID {
			return ErrConflict
		}
	}

	review.CreatedAt = time.Now().UTC()
	return s.writeReviews(ctx, businessID, append(business.Reviews, review))
}

// UpdateReview rewrites the caller's review in place and stamps edited_at.
func (s *BusinessesStore) UpdateReview(ctx context.Context, businessID, userID string, rating int, comment string) error {
	business, err := s.GetByID(ctx, businessID)
	if err != nil {
		return err
	}

	for i, existing := range business.Reviews {
		if existing.UserID != userID {
			continue
		}
		now := time.Now().UTC()
		business.Reviews[i].Rating = rating
		business.Reviews[i].Comment = comment
		business.Reviews[i].EditedAt = &now
		return s.writeReviews(ctx, businessID, business.Reviews)
	}
	return ErrNotFound
}

func (s *BusinessesStore) DeleteReview(ctx context.Context, businessID, userID string) error {
	business, err := s.GetByID(ctx, businessID)
	if err != nil {
		return err
	}

	kept := business.Reviews[:0]
	for _, existing := range business.Reviews {
		if existing.UserID != userID {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(business.Reviews) {
		return ErrNotFound
	}
	return s.writeReviews(ctx, businessID, kept)
}

// writeReviews replaces the whole embedded array, mirroring the document
// store this schema was ported from. Concurrent writers race; the storage
// layer resolves that as last write wins.
func (s *BusinessesStore) writeReviews(ctx context.Context, businessID string, reviews []Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	reviewsJSON, err := json.Marshal(reviews)
	if err != nil {
		return fmt.Errorf("marshal reviews: %w", err)
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE businesses SET reviews = $1, updated_at = now() WHERE id = $2`,
		reviewsJSON, businessID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *BusinessesStore) notFoundOrNotOwner(ctx context.Context, businessID string) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM businesses WHERE id = $1)`, businessID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrNotOwner
	}
	return ErrNotFound
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBusiness(row rowScanner) (*Business, error) {
	var b Business
	var reviewsJSON []byte
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.About,
		&b.Address,
		&b.Category,
		&b.ImageURL,
		&b.Website,
		&b.UserEmail,
		&b.UserID,
		&reviewsJSON,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// A missing or malformed reviews document becomes an empty slice, never
	// an error: downstream consumers assume a well-formed record.
	if len(reviewsJSON) > 0 {
		if err := json.Unmarshal(reviewsJSON, &b.Reviews); err != nil {
			b.Reviews = nil
		}
	}
	if b.Reviews == nil {
		b.Reviews = []Review{}
	}
	return &b, nil
}

func collectBusinesses(rows pgx.Rows) ([]Business, error) {
	businesses := []Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, *b)
	}
	return businesses, rows.Err()
}
