package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/craftkart/storefront-api/internal/models"
	"github.com/google/uuid"
)

// ReviewStore persists product reviews in the 'reviews' table.
type ReviewStore struct {
	DB *sql.DB
}

func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{DB: db}
}

// Insert writes a new review row, assigning its UUID and timestamp.
func (s *ReviewStore) Insert(ctx context.Context, r *models.Review) error {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProductID, r.UserID, r.UserName, r.Rating, r.Comment, r.CreatedAt,
	)
	return err
}

// ListForProduct returns up to limit reviews for a product, newest first.
func (s *ReviewStore) ListForProduct(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, product_id, user_id, user_name, rating, comment, created_at
		 FROM reviews WHERE product_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		productID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(
			&r.ID, &r.ProductID, &r.UserID, &r.UserName,
			&r.Rating, &r.Comment, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
