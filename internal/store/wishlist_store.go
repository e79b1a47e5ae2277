package store

import (
	"context"
	"database/sql"

	"github.com/craftkart/storefront-api/internal/models"
)

// WishlistStore persists wishlist entries in the 'wishlist_items' table.
type WishlistStore struct {
	DB *sql.DB
}

func NewWishlistStore(db *sql.DB) *WishlistStore {
	return &WishlistStore{DB: db}
}

// Add inserts a wishlist entry. Re-adding an existing pair is a no-op.
func (s *WishlistStore) Add(ctx context.Context, userID, productID string) error {
	_, err := s.DB.ExecContext(ctx,
		"INSERT IGNORE INTO wishlist_items (user_id, product_id) VALUES (?, ?)",
		userID, productID,
	)
	return err
}

// Remove deletes a wishlist entry if present.
func (s *WishlistStore) Remove(ctx context.Context, userID, productID string) error {
	_, err := s.DB.ExecContext(ctx,
		"DELETE FROM wishlist_items WHERE user_id = ? AND product_id = ?",
		userID, productID,
	)
	return err
}

// ListProducts returns the products on a user's wishlist, most recently
// added first.
func (s *WishlistStore) ListProducts(ctx context.Context, userID string) ([]models.Product, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT p.id, p.name, p.slug, p.description, p.price, p.category_id,
		        p.image_url, p.is_enabled, p.created_at, p.updated_at
		 FROM wishlist_items w
		 JOIN products p ON p.id = w.product_id
		 WHERE w.user_id = ?
		 ORDER BY w.added_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}
