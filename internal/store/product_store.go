package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/google/uuid"
)

// ProductStore persists products in the 'products' table.
type ProductStore struct {
	DB *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{DB: db}
}

const productColumns = "id, name, slug, description, price, category_id, image_url, is_enabled, created_at, updated_at"

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var categoryID, imageURL sql.NullString
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price,
		&categoryID, &imageURL, &p.IsEnabled, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		p.CategoryID = &categoryID.String
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	return &p, nil
}

// Insert writes a new product row, assigning its UUID.
func (s *ProductStore) Insert(ctx context.Context, p *models.Product) error {
	p.ID = uuid.NewString()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO products (id, name, slug, description, price, category_id, image_url, is_enabled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.CategoryID, p.ImageURL, p.IsEnabled,
	)
	if isDuplicate(err) {
		return apperr.BusinessRule("a product with slug '" + p.Slug + "' already exists")
	}
	return err
}

// GetByID returns the product with the given ID, or (nil, nil) if absent.
func (s *ProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// List returns products ordered by name, optionally limited to a category.
func (s *ProductStore) List(ctx context.Context, categoryID *string) ([]models.Product, error) {
	query := "SELECT " + productColumns + " FROM products"
	var args []any
	if categoryID != nil {
		query += " WHERE category_id = ?"
		args = append(args, *categoryID)
	}
	query += " ORDER BY name ASC"

	rows, err := s.DB.QueryContext(ctx, query, args...)
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

// Update writes only the non-nil patch fields and refreshes updated_at.
func (s *ProductStore) Update(ctx context.Context, id string, patch services.ProductPatch) error {
	var sets []string
	var args []any

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Slug != nil {
		sets = append(sets, "slug = ?")
		args = append(args, *patch.Slug)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *patch.Price)
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *patch.ImageURL)
	}
	if patch.IsEnabled != nil {
		sets = append(sets, "is_enabled = ?")
		args = append(args, *patch.IsEnabled)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	_, err := s.DB.ExecContext(ctx,
		"UPDATE products SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if isDuplicate(err) {
		return apperr.BusinessRule("a product with that slug already exists")
	}
	return err
}

// Delete removes the product row, reporting whether one existed.
func (s *ProductStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// AnyInCategory reports whether at least one product references the
// category. Existence only, limit-1.
func (s *ProductStore) AnyInCategory(ctx context.Context, categoryID string) (bool, error) {
	var one int
	err := s.DB.QueryRowContext(ctx,
		"SELECT 1 FROM products WHERE category_id = ? LIMIT 1", categoryID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
