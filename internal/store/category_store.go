// Package store implements the service port interfaces over MySQL.
// Stores assign UUID identifiers on insert and leave timestamp columns to
// the database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const mysqlErrDuplicateEntry = 1062

// isDuplicate reports whether err is a MySQL duplicate-key failure.
func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

// CategoryStore persists categories in the 'categories' table.
type CategoryStore struct {
	DB *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{DB: db}
}

const categoryColumns = "id, name, slug, parent_id, is_enabled, product_count, created_at, updated_at"

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	var cat models.Category
	var parentID sql.NullString
	err := row.Scan(
		&cat.ID, &cat.Name, &cat.Slug, &parentID,
		&cat.IsEnabled, &cat.ProductCount, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		cat.ParentID = &parentID.String
	}
	return &cat, nil
}

// Insert writes a new category row, assigning its UUID. The racing-write
// case the pre-check cannot catch is stopped by the unique slug index and
// reported as the same duplicate-slug condition.
func (s *CategoryStore) Insert(ctx context.Context, cat *models.Category) error {
	cat.ID = uuid.NewString()

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, parent_id, is_enabled, product_count)
		 VALUES (?, ?, ?, ?, ?, 0)`,
		cat.ID, cat.Name, cat.Slug, cat.ParentID, cat.IsEnabled,
	)
	if isDuplicate(err) {
		return apperr.BusinessRule("a category with slug '" + cat.Slug + "' already exists")
	}
	return err
}

// GetByID returns the category with the given ID, or (nil, nil) if absent.
func (s *CategoryStore) GetByID(ctx context.Context, id string) (*models.Category, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = ?", id)
	cat, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return cat, err
}

// GetBySlug returns the category with the given slug, or (nil, nil) if
// absent. Slug is unique, so at most one row matches.
func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	row := s.DB.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE slug = ? LIMIT 1", slug)
	cat, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return cat, err
}

// List returns categories matching the filter, ordered by name ascending.
func (s *CategoryStore) List(ctx context.Context, filter services.CategoryFilter) ([]models.Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories"
	var args []any

	switch {
	case filter.TopLevelOnly:
		query += " WHERE parent_id IS NULL"
	case filter.ParentID != nil:
		query += " WHERE parent_id = ?"
		args = append(args, *filter.ParentID)
	}
	query += " ORDER BY name ASC"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		cats = append(cats, *cat)
	}
	return cats, rows.Err()
}

// Update writes only the non-nil patch fields and refreshes updated_at.
func (s *CategoryStore) Update(ctx context.Context, id string, patch services.CategoryPatch) error {
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
	switch {
	case patch.ClearParent:
		sets = append(sets, "parent_id = NULL")
	case patch.ParentID != nil:
		sets = append(sets, "parent_id = ?")
		args = append(args, *patch.ParentID)
	}
	if patch.IsEnabled != nil {
		sets = append(sets, "is_enabled = ?")
		args = append(args, *patch.IsEnabled)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, id)
	_, err := s.DB.ExecContext(ctx,
		"UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if isDuplicate(err) {
		return apperr.BusinessRule("a category with that slug already exists")
	}
	return err
}

// Delete removes the category row, reporting whether one existed.
func (s *CategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	return affected > 0, err
}

// HasChildren reports whether any category lists id as its parent.
// Existence only, limit-1.
func (s *CategoryStore) HasChildren(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.DB.QueryRowContext(ctx,
		"SELECT 1 FROM categories WHERE parent_id = ? LIMIT 1", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
