// Package services holds the business logic between the HTTP handlers and
// the persistence layer. Each service talks to the stores through the
// narrow interfaces below so tests can swap in in-memory fakes.
package services

import (
	"context"

	"github.com/craftkart/storefront-api/internal/models"
)

// CategoryStore is the persistence surface the category service consumes.
// Lookups return (nil, nil) when no record matches.
type CategoryStore interface {
	Insert(ctx context.Context, cat *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]models.Category, error)
	Update(ctx context.Context, id string, patch CategoryPatch) error
	Delete(ctx context.Context, id string) (bool, error)
	HasChildren(ctx context.Context, id string) (bool, error)
}

// CategoryFilter selects which categories List returns. Zero value means
// all categories. TopLevelOnly and ParentID are mutually exclusive.
type CategoryFilter struct {
	TopLevelOnly bool
	ParentID     *string
}

// CategoryPatch is a partial update; nil fields are not written, so the
// store never overwrites an unspecified column. ClearParent nulls the
// parent column instead, moving the category to top level; it wins over
// ParentID when both are set.
type CategoryPatch struct {
	Name        *string
	Slug        *string
	ParentID    *string
	ClearParent bool
	IsEnabled   *bool
}

// ProductStore is the persistence surface for products.
type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, categoryID *string) ([]models.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) (bool, error)
	AnyInCategory(ctx context.Context, categoryID string) (bool, error)
}

// ProductPatch is a partial product update; nil fields are not written.
type ProductPatch struct {
	Name        *string
	Slug        *string
	Description *string
	Price       *float64
	CategoryID  *string
	ImageURL    *string
	IsEnabled   *bool
}

// ReviewStore is the persistence surface for product reviews.
type ReviewStore interface {
	Insert(ctx context.Context, r *models.Review) error
	ListForProduct(ctx context.Context, productID string, limit int) ([]models.Review, error)
}

// WishlistStore is the persistence surface for per-user wishlists.
type WishlistStore interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	ListProducts(ctx context.Context, userID string) ([]models.Product, error)
}

// SettingsStore is the persistence surface for site settings.
type SettingsStore interface {
	GetAll(ctx context.Context) (models.SiteSettings, error)
	Set(ctx context.Context, key, value string) error
}

// UserStore is the persistence surface for accounts.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
