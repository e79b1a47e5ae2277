package services

import (
	"context"
	"log/slog"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/gosimple/slug"
)

// ProductService implements the minimal product CRUD the storefront needs.
type ProductService struct {
	products   ProductStore
	categories CategoryStore
}

func NewProductService(products ProductStore, categories CategoryStore) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// CreateProduct writes a new product. The product slug is derived from the
// name; a referenced category must exist.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	if err := s.verifyCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ImageURL:    input.ImageURL,
		IsEnabled:   true,
	}
	if input.IsEnabled != nil {
		p.IsEnabled = *input.IsEnabled
	}

	if err := s.products.Insert(ctx, p); err != nil {
		slog.Error("create product: insert failed", "slug", p.Slug, "error", err)
		return nil, err
	}

	created, err := s.products.GetByID(ctx, p.ID)
	if err != nil {
		slog.Error("create product: read-back failed", "id", p.ID, "error", err)
		return nil, err
	}
	if created == nil {
		return nil, apperr.Internal("product not found after creation")
	}
	return created, nil
}

// GetProduct returns a product by ID, or (nil, nil) when absent.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		slog.Error("get product failed", "id", id, "error", err)
		return nil, err
	}
	return p, nil
}

// ListProducts returns products, optionally restricted to one category
// addressed by ID or slug. An unknown category yields a not-found error
// rather than an empty list, so storefront typos surface.
func (s *ProductService) ListProducts(ctx context.Context, categoryIDOrSlug string) ([]models.Product, error) {
	var categoryID *string
	if categoryIDOrSlug != "" {
		cat, err := s.lookupCategory(ctx, categoryIDOrSlug)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, apperr.NotFound("category not found")
		}
		categoryID = &cat.ID
	}

	products, err := s.products.List(ctx, categoryID)
	if err != nil {
		slog.Error("list products failed", "error", err)
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// UpdateProduct applies the non-nil fields of input. A name change
// recomputes the product slug.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input models.UpdateProductInput) (*models.Product, error) {
	current, err := s.products.GetByID(ctx, id)
	if err != nil {
		slog.Error("update product: lookup failed", "id", id, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFound("product not found")
	}

	if input.CategoryID != nil {
		if err := s.verifyCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}
	if input.Price != nil && *input.Price <= 0 {
		return nil, apperr.InvalidArgument("price must be greater than zero")
	}

	patch := ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		ImageURL:    input.ImageURL,
		IsEnabled:   input.IsEnabled,
	}
	if input.Name != nil {
		newSlug := slug.Make(*input.Name)
		patch.Slug = &newSlug
	}

	if err := s.products.Update(ctx, id, patch); err != nil {
		slog.Error("update product: write failed", "id", id, "error", err)
		return nil, err
	}

	updated, err := s.products.GetByID(ctx, id)
	if err != nil {
		slog.Error("update product: read-back failed", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, apperr.Internal("product not found after update")
	}
	return updated, nil
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		return err
	}
	if !deleted {
		return apperr.NotFound("product not found")
	}
	return nil
}

func (s *ProductService) verifyCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	cat, err := s.categories.GetByID(ctx, *categoryID)
	if err != nil {
		slog.Error("verify category failed", "id", *categoryID, "error", err)
		return err
	}
	if cat == nil {
		return apperr.BusinessRule("referenced category does not exist")
	}
	return nil
}

func (s *ProductService) lookupCategory(ctx context.Context, idOrSlug string) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, idOrSlug)
	if err != nil {
		slog.Error("category lookup failed", "key", idOrSlug, "error", err)
		return nil, err
	}
	if cat != nil {
		return cat, nil
	}
	cat, err = s.categories.GetBySlug(ctx, idOrSlug)
	if err != nil {
		slog.Error("category lookup failed", "key", idOrSlug, "error", err)
		return nil, err
	}
	return cat, nil
}
