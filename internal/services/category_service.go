package services

import (
	"context"
	"log/slog"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/cache"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/google/uuid"
)

const categoryListCacheKey = "categories:all"

// CategoryService implements catalog category CRUD: slug derivation and
// uniqueness, dual-mode lookup, and the referential-integrity checks that
// gate deletion.
type CategoryService struct {
	categories CategoryStore
	products   ProductStore
	cache      *cache.Cache

	// RecheckSlugOnRename controls whether UpdateCategory verifies the
	// recomputed slug against existing categories before writing. The
	// unique index on categories.slug rejects collisions either way; this
	// only decides whether the caller gets the friendly business-rule
	// error instead of a translated duplicate-key failure.
	RecheckSlugOnRename bool
}

func NewCategoryService(categories CategoryStore, products ProductStore, c *cache.Cache) *CategoryService {
	return &CategoryService{categories: categories, products: products, cache: c}
}

// CreateCategory derives the slug from the name, verifies it is not taken,
// and writes the new record. The post-write read-back must find the new
// row; a miss there means the write was lost and is not retried.
func (s *CategoryService) CreateCategory(ctx context.Context, input models.CreateCategoryInput) (*models.Category, error) {
	newSlug := Slugify(input.Name)
	if newSlug == "" {
		return nil, apperr.InvalidArgument("category name must contain at least one letter or digit")
	}

	existing, err := s.categories.GetBySlug(ctx, newSlug)
	if err != nil {
		slog.Error("create category: slug check failed", "slug", newSlug, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BusinessRule("a category with slug '" + newSlug + "' already exists")
	}

	cat := &models.Category{
		Name:      input.Name,
		Slug:      newSlug,
		ParentID:  input.ParentID,
		IsEnabled: true,
	}
	if input.IsEnabled != nil {
		cat.IsEnabled = *input.IsEnabled
	}

	if err := s.categories.Insert(ctx, cat); err != nil {
		slog.Error("create category: insert failed", "slug", newSlug, "error", err)
		return nil, err
	}

	created, err := s.categories.GetByID(ctx, cat.ID)
	if err != nil {
		slog.Error("create category: read-back failed", "id", cat.ID, "error", err)
		return nil, err
	}
	if created == nil {
		slog.Error("create category: record missing after write", "id", cat.ID)
		return nil, apperr.Internal("category not found after creation")
	}

	s.cache.Delete(ctx, categoryListCacheKey)
	return created, nil
}

// GetCategory looks a category up by ID or slug. Inputs shaped like a
// store-assigned ID are tried as a point lookup first; on a miss (or a
// non-ID shape) it falls back to the slug query. Returns (nil, nil) when
// nothing matches.
func (s *CategoryService) GetCategory(ctx context.Context, idOrSlug string) (*models.Category, error) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		cat, err := s.categories.GetByID(ctx, idOrSlug)
		if err != nil {
			slog.Error("get category: id lookup failed", "id", idOrSlug, "error", err)
			return nil, err
		}
		if cat != nil {
			return cat, nil
		}
	}

	cat, err := s.categories.GetBySlug(ctx, idOrSlug)
	if err != nil {
		slog.Error("get category: slug lookup failed", "slug", idOrSlug, "error", err)
		return nil, err
	}
	return cat, nil
}

// ListCategories returns categories ordered by name ascending. Filter
// selects all, top-level only, or the direct children of one category.
// An empty result is a normal outcome.
func (s *CategoryService) ListCategories(ctx context.Context, filter CategoryFilter) ([]models.Category, error) {
	unfiltered := !filter.TopLevelOnly && filter.ParentID == nil

	if unfiltered {
		var cached []models.Category
		if s.cache.GetJSON(ctx, categoryListCacheKey, &cached) {
			return cached, nil
		}
	}

	cats, err := s.categories.List(ctx, filter)
	if err != nil {
		slog.Error("list categories failed", "error", err)
		return nil, err
	}
	if cats == nil {
		cats = []models.Category{}
	}

	if unfiltered {
		s.cache.SetJSON(ctx, categoryListCacheKey, cats)
	}
	return cats, nil
}

// UpdateCategory applies the non-nil fields of input to an existing
// category. A name change recomputes the slug. Fails when the target does
// not exist.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input models.UpdateCategoryInput) (*models.Category, error) {
	current, err := s.categories.GetByID(ctx, id)
	if err != nil {
		slog.Error("update category: lookup failed", "id", id, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFound("category not found")
	}

	patch := CategoryPatch{
		IsEnabled: input.IsEnabled,
	}
	if input.ParentID.Set {
		if input.ParentID.Value == nil {
			patch.ClearParent = true
		} else {
			patch.ParentID = input.ParentID.Value
		}
	}
	if input.Name != nil {
		newSlug := Slugify(*input.Name)
		if newSlug == "" {
			return nil, apperr.InvalidArgument("category name must contain at least one letter or digit")
		}
		if s.RecheckSlugOnRename && newSlug != current.Slug {
			clash, err := s.categories.GetBySlug(ctx, newSlug)
			if err != nil {
				slog.Error("update category: slug check failed", "slug", newSlug, "error", err)
				return nil, err
			}
			if clash != nil && clash.ID != id {
				return nil, apperr.BusinessRule("a category with slug '" + newSlug + "' already exists")
			}
		}
		patch.Name = input.Name
		patch.Slug = &newSlug
	}

	if err := s.categories.Update(ctx, id, patch); err != nil {
		slog.Error("update category: write failed", "id", id, "error", err)
		return nil, err
	}

	updated, err := s.categories.GetByID(ctx, id)
	if err != nil {
		slog.Error("update category: read-back failed", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, apperr.Internal("category not found after update")
	}

	s.cache.Delete(ctx, categoryListCacheKey)
	return updated, nil
}

// DeleteCategory removes a category once two existence checks pass: no
// product references it and no category lists it as parent. Both checks
// are limit-1 queries.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	hasProducts, err := s.products.AnyInCategory(ctx, id)
	if err != nil {
		slog.Error("delete category: product check failed", "id", id, "error", err)
		return err
	}
	if hasProducts {
		return apperr.BusinessRule("cannot delete category: products are still associated with it")
	}

	hasChildren, err := s.categories.HasChildren(ctx, id)
	if err != nil {
		slog.Error("delete category: subcategory check failed", "id", id, "error", err)
		return err
	}
	if hasChildren {
		return apperr.BusinessRule("cannot delete category: subcategories exist under it")
	}

	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		slog.Error("delete category: delete failed", "id", id, "error", err)
		return err
	}
	if !deleted {
		return apperr.NotFound("category not found")
	}

	s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}
