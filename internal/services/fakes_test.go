package services

import (
	"context"
	"sort"
	"time"

	"github.com/craftkart/storefront-api/internal/models"
	"github.com/google/uuid"
)

// In-memory store fakes backing the service tests. They mirror the MySQL
// stores' observable behavior: UUID assignment on insert, (nil, nil) on
// missing lookups, and name-ascending list order.

type fakeCategoryStore struct {
	byID map[string]models.Category

	// dropInserts makes Insert report success without storing anything,
	// to exercise the read-back-after-insert check.
	dropInserts bool
	failWith    error
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{byID: map[string]models.Category{}}
}

func (f *fakeCategoryStore) Insert(_ context.Context, cat *models.Category) error {
	if f.failWith != nil {
		return f.failWith
	}
	cat.ID = uuid.NewString()
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = cat.CreatedAt
	if !f.dropInserts {
		f.byID[cat.ID] = *cat
	}
	return nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id string) (*models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if cat, found := f.byID[id]; found {
		return &cat, nil
	}
	return nil, nil
}

func (f *fakeCategoryStore) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, cat := range f.byID {
		if cat.Slug == slug {
			found := cat
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) List(_ context.Context, filter CategoryFilter) ([]models.Category, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var cats []models.Category
	for _, cat := range f.byID {
		switch {
		case filter.TopLevelOnly:
			if cat.ParentID == nil {
				cats = append(cats, cat)
			}
		case filter.ParentID != nil:
			if cat.ParentID != nil && *cat.ParentID == *filter.ParentID {
				cats = append(cats, cat)
			}
		default:
			cats = append(cats, cat)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

func (f *fakeCategoryStore) Update(_ context.Context, id string, patch CategoryPatch) error {
	if f.failWith != nil {
		return f.failWith
	}
	cat, found := f.byID[id]
	if !found {
		return nil
	}
	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Slug != nil {
		cat.Slug = *patch.Slug
	}
	switch {
	case patch.ClearParent:
		cat.ParentID = nil
	case patch.ParentID != nil:
		cat.ParentID = patch.ParentID
	}
	if patch.IsEnabled != nil {
		cat.IsEnabled = *patch.IsEnabled
	}
	cat.UpdatedAt = time.Now().Add(time.Millisecond)
	f.byID[id] = cat
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, found := f.byID[id]; !found {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeCategoryStore) HasChildren(_ context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, cat := range f.byID {
		if cat.ParentID != nil && *cat.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductStore struct {
	byID map[string]models.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byID: map[string]models.Product{}}
}

func (f *fakeProductStore) Insert(_ context.Context, p *models.Product) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	if p, found := f.byID[id]; found {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProductStore) List(_ context.Context, categoryID *string) ([]models.Product, error) {
	var products []models.Product
	for _, p := range f.byID {
		if categoryID == nil || (p.CategoryID != nil && *p.CategoryID == *categoryID) {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, patch ProductPatch) error {
	p, found := f.byID[id]
	if !found {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		p.CategoryID = patch.CategoryID
	}
	if patch.IsEnabled != nil {
		p.IsEnabled = *patch.IsEnabled
	}
	f.byID[id] = p
	return nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) (bool, error) {
	if _, found := f.byID[id]; !found {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeProductStore) AnyInCategory(_ context.Context, categoryID string) (bool, error) {
	for _, p := range f.byID {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type fakeReviewStore struct {
	reviews []models.Review
}

func (f *fakeReviewStore) Insert(_ context.Context, r *models.Review) error {
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now()
	f.reviews = append([]models.Review{*r}, f.reviews...)
	return nil
}

func (f *fakeReviewStore) ListForProduct(_ context.Context, productID string, limit int) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

type fakeUserStore struct {
	byID map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[string]models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, found := f.byID[id]; found {
		return &u, nil
	}
	return nil, nil
}

type fakeSettingsStore struct {
	values map[string]string
}

func (f *fakeSettingsStore) GetAll(_ context.Context) (models.SiteSettings, error) {
	out := models.SiteSettings{}
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsStore) Set(_ context.Context, key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

type fakeWishlistStore struct {
	items    map[string][]string // userID -> productIDs, newest first
	products *fakeProductStore
}

func (f *fakeWishlistStore) Add(_ context.Context, userID, productID string) error {
	for _, id := range f.items[userID] {
		if id == productID {
			return nil
		}
	}
	if f.items == nil {
		f.items = map[string][]string{}
	}
	f.items[userID] = append([]string{productID}, f.items[userID]...)
	return nil
}

func (f *fakeWishlistStore) Remove(_ context.Context, userID, productID string) error {
	ids := f.items[userID]
	for i, id := range ids {
		if id == productID {
			f.items[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeWishlistStore) ListProducts(_ context.Context, userID string) ([]models.Product, error) {
	var out []models.Product
	for _, id := range f.items[userID] {
		if p, found := f.products.byID[id]; found {
			out = append(out, p)
		}
	}
	return out, nil
}
