// handler_test.go provides shared test infrastructure for handler tests.
// Handlers are exercised through a gin router over in-memory stores, so
// these tests need no database.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/craftkart/storefront-api/internal/models"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memCategoryStore struct {
	byID map[string]models.Category
}

func (m *memCategoryStore) Insert(_ context.Context, cat *models.Category) error {
	cat.ID = uuid.NewString()
	cat.CreatedAt = time.Now()
	cat.UpdatedAt = cat.CreatedAt
	m.byID[cat.ID] = *cat
	return nil
}

func (m *memCategoryStore) GetByID(_ context.Context, id string) (*models.Category, error) {
	if cat, found := m.byID[id]; found {
		return &cat, nil
	}
	return nil, nil
}

func (m *memCategoryStore) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, cat := range m.byID {
		if cat.Slug == slug {
			found := cat
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) List(_ context.Context, filter services.CategoryFilter) ([]models.Category, error) {
	var cats []models.Category
	for _, cat := range m.byID {
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

func (m *memCategoryStore) Update(_ context.Context, id string, patch services.CategoryPatch) error {
	cat, found := m.byID[id]
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
	cat.UpdatedAt = time.Now()
	m.byID[id] = cat
	return nil
}

func (m *memCategoryStore) Delete(_ context.Context, id string) (bool, error) {
	if _, found := m.byID[id]; !found {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *memCategoryStore) HasChildren(_ context.Context, id string) (bool, error) {
	for _, cat := range m.byID {
		if cat.ParentID != nil && *cat.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

type memProductStore struct {
	byID map[string]models.Product
}

func (m *memProductStore) Insert(_ context.Context, p *models.Product) error {
	p.ID = uuid.NewString()
	m.byID[p.ID] = *p
	return nil
}

func (m *memProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	if p, found := m.byID[id]; found {
		return &p, nil
	}
	return nil, nil
}

func (m *memProductStore) List(_ context.Context, categoryID *string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.byID {
		if categoryID == nil || (p.CategoryID != nil && *p.CategoryID == *categoryID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductStore) Update(_ context.Context, _ string, _ services.ProductPatch) error {
	return nil
}

func (m *memProductStore) Delete(_ context.Context, id string) (bool, error) {
	if _, found := m.byID[id]; !found {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

func (m *memProductStore) AnyInCategory(_ context.Context, categoryID string) (bool, error) {
	for _, p := range m.byID {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

// testRouter wires the handlers under test without auth middleware; the
// middleware has its own tests.
func testRouter(t *testing.T) (*gin.Engine, *Handlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cats := &memCategoryStore{byID: map[string]models.Category{}}
	products := &memProductStore{byID: map[string]models.Product{}}

	h := &Handlers{
		Categories: services.NewCategoryService(cats, products, nil),
		Products:   services.NewProductService(products, cats),
	}

	r := gin.New()
	r.POST("/categories", h.CreateCategory)
	r.GET("/categories", h.ListCategories)
	r.GET("/categories/:idOrSlug", h.GetCategory)
	r.PATCH("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)
	r.POST("/validate/postal-code", h.ValidatePostalCode)
	return r, h
}

type envelope struct {
	Success bool            `json:"success"`
	Error   *envelopeError  `json:"error"`
	Raw     json.RawMessage `json:"-"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("response is not a JSON object: %v\n%s", err, rec.Body.String())
	}
	json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env, fields
}
