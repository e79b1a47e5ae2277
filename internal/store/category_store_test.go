package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/craftkart/storefront-api/internal/apperr"
	"github.com/craftkart/storefront-api/internal/database"
	"github.com/craftkart/storefront-api/internal/models"
	"github.com/craftkart/storefront-api/internal/services"
	"github.com/google/uuid"
)

// testDB opens the database named by TEST_DB_DSN and applies migrations.
// Tests are skipped when no test database is configured or reachable, so
// the suite stays runnable without infrastructure.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set; skipping database integration test")
	}

	db, err := database.Open(dsn)
	if err != nil {
		t.Skipf("test database unreachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// insertCategory creates a row with a unique name and registers cleanup.
func insertCategory(t *testing.T, s *CategoryStore, name string, parentID *string) *models.Category {
	t.Helper()

	cat := &models.Category{
		Name:      name,
		Slug:      name + "-" + uuid.NewString()[:8],
		ParentID:  parentID,
		IsEnabled: true,
	}
	if err := s.Insert(context.Background(), cat); err != nil {
		t.Fatalf("insert %q: %v", name, err)
	}
	t.Cleanup(func() {
		s.DB.Exec("DELETE FROM categories WHERE id = ?", cat.ID)
	})
	return cat
}

func TestCategoryStoreRoundTrip(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	cat := insertCategory(t, s, "roundtrip", nil)
	if cat.ID == "" {
		t.Fatal("Insert did not assign an ID")
	}

	byID, err := s.GetByID(ctx, cat.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID == nil || byID.Slug != cat.Slug {
		t.Fatalf("GetByID = %+v, want the inserted row", byID)
	}
	if byID.ProductCount != 0 {
		t.Errorf("ProductCount = %d, want 0 on a fresh row", byID.ProductCount)
	}
	if byID.CreatedAt.IsZero() || byID.UpdatedAt.IsZero() {
		t.Error("timestamp columns not populated by the database")
	}

	bySlug, err := s.GetBySlug(ctx, cat.Slug)
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if bySlug == nil || bySlug.ID != cat.ID {
		t.Fatalf("GetBySlug = %+v, want the inserted row", bySlug)
	}

	missing, err := s.GetByID(ctx, uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("GetByID(missing) = (%+v, %v), want (nil, nil)", missing, err)
	}
}

func TestCategoryStoreDuplicateSlug(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	cat := insertCategory(t, s, "dupe", nil)

	clone := &models.Category{Name: "Dupe Again", Slug: cat.Slug, IsEnabled: true}
	err := s.Insert(ctx, clone)
	if !apperr.IsCode(err, apperr.CodeFailedPrecondition) {
		t.Fatalf("duplicate insert: err = %v, want failed-precondition", err)
	}
	t.Cleanup(func() {
		s.DB.Exec("DELETE FROM categories WHERE id = ?", clone.ID)
	})
}

func TestCategoryStoreListAndChildren(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	parent := insertCategory(t, s, "parent", nil)
	child := insertCategory(t, s, "child", &parent.ID)

	children, err := s.List(ctx, services.CategoryFilter{ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("List(children): %v", err)
	}
	if len(children) != 1 || children[0].ID != child.ID {
		t.Fatalf("children = %+v, want exactly the child row", children)
	}

	hasKids, err := s.HasChildren(ctx, parent.ID)
	if err != nil || !hasKids {
		t.Errorf("HasChildren(parent) = (%v, %v), want (true, nil)", hasKids, err)
	}
	hasKids, err = s.HasChildren(ctx, child.ID)
	if err != nil || hasKids {
		t.Errorf("HasChildren(child) = (%v, %v), want (false, nil)", hasKids, err)
	}
}

func TestCategoryStoreUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	ctx := context.Background()

	cat := insertCategory(t, s, "mutable", nil)

	newName := "Renamed"
	disabled := false
	err := s.Update(ctx, cat.ID, services.CategoryPatch{Name: &newName, IsEnabled: &disabled})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := s.GetByID(ctx, cat.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: (%+v, %v)", got, err)
	}
	if got.Name != "Renamed" || got.IsEnabled {
		t.Errorf("after update = %+v, want renamed and disabled", got)
	}
	if got.Slug != cat.Slug {
		t.Errorf("Slug changed to %q, untouched fields must survive", got.Slug)
	}

	// ClearParent writes parent_id = NULL where a nil pointer would have
	// skipped the column.
	parent := insertCategory(t, s, "parent-to-shed", nil)
	child := insertCategory(t, s, "child-to-promote", &parent.ID)
	if err := s.Update(ctx, child.ID, services.CategoryPatch{ClearParent: true}); err != nil {
		t.Fatalf("Update(ClearParent): %v", err)
	}
	promoted, err := s.GetByID(ctx, child.ID)
	if err != nil || promoted == nil {
		t.Fatalf("GetByID after ClearParent: (%+v, %v)", promoted, err)
	}
	if promoted.ParentID != nil {
		t.Errorf("ParentID = %q, want NULL after ClearParent", *promoted.ParentID)
	}

	deleted, err := s.Delete(ctx, cat.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = s.Delete(ctx, cat.ID)
	if err != nil || deleted {
		t.Errorf("second Delete = (%v, %v), want (false, nil)", deleted, err)
	}
}
