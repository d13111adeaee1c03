package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"grana/internal/model"
)

// Helper function to create migrated test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testCategory(name string, kind model.Kind) *model.Category {
	return &model.Category{
		Name:        name,
		Description: "test category",
		Kind:        kind,
		Color:       "#336699",
		Active:      true,
	}
}

func testTransaction(description string, categoryID int64, kind model.Kind, cents int64, date time.Time) *model.Transaction {
	now := time.Now()
	return &model.Transaction{
		Description: description,
		Amount:      model.Money{Cents: cents},
		Date:        date,
		Kind:        kind,
		CategoryID:  categoryID,
		Notes:       "",
		CreatedAt:   now,
		ModifiedAt:  now,
	}
}

func TestMigrateSeedsDefaultCategories(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 8 {
		t.Fatalf("Expected 8 seeded categories, got %d", len(categories))
	}

	var income, expense int
	for _, c := range categories {
		if !c.Active {
			t.Errorf("Seeded category %q should be active", c.Name)
		}
		switch c.Kind {
		case model.KindIncome:
			income++
		case model.KindExpense:
			expense++
		}
	}
	if income != 3 || expense != 5 {
		t.Errorf("Expected 3 income and 5 expense categories, got %d and %d", income, expense)
	}

	salario, err := store.GetCategory(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get category 1: %v", err)
	}
	if salario.Name != "Salário" || salario.Kind != model.KindIncome {
		t.Errorf("Category 1 = %q (%v), want Salário (income)", salario.Name, salario.Kind)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Second migrate failed: %v", err)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 8 {
		t.Errorf("Expected 8 categories after re-migrate, got %d", len(categories))
	}
}

func TestMigratePreservesExistingData(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	id, err := store.InsertCategory(ctx, testCategory("Viagens", model.KindExpense))
	if err != nil {
		t.Fatalf("Failed to insert category: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Failed to close storage: %v", err)
	}

	// Reopen the same file; the seed must not run again.
	store, err = NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate reopened storage: %v", err)
	}

	categories, err := store.ListCategories(ctx)
	if err != nil {
		t.Fatalf("Failed to list categories: %v", err)
	}
	if len(categories) != 9 {
		t.Errorf("Expected 9 categories after reopen, got %d", len(categories))
	}
	if _, err := store.GetCategory(ctx, id); err != nil {
		t.Errorf("Inserted category lost across reopen: %v", err)
	}
}
