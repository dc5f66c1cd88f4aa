package storage

import (
	"context"
	"testing"

	"budgetcal/internal/core"
)

func testRepositories(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(openTestStore(t))
}

func sampleTransaction() core.Transaction {
	return core.Transaction{
		Amount:      275,
		Type:        core.Income,
		Category:    "freelance",
		Description: "Logo design",
		Date:        core.NewDate(2025, 1, 2),
		AccountID:   "checking-1",
		Currency:    "USD",
	}
}

func TestCollectionAddThenGetAll(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	added, err := repos.Transactions.Add(ctx, sampleTransaction())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected generated id")
	}
	if added.CreatedAt == "" || added.UpdatedAt == "" {
		t.Fatal("expected creation timestamps")
	}

	all, err := repos.Transactions.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(all))
	}
	got := all[0]
	if got.ID != added.ID || got.Amount != 275 || got.Description != "Logo design" {
		t.Fatalf("persisted record mismatch: %+v", got)
	}

	// Ids are unique across adds
	second, err := repos.Transactions.Add(ctx, sampleTransaction())
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if second.ID == added.ID {
		t.Fatal("expected distinct ids")
	}
}

func TestCollectionGetAllEmpty(t *testing.T) {
	repos := testRepositories(t)

	all, err := repos.Categories.GetAll(context.Background())
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}
}

func TestCollectionUpdatePartial(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	// Seed a record with a stale updatedAt so the refresh is observable
	seeded := sampleTransaction()
	seeded.ID = "tx-1"
	seeded.CreatedAt = "2025-01-02T10:00:00Z"
	seeded.UpdatedAt = "2025-01-02T10:00:00Z"
	if err := repos.Transactions.Replace(ctx, []core.Transaction{seeded}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	updated, err := repos.Transactions.Update(ctx, "tx-1", func(tr *core.Transaction) {
		tr.Description = "Logo redesign"
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated record")
	}
	if updated.Description != "Logo redesign" {
		t.Fatalf("description not updated: %+v", updated)
	}
	// Only the touched field plus updatedAt change
	if updated.Amount != 275 || updated.Category != "freelance" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.CreatedAt != "2025-01-02T10:00:00Z" {
		t.Fatalf("createdAt must not change, got %s", updated.CreatedAt)
	}
	if updated.UpdatedAt == "2025-01-02T10:00:00Z" {
		t.Fatal("updatedAt should be refreshed")
	}

	all, _ := repos.Transactions.GetAll(ctx)
	if len(all) != 1 || all[0].Description != "Logo redesign" {
		t.Fatalf("update not persisted: %+v", all)
	}
}

func TestCollectionUpdateMissing(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	updated, err := repos.Budgets.Update(ctx, "nope", func(b *core.Budget) {
		b.Amount = 100
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for missing id, got %+v", updated)
	}
}

func TestCollectionDeleteIdempotent(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	added, err := repos.Goals.Add(ctx, core.Goal{
		Name:         "Vacation",
		Type:         core.SavingsGoal,
		TargetAmount: 2000,
		TargetDate:   core.NewDate(2026, 6, 1),
		Currency:     "USD",
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := repos.Goals.Delete(ctx, added.ID)
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	removed, err = repos.Goals.Delete(ctx, added.ID)
	if err != nil || removed {
		t.Fatalf("second delete should be a no-op: removed=%v err=%v", removed, err)
	}

	all, _ := repos.Goals.GetAll(ctx)
	if len(all) != 0 {
		t.Fatalf("expected empty collection, got %d", len(all))
	}
}

func TestCollectionWritableAfterCorruption(t *testing.T) {
	store := openTestStore(t)
	repos := NewRepositories(store)
	ctx := context.Background()

	if _, err := repos.Transactions.Add(ctx, sampleTransaction()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := store.db.ExecContext(ctx,
		`UPDATE collections SET payload = '{not json' WHERE key = ?`,
		KeyTransactions); err != nil {
		t.Fatalf("corrupt payload: %v", err)
	}

	// The old data is gone, but the collection accepts writes again
	added, err := repos.Transactions.Add(ctx, sampleTransaction())
	if err != nil {
		t.Fatalf("add after corruption: %v", err)
	}

	all, err := repos.Transactions.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if len(all) != 1 || all[0].ID != added.ID {
		t.Fatalf("expected only the recovery write, got %+v", all)
	}
}

func TestCurrenciesRoundTrip(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	if got := repos.Currencies(ctx); len(got) != 0 {
		t.Fatalf("expected empty table, got %v", got)
	}

	table := []core.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: 1},
		{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: 0.92},
	}
	if err := repos.SaveCurrencies(ctx, table); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := repos.Currencies(ctx)
	if len(got) != 2 || got[0].Code != "USD" || got[1].ExchangeRate != 0.92 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
