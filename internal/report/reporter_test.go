package report

import (
	"context"
	"path/filepath"
	"testing"

	"budgetcal/internal/core"
	"budgetcal/internal/state"
	"budgetcal/internal/storage"
)

func testStateStore(t *testing.T) *state.Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "budgetcal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	store := state.NewStore(storage.NewRepositories(kv))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestReporterMonthSummaryTracksMutations(t *testing.T) {
	store := testStateStore(t)
	reporter := NewReporter(store)
	ctx := context.Background()

	if got := reporter.MonthSummary(2025, 2); got.TotalIncome != 0 {
		t.Fatalf("expected empty summary, got %+v", got)
	}

	if _, err := store.AddTransaction(ctx, core.Transaction{
		Amount: 3000, Type: core.Income, Category: "salary",
		Description: "Monthly salary", Date: core.NewDate(2025, 2, 1),
		AccountID: "checking-1", Currency: "USD",
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// The revision moved, so the cached empty summary no longer applies
	got := reporter.MonthSummary(2025, 2)
	if got.TotalIncome != 3000 || got.NetAmount != 3000 {
		t.Fatalf("summary not recomputed after mutation: %+v", got)
	}

	// Repeated reads at the same revision serve the memoized value
	if again := reporter.MonthSummary(2025, 2); again != got {
		t.Fatalf("memoized read differs: %+v vs %+v", again, got)
	}
}
