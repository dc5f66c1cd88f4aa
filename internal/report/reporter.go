package report

import (
	"fmt"
	"time"

	"budgetcal/internal/cache"
	"budgetcal/internal/state"
)

// Reporter serves derived views over a state store, memoizing month
// summaries. Cache keys include the store revision, so any mutation
// naturally invalidates every cached summary.
type Reporter struct {
	store  *state.Store
	months *cache.LRUCache[MonthSummary]
}

// NewReporter creates a Reporter over the given state store.
func NewReporter(store *state.Store) *Reporter {
	return &Reporter{
		store:  store,
		months: cache.NewLRUCache[MonthSummary](64, 10*time.Minute),
	}
}

// MonthSummary returns the aggregate for year/month, computing it at most
// once per state revision. Snapshot and revision are taken atomically so a
// concurrent mutation cannot cache a newer snapshot under an older key.
func (r *Reporter) MonthSummary(year, month int) MonthSummary {
	snapshot, revision := r.store.SnapshotWithRevision()
	key := fmt.Sprintf("%d:%04d-%02d", revision, year, month)
	if summary, ok := r.months.Get(key); ok {
		return summary
	}
	summary := MonthData(snapshot, year, month)
	r.months.Set(key, summary)
	return summary
}
