package storage

import (
	"context"
	"time"

	"budgetcal/internal/core"
)

// Storage keys, one per entity collection. These match the original
// browser-local layout so exported data stays recognizable.
const (
	KeyTransactions          = "budget_calendar_transactions"
	KeyCategories            = "budget_calendar_categories"
	KeyBudgets               = "budget_calendar_budgets"
	KeyAccounts              = "budget_calendar_accounts"
	KeyGoals                 = "budget_calendar_goals"
	KeyReminders             = "budget_calendar_reminders"
	KeyRecurringTransactions = "budget_calendar_recurring_transactions"
	KeyCurrencies            = "budget_calendar_currencies"
)

// Repositories bundles the CRUD facades for all seven entity kinds plus the
// currency rate table, all sharing one Store.
type Repositories struct {
	Transactions          *Collection[core.Transaction]
	Categories            *Collection[core.Category]
	Budgets               *Collection[core.Budget]
	Accounts              *Collection[core.Account]
	Goals                 *Collection[core.Goal]
	Reminders             *Collection[core.Reminder]
	RecurringTransactions *Collection[core.RecurringTransaction]

	store *Store
}

// NewRepositories wires the seven collections to the store. Timestamp rules
// per kind: Transaction stamps createdAt+updatedAt and refreshes updatedAt on
// update; Account, Goal and Reminder stamp createdAt only; Category, Budget
// and RecurringTransaction carry no repository-managed timestamps.
func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Transactions: NewCollection(store, CollectionConfig[core.Transaction]{
			Key:   KeyTransactions,
			ID:    func(t *core.Transaction) string { return t.ID },
			SetID: func(t *core.Transaction, id string) { t.ID = id },
			OnCreate: func(t *core.Transaction, now time.Time) {
				stamp := now.Format(time.RFC3339)
				t.CreatedAt = stamp
				t.UpdatedAt = stamp
			},
			OnUpdate: func(t *core.Transaction, now time.Time) {
				t.UpdatedAt = now.Format(time.RFC3339)
			},
		}),
		Categories: NewCollection(store, CollectionConfig[core.Category]{
			Key:   KeyCategories,
			ID:    func(c *core.Category) string { return c.ID },
			SetID: func(c *core.Category, id string) { c.ID = id },
		}),
		Budgets: NewCollection(store, CollectionConfig[core.Budget]{
			Key:   KeyBudgets,
			ID:    func(b *core.Budget) string { return b.ID },
			SetID: func(b *core.Budget, id string) { b.ID = id },
		}),
		Accounts: NewCollection(store, CollectionConfig[core.Account]{
			Key:   KeyAccounts,
			ID:    func(a *core.Account) string { return a.ID },
			SetID: func(a *core.Account, id string) { a.ID = id },
			OnCreate: func(a *core.Account, now time.Time) {
				a.CreatedAt = now.Format(time.RFC3339)
			},
		}),
		Goals: NewCollection(store, CollectionConfig[core.Goal]{
			Key:   KeyGoals,
			ID:    func(g *core.Goal) string { return g.ID },
			SetID: func(g *core.Goal, id string) { g.ID = id },
			OnCreate: func(g *core.Goal, now time.Time) {
				g.CreatedAt = now.Format(time.RFC3339)
			},
		}),
		Reminders: NewCollection(store, CollectionConfig[core.Reminder]{
			Key:   KeyReminders,
			ID:    func(r *core.Reminder) string { return r.ID },
			SetID: func(r *core.Reminder, id string) { r.ID = id },
			OnCreate: func(r *core.Reminder, now time.Time) {
				r.CreatedAt = now.Format(time.RFC3339)
			},
		}),
		RecurringTransactions: NewCollection(store, CollectionConfig[core.RecurringTransaction]{
			Key:   KeyRecurringTransactions,
			ID:    func(rt *core.RecurringTransaction) string { return rt.ID },
			SetID: func(rt *core.RecurringTransaction, id string) { rt.ID = id },
		}),
		store: store,
	}
}

// Currencies returns the stored rate table, or an empty slice.
func (r *Repositories) Currencies(ctx context.Context) []core.Currency {
	var currencies []core.Currency
	r.store.Get(ctx, KeyCurrencies, &currencies)
	if currencies == nil {
		currencies = []core.Currency{}
	}
	return currencies
}

// SaveCurrencies persists the rate table wholesale. The table is reference
// data: no ids, no timestamps, no per-row operations.
func (r *Repositories) SaveCurrencies(ctx context.Context, currencies []core.Currency) error {
	revision, _ := r.store.Get(ctx, KeyCurrencies, new([]core.Currency))
	_, err := r.store.Set(ctx, KeyCurrencies, currencies, revision)
	return err
}
