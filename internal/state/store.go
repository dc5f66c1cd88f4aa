package state

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"budgetcal/internal/core"
	"budgetcal/internal/log"
	"budgetcal/internal/storage"
)

// Store owns the state tree. Every mutation goes repository-first: the
// entity is persisted, and only a successful result is dispatched into the
// reducer, so memory never reflects a write that storage rejected.
//
// The runtime driving this is event-serialized, but the Store locks anyway
// so it is safe to hand to concurrent callers.
type Store struct {
	mu       sync.Mutex
	state    State
	revision uint64
	repos    *storage.Repositories
	logger   *log.Logger
}

// NewStore creates a state store over the given repositories. Call Load
// before reading.
func NewStore(repos *storage.Repositories) *Store {
	return &Store{
		state:  NewState(),
		repos:  repos,
		logger: log.Default(log.ComponentState),
	}
}

// Load hydrates every collection from storage. The seven reads are
// independent, so they run concurrently; the dispatches that replace the
// slices are serialized by the store lock.
func (s *Store) Load(ctx context.Context) error {
	s.dispatch(SetLoading{Loading: true})

	var (
		transactions []core.Transaction
		categories   []core.Category
		budgets      []core.Budget
		accounts     []core.Account
		goals        []core.Goal
		reminders    []core.Reminder
		recurring    []core.RecurringTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = s.repos.Transactions.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.repos.Categories.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.repos.Budgets.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.repos.Accounts.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.repos.Goals.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		reminders, err = s.repos.Reminders.GetAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		recurring, err = s.repos.RecurringTransactions.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.dispatch(SetLoading{Loading: false})
		return fmt.Errorf("load state: %w", err)
	}

	s.dispatch(SetTransactions{transactions})
	s.dispatch(SetCategories{categories})
	s.dispatch(SetBudgets{budgets})
	s.dispatch(SetAccounts{accounts})
	s.dispatch(SetGoals{goals})
	s.dispatch(SetReminders{reminders})
	s.dispatch(SetRecurringTransactions{recurring})
	s.dispatch(SetLoading{Loading: false})

	s.logger.InfoContext(ctx, "State hydrated",
		"transactions", len(transactions),
		"categories", len(categories),
		"budgets", len(budgets),
		"accounts", len(accounts),
		"goals", len(goals),
		"reminders", len(reminders),
		"recurring_transactions", len(recurring))
	return nil
}

func (s *Store) dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	s.revision++
}

// Snapshot returns a copy of the current tree with fresh collection slices,
// safe to read while mutations continue.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SnapshotWithRevision returns the tree copy together with the revision it
// was taken at, under one lock. Callers keying caches by revision must use
// this instead of separate Snapshot/Revision calls, or a mutation between
// the two reads can file a newer snapshot under an older revision.
func (s *Store) SnapshotWithRevision() (State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), s.revision
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Transactions = append([]core.Transaction{}, s.state.Transactions...)
	snap.Categories = append([]core.Category{}, s.state.Categories...)
	snap.Budgets = append([]core.Budget{}, s.state.Budgets...)
	snap.Accounts = append([]core.Account{}, s.state.Accounts...)
	snap.Goals = append([]core.Goal{}, s.state.Goals...)
	snap.Reminders = append([]core.Reminder{}, s.state.Reminders...)
	snap.RecurringTransactions = append([]core.RecurringTransaction{}, s.state.RecurringTransactions...)
	return snap
}

// Revision increases on every dispatched action. Derived-view caches key
// their entries by it.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// SetSelectedDate replaces the selected-date scalar. Nil clears it.
func (s *Store) SetSelectedDate(d *core.Date) {
	s.dispatch(SetSelectedDate{Date: d})
}

// SetSelectedAccount replaces the selected-account scalar. Empty clears it.
func (s *Store) SetSelectedAccount(accountID string) {
	s.dispatch(SetSelectedAccount{AccountID: accountID})
}

// AddTransaction validates, persists and dispatches a new transaction.
func (s *Store) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	added, err := s.repos.Transactions.Add(ctx, tx)
	if err != nil {
		return core.Transaction{}, err
	}
	s.dispatch(AddTransaction{Transaction: added})
	return added, nil
}

// UpdateTransaction applies a partial mutation. Returns (nil, nil) when the
// id does not exist; memory is only updated when the repository write stuck.
func (s *Store) UpdateTransaction(ctx context.Context, id string, apply func(*core.Transaction)) (*core.Transaction, error) {
	updated, err := s.repos.Transactions.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateTransaction{Transaction: *updated})
	return updated, nil
}

// DeleteTransaction removes a transaction. False means the id was unknown.
func (s *Store) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.Transactions.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteTransaction{ID: id})
	return true, nil
}

// AddCategory validates, persists and dispatches a new category.
func (s *Store) AddCategory(ctx context.Context, c core.Category) (core.Category, error) {
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	added, err := s.repos.Categories.Add(ctx, c)
	if err != nil {
		return core.Category{}, err
	}
	s.dispatch(AddCategory{Category: added})
	return added, nil
}

// UpdateCategory applies a partial mutation to a category.
func (s *Store) UpdateCategory(ctx context.Context, id string, apply func(*core.Category)) (*core.Category, error) {
	updated, err := s.repos.Categories.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateCategory{Category: *updated})
	return updated, nil
}

// DeleteCategory removes a category, refusing while any transaction still
// references it. The repository itself never cascades or checks references.
func (s *Store) DeleteCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	for _, tx := range s.state.Transactions {
		if tx.Category == id {
			s.mu.Unlock()
			return false, core.ErrCategoryInUse
		}
	}
	s.mu.Unlock()

	removed, err := s.repos.Categories.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteCategory{ID: id})
	return true, nil
}

// AddBudget validates, persists and dispatches a new budget.
func (s *Store) AddBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	added, err := s.repos.Budgets.Add(ctx, b)
	if err != nil {
		return core.Budget{}, err
	}
	s.dispatch(AddBudget{Budget: added})
	return added, nil
}

// UpdateBudget applies a partial mutation to a budget.
func (s *Store) UpdateBudget(ctx context.Context, id string, apply func(*core.Budget)) (*core.Budget, error) {
	updated, err := s.repos.Budgets.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateBudget{Budget: *updated})
	return updated, nil
}

// DeleteBudget removes a budget.
func (s *Store) DeleteBudget(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.Budgets.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteBudget{ID: id})
	return true, nil
}

// AddAccount validates, persists and dispatches a new account.
func (s *Store) AddAccount(ctx context.Context, a core.Account) (core.Account, error) {
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}
	added, err := s.repos.Accounts.Add(ctx, a)
	if err != nil {
		return core.Account{}, err
	}
	s.dispatch(AddAccount{Account: added})
	return added, nil
}

// UpdateAccount applies a partial mutation to an account.
func (s *Store) UpdateAccount(ctx context.Context, id string, apply func(*core.Account)) (*core.Account, error) {
	updated, err := s.repos.Accounts.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateAccount{Account: *updated})
	return updated, nil
}

// DeleteAccount removes an account. Transactions referencing it are left
// untouched; there is no cascade at this layer.
func (s *Store) DeleteAccount(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.Accounts.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteAccount{ID: id})
	return true, nil
}

// AddGoal validates, persists and dispatches a new goal.
func (s *Store) AddGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	added, err := s.repos.Goals.Add(ctx, g)
	if err != nil {
		return core.Goal{}, err
	}
	s.dispatch(AddGoal{Goal: added})
	return added, nil
}

// UpdateGoal applies a partial mutation to a goal. CurrentAmount moves only
// through this explicit path, never from transactions.
func (s *Store) UpdateGoal(ctx context.Context, id string, apply func(*core.Goal)) (*core.Goal, error) {
	updated, err := s.repos.Goals.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateGoal{Goal: *updated})
	return updated, nil
}

// DeleteGoal removes a goal.
func (s *Store) DeleteGoal(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.Goals.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteGoal{ID: id})
	return true, nil
}

// AddReminder validates, persists and dispatches a new reminder.
func (s *Store) AddReminder(ctx context.Context, r core.Reminder) (core.Reminder, error) {
	if err := r.Validate(); err != nil {
		return core.Reminder{}, err
	}
	added, err := s.repos.Reminders.Add(ctx, r)
	if err != nil {
		return core.Reminder{}, err
	}
	s.dispatch(AddReminder{Reminder: added})
	return added, nil
}

// UpdateReminder applies a partial mutation to a reminder.
func (s *Store) UpdateReminder(ctx context.Context, id string, apply func(*core.Reminder)) (*core.Reminder, error) {
	updated, err := s.repos.Reminders.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateReminder{Reminder: *updated})
	return updated, nil
}

// DeleteReminder removes a reminder.
func (s *Store) DeleteReminder(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.Reminders.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteReminder{ID: id})
	return true, nil
}

// AddRecurringTransaction validates, persists and dispatches a new template.
func (s *Store) AddRecurringTransaction(ctx context.Context, rt core.RecurringTransaction) (core.RecurringTransaction, error) {
	if err := rt.Validate(); err != nil {
		return core.RecurringTransaction{}, err
	}
	added, err := s.repos.RecurringTransactions.Add(ctx, rt)
	if err != nil {
		return core.RecurringTransaction{}, err
	}
	s.dispatch(AddRecurringTransaction{RecurringTransaction: added})
	return added, nil
}

// UpdateRecurringTransaction applies a partial mutation to a template.
func (s *Store) UpdateRecurringTransaction(ctx context.Context, id string, apply func(*core.RecurringTransaction)) (*core.RecurringTransaction, error) {
	updated, err := s.repos.RecurringTransactions.Update(ctx, id, apply)
	if err != nil || updated == nil {
		return updated, err
	}
	s.dispatch(UpdateRecurringTransaction{RecurringTransaction: *updated})
	return updated, nil
}

// DeleteRecurringTransaction removes a template. Transactions already
// generated from it keep their recurringId.
func (s *Store) DeleteRecurringTransaction(ctx context.Context, id string) (bool, error) {
	removed, err := s.repos.RecurringTransactions.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}
	s.dispatch(DeleteRecurringTransaction{ID: id})
	return true, nil
}
