// Package state holds the authoritative in-memory copy of all entity
// collections, mutated only through reducer actions and kept in step with
// the repositories by the Store's mutation wrappers.
package state

import "budgetcal/internal/core"

// State is the full application state tree: the seven entity collections
// plus UI selection scalars and the startup loading flag.
type State struct {
	Transactions          []core.Transaction
	Categories            []core.Category
	Budgets               []core.Budget
	Accounts              []core.Account
	Goals                 []core.Goal
	Reminders             []core.Reminder
	RecurringTransactions []core.RecurringTransaction

	SelectedDate    *core.Date
	SelectedAccount string
	Loading         bool
}

// NewState returns the initial tree: empty collections, nothing selected,
// loading until the first hydration completes.
func NewState() State {
	return State{
		Transactions:          []core.Transaction{},
		Categories:            []core.Category{},
		Budgets:               []core.Budget{},
		Accounts:              []core.Account{},
		Goals:                 []core.Goal{},
		Reminders:             []core.Reminder{},
		RecurringTransactions: []core.RecurringTransaction{},
		Loading:               true,
	}
}

// CategoryByID looks a category up in the current tree.
func (s State) CategoryByID(id string) (core.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}

// AccountByID looks an account up in the current tree.
func (s State) AccountByID(id string) (core.Account, bool) {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return core.Account{}, false
}
