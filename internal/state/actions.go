package state

import "budgetcal/internal/core"

// Action is one reducer transition. Reduce never mutates its input state:
// each action rebuilds only the slice it touches.
type Action interface {
	apply(*State)
}

// Reduce applies an action to a copy of the state and returns it. Unknown
// ids inside update/delete actions are no-ops.
func Reduce(s State, a Action) State {
	a.apply(&s)
	return s
}

func appendItem[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func replaceByID[T any](items []T, id func(T) string, item T, target string) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if id(out[i]) == target {
			out[i] = item
		}
	}
	return out
}

func removeByID[T any](items []T, id func(T) string, target string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

type SetLoading struct{ Loading bool }

func (a SetLoading) apply(s *State) { s.Loading = a.Loading }

type SetSelectedDate struct{ Date *core.Date }

func (a SetSelectedDate) apply(s *State) { s.SelectedDate = a.Date }

type SetSelectedAccount struct{ AccountID string }

func (a SetSelectedAccount) apply(s *State) { s.SelectedAccount = a.AccountID }

type SetTransactions struct{ Transactions []core.Transaction }
type AddTransaction struct{ Transaction core.Transaction }
type UpdateTransaction struct{ Transaction core.Transaction }
type DeleteTransaction struct{ ID string }

func (a SetTransactions) apply(s *State) { s.Transactions = a.Transactions }
func (a AddTransaction) apply(s *State) {
	s.Transactions = appendItem(s.Transactions, a.Transaction)
}
func (a UpdateTransaction) apply(s *State) {
	s.Transactions = replaceByID(s.Transactions,
		func(t core.Transaction) string { return t.ID }, a.Transaction, a.Transaction.ID)
}
func (a DeleteTransaction) apply(s *State) {
	s.Transactions = removeByID(s.Transactions,
		func(t core.Transaction) string { return t.ID }, a.ID)
}

type SetCategories struct{ Categories []core.Category }
type AddCategory struct{ Category core.Category }
type UpdateCategory struct{ Category core.Category }
type DeleteCategory struct{ ID string }

func (a SetCategories) apply(s *State) { s.Categories = a.Categories }
func (a AddCategory) apply(s *State) {
	s.Categories = appendItem(s.Categories, a.Category)
}
func (a UpdateCategory) apply(s *State) {
	s.Categories = replaceByID(s.Categories,
		func(c core.Category) string { return c.ID }, a.Category, a.Category.ID)
}
func (a DeleteCategory) apply(s *State) {
	s.Categories = removeByID(s.Categories,
		func(c core.Category) string { return c.ID }, a.ID)
}

type SetBudgets struct{ Budgets []core.Budget }
type AddBudget struct{ Budget core.Budget }
type UpdateBudget struct{ Budget core.Budget }
type DeleteBudget struct{ ID string }

func (a SetBudgets) apply(s *State) { s.Budgets = a.Budgets }
func (a AddBudget) apply(s *State) {
	s.Budgets = appendItem(s.Budgets, a.Budget)
}
func (a UpdateBudget) apply(s *State) {
	s.Budgets = replaceByID(s.Budgets,
		func(b core.Budget) string { return b.ID }, a.Budget, a.Budget.ID)
}
func (a DeleteBudget) apply(s *State) {
	s.Budgets = removeByID(s.Budgets,
		func(b core.Budget) string { return b.ID }, a.ID)
}

type SetAccounts struct{ Accounts []core.Account }
type AddAccount struct{ Account core.Account }
type UpdateAccount struct{ Account core.Account }
type DeleteAccount struct{ ID string }

func (a SetAccounts) apply(s *State) { s.Accounts = a.Accounts }
func (a AddAccount) apply(s *State) {
	s.Accounts = appendItem(s.Accounts, a.Account)
}
func (a UpdateAccount) apply(s *State) {
	s.Accounts = replaceByID(s.Accounts,
		func(acc core.Account) string { return acc.ID }, a.Account, a.Account.ID)
}
func (a DeleteAccount) apply(s *State) {
	s.Accounts = removeByID(s.Accounts,
		func(acc core.Account) string { return acc.ID }, a.ID)
}

type SetGoals struct{ Goals []core.Goal }
type AddGoal struct{ Goal core.Goal }
type UpdateGoal struct{ Goal core.Goal }
type DeleteGoal struct{ ID string }

func (a SetGoals) apply(s *State) { s.Goals = a.Goals }
func (a AddGoal) apply(s *State) {
	s.Goals = appendItem(s.Goals, a.Goal)
}
func (a UpdateGoal) apply(s *State) {
	s.Goals = replaceByID(s.Goals,
		func(g core.Goal) string { return g.ID }, a.Goal, a.Goal.ID)
}
func (a DeleteGoal) apply(s *State) {
	s.Goals = removeByID(s.Goals,
		func(g core.Goal) string { return g.ID }, a.ID)
}

type SetReminders struct{ Reminders []core.Reminder }
type AddReminder struct{ Reminder core.Reminder }
type UpdateReminder struct{ Reminder core.Reminder }
type DeleteReminder struct{ ID string }

func (a SetReminders) apply(s *State) { s.Reminders = a.Reminders }
func (a AddReminder) apply(s *State) {
	s.Reminders = appendItem(s.Reminders, a.Reminder)
}
func (a UpdateReminder) apply(s *State) {
	s.Reminders = replaceByID(s.Reminders,
		func(r core.Reminder) string { return r.ID }, a.Reminder, a.Reminder.ID)
}
func (a DeleteReminder) apply(s *State) {
	s.Reminders = removeByID(s.Reminders,
		func(r core.Reminder) string { return r.ID }, a.ID)
}

type SetRecurringTransactions struct {
	RecurringTransactions []core.RecurringTransaction
}
type AddRecurringTransaction struct{ RecurringTransaction core.RecurringTransaction }
type UpdateRecurringTransaction struct{ RecurringTransaction core.RecurringTransaction }
type DeleteRecurringTransaction struct{ ID string }

func (a SetRecurringTransactions) apply(s *State) {
	s.RecurringTransactions = a.RecurringTransactions
}
func (a AddRecurringTransaction) apply(s *State) {
	s.RecurringTransactions = appendItem(s.RecurringTransactions, a.RecurringTransaction)
}
func (a UpdateRecurringTransaction) apply(s *State) {
	s.RecurringTransactions = replaceByID(s.RecurringTransactions,
		func(rt core.RecurringTransaction) string { return rt.ID },
		a.RecurringTransaction, a.RecurringTransaction.ID)
}
func (a DeleteRecurringTransaction) apply(s *State) {
	s.RecurringTransactions = removeByID(s.RecurringTransactions,
		func(rt core.RecurringTransaction) string { return rt.ID }, a.ID)
}
