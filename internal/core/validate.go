package core

import (
	"fmt"
	"strings"
)

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", ErrValidation, cause)
}

// Validate checks a transaction before it enters storage. The repository
// layer performs no checks of its own; the state store calls this at the
// mutation boundary.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return invalid(ErrInvalidType)
	}
	if t.Amount == 0 {
		return invalid(ErrInvalidAmount)
	}
	if t.Type == Income && t.Amount < 0 || t.Type == Expense && t.Amount > 0 {
		return invalid(ErrAmountSign)
	}
	if strings.TrimSpace(t.Description) == "" {
		return invalid(ErrEmptyDescription)
	}
	if strings.TrimSpace(t.Category) == "" {
		return invalid(ErrEmptyCategory)
	}
	if strings.TrimSpace(t.AccountID) == "" {
		return invalid(ErrEmptyAccount)
	}
	if t.Date.IsZero() {
		return invalid(ErrZeroDate)
	}
	return nil
}

// Validate checks a recurring transaction template.
func (rt RecurringTransaction) Validate() error {
	if !rt.Type.Valid() {
		return invalid(ErrInvalidType)
	}
	if rt.Amount == 0 {
		return invalid(ErrInvalidAmount)
	}
	if rt.Type == Income && rt.Amount < 0 || rt.Type == Expense && rt.Amount > 0 {
		return invalid(ErrAmountSign)
	}
	if !rt.Frequency.Valid() {
		return invalid(ErrInvalidFrequency)
	}
	if strings.TrimSpace(rt.Description) == "" {
		return invalid(ErrEmptyDescription)
	}
	if rt.StartDate.IsZero() {
		return invalid(ErrZeroDate)
	}
	if rt.EndDate != nil && rt.EndDate.Before(rt.StartDate.Time) {
		return invalid(fmt.Errorf("end date before start date"))
	}
	return nil
}

// Validate checks an account.
func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return invalid(ErrEmptyName)
	}
	if !a.Type.Valid() {
		return invalid(ErrInvalidType)
	}
	return nil
}

// Validate checks a category.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid(ErrEmptyName)
	}
	if !c.Type.Valid() {
		return invalid(ErrInvalidType)
	}
	return nil
}

// Validate checks a budget row.
func (b Budget) Validate() error {
	if strings.TrimSpace(b.CategoryID) == "" {
		return invalid(ErrEmptyCategory)
	}
	if b.Amount <= 0 {
		return invalid(ErrInvalidAmount)
	}
	if !b.Period.Valid() {
		return invalid(ErrInvalidPeriod)
	}
	return nil
}

// Validate checks a goal.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid(ErrEmptyName)
	}
	if !g.Type.Valid() {
		return invalid(ErrInvalidType)
	}
	if g.TargetAmount <= 0 {
		return invalid(ErrInvalidTarget)
	}
	if g.TargetDate.IsZero() {
		return invalid(ErrZeroDate)
	}
	return nil
}

// Validate checks a reminder.
func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid(ErrEmptyTitle)
	}
	if !r.ReminderType.Valid() {
		return invalid(ErrInvalidType)
	}
	if r.DueDate.IsZero() {
		return invalid(ErrZeroDate)
	}
	if r.Frequency != "" && !r.Frequency.ValidForReminder() {
		return invalid(ErrInvalidFrequency)
	}
	return nil
}
