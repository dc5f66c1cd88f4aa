package core

import (
	"errors"
	"testing"
)

func validTransaction() Transaction {
	return Transaction{
		Amount:      275,
		Type:        Income,
		Category:    "freelance",
		Description: "Logo design",
		Date:        NewDate(2025, 1, 2),
		AccountID:   "checking-1",
		Currency:    "USD",
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"bad type", func(tr *Transaction) { tr.Type = "transfer" }, ErrInvalidType},
		{"zero amount", func(tr *Transaction) { tr.Amount = 0 }, ErrInvalidAmount},
		{"income negative", func(tr *Transaction) { tr.Amount = -275 }, ErrAmountSign},
		{"expense positive", func(tr *Transaction) { tr.Type = Expense }, ErrAmountSign},
		{"no description", func(tr *Transaction) { tr.Description = " " }, ErrEmptyDescription},
		{"no category", func(tr *Transaction) { tr.Category = "" }, ErrEmptyCategory},
		{"no account", func(tr *Transaction) { tr.AccountID = "" }, ErrEmptyAccount},
		{"zero date", func(tr *Transaction) { tr.Date = Date{} }, ErrZeroDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTransaction()
			tc.mutate(&tr)
			err := tr.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGoalValidate(t *testing.T) {
	good := Goal{
		Name:         "Emergency fund",
		Type:         EmergencyGoal,
		TargetAmount: 10000,
		TargetDate:   NewDate(2026, 1, 1),
		Currency:     "USD",
		IsActive:     true,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bad := good
	bad.TargetAmount = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestBudgetValidate(t *testing.T) {
	good := Budget{CategoryID: "food", Amount: 500, Period: MonthlyPeriod, StartDate: NewDate(2025, 1, 1)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := good
	bad.Period = "weekly"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestReminderFrequency(t *testing.T) {
	r := Reminder{
		Title:        "Pay rent",
		DueDate:      NewDate(2025, 2, 1),
		ReminderType: BillReminder,
		Frequency:    Once,
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	r.Frequency = Yearly // not allowed on reminders
	if err := r.Validate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestRecurringTransactionValidate(t *testing.T) {
	end := NewDate(2025, 12, 31)
	good := RecurringTransaction{
		Amount:      -1200,
		Type:        Expense,
		Category:    "housing",
		Description: "Rent payment",
		Frequency:   Monthly,
		StartDate:   NewDate(2025, 1, 1),
		EndDate:     &end,
		AccountID:   "checking-1",
		IsActive:    true,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bad := good
	early := NewDate(2024, 1, 1)
	bad.EndDate = &early
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for end before start")
	}
}
