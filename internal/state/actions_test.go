package state

import (
	"testing"

	"budgetcal/internal/core"
)

func TestReduceSetReplacesWholesale(t *testing.T) {
	s := NewState()
	txs := []core.Transaction{{ID: "a"}, {ID: "b"}}

	next := Reduce(s, SetTransactions{Transactions: txs})
	if len(next.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(next.Transactions))
	}
	if len(s.Transactions) != 0 {
		t.Fatal("input state mutated")
	}
}

func TestReduceAddAppends(t *testing.T) {
	s := Reduce(NewState(), AddTransaction{Transaction: core.Transaction{ID: "a"}})
	s = Reduce(s, AddTransaction{Transaction: core.Transaction{ID: "b"}})
	if len(s.Transactions) != 2 || s.Transactions[1].ID != "b" {
		t.Fatalf("unexpected transactions %+v", s.Transactions)
	}
}

func TestReduceUpdateReplacesMatchingID(t *testing.T) {
	s := Reduce(NewState(), AddCategory{Category: core.Category{ID: "food", Name: "Food"}})

	next := Reduce(s, UpdateCategory{Category: core.Category{ID: "food", Name: "Dining"}})
	if next.Categories[0].Name != "Dining" {
		t.Fatalf("update not applied: %+v", next.Categories)
	}
	if s.Categories[0].Name != "Food" {
		t.Fatal("prior state mutated")
	}

	// Unknown id is a no-op
	same := Reduce(next, UpdateCategory{Category: core.Category{ID: "nope", Name: "X"}})
	if len(same.Categories) != 1 || same.Categories[0].Name != "Dining" {
		t.Fatalf("unknown id changed state: %+v", same.Categories)
	}
}

func TestReduceDeleteRemovesMatchingID(t *testing.T) {
	s := Reduce(NewState(), AddGoal{Goal: core.Goal{ID: "g1"}})
	s = Reduce(s, AddGoal{Goal: core.Goal{ID: "g2"}})

	next := Reduce(s, DeleteGoal{ID: "g1"})
	if len(next.Goals) != 1 || next.Goals[0].ID != "g2" {
		t.Fatalf("unexpected goals %+v", next.Goals)
	}

	// Unknown id is a no-op
	same := Reduce(next, DeleteGoal{ID: "g1"})
	if len(same.Goals) != 1 {
		t.Fatalf("unknown id changed state: %+v", same.Goals)
	}
}

func TestReduceSelectionScalars(t *testing.T) {
	d := core.NewDate(2025, 3, 14)
	s := Reduce(NewState(), SetSelectedDate{Date: &d})
	if s.SelectedDate == nil || !s.SelectedDate.SameDay(d) {
		t.Fatalf("selected date not set: %+v", s.SelectedDate)
	}

	s = Reduce(s, SetSelectedAccount{AccountID: "checking-1"})
	if s.SelectedAccount != "checking-1" {
		t.Fatalf("selected account not set: %q", s.SelectedAccount)
	}

	s = Reduce(s, SetSelectedDate{Date: nil})
	if s.SelectedDate != nil {
		t.Fatal("selected date not cleared")
	}
}

func TestReduceLoadingFlag(t *testing.T) {
	s := NewState()
	if !s.Loading {
		t.Fatal("initial state should be loading")
	}
	s = Reduce(s, SetLoading{Loading: false})
	if s.Loading {
		t.Fatal("loading flag not cleared")
	}
}
