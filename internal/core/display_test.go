package core

import "testing"

func TestAccountTypeDisplay(t *testing.T) {
	tests := []struct {
		accountType AccountType
		icon        string
		color       string
	}{
		{Checking, "🏦", "#3b82f6"},
		{Savings, "🐷", "#10b981"},
		{Credit, "💳", "#ef4444"},
		{Investment, "📈", "#8b5cf6"},
		{Cash, "💵", "#f59e0b"},
		{AccountType("bogus"), "💵", "#f59e0b"}, // unknown falls back to cash
	}

	for _, tt := range tests {
		t.Run(string(tt.accountType), func(t *testing.T) {
			got := tt.accountType.Display()
			if got.Icon != tt.icon || got.Color != tt.color {
				t.Fatalf("Display() = %+v, want icon=%s color=%s", got, tt.icon, tt.color)
			}
		})
	}
}

func TestGoalTypeDisplay(t *testing.T) {
	tests := []struct {
		goalType GoalType
		icon     string
		color    string
	}{
		{SavingsGoal, "🐷", "#10b981"},
		{DebtGoal, "💳", "#ef4444"},
		{PurchaseGoal, "🛍️", "#f59e0b"},
		{EmergencyGoal, "🚨", "#8b5cf6"},
	}

	for _, tt := range tests {
		t.Run(string(tt.goalType), func(t *testing.T) {
			got := tt.goalType.Display()
			if got.Icon != tt.icon || got.Color != tt.color {
				t.Fatalf("Display() = %+v, want icon=%s color=%s", got, tt.icon, tt.color)
			}
		})
	}
}
