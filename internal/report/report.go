// Package report computes read-only aggregates over a state snapshot:
// day and month totals, category breakdowns, budget progress and goal
// status. Nothing here is persisted or mutates state.
package report

import (
	"sort"
	"time"

	"budgetcal/internal/core"
	"budgetcal/internal/state"
)

// MonthSummary is the income/expense aggregate for one calendar month.
// TotalExpense is an absolute value; NetAmount = TotalIncome - TotalExpense.
type MonthSummary struct {
	TotalIncome  float64
	TotalExpense float64
	NetAmount    float64
}

// CategoryTotal is a per-category rollup of absolute transaction amounts.
type CategoryTotal struct {
	Category         core.Category
	Total            float64
	TransactionCount int
}

// BudgetStatus is one budget row with its spending progress.
type BudgetStatus struct {
	Budget     core.Budget
	Spent      float64
	Percentage float64
	Remaining  float64
}

// GoalStatus classifies a goal by progress and time left.
type GoalStatus string

const (
	GoalCompleted GoalStatus = "Completed"
	GoalOverdue   GoalStatus = "Overdue"
	GoalDueSoon   GoalStatus = "Due Soon"
	GoalOnTrack   GoalStatus = "On Track"
)

// TransactionsForDate returns the transactions stored for exactly the given
// calendar day.
func TransactionsForDate(s state.State, date core.Date) []core.Transaction {
	var out []core.Transaction
	for _, tx := range s.Transactions {
		if tx.Date.SameDay(date) {
			out = append(out, tx)
		}
	}
	return out
}

// DayTotal is the signed sum for one day: income minus expenses.
func DayTotal(s state.State, date core.Date) float64 {
	var total float64
	for _, tx := range TransactionsForDate(s, date) {
		total += tx.Amount
	}
	return total
}

// MonthData aggregates all transactions falling in the given year and month
// (1-12). Income amounts are stored positive, so summing them directly
// yields the income total.
func MonthData(s state.State, year, month int) MonthSummary {
	var summary MonthSummary
	for _, tx := range s.Transactions {
		if !tx.Date.InMonth(year, month) {
			continue
		}
		switch tx.Type {
		case core.Income:
			summary.TotalIncome += tx.Amount
		case core.Expense:
			summary.TotalExpense += core.Abs(tx.Amount)
		}
	}
	summary.NetAmount = summary.TotalIncome - summary.TotalExpense
	return summary
}

// CategoryBreakdown rolls up absolute transaction totals per category,
// dropping zero-total categories and sorting by total descending. A category
// whose signed amounts cancel out is dropped along with untouched ones.
func CategoryBreakdown(s state.State) []CategoryTotal {
	var out []CategoryTotal
	for _, cat := range s.Categories {
		var total float64
		count := 0
		for _, tx := range s.Transactions {
			if tx.Category == cat.ID {
				total += tx.Amount
				count++
			}
		}
		if total == 0 {
			continue
		}
		out = append(out, CategoryTotal{
			Category:         cat,
			Total:            core.Abs(total),
			TransactionCount: count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// BudgetProgress computes spending progress for every budget row. Spent is
// the absolute sum of expense transactions in the budget's category;
// percentage may exceed 100 when a budget is blown.
func BudgetProgress(s state.State) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		var spent float64
		for _, tx := range s.Transactions {
			if tx.Category == b.CategoryID && tx.Type == core.Expense {
				spent += core.Abs(tx.Amount)
			}
		}
		status := BudgetStatus{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Amount - spent,
		}
		if b.Amount > 0 {
			status.Percentage = spent / b.Amount * 100
		}
		out = append(out, status)
	}
	return out
}

// GoalProgress is the goal's completion percentage, clamped to [0, 100] for
// display.
func GoalProgress(g core.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := g.CurrentAmount / g.TargetAmount * 100
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// GoalState classifies a goal: Completed beats everything, then Overdue,
// then Due Soon inside a 30-day window.
func GoalState(g core.Goal, now time.Time) GoalStatus {
	if GoalProgress(g) >= 100 {
		return GoalCompleted
	}
	days := g.TargetDate.DaysUntil(now)
	switch {
	case days < 0:
		return GoalOverdue
	case days <= 30:
		return GoalDueSoon
	default:
		return GoalOnTrack
	}
}

// RecentTransactions returns up to n transactions, most recent date first.
func RecentTransactions(s state.State, n int) []core.Transaction {
	sorted := append([]core.Transaction{}, s.Transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
