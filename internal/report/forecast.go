package report

import (
	"budgetcal/internal/core"
	"budgetcal/internal/state"
)

// ForecastEntry is one projected day in a cash-flow forecast.
type ForecastEntry struct {
	Date              core.Date
	ProjectedBalance  float64
	RecurringIncome   float64
	RecurringExpenses float64
	NetProjected      float64
}

// GenerateRecurringTransactions is the materialization hook for recurring
// templates. It deliberately produces nothing yet: templates are stored and
// managed, but no product decision exists on when and how concrete
// transactions should be emitted from them.
func GenerateRecurringTransactions(s state.State) []core.Transaction {
	return []core.Transaction{}
}

// CashFlowForecast is the projection hook over recurring templates and
// account balances. Deliberately empty for the same reason as
// GenerateRecurringTransactions.
func CashFlowForecast(s state.State, months int) []ForecastEntry {
	return []ForecastEntry{}
}
