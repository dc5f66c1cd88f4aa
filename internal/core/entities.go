package core

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Investment AccountType = "investment"
	Cash       AccountType = "cash"
)

const (
	SavingsGoal   GoalType = "savings"
	DebtGoal      GoalType = "debt"
	PurchaseGoal  GoalType = "purchase"
	EmergencyGoal GoalType = "emergency"
)

const (
	BillReminder   ReminderType = "bill"
	BudgetReminder ReminderType = "budget"
	GoalReminder   ReminderType = "goal"
	CustomReminder ReminderType = "custom"
)

const (
	Once    Frequency = "once"
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

const (
	MonthlyPeriod BudgetPeriod = "monthly"
	YearlyPeriod  BudgetPeriod = "yearly"
)

type (
	TransactionType string
	AccountType     string
	GoalType        string
	ReminderType    string
	Frequency       string
	BudgetPeriod    string

	// Transaction is a single dated income or expense entry. Amount is
	// signed: positive for income, negative for expense.
	Transaction struct {
		ID          string          `json:"id"`
		Amount      float64         `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		CreatedAt   string          `json:"createdAt"`
		UpdatedAt   string          `json:"updatedAt"`
		AccountID   string          `json:"accountId"`
		Currency    string          `json:"currency"`
		IsRecurring bool            `json:"isRecurring"`
		RecurringID string          `json:"recurringId,omitempty"`
		ReminderID  string          `json:"reminderId,omitempty"`
	}

	// RecurringTransaction is a template for generating concrete
	// transactions on a schedule.
	RecurringTransaction struct {
		ID            string          `json:"id"`
		Amount        float64         `json:"amount"`
		Type          TransactionType `json:"type"`
		Category      string          `json:"category"`
		Description   string          `json:"description"`
		Frequency     Frequency       `json:"frequency"`
		StartDate     Date            `json:"startDate"`
		EndDate       *Date           `json:"endDate,omitempty"`
		AccountID     string          `json:"accountId"`
		Currency      string          `json:"currency"`
		IsActive      bool            `json:"isActive"`
		LastGenerated string          `json:"lastGenerated,omitempty"`
	}

	// Account holds a stored balance snapshot. The balance is maintained
	// independently and never recomputed from transactions.
	Account struct {
		ID        string      `json:"id"`
		Name      string      `json:"name"`
		Type      AccountType `json:"type"`
		Balance   float64     `json:"balance"`
		Currency  string      `json:"currency"`
		Color     string      `json:"color"`
		IsActive  bool        `json:"isActive"`
		CreatedAt string      `json:"createdAt"`
	}

	// Category classifies transactions. The optional Budget field is a
	// per-category ceiling distinct from Budget rows.
	Category struct {
		ID     string          `json:"id"`
		Name   string          `json:"name"`
		Type   TransactionType `json:"type"`
		Icon   string          `json:"icon"`
		Color  string          `json:"color"`
		Budget float64         `json:"budget,omitempty"`
	}

	// Budget is a spending ceiling for one category over a period. One row
	// per category-period combination is expected but not enforced unique.
	Budget struct {
		ID         string       `json:"id"`
		CategoryID string       `json:"categoryId"`
		Amount     float64      `json:"amount"`
		Period     BudgetPeriod `json:"period"`
		StartDate  Date         `json:"startDate"`
		AccountID  string       `json:"accountId,omitempty"`
	}

	// Goal tracks progress toward a savings target. CurrentAmount is
	// updated only by explicit user action, never from transactions.
	Goal struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Type          GoalType `json:"type"`
		TargetAmount  float64  `json:"targetAmount"`
		CurrentAmount float64  `json:"currentAmount"`
		TargetDate    Date     `json:"targetDate"`
		AccountID     string   `json:"accountId,omitempty"`
		CategoryID    string   `json:"categoryId,omitempty"`
		Currency      string   `json:"currency"`
		IsActive      bool     `json:"isActive"`
		CreatedAt     string   `json:"createdAt"`
	}

	// Reminder is a dated to-do tied to a bill, budget or goal.
	Reminder struct {
		ID           string       `json:"id"`
		Title        string       `json:"title"`
		Description  string       `json:"description"`
		DueDate      Date         `json:"dueDate"`
		Amount       float64      `json:"amount,omitempty"`
		CategoryID   string       `json:"categoryId,omitempty"`
		AccountID    string       `json:"accountId,omitempty"`
		IsCompleted  bool         `json:"isCompleted"`
		ReminderType ReminderType `json:"reminderType"`
		Frequency    Frequency    `json:"frequency,omitempty"`
		CreatedAt    string       `json:"createdAt"`
	}

	// Currency is a rate-table row. Rates are stored but not used by any
	// aggregation; conversion is out of scope.
	Currency struct {
		Code         string  `json:"code"`
		Name         string  `json:"name"`
		Symbol       string  `json:"symbol"`
		ExchangeRate float64 `json:"exchangeRate"`
	}
)

// Valid reports whether the transaction type is a known variant.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Valid reports whether the account type is a known variant.
func (t AccountType) Valid() bool {
	switch t {
	case Checking, Savings, Credit, Investment, Cash:
		return true
	}
	return false
}

// Valid reports whether the goal type is a known variant.
func (t GoalType) Valid() bool {
	switch t {
	case SavingsGoal, DebtGoal, PurchaseGoal, EmergencyGoal:
		return true
	}
	return false
}

// Valid reports whether the reminder type is a known variant.
func (t ReminderType) Valid() bool {
	switch t {
	case BillReminder, BudgetReminder, GoalReminder, CustomReminder:
		return true
	}
	return false
}

// Valid reports whether the frequency is usable for recurring transactions.
// Once is only meaningful for reminders; see ValidForReminder.
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ValidForReminder reports whether the frequency is usable on a reminder.
func (f Frequency) ValidForReminder() bool {
	return f == Once || f == Daily || f == Weekly || f == Monthly
}

// Valid reports whether the budget period is a known variant.
func (p BudgetPeriod) Valid() bool {
	return p == MonthlyPeriod || p == YearlyPeriod
}
