// Package seed populates an empty store with the starter data set: a fixed
// category taxonomy, two accounts and a few sample transactions.
package seed

import (
	"context"
	"fmt"
	"time"

	"budgetcal/internal/core"
	"budgetcal/internal/log"
	"budgetcal/internal/storage"
)

// Default categories: three income kinds, seven expense kinds. Ids are
// stable slugs so seeded transactions and budgets can reference them.
func DefaultCategories() []core.Category {
	return []core.Category{
		{ID: "salary", Name: "Salary", Type: core.Income, Icon: "💼", Color: "#10b981"},
		{ID: "freelance", Name: "Freelance", Type: core.Income, Icon: "💻", Color: "#3b82f6"},
		{ID: "investments", Name: "Investments", Type: core.Income, Icon: "📈", Color: "#8b5cf6"},
		{ID: "housing", Name: "Housing", Type: core.Expense, Icon: "🏠", Color: "#ef4444"},
		{ID: "transportation", Name: "Transportation", Type: core.Expense, Icon: "🚗", Color: "#f59e0b"},
		{ID: "food", Name: "Food", Type: core.Expense, Icon: "🍽️", Color: "#ec4899"},
		{ID: "utilities", Name: "Utilities", Type: core.Expense, Icon: "⚡", Color: "#06b6d4"},
		{ID: "entertainment", Name: "Entertainment", Type: core.Expense, Icon: "🎬", Color: "#8b5cf6"},
		{ID: "healthcare", Name: "Healthcare", Type: core.Expense, Icon: "🏥", Color: "#ef4444"},
		{ID: "shopping", Name: "Shopping", Type: core.Expense, Icon: "🛍️", Color: "#f59e0b"},
	}
}

// DefaultAccounts returns the starter checking and savings accounts. Ids are
// fixed so the sample transactions can point at the checking account.
func DefaultAccounts(now time.Time) []core.Account {
	createdAt := now.UTC().Format(time.RFC3339)
	return []core.Account{
		{
			ID: "checking-1", Name: "Main Checking", Type: core.Checking,
			Balance: 5000, Currency: "USD", Color: "#3b82f6",
			IsActive: true, CreatedAt: createdAt,
		},
		{
			ID: "savings-1", Name: "Savings Account", Type: core.Savings,
			Balance: 15000, Currency: "USD", Color: "#10b981",
			IsActive: true, CreatedAt: createdAt,
		},
	}
}

// DefaultCurrencies returns the starter rate table. Rates are stored for
// reference only; nothing converts with them.
func DefaultCurrencies() []core.Currency {
	return []core.Currency{
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: 1},
		{Code: "EUR", Name: "Euro", Symbol: "€", ExchangeRate: 0.92},
		{Code: "GBP", Name: "British Pound", Symbol: "£", ExchangeRate: 0.79},
	}
}

func sampleTransactions(today core.Date) []core.Transaction {
	return []core.Transaction{
		{
			Amount: 5000, Type: core.Income, Category: "salary",
			Description: "Monthly salary", Date: today,
			AccountID: "checking-1", Currency: "USD",
		},
		{
			Amount: -1200, Type: core.Expense, Category: "housing",
			Description: "Rent payment", Date: today,
			AccountID: "checking-1", Currency: "USD",
		},
		{
			Amount: -300, Type: core.Expense, Category: "food",
			Description: "Groceries", Date: today,
			AccountID: "checking-1", Currency: "USD",
		},
	}
}

// EnsureSeeded runs once at startup. Each starter set is written only when
// its collection is empty, so re-running is a no-op and never overwrites or
// duplicates existing data. Budgets, goals, reminders and recurring
// transactions start empty on purpose.
func EnsureSeeded(ctx context.Context, repos *storage.Repositories) error {
	logger := log.Default(log.ComponentSeed)

	categories, err := repos.Categories.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("check categories: %w", err)
	}
	if len(categories) == 0 {
		if err := repos.Categories.Replace(ctx, DefaultCategories()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		logger.InfoContext(ctx, "Seeded default categories", log.FieldCount, len(DefaultCategories()))
	}

	accounts, err := repos.Accounts.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("check accounts: %w", err)
	}
	if len(accounts) == 0 {
		defaults := DefaultAccounts(time.Now())
		if err := repos.Accounts.Replace(ctx, defaults); err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
		logger.InfoContext(ctx, "Seeded default accounts", log.FieldCount, len(defaults))
	}

	transactions, err := repos.Transactions.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("check transactions: %w", err)
	}
	if len(transactions) == 0 {
		for _, tx := range sampleTransactions(core.Today()) {
			if _, err := repos.Transactions.Add(ctx, tx); err != nil {
				return fmt.Errorf("seed transactions: %w", err)
			}
		}
		logger.InfoContext(ctx, "Seeded sample transactions", log.FieldCount, len(sampleTransactions(core.Today())))
	}

	if len(repos.Currencies(ctx)) == 0 {
		if err := repos.SaveCurrencies(ctx, DefaultCurrencies()); err != nil {
			return fmt.Errorf("seed currencies: %w", err)
		}
	}

	return nil
}
