package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"budgetcal/internal/cli"
	"budgetcal/internal/core"
	"budgetcal/internal/report"
	"budgetcal/internal/seed"
	"budgetcal/internal/state"
	"budgetcal/internal/storage"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
		logger = cli.SetupLogger(level)
	}

	kv := cli.InitStore(logger, cfg.DBPath)
	defer kv.Close()

	ctx := context.Background()
	repos := storage.NewRepositories(kv)

	if cfg.SeedOnStartup {
		if err := seed.EnsureSeeded(ctx, repos); err != nil {
			logger.Error("Seeding failed", "error", err)
			os.Exit(1)
		}
	}

	store := state.NewStore(repos)
	if err := store.Load(ctx); err != nil {
		logger.Error("Failed to load state", "error", err)
		os.Exit(1)
	}

	cmd := "summary"
	args := []string{}
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		args = os.Args[2:]
	}

	var err error
	switch cmd {
	case "summary":
		err = runSummary(store, args)
	case "day":
		err = runDay(store, args)
	case "add":
		err = runAdd(ctx, store, cfg.DefaultCurrency, args)
	case "budgets":
		err = runBudgets(store)
	case "goals":
		err = runGoals(store)
	case "accounts":
		err = runAccounts(store)
	case "recent":
		err = runRecent(store, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: budgetcal <command> [args]

commands:
  summary [YYYY-MM]        month income/expense totals (default: current month)
  day [YYYY-MM-DD]         transactions for one day (default: today)
  add [flags]              record a transaction
  budgets                  budget progress for all budgets
  goals                    goal progress and status
  accounts                 account list with balances
  recent [n]               most recent transactions (default: 5)`)
}

func runSummary(store *state.Store, args []string) error {
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if len(args) > 0 {
		parsed, err := time.Parse("2006-01", args[0])
		if err != nil {
			return fmt.Errorf("invalid month %q: expected YYYY-MM", args[0])
		}
		year, month = parsed.Year(), int(parsed.Month())
	}

	reporter := report.NewReporter(store)
	summary := reporter.MonthSummary(year, month)
	fmt.Printf("%04d-%02d\n", year, month)
	fmt.Printf("  income:  %10.2f\n", summary.TotalIncome)
	fmt.Printf("  expense: %10.2f\n", summary.TotalExpense)
	fmt.Printf("  net:     %10.2f\n", summary.NetAmount)

	breakdown := report.CategoryBreakdown(store.Snapshot())
	if len(breakdown) > 0 {
		fmt.Println("by category:")
		for _, entry := range breakdown {
			fmt.Printf("  %-16s %10.2f  (%d)\n", entry.Category.Name, entry.Total, entry.TransactionCount)
		}
	}
	return nil
}

func runDay(store *state.Store, args []string) error {
	day := core.Today()
	if len(args) > 0 {
		parsed, err := core.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
		}
		day = parsed
	}

	snapshot := store.Snapshot()
	txs := report.TransactionsForDate(snapshot, day)
	if len(txs) == 0 {
		fmt.Printf("%s: no transactions\n", day)
		return nil
	}
	for _, tx := range txs {
		category := tx.Category
		if c, ok := snapshot.CategoryByID(tx.Category); ok {
			category = c.Name
		}
		fmt.Printf("  %+10.2f  %-14s %s\n", tx.Amount, category, tx.Description)
	}
	fmt.Printf("total: %+.2f\n", report.DayTotal(snapshot, day))
	return nil
}

func runAdd(ctx context.Context, store *state.Store, defaultCurrency string, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amount := fs.String("amount", "", "amount, always positive (sign follows -type)")
	txType := fs.String("type", "expense", "income or expense")
	category := fs.String("category", "", "category id")
	description := fs.String("desc", "", "description")
	account := fs.String("account", "checking-1", "account id")
	date := fs.String("date", "", "date YYYY-MM-DD (default: today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	magnitude, err := core.ParseAmount(*amount)
	if err != nil {
		return err
	}
	t := core.TransactionType(*txType)

	day := core.Today()
	if *date != "" {
		if day, err = core.ParseDate(*date); err != nil {
			return err
		}
	}

	tx, err := store.AddTransaction(ctx, core.Transaction{
		Amount:      core.SignedAmount(t, magnitude),
		Type:        t,
		Category:    *category,
		Description: *description,
		Date:        day,
		AccountID:   *account,
		Currency:    defaultCurrency,
	})
	if err != nil {
		return err
	}
	fmt.Printf("recorded %s: %+.2f %s on %s\n", tx.ID, tx.Amount, tx.Category, tx.Date)
	return nil
}

func runBudgets(store *state.Store) error {
	snapshot := store.Snapshot()
	statuses := report.BudgetProgress(snapshot)
	if len(statuses) == 0 {
		fmt.Println("no budgets")
		return nil
	}
	for _, st := range statuses {
		name := st.Budget.CategoryID
		if c, ok := snapshot.CategoryByID(st.Budget.CategoryID); ok {
			name = c.Name
		}
		fmt.Printf("  %-16s %8.2f / %8.2f  (%.0f%%, %0.2f left)\n",
			name, st.Spent, st.Budget.Amount, st.Percentage, st.Remaining)
	}
	return nil
}

func runGoals(store *state.Store) error {
	snapshot := store.Snapshot()
	if len(snapshot.Goals) == 0 {
		fmt.Println("no goals")
		return nil
	}
	now := time.Now()
	for _, g := range snapshot.Goals {
		fmt.Printf("  %s %-20s %8.2f / %8.2f  %3.0f%%  %s (by %s)\n",
			g.Type.Display().Icon, g.Name, g.CurrentAmount, g.TargetAmount,
			report.GoalProgress(g), report.GoalState(g, now), g.TargetDate)
	}
	return nil
}

func runAccounts(store *state.Store) error {
	snapshot := store.Snapshot()
	var total float64
	for _, a := range snapshot.Accounts {
		fmt.Printf("  %s %-20s %-10s %12.2f %s\n", a.Type.Display().Icon, a.Name, a.Type, a.Balance, a.Currency)
		total += a.Balance
	}
	fmt.Printf("total: %.2f\n", total)
	return nil
}

func runRecent(store *state.Store, args []string) error {
	n := 5
	if len(args) > 0 {
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 {
			return fmt.Errorf("invalid count %q", args[0])
		}
	}
	for _, tx := range report.RecentTransactions(store.Snapshot(), n) {
		fmt.Printf("  %s  %+10.2f  %-14s %s\n", tx.Date, tx.Amount, tx.Category, tx.Description)
	}
	return nil
}
