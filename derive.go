package hisab

import (
	"sort"

	"github.com/shopspring/decimal"
)

// autoSavingsRate is the fixed share of gross income diverted to savings.
var autoSavingsRate = decimal.New(2, -1) // 0.2

// AutoSavings returns the auto-savings share of a gross income:
// round(gross * 0.20). The rounding is applied exactly once.
func AutoSavings(gross Amount) Amount {
	return Amount{value: gross.value.Mul(autoSavingsRate).Round(0)}
}

// UsableIncome returns gross minus the already-rounded auto savings, so that
// AutoSavings(g) + UsableIncome(g, AutoSavings(g)) == g always holds.
func UsableIncome(gross, autoSavings Amount) Amount {
	return gross.Sub(autoSavings)
}

// ActualExpense sums the expenses matching both the month key and the
// expense type.
func (l *Ledger) ActualExpense(month string, t ExpenseType) Amount {
	var sum Amount
	for _, e := range l.expenses {
		if e.Month == month && e.ExpenseType == t {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// BudgetsWithActual joins every budget row of the month with the actual
// expenses of the same month and expense type. A difference of exactly zero
// is OnBudget, not UnderBudget.
func (l *Ledger) BudgetsWithActual(month string) []BudgetWithActual {
	budgets := l.MonthlyBudgets(month)
	out := make([]BudgetWithActual, 0, len(budgets))
	for _, b := range budgets {
		actual := l.ActualExpense(month, b.ExpenseType)
		diff := b.BudgetAmount.Sub(actual)
		status := OnBudget
		if diff.IsPositive() {
			status = UnderBudget
		} else if diff.IsNegative() {
			status = OverBudget
		}
		out = append(out, BudgetWithActual{
			Budget:        b,
			ActualExpense: actual,
			Difference:    diff,
			Status:        status,
		})
	}
	return out
}

// SavingsBalance is the plain sum of in minus out across all savings entries,
// regardless of date ordering.
func (l *Ledger) SavingsBalance() Amount {
	var balance Amount
	for _, s := range l.savings {
		balance = balance.Add(s.InAmount).Sub(s.OutAmount)
	}
	return balance
}

// SavingsRow is a savings entry with its running balance in the date-ordered
// ledger view.
type SavingsRow struct {
	SavingsEntry
	Balance Amount
}

// SavingsWithRunningBalance returns all savings entries sorted ascending by
// date (stable, so same-day entries keep insertion order) with a cumulative
// balance per row.
func (l *Ledger) SavingsWithRunningBalance() []SavingsRow {
	entries := make([]SavingsEntry, len(l.savings))
	copy(entries, l.savings)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	rows := make([]SavingsRow, 0, len(entries))
	var running Amount
	for _, e := range entries {
		running = running.Add(e.InAmount).Sub(e.OutAmount)
		rows = append(rows, SavingsRow{SavingsEntry: e, Balance: running})
	}
	return rows
}

// TotalBankBalance sums the current balance of all bank accounts.
func (l *Ledger) TotalBankBalance() Amount {
	var sum Amount
	for _, a := range l.bankAccounts {
		sum = sum.Add(a.CurrentBalance)
	}
	return sum
}

// TotalLoanReceivable sums (amount - inAmount) over open Given loans.
// Closed loans are excluded even if their residual is nonzero: the user-set
// status flag wins over the arithmetic.
func (l *Ledger) TotalLoanReceivable() Amount {
	var sum Amount
	for _, lo := range l.loans {
		if lo.Direction == Given && lo.Status != LoanClosed {
			sum = sum.Add(lo.Amount).Sub(lo.InAmount)
		}
	}
	return sum
}

// TotalLoanPayable sums (amount - outAmount) over open Taken loans.
func (l *Ledger) TotalLoanPayable() Amount {
	var sum Amount
	for _, lo := range l.loans {
		if lo.Direction == Taken && lo.Status != LoanClosed {
			sum = sum.Add(lo.Amount).Sub(lo.OutAmount)
		}
	}
	return sum
}

// PersonLoanBalance is the net position for one person across all their
// loans. Given loans contribute +(out - in), Taken loans contribute
// -(out - in). A positive result is money still owed to the ledger owner.
func (l *Ledger) PersonLoanBalance(person string) Amount {
	var balance Amount
	for _, lo := range l.loans {
		if lo.PersonName != person {
			continue
		}
		if lo.Direction == Given {
			balance = balance.Add(lo.OutAmount).Sub(lo.InAmount)
		} else {
			balance = balance.Sub(lo.OutAmount).Add(lo.InAmount)
		}
	}
	return balance
}

// FilteredExpenses returns the month's expenses, optionally narrowed to an
// expense type and/or a responsibility person. Empty filters match all.
func (l *Ledger) FilteredExpenses(month string, t ExpenseType, responsibility string) []Expense {
	out := make([]Expense, 0)
	for _, e := range l.expenses {
		if e.Month != month {
			continue
		}
		if t != "" && e.ExpenseType != t {
			continue
		}
		if responsibility != "" && e.Responsibility != responsibility {
			continue
		}
		out = append(out, e)
	}
	return out
}

// UniquePersons returns the sorted distinct responsibility names found in
// expenses.
func (l *Ledger) UniquePersons() []string {
	seen := make(map[string]struct{})
	persons := make([]string, 0)
	for _, e := range l.expenses {
		if e.Responsibility == "" {
			continue
		}
		if _, ok := seen[e.Responsibility]; !ok {
			seen[e.Responsibility] = struct{}{}
			persons = append(persons, e.Responsibility)
		}
	}
	sort.Strings(persons)
	return persons
}
