package hisab

import (
	"iter"
	"slices"
)

// Ledger holds one consistent snapshot of all entity collections, the cash
// scalar and the custom settings. It is the single source of truth; only the
// Store mutates it, and every derivation reads a fully-settled snapshot.
type Ledger struct {
	incomes      []Income
	expenses     []Expense
	budgets      []Budget
	savings      []SavingsEntry
	loans        []Loan
	bankAccounts []BankAccount
	transfers    []Transfer
	cashBalance  Amount
	settings     CustomSettings
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		incomes:      make([]Income, 0),
		expenses:     make([]Expense, 0),
		budgets:      make([]Budget, 0),
		savings:      make([]SavingsEntry, 0),
		loans:        make([]Loan, 0),
		bankAccounts: make([]BankAccount, 0),
		transfers:    make([]Transfer, 0),
	}
}

// Incomes returns an iterator over all income records in insertion order.
func (l *Ledger) Incomes() iter.Seq[Income] { return seq(l.incomes) }

// Expenses returns an iterator over all expense records in insertion order.
func (l *Ledger) Expenses() iter.Seq[Expense] { return seq(l.expenses) }

// Budgets returns an iterator over all budget rows in insertion order.
func (l *Ledger) Budgets() iter.Seq[Budget] { return seq(l.budgets) }

// Savings returns an iterator over all savings entries in insertion order.
func (l *Ledger) Savings() iter.Seq[SavingsEntry] { return seq(l.savings) }

// Loans returns an iterator over all loan records in insertion order.
func (l *Ledger) Loans() iter.Seq[Loan] { return seq(l.loans) }

// BankAccounts returns an iterator over all bank accounts in insertion order.
func (l *Ledger) BankAccounts() iter.Seq[BankAccount] { return seq(l.bankAccounts) }

// Transfers returns an iterator over all transfer records in insertion order.
func (l *Ledger) Transfers() iter.Seq[Transfer] { return seq(l.transfers) }

func seq[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

// CashBalance returns the cash scalar.
func (l *Ledger) CashBalance() Amount { return l.cashBalance }

// Settings returns a copy of the custom settings.
func (l *Ledger) Settings() CustomSettings {
	s := l.settings
	s.CustomExpenseCategories = slices.Clone(s.CustomExpenseCategories)
	s.CustomIncomeSources = slices.Clone(s.CustomIncomeSources)
	return s
}

// ExpenseCategories returns the built-in categories followed by the
// user-added custom ones.
func (l *Ledger) ExpenseCategories() []string {
	return append(slices.Clone(DefaultExpenseCategories), l.settings.CustomExpenseCategories...)
}

// IncomeSources returns the built-in sources followed by the user-added
// custom ones.
func (l *Ledger) IncomeSources() []string {
	return append(slices.Clone(DefaultIncomeSources), l.settings.CustomIncomeSources...)
}

// MonthlyIncomes returns the income records whose month key matches.
func (l *Ledger) MonthlyIncomes(month string) []Income {
	out := make([]Income, 0)
	for _, i := range l.incomes {
		if i.Month == month {
			out = append(out, i)
		}
	}
	return out
}

// MonthlyExpenses returns the expense records whose month key matches.
func (l *Ledger) MonthlyExpenses(month string) []Expense {
	out := make([]Expense, 0)
	for _, e := range l.expenses {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out
}

// MonthlyBudgets returns the budget rows whose month key matches.
func (l *Ledger) MonthlyBudgets(month string) []Budget {
	out := make([]Budget, 0)
	for _, b := range l.budgets {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out
}

// Income returns a copy of the income with this id, or nil if unknown.
func (l *Ledger) Income(id string) *Income {
	for _, i := range l.incomes {
		if i.ID == id {
			return &i
		}
	}
	return nil
}

// Expense returns a copy of the expense with this id, or nil if unknown.
func (l *Ledger) Expense(id string) *Expense {
	for _, e := range l.expenses {
		if e.ID == id {
			return &e
		}
	}
	return nil
}

// Budget returns a copy of the budget row with this id, or nil if unknown.
func (l *Ledger) Budget(id string) *Budget {
	for _, b := range l.budgets {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

// SavingsEntry returns a copy of the savings entry with this id, or nil if unknown.
func (l *Ledger) SavingsEntry(id string) *SavingsEntry {
	for _, s := range l.savings {
		if s.ID == id {
			return &s
		}
	}
	return nil
}

// Loan returns a copy of the loan with this id, or nil if unknown.
func (l *Ledger) Loan(id string) *Loan {
	for _, lo := range l.loans {
		if lo.ID == id {
			return &lo
		}
	}
	return nil
}

// BankAccount returns a copy of the bank account with this id, or nil if unknown.
func (l *Ledger) BankAccount(id string) *BankAccount {
	for _, a := range l.bankAccounts {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

// AccountLabel returns the bank name for this account id, or a fallback label
// when the account no longer exists. Historical transfers keep referencing
// deleted accounts, so display layers need a graceful name.
func (l *Ledger) AccountLabel(id string) string {
	if a := l.BankAccount(id); a != nil {
		return a.BankName
	}
	return "Unknown Account"
}
