package hisab

import (
	"sort"
	"time"
)

// MonthSummary provides an at-a-glance overview of one month of the ledger.
// Its NetWorth field is the single definition of net worth:
// savings + banks + cash + loan receivable - loan payable.
// UI surfaces must render this value, never recompute it.
type MonthSummary struct {
	Month               string
	TotalGrossIncome    Amount
	TotalAutoSavings    Amount
	TotalUsableIncome   Amount
	TotalBudget         Amount
	TotalActualExpense  Amount
	SavingsOrDeficit    Amount // usable income minus actual expense
	TotalLoanReceivable Amount
	TotalLoanPayable    Amount
	TotalBankBalance    Amount
	TotalCashBalance    Amount
	NetWorth            Amount
}

// MonthSummary aggregates income, budget, expense, loan and balance totals
// for one month key. Loan and balance figures are ledger-wide (they are
// positions, not flows).
func (l *Ledger) MonthSummary(month string) MonthSummary {
	s := MonthSummary{Month: month}

	for _, i := range l.MonthlyIncomes(month) {
		s.TotalGrossIncome = s.TotalGrossIncome.Add(i.GrossIncome)
		s.TotalAutoSavings = s.TotalAutoSavings.Add(i.AutoSavings)
		s.TotalUsableIncome = s.TotalUsableIncome.Add(i.UsableIncome)
	}
	for _, b := range l.MonthlyBudgets(month) {
		s.TotalBudget = s.TotalBudget.Add(b.BudgetAmount)
	}
	for _, e := range l.MonthlyExpenses(month) {
		s.TotalActualExpense = s.TotalActualExpense.Add(e.Amount)
	}
	s.SavingsOrDeficit = s.TotalUsableIncome.Sub(s.TotalActualExpense)

	s.TotalLoanReceivable = l.TotalLoanReceivable()
	s.TotalLoanPayable = l.TotalLoanPayable()
	s.TotalBankBalance = l.TotalBankBalance()
	s.TotalCashBalance = l.CashBalance()

	savings := l.SavingsBalance()
	s.NetWorth = savings.
		Add(s.TotalBankBalance).
		Add(s.TotalCashBalance).
		Add(s.TotalLoanReceivable).
		Sub(s.TotalLoanPayable)
	return s
}

// MonthFlow is one row of a yearly summary: the usable income and expense
// total of a single calendar month.
type MonthFlow struct {
	Month   string // short month name, "Jan".."Dec"
	Income  Amount // usable income
	Expense Amount
}

// YearlySummary returns exactly 12 rows for the calendar year, zero-filled
// for months without entries, so chart axes stay stable.
func (l *Ledger) YearlySummary(year int) []MonthFlow {
	rows := make([]MonthFlow, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := NewDate(year, m, 1)
		key := first.MonthKey()

		var row MonthFlow
		row.Month = first.Format("Jan")
		for _, i := range l.MonthlyIncomes(key) {
			row.Income = row.Income.Add(i.UsableIncome)
		}
		for _, e := range l.MonthlyExpenses(key) {
			row.Expense = row.Expense.Add(e.Amount)
		}
		rows = append(rows, row)
	}
	return rows
}

// GroupedAmount is one bucket of an expense breakdown.
type GroupedAmount struct {
	Key    string
	Amount Amount
}

// groupExpenses sums expenses of the month into buckets, in encounter order,
// then sorts descending by amount. The sort is stable: ties
// keep encounter order, since display order for equal values is not
// significant.
func (l *Ledger) groupExpenses(month string, key func(Expense) string) []GroupedAmount {
	index := make(map[string]int)
	groups := make([]GroupedAmount, 0)
	for _, e := range l.MonthlyExpenses(month) {
		k := key(e)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, GroupedAmount{Key: k})
		}
		groups[i].Amount = groups[i].Amount.Add(e.Amount)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.GreaterThan(groups[j].Amount)
	})
	return groups
}

// ExpensesByCategory is the month's expense breakdown by category,
// descending by amount.
func (l *Ledger) ExpensesByCategory(month string) []GroupedAmount {
	return l.groupExpenses(month, func(e Expense) string { return e.Category })
}

// ExpensesByType is the month's expense breakdown by expense type,
// descending by amount.
func (l *Ledger) ExpensesByType(month string) []GroupedAmount {
	return l.groupExpenses(month, func(e Expense) string { return string(e.ExpenseType) })
}

// ExpensesByPerson is the month's expense breakdown by responsibility,
// descending by amount. Expenses without a responsibility are skipped.
func (l *Ledger) ExpensesByPerson(month string) []GroupedAmount {
	return l.groupExpenses(month, func(e Expense) string { return e.Responsibility })
}

// AvailableMonths returns the distinct month keys present across incomes and
// expenses, newest first.
func (l *Ledger) AvailableMonths() []string {
	seen := make(map[string]struct{})
	months := make([]string, 0)
	add := func(m string) {
		if _, ok := seen[m]; !ok {
			seen[m] = struct{}{}
			months = append(months, m)
		}
	}
	for _, i := range l.incomes {
		add(i.Month)
	}
	for _, e := range l.expenses {
		add(e.Month)
	}
	sort.Slice(months, func(i, j int) bool {
		a, errA := ParseMonthKey(months[i])
		b, errB := ParseMonthKey(months[j])
		if errA != nil || errB != nil {
			return months[i] > months[j]
		}
		return b.Before(a)
	})
	return months
}
