package hisab

import (
	"testing"
)

func TestAutoSavings(t *testing.T) {
	testCases := []struct {
		gross float64
		want  float64
	}{
		{10000, 2000},
		{5000, 1000},
		{999, 200},  // 199.8 rounds up
		{997, 199},  // 199.4 rounds down
		{1, 0},      // 0.2 rounds down
		{3, 1},      // 0.6 rounds up
		{12.5, 3},   // 2.5 rounds away from zero
		{0, 0},
	}
	for _, tc := range testCases {
		if got := AutoSavings(tk(tc.gross)); !got.Equal(tk(tc.want)) {
			t.Errorf("AutoSavings(%v) = %v, want %v", tc.gross, got, tc.want)
		}
	}
}

func TestAutoSavings_PlusUsableIsGross(t *testing.T) {
	// The rounding is applied once, on the savings side only, so the two
	// derived parts always recompose the gross exactly.
	for gross := 0.0; gross < 500; gross += 0.37 {
		g := tk(gross)
		auto := AutoSavings(g)
		usable := UsableIncome(g, auto)
		if !auto.Add(usable).Equal(g) {
			t.Fatalf("gross %v: autoSavings %v + usableIncome %v != gross", g, auto, usable)
		}
	}
}

func TestLedger_BudgetsWithActual(t *testing.T) {
	ledger := &Ledger{
		budgets: []Budget{
			{ID: "b1", Month: "Jul-2025", ExpenseType: PersonalSelf, BudgetAmount: tk(500)},
			{ID: "b2", Month: "Jul-2025", ExpenseType: PersonalFamily, BudgetAmount: tk(300)},
			{ID: "b3", Month: "Jul-2025", ExpenseType: Office, BudgetAmount: tk(100)},
			{ID: "b4", Month: "Aug-2025", ExpenseType: PersonalSelf, BudgetAmount: tk(500)},
		},
		expenses: []Expense{
			{Month: "Jul-2025", ExpenseType: PersonalSelf, Amount: tk(200)},
			{Month: "Jul-2025", ExpenseType: PersonalSelf, Amount: tk(100)},
			{Month: "Jul-2025", ExpenseType: PersonalFamily, Amount: tk(350)},
			{Month: "Jul-2025", ExpenseType: Office, Amount: tk(100)},
			{Month: "Aug-2025", ExpenseType: PersonalSelf, Amount: tk(9999)},
		},
	}

	rows := ledger.BudgetsWithActual("Jul-2025")
	if len(rows) != 3 {
		t.Fatalf("BudgetsWithActual returned %d rows, want 3", len(rows))
	}

	testCases := []struct {
		id         string
		wantActual float64
		wantDiff   float64
		wantStatus BudgetStatus
	}{
		{"b1", 300, 200, UnderBudget},
		{"b2", 350, -50, OverBudget},
		{"b3", 100, 0, OnBudget},
	}
	for i, tc := range testCases {
		row := rows[i]
		if row.ID != tc.id {
			t.Fatalf("row %d is %q, want %q", i, row.ID, tc.id)
		}
		if !row.ActualExpense.Equal(tk(tc.wantActual)) {
			t.Errorf("%s: actual = %v, want %v", tc.id, row.ActualExpense, tc.wantActual)
		}
		if !row.Difference.Equal(tk(tc.wantDiff)) {
			t.Errorf("%s: difference = %v, want %v", tc.id, row.Difference, tc.wantDiff)
		}
		if row.Status != tc.wantStatus {
			t.Errorf("%s: status = %q, want %q", tc.id, row.Status, tc.wantStatus)
		}
	}
}

func TestLedger_SavingsWithRunningBalance(t *testing.T) {
	ledger := &Ledger{
		savings: []SavingsEntry{
			{ID: "s2", Date: MustParse("2025-07-10"), InAmount: tk(0), OutAmount: tk(300)},
			{ID: "s1", Date: MustParse("2025-07-01"), InAmount: tk(1000)},
			{ID: "s3", Date: MustParse("2025-07-10"), InAmount: tk(50)},
		},
	}

	rows := ledger.SavingsWithRunningBalance()
	wantOrder := []string{"s1", "s2", "s3"} // stable: s2 before s3 on the same day
	wantBalance := []float64{1000, 700, 750}
	for i, row := range rows {
		if row.ID != wantOrder[i] {
			t.Errorf("row %d is %q, want %q", i, row.ID, wantOrder[i])
		}
		if !row.Balance.Equal(tk(wantBalance[i])) {
			t.Errorf("row %d balance = %v, want %v", i, row.Balance, wantBalance[i])
		}
	}
	if !ledger.SavingsBalance().Equal(tk(750)) {
		t.Errorf("SavingsBalance = %v, want 750", ledger.SavingsBalance())
	}
}

func TestLedger_LoanTotals(t *testing.T) {
	ledger := &Ledger{
		loans: []Loan{
			{Direction: Given, Status: LoanOpen, Amount: tk(1000), OutAmount: tk(1000), InAmount: tk(200)},
			{Direction: Given, Status: LoanPartial, Amount: tk(500), OutAmount: tk(500), InAmount: tk(100)},
			// Closed loans are skipped even with a nonzero residual.
			{Direction: Given, Status: LoanClosed, Amount: tk(900), OutAmount: tk(900), InAmount: tk(100)},
			{Direction: Taken, Status: LoanOpen, Amount: tk(2000), InAmount: tk(2000), OutAmount: tk(500)},
			{Direction: Taken, Status: LoanClosed, Amount: tk(700), InAmount: tk(700)},
		},
	}

	if got := ledger.TotalLoanReceivable(); !got.Equal(tk(1200)) {
		t.Errorf("TotalLoanReceivable = %v, want 1200", got)
	}
	if got := ledger.TotalLoanPayable(); !got.Equal(tk(1500)) {
		t.Errorf("TotalLoanPayable = %v, want 1500", got)
	}
}

func TestLedger_PersonLoanBalance(t *testing.T) {
	ledger := &Ledger{
		loans: []Loan{
			{PersonName: "Rahim", Direction: Given, Amount: tk(1000), OutAmount: tk(1000), InAmount: tk(200)},
			{PersonName: "Karim", Direction: Taken, Amount: tk(500), InAmount: tk(500), OutAmount: tk(100)},
			{PersonName: "Rahim", Direction: Taken, Amount: tk(300), InAmount: tk(300)},
		},
	}

	testCases := []struct {
		person string
		want   float64
	}{
		// Given 1000 out, 200 back (+800); Taken 300 in (+300).
		{"Rahim", 1100},
		{"Karim", 400},
		{"Nobody", 0},
	}
	for _, tc := range testCases {
		if got := ledger.PersonLoanBalance(tc.person); !got.Equal(tk(tc.want)) {
			t.Errorf("PersonLoanBalance(%q) = %v, want %v", tc.person, got, tc.want)
		}
	}
}

func TestLedger_FilteredExpenses(t *testing.T) {
	ledger := &Ledger{
		expenses: []Expense{
			{ID: "e1", Month: "Jul-2025", ExpenseType: PersonalSelf, Responsibility: "Rahim"},
			{ID: "e2", Month: "Jul-2025", ExpenseType: PersonalFamily, Responsibility: "Rahim"},
			{ID: "e3", Month: "Jul-2025", ExpenseType: PersonalSelf, Responsibility: "Karim"},
			{ID: "e4", Month: "Aug-2025", ExpenseType: PersonalSelf, Responsibility: "Rahim"},
		},
	}

	testCases := []struct {
		name           string
		expenseType    ExpenseType
		responsibility string
		wantIDs        []string
	}{
		{name: "no filters", wantIDs: []string{"e1", "e2", "e3"}},
		{name: "by type", expenseType: PersonalSelf, wantIDs: []string{"e1", "e3"}},
		{name: "by person", responsibility: "Rahim", wantIDs: []string{"e1", "e2"}},
		{name: "both", expenseType: PersonalSelf, responsibility: "Karim", wantIDs: []string{"e3"}},
		{name: "no match", expenseType: Office, wantIDs: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.FilteredExpenses("Jul-2025", tc.expenseType, tc.responsibility)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d expenses, want %d", len(got), len(tc.wantIDs))
			}
			for i, e := range got {
				if e.ID != tc.wantIDs[i] {
					t.Errorf("expense %d is %q, want %q", i, e.ID, tc.wantIDs[i])
				}
			}
		})
	}
}

func TestLedger_UniquePersons(t *testing.T) {
	ledger := &Ledger{
		expenses: []Expense{
			{Responsibility: "Rahim"},
			{Responsibility: ""},
			{Responsibility: "Karim"},
			{Responsibility: "Rahim"},
			{Responsibility: "Ayesha"},
		},
	}
	got := ledger.UniquePersons()
	want := []string{"Ayesha", "Karim", "Rahim"}
	if len(got) != len(want) {
		t.Fatalf("UniquePersons = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniquePersons[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
