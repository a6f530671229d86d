package hisab

import "encoding/json"

// Income is one income record. AutoSavings and UsableIncome are always
// recomputed from GrossIncome by the store, never set independently.
type Income struct {
	ID           string `json:"id"`
	Date         Date   `json:"date"`
	Month        string `json:"month"` // canonical MMM-YYYY, derived from Date
	Source       string `json:"source"`
	Type         string `json:"type"`
	GrossIncome  Amount `json:"grossIncome"`
	AutoSavings  Amount `json:"autoSavings"`
	UsableIncome Amount `json:"usableIncome"`
	Note         string `json:"note,omitempty"`
}

// Expense is one expense record.
type Expense struct {
	ID             string        `json:"id"`
	Date           Date          `json:"date"`
	Month          string        `json:"month"`
	ExpenseType    ExpenseType   `json:"expenseType"`
	Category       string        `json:"category"`
	SubCategory    string        `json:"subCategory,omitempty"`
	Amount         Amount        `json:"amount"`
	PaidBy         PaymentMethod `json:"paidBy"`
	Note           string        `json:"note,omitempty"`
	Responsibility string        `json:"responsibility,omitempty"` // free-form person, for per-person attribution
}

// Budget is one budget row. The month key is user-entered in MMM-YYYY form.
// Uniqueness per (month, expense type) is not enforced; queries sum duplicates.
type Budget struct {
	ID           string      `json:"id"`
	Month        string      `json:"month"`
	ExpenseType  ExpenseType `json:"expenseType"`
	BudgetAmount Amount      `json:"budgetAmount"`
}

// SavingsEntry is one row of the savings ledger. Rows with LinkedIncomeID set
// are system-owned: their lifecycle is driven by the referenced income.
type SavingsEntry struct {
	ID             string         `json:"id"`
	Date           Date           `json:"date"`
	SavingsType    SavingsType    `json:"savingsType"`
	Account        SavingsAccount `json:"account"`
	InAmount       Amount         `json:"inAmount"`
	OutAmount      Amount         `json:"outAmount"`
	Purpose        string         `json:"purpose,omitempty"`
	LinkedIncomeID string         `json:"linkedIncomeId,omitempty"`
}

// MarshalJSON keeps a canonical key order and omits the back-reference when unset.
func (e SavingsEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("savingsType", e.SavingsType)
	w.Append("account", e.Account)
	w.Append("inAmount", e.InAmount)
	w.Append("outAmount", e.OutAmount)
	w.Optional("purpose", e.Purpose)
	w.Optional("linkedIncomeId", e.LinkedIncomeID)
	return w.MarshalJSON()
}

// Loan is one loan record. Amount is the original principal and is immutable
// after creation; the remaining balance is always derived from the
// InAmount/OutAmount deltas, never stored.
type Loan struct {
	ID         string        `json:"id"`
	Date       Date          `json:"date"`
	PersonName string        `json:"personName"`
	LoanType   ExpenseType   `json:"loanType"`
	Direction  LoanDirection `json:"direction"`
	Amount     Amount        `json:"amount"`    // original principal
	InAmount   Amount        `json:"inAmount"`  // cumulative received
	OutAmount  Amount        `json:"outAmount"` // cumulative paid
	DueDate    Date          `json:"dueDate"`
	Status     LoanStatus    `json:"status"`
	Note       string        `json:"note,omitempty"`
}

// BankAccount is a bank, mobile-wallet or cash-box account. CurrentBalance
// starts equal to OpeningBalance and diverges only through transfers and
// auto-savings postings.
type BankAccount struct {
	ID             string      `json:"id"`
	BankName       string      `json:"bankName"`
	AccountType    AccountType `json:"accountType"`
	WalletType     WalletType  `json:"walletType"`
	OpeningBalance Amount      `json:"openingBalance"`
	CurrentBalance Amount      `json:"currentBalance"`
	CreatedAt      Date        `json:"createdAt"`
}

// Transfer records a balance movement between exactly two of
// {cash pool, a named bank account}.
type Transfer struct {
	ID         string       `json:"id"`
	Date       Date         `json:"date"`
	FromType   EndpointType `json:"fromType"`
	ToType     EndpointType `json:"toType"`
	FromBankID string       `json:"fromBankId,omitempty"`
	ToBankID   string       `json:"toBankId,omitempty"`
	Amount     Amount       `json:"amount"`
	Note       string       `json:"note,omitempty"`
}

// MarshalJSON keeps a canonical key order and omits the bank ids that do not
// apply to the endpoint types.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("fromType", t.FromType)
	w.Append("toType", t.ToType)
	w.Optional("fromBankId", t.FromBankID)
	w.Optional("toBankId", t.ToBankID)
	w.Append("amount", t.Amount)
	w.Optional("note", t.Note)
	return w.MarshalJSON()
}

// CustomSettings is the process-wide configuration persisted with the ledger:
// user-added categories and sources, branding, the designated auto-savings
// account and the display currency code.
type CustomSettings struct {
	CustomExpenseCategories []string `json:"customExpenseCategories"`
	CustomIncomeSources     []string `json:"customIncomeSources"`
	AppName                 string   `json:"appName,omitempty"`
	AppIcon                 string   `json:"appIcon,omitempty"`
	AppLogo                 string   `json:"appLogo,omitempty"`
	AutoSavingsAccountID    string   `json:"autoSavingsAccountId,omitempty"`
	Currency                string   `json:"currency,omitempty"`
}

// BudgetWithActual is a budget row joined with the matching month's actual
// expenses. The tie-break at exactly equal amounts is OnBudget.
type BudgetWithActual struct {
	Budget
	ActualExpense Amount       `json:"actualExpense"`
	Difference    Amount       `json:"difference"`
	Status        BudgetStatus `json:"status"`
}

var _ json.Marshaler = SavingsEntry{}
var _ json.Marshaler = Transfer{}
