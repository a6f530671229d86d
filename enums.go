package hisab

import "fmt"

// ExpenseType classifies who an expense (or a loan) is for.
type ExpenseType string

const (
	PersonalSelf     ExpenseType = "Personal-Self"
	PersonalFamily   ExpenseType = "Personal-Family"
	PersonalSpouse   ExpenseType = "Personal-Spouse"
	PersonalChildren ExpenseType = "Personal-Children"
	Parents          ExpenseType = "Parents"
	Office           ExpenseType = "Office"
)

// ExpenseTypes lists all valid expense types in display order.
var ExpenseTypes = []ExpenseType{PersonalSelf, PersonalFamily, PersonalSpouse, PersonalChildren, Parents, Office}

// ParseExpenseType parses a string into an ExpenseType.
func ParseExpenseType(s string) (ExpenseType, error) {
	for _, t := range ExpenseTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown expense type: %q", s)
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaidByCash  PaymentMethod = "Cash"
	PaidByBkash PaymentMethod = "Bkash"
	PaidByBank  PaymentMethod = "Bank"
	PaidByCard  PaymentMethod = "Card"
)

// SavingsType distinguishes system-created savings rows from user-entered ones.
type SavingsType string

const (
	SavingsAuto   SavingsType = "Auto"
	SavingsManual SavingsType = "Manual"
)

// SavingsAccount is the pocket a savings entry lives in.
type SavingsAccount string

const (
	SavingsInCash   SavingsAccount = "Cash"
	SavingsInBank   SavingsAccount = "Bank"
	SavingsInWallet SavingsAccount = "Mobile Wallet"
)

// LoanDirection tells which way the money went at loan creation.
// Given is money lent out (a receivable), Taken is money borrowed (a payable).
type LoanDirection string

const (
	Given LoanDirection = "Given"
	Taken LoanDirection = "Taken"
)

// LoanStatus is user-set; the store never transitions it from the amounts.
type LoanStatus string

const (
	LoanOpen    LoanStatus = "Open"
	LoanPartial LoanStatus = "Partial"
	LoanClosed  LoanStatus = "Closed"
)

// WalletType classifies the kind of a bank account record.
type WalletType string

const (
	WalletBank   WalletType = "Bank"
	WalletMobile WalletType = "Mobile Wallet"
	WalletCash   WalletType = "Cash"
)

// AccountType is the product type of a bank account.
type AccountType string

const (
	AccountSavings      AccountType = "Savings"
	AccountCurrent      AccountType = "Current"
	AccountSalary       AccountType = "Salary"
	AccountFixedDeposit AccountType = "Fixed Deposit"
)

// EndpointType names one end of a transfer: the cash pool or a bank account.
type EndpointType string

const (
	EndpointCash EndpointType = "cash"
	EndpointBank EndpointType = "bank"
)

// BudgetStatus is the variance verdict of a budget row for a month.
type BudgetStatus string

const (
	UnderBudget BudgetStatus = "Under Budget"
	OverBudget  BudgetStatus = "Over Budget"
	OnBudget    BudgetStatus = "On Budget"
)

// DefaultExpenseCategories are the built-in expense categories; users extend
// them through the custom settings.
var DefaultExpenseCategories = []string{
	"Food", "Rent", "Transport", "Utility", "EMI", "Medical", "Entertainment", "Shopping", "Other",
}

// DefaultIncomeSources are the built-in income sources; users extend them
// through the custom settings.
var DefaultIncomeSources = []string{"Client", "Salary", "Business", "Other"}
