package hisab

import (
	"encoding/json"
	"fmt"
)

// EncodeSnapshot serializes the whole ledger into its canonical JSON form:
// one object, collections in a fixed key order, amounts as JSON numbers.
func EncodeSnapshot(l *Ledger) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("incomes", l.incomes)
	w.Append("expenses", l.expenses)
	w.Append("budgets", l.budgets)
	w.Append("savings", l.savings)
	w.Append("loans", l.loans)
	w.Append("bankAccounts", l.bankAccounts)
	w.Append("transfers", l.transfers)
	w.Append("cashBalance", l.cashBalance)
	w.Append("customSettings", l.settings)
	return w.MarshalJSON()
}

// snapshot mirrors the persisted JSON object for decoding.
type snapshot struct {
	Incomes      []Income       `json:"incomes"`
	Expenses     []Expense      `json:"expenses"`
	Budgets      []Budget       `json:"budgets"`
	Savings      []SavingsEntry `json:"savings"`
	Loans        []Loan         `json:"loans"`
	BankAccounts []BankAccount  `json:"bankAccounts"`
	Transfers    []Transfer     `json:"transfers"`
	CashBalance  Amount         `json:"cashBalance"`
	Settings     CustomSettings `json:"customSettings"`
}

// DecodeSnapshot parses a persisted snapshot back into a ledger. Collections
// missing from the JSON decode to empty, so snapshots written before a
// collection existed still load.
func DecodeSnapshot(data []byte) (*Ledger, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}
	l := NewLedger()
	if s.Incomes != nil {
		l.incomes = s.Incomes
	}
	if s.Expenses != nil {
		l.expenses = s.Expenses
	}
	if s.Budgets != nil {
		l.budgets = s.Budgets
	}
	if s.Savings != nil {
		l.savings = s.Savings
	}
	if s.Loans != nil {
		l.loans = s.Loans
	}
	if s.BankAccounts != nil {
		l.bankAccounts = s.BankAccounts
	}
	if s.Transfers != nil {
		l.transfers = s.Transfers
	}
	l.cashBalance = s.CashBalance
	l.settings = s.Settings
	return l, nil
}
