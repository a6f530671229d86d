package hisab

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// Sentinel errors returned by store mutations.
var (
	// ErrNotFound reports a mutation addressing an id that is not in the ledger.
	ErrNotFound = errors.New("not found")
	// ErrSystemOwned reports an attempt to edit or delete a savings entry
	// whose lifecycle is driven by a linked income.
	ErrSystemOwned = errors.New("savings entry is system-owned by its linked income")
	// ErrPrincipalImmutable reports an attempt to change a loan's original principal.
	ErrPrincipalImmutable = errors.New("loan principal is immutable after creation")
	// ErrDuplicate reports an attempt to add an already-present custom category or source.
	ErrDuplicate = errors.New("already exists")
)

// Storage is the injected persistence collaborator: a single named slot of
// durable key-value storage holding the serialized snapshot. Load returns
// (nil, nil) when the slot is empty.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Store owns the canonical ledger snapshot and is its only writer. Every
// mutation is a synchronous in-memory transition immediately followed by a
// full-snapshot persist. There is no retry and no rollback: when a persist
// fails the error is surfaced and the in-memory state may be ahead of the
// durable state.
type Store struct {
	ledger  *Ledger
	storage Storage
	resync  bool
}

// Option configures a Store at Open time.
type Option func(*Store)

// WithBalanceResync makes UpdateIncome and DeleteIncome reverse and reapply
// the auto-savings posting on the designated bank account, keeping the
// account balance in step with the savings ledger. The default preserves the
// historical behaviour: postings from AddIncome are never revisited, so the
// balance can drift from the savings ledger on edits.
func WithBalanceResync(on bool) Option {
	return func(s *Store) { s.resync = on }
}

// Open loads the snapshot from storage (or starts empty) and returns a ready
// store. A nil storage keeps the ledger in memory only, which is how tests
// run. A malformed snapshot is never fatal: the store logs it and starts
// from the default-empty ledger.
func Open(storage Storage, opts ...Option) (*Store, error) {
	s := &Store{ledger: NewLedger(), storage: storage}
	for _, opt := range opts {
		opt(s)
	}
	if storage == nil {
		return s, nil
	}

	data, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("could not load snapshot: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	ledger, err := DecodeSnapshot(data)
	if err != nil {
		log.Printf("malformed snapshot, starting from an empty ledger: %v", err)
		return s, nil
	}
	s.ledger = ledger
	return s, nil
}

// Ledger returns the current snapshot for queries. Callers must treat it as
// read-only; all writes go through the store's mutation API.
func (s *Store) Ledger() *Ledger { return s.ledger }

func (s *Store) persist() error {
	if s.storage == nil {
		return nil
	}
	data, err := EncodeSnapshot(s.ledger)
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	if err := s.storage.Save(data); err != nil {
		return fmt.Errorf("could not persist snapshot: %w", err)
	}
	return nil
}

// --- Income ---

// IncomeData carries the caller-supplied fields of a new income; id, month
// key and the derived savings fields are store-computed.
type IncomeData struct {
	Date        Date
	Source      string
	Type        string
	GrossIncome Amount
	Note        string
}

// IncomeUpdate holds the fields of an income that may change; nil means keep.
type IncomeUpdate struct {
	Date        *Date
	Source      *string
	Type        *string
	GrossIncome *Amount
	Note        *string
}

// AddIncome records an income, derives its auto savings and usable income,
// appends the companion Auto savings entry linked to it and, when an
// auto-savings account is designated, posts the auto savings to that account
// balance. The three effects are applied in one synchronous transition.
func (s *Store) AddIncome(d IncomeData) (Income, error) {
	if d.Date.IsZero() {
		d.Date = Today()
	}
	autoSavings := AutoSavings(d.GrossIncome)
	income := Income{
		ID:           newID(),
		Date:         d.Date,
		Month:        d.Date.MonthKey(),
		Source:       d.Source,
		Type:         d.Type,
		GrossIncome:  d.GrossIncome,
		AutoSavings:  autoSavings,
		UsableIncome: UsableIncome(d.GrossIncome, autoSavings),
		Note:         d.Note,
	}
	entry := SavingsEntry{
		ID:             newID(),
		Date:           income.Date,
		SavingsType:    SavingsAuto,
		Account:        SavingsInBank,
		InAmount:       autoSavings,
		Purpose:        fmt.Sprintf("Auto savings from %s income", income.Source),
		LinkedIncomeID: income.ID,
	}

	s.ledger.incomes = append(s.ledger.incomes, income)
	s.ledger.savings = append(s.ledger.savings, entry)
	s.postAutoSavings(autoSavings)
	return income, s.persist()
}

// postAutoSavings credits the designated auto-savings account, if one is
// configured and still exists.
func (s *Store) postAutoSavings(amount Amount) {
	id := s.ledger.settings.AutoSavingsAccountID
	if id == "" {
		return
	}
	for i := range s.ledger.bankAccounts {
		if s.ledger.bankAccounts[i].ID == id {
			s.ledger.bankAccounts[i].CurrentBalance = s.ledger.bankAccounts[i].CurrentBalance.Add(amount)
			return
		}
	}
}

// UpdateIncome applies the partial update. A gross income change recomputes
// autoSavings and usableIncome; a date change recomputes the month key. The
// linked Auto savings entry is resynchronized to the new amount and date.
// The prior bank posting is only revisited when the store was opened with
// WithBalanceResync.
func (s *Store) UpdateIncome(id string, u IncomeUpdate) (Income, error) {
	i := slices.IndexFunc(s.ledger.incomes, func(in Income) bool { return in.ID == id })
	if i < 0 {
		return Income{}, fmt.Errorf("income %q: %w", id, ErrNotFound)
	}
	income := s.ledger.incomes[i]
	previousSavings := income.AutoSavings

	if u.Date != nil {
		income.Date = *u.Date
		income.Month = u.Date.MonthKey()
	}
	if u.Source != nil {
		income.Source = *u.Source
	}
	if u.Type != nil {
		income.Type = *u.Type
	}
	if u.GrossIncome != nil {
		income.GrossIncome = *u.GrossIncome
		income.AutoSavings = AutoSavings(*u.GrossIncome)
		income.UsableIncome = UsableIncome(*u.GrossIncome, income.AutoSavings)
	}
	if u.Note != nil {
		income.Note = *u.Note
	}
	s.ledger.incomes[i] = income

	// Resynchronize the linked Auto entry (or entries) with the income.
	for j := range s.ledger.savings {
		if s.ledger.savings[j].LinkedIncomeID == id {
			s.ledger.savings[j].InAmount = income.AutoSavings
			s.ledger.savings[j].Date = income.Date
		}
	}
	if s.resync {
		s.postAutoSavings(income.AutoSavings.Sub(previousSavings))
	}
	return income, s.persist()
}

// DeleteIncome removes the income and cascade-deletes every savings entry
// linked to it. The prior bank posting is only reversed when the store was
// opened with WithBalanceResync.
func (s *Store) DeleteIncome(id string) error {
	i := slices.IndexFunc(s.ledger.incomes, func(in Income) bool { return in.ID == id })
	if i < 0 {
		return fmt.Errorf("income %q: %w", id, ErrNotFound)
	}
	income := s.ledger.incomes[i]
	s.ledger.incomes = slices.Delete(s.ledger.incomes, i, i+1)
	s.ledger.savings = slices.DeleteFunc(s.ledger.savings, func(e SavingsEntry) bool {
		return e.LinkedIncomeID == id
	})
	if s.resync {
		s.postAutoSavings(income.AutoSavings.Neg())
	}
	return s.persist()
}

// --- Expense ---

// ExpenseData carries the caller-supplied fields of a new expense.
type ExpenseData struct {
	Date           Date
	ExpenseType    ExpenseType
	Category       string
	SubCategory    string
	Amount         Amount
	PaidBy         PaymentMethod
	Note           string
	Responsibility string
}

// ExpenseUpdate holds the fields of an expense that may change; nil means keep.
type ExpenseUpdate struct {
	Date           *Date
	ExpenseType    *ExpenseType
	Category       *string
	SubCategory    *string
	Amount         *Amount
	PaidBy         *PaymentMethod
	Note           *string
	Responsibility *string
}

// AddExpense records an expense with a store-derived month key.
func (s *Store) AddExpense(d ExpenseData) (Expense, error) {
	if d.Date.IsZero() {
		d.Date = Today()
	}
	expense := Expense{
		ID:             newID(),
		Date:           d.Date,
		Month:          d.Date.MonthKey(),
		ExpenseType:    d.ExpenseType,
		Category:       d.Category,
		SubCategory:    d.SubCategory,
		Amount:         d.Amount,
		PaidBy:         d.PaidBy,
		Note:           d.Note,
		Responsibility: d.Responsibility,
	}
	s.ledger.expenses = append(s.ledger.expenses, expense)
	return expense, s.persist()
}

// UpdateExpense applies the partial update, recomputing the month key on a
// date change.
func (s *Store) UpdateExpense(id string, u ExpenseUpdate) (Expense, error) {
	i := slices.IndexFunc(s.ledger.expenses, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return Expense{}, fmt.Errorf("expense %q: %w", id, ErrNotFound)
	}
	expense := s.ledger.expenses[i]
	if u.Date != nil {
		expense.Date = *u.Date
		expense.Month = u.Date.MonthKey()
	}
	if u.ExpenseType != nil {
		expense.ExpenseType = *u.ExpenseType
	}
	if u.Category != nil {
		expense.Category = *u.Category
	}
	if u.SubCategory != nil {
		expense.SubCategory = *u.SubCategory
	}
	if u.Amount != nil {
		expense.Amount = *u.Amount
	}
	if u.PaidBy != nil {
		expense.PaidBy = *u.PaidBy
	}
	if u.Note != nil {
		expense.Note = *u.Note
	}
	if u.Responsibility != nil {
		expense.Responsibility = *u.Responsibility
	}
	s.ledger.expenses[i] = expense
	return expense, s.persist()
}

// DeleteExpense removes the expense.
func (s *Store) DeleteExpense(id string) error {
	i := slices.IndexFunc(s.ledger.expenses, func(e Expense) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("expense %q: %w", id, ErrNotFound)
	}
	s.ledger.expenses = slices.Delete(s.ledger.expenses, i, i+1)
	return s.persist()
}

// --- Budget ---

// BudgetData carries the caller-supplied fields of a new budget row. The
// month is user-entered in MMM-YYYY form; no uniqueness is enforced across
// (month, expense type).
type BudgetData struct {
	Month        string
	ExpenseType  ExpenseType
	BudgetAmount Amount
}

// BudgetUpdate holds the fields of a budget row that may change; nil means keep.
type BudgetUpdate struct {
	Month        *string
	ExpenseType  *ExpenseType
	BudgetAmount *Amount
}

// AddBudget records a budget row.
func (s *Store) AddBudget(d BudgetData) (Budget, error) {
	budget := Budget{
		ID:           newID(),
		Month:        d.Month,
		ExpenseType:  d.ExpenseType,
		BudgetAmount: d.BudgetAmount,
	}
	s.ledger.budgets = append(s.ledger.budgets, budget)
	return budget, s.persist()
}

// UpdateBudget applies the partial update.
func (s *Store) UpdateBudget(id string, u BudgetUpdate) (Budget, error) {
	i := slices.IndexFunc(s.ledger.budgets, func(b Budget) bool { return b.ID == id })
	if i < 0 {
		return Budget{}, fmt.Errorf("budget %q: %w", id, ErrNotFound)
	}
	budget := s.ledger.budgets[i]
	if u.Month != nil {
		budget.Month = *u.Month
	}
	if u.ExpenseType != nil {
		budget.ExpenseType = *u.ExpenseType
	}
	if u.BudgetAmount != nil {
		budget.BudgetAmount = *u.BudgetAmount
	}
	s.ledger.budgets[i] = budget
	return budget, s.persist()
}

// DeleteBudget removes the budget row.
func (s *Store) DeleteBudget(id string) error {
	i := slices.IndexFunc(s.ledger.budgets, func(b Budget) bool { return b.ID == id })
	if i < 0 {
		return fmt.Errorf("budget %q: %w", id, ErrNotFound)
	}
	s.ledger.budgets = slices.Delete(s.ledger.budgets, i, i+1)
	return s.persist()
}

// --- Savings ---

// SavingsData carries the caller-supplied fields of a new manual savings entry.
type SavingsData struct {
	Date      Date
	Account   SavingsAccount
	InAmount  Amount
	OutAmount Amount
	Purpose   string
}

// SavingsUpdate holds the fields of a savings entry that may change; nil means keep.
type SavingsUpdate struct {
	Date      *Date
	Account   *SavingsAccount
	InAmount  *Amount
	OutAmount *Amount
	Purpose   *string
}

// AddSavings records a user-entered Manual savings entry. Auto entries are
// only ever created as a side effect of AddIncome.
func (s *Store) AddSavings(d SavingsData) (SavingsEntry, error) {
	if d.Date.IsZero() {
		d.Date = Today()
	}
	entry := SavingsEntry{
		ID:          newID(),
		Date:        d.Date,
		SavingsType: SavingsManual,
		Account:     d.Account,
		InAmount:    d.InAmount,
		OutAmount:   d.OutAmount,
		Purpose:     d.Purpose,
	}
	s.ledger.savings = append(s.ledger.savings, entry)
	return entry, s.persist()
}

// UpdateSavings applies the partial update. Entries linked to an income are
// system-owned and rejected with ErrSystemOwned.
func (s *Store) UpdateSavings(id string, u SavingsUpdate) (SavingsEntry, error) {
	i := slices.IndexFunc(s.ledger.savings, func(e SavingsEntry) bool { return e.ID == id })
	if i < 0 {
		return SavingsEntry{}, fmt.Errorf("savings entry %q: %w", id, ErrNotFound)
	}
	entry := s.ledger.savings[i]
	if entry.LinkedIncomeID != "" {
		return SavingsEntry{}, fmt.Errorf("savings entry %q: %w", id, ErrSystemOwned)
	}
	if u.Date != nil {
		entry.Date = *u.Date
	}
	if u.Account != nil {
		entry.Account = *u.Account
	}
	if u.InAmount != nil {
		entry.InAmount = *u.InAmount
	}
	if u.OutAmount != nil {
		entry.OutAmount = *u.OutAmount
	}
	if u.Purpose != nil {
		entry.Purpose = *u.Purpose
	}
	s.ledger.savings[i] = entry
	return entry, s.persist()
}

// DeleteSavings removes a manual savings entry. Entries linked to an income
// are rejected with ErrSystemOwned; they go away with their income.
func (s *Store) DeleteSavings(id string) error {
	i := slices.IndexFunc(s.ledger.savings, func(e SavingsEntry) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("savings entry %q: %w", id, ErrNotFound)
	}
	if s.ledger.savings[i].LinkedIncomeID != "" {
		return fmt.Errorf("savings entry %q: %w", id, ErrSystemOwned)
	}
	s.ledger.savings = slices.Delete(s.ledger.savings, i, i+1)
	return s.persist()
}

// --- Loan ---

// LoanData carries the caller-supplied fields of a new loan.
type LoanData struct {
	Date       Date
	PersonName string
	LoanType   ExpenseType
	Direction  LoanDirection
	Amount     Amount
	InAmount   Amount
	OutAmount  Amount
	DueDate    Date
	Status     LoanStatus
	Note       string
}

// LoanUpdate holds the fields of a loan that may change; nil means keep.
// Amount is the original principal: setting it is always rejected with
// ErrPrincipalImmutable.
type LoanUpdate struct {
	Date       *Date
	Amount     *Amount
	PersonName *string
	LoanType   *ExpenseType
	Direction  *LoanDirection
	InAmount   *Amount
	OutAmount  *Amount
	DueDate    *Date
	Status     *LoanStatus
	Note       *string
}

// AddLoan records a loan. When the caller does not split the in/out amounts,
// the initiating transaction is seeded: a Given loan starts with
// outAmount = amount, a Taken loan with inAmount = amount. Status defaults
// to Open and is never auto-transitioned from the amounts.
func (s *Store) AddLoan(d LoanData) (Loan, error) {
	if d.Date.IsZero() {
		d.Date = Today()
	}
	if d.Status == "" {
		d.Status = LoanOpen
	}
	if d.InAmount.IsZero() && d.OutAmount.IsZero() {
		switch d.Direction {
		case Given:
			d.OutAmount = d.Amount
		case Taken:
			d.InAmount = d.Amount
		}
	}
	loan := Loan{
		ID:         newID(),
		Date:       d.Date,
		PersonName: d.PersonName,
		LoanType:   d.LoanType,
		Direction:  d.Direction,
		Amount:     d.Amount,
		InAmount:   d.InAmount,
		OutAmount:  d.OutAmount,
		DueDate:    d.DueDate,
		Status:     d.Status,
		Note:       d.Note,
	}
	s.ledger.loans = append(s.ledger.loans, loan)
	return loan, s.persist()
}

// UpdateLoan applies the partial update. The original principal cannot be
// changed.
func (s *Store) UpdateLoan(id string, u LoanUpdate) (Loan, error) {
	i := slices.IndexFunc(s.ledger.loans, func(lo Loan) bool { return lo.ID == id })
	if i < 0 {
		return Loan{}, fmt.Errorf("loan %q: %w", id, ErrNotFound)
	}
	loan := s.ledger.loans[i]
	if u.Amount != nil {
		return Loan{}, fmt.Errorf("loan %q: %w", id, ErrPrincipalImmutable)
	}
	if u.Date != nil {
		loan.Date = *u.Date
	}
	if u.PersonName != nil {
		loan.PersonName = *u.PersonName
	}
	if u.LoanType != nil {
		loan.LoanType = *u.LoanType
	}
	if u.Direction != nil {
		loan.Direction = *u.Direction
	}
	if u.InAmount != nil {
		loan.InAmount = *u.InAmount
	}
	if u.OutAmount != nil {
		loan.OutAmount = *u.OutAmount
	}
	if u.DueDate != nil {
		loan.DueDate = *u.DueDate
	}
	if u.Status != nil {
		loan.Status = *u.Status
	}
	if u.Note != nil {
		loan.Note = *u.Note
	}
	s.ledger.loans[i] = loan
	return loan, s.persist()
}

// DeleteLoan removes the loan.
func (s *Store) DeleteLoan(id string) error {
	i := slices.IndexFunc(s.ledger.loans, func(lo Loan) bool { return lo.ID == id })
	if i < 0 {
		return fmt.Errorf("loan %q: %w", id, ErrNotFound)
	}
	s.ledger.loans = slices.Delete(s.ledger.loans, i, i+1)
	return s.persist()
}

// --- Bank accounts ---

// BankAccountData carries the caller-supplied fields of a new bank account.
type BankAccountData struct {
	BankName       string
	AccountType    AccountType
	WalletType     WalletType
	OpeningBalance Amount
}

// BankAccountUpdate holds the fields of a bank account that may change; nil
// means keep. Balances are not updatable here: the current balance moves
// only through transfers and auto-savings postings.
type BankAccountUpdate struct {
	BankName    *string
	AccountType *AccountType
	WalletType  *WalletType
}

// AddBankAccount records a bank account with its current balance initialized
// to the opening balance.
func (s *Store) AddBankAccount(d BankAccountData) (BankAccount, error) {
	account := BankAccount{
		ID:             newID(),
		BankName:       d.BankName,
		AccountType:    d.AccountType,
		WalletType:     d.WalletType,
		OpeningBalance: d.OpeningBalance,
		CurrentBalance: d.OpeningBalance,
		CreatedAt:      Today(),
	}
	s.ledger.bankAccounts = append(s.ledger.bankAccounts, account)
	return account, s.persist()
}

// UpdateBankAccount applies the partial update.
func (s *Store) UpdateBankAccount(id string, u BankAccountUpdate) (BankAccount, error) {
	i := slices.IndexFunc(s.ledger.bankAccounts, func(a BankAccount) bool { return a.ID == id })
	if i < 0 {
		return BankAccount{}, fmt.Errorf("bank account %q: %w", id, ErrNotFound)
	}
	account := s.ledger.bankAccounts[i]
	if u.BankName != nil {
		account.BankName = *u.BankName
	}
	if u.AccountType != nil {
		account.AccountType = *u.AccountType
	}
	if u.WalletType != nil {
		account.WalletType = *u.WalletType
	}
	s.ledger.bankAccounts[i] = account
	return account, s.persist()
}

// DeleteBankAccount removes the account. Historical transfers and incomes
// that reference its id are left untouched; display layers fall back to
// Ledger.AccountLabel for the name.
func (s *Store) DeleteBankAccount(id string) error {
	i := slices.IndexFunc(s.ledger.bankAccounts, func(a BankAccount) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("bank account %q: %w", id, ErrNotFound)
	}
	s.ledger.bankAccounts = slices.Delete(s.ledger.bankAccounts, i, i+1)
	return s.persist()
}

// --- Transfers and cash ---

// TransferData carries the caller-supplied fields of a new transfer.
type TransferData struct {
	Date       Date
	FromType   EndpointType
	ToType     EndpointType
	FromBankID string
	ToBankID   string
	Amount     Amount
	Note       string
}

// AddTransfer applies exactly one debit and one credit between the cash pool
// and/or bank accounts, and records the movement. A side whose bank id does
// not resolve silently has no effect while the other side still applies.
func (s *Store) AddTransfer(d TransferData) (Transfer, error) {
	if !d.Amount.IsPositive() {
		return Transfer{}, fmt.Errorf("transfer amount must be positive, got %s", d.Amount)
	}
	if d.Date.IsZero() {
		d.Date = Today()
	}
	transfer := Transfer{
		ID:         newID(),
		Date:       d.Date,
		FromType:   d.FromType,
		ToType:     d.ToType,
		FromBankID: d.FromBankID,
		ToBankID:   d.ToBankID,
		Amount:     d.Amount,
		Note:       d.Note,
	}

	if d.FromType == EndpointCash {
		s.ledger.cashBalance = s.ledger.cashBalance.Sub(d.Amount)
	} else {
		s.adjustAccount(d.FromBankID, d.Amount.Neg())
	}
	if d.ToType == EndpointCash {
		s.ledger.cashBalance = s.ledger.cashBalance.Add(d.Amount)
	} else {
		s.adjustAccount(d.ToBankID, d.Amount)
	}

	s.ledger.transfers = append(s.ledger.transfers, transfer)
	return transfer, s.persist()
}

func (s *Store) adjustAccount(id string, delta Amount) {
	for i := range s.ledger.bankAccounts {
		if s.ledger.bankAccounts[i].ID == id {
			s.ledger.bankAccounts[i].CurrentBalance = s.ledger.bankAccounts[i].CurrentBalance.Add(delta)
			return
		}
	}
	log.Printf("transfer endpoint %q does not resolve, movement skipped on that side", id)
}

// SetCashBalance overwrites the cash scalar. No transfer record is created
// for manual cash adjustments.
func (s *Store) SetCashBalance(value Amount) error {
	s.ledger.cashBalance = value
	return s.persist()
}

// AdjustCashBalance adds a relative delta to the cash scalar. No transfer
// record is created for manual cash adjustments.
func (s *Store) AdjustCashBalance(delta Amount) error {
	s.ledger.cashBalance = s.ledger.cashBalance.Add(delta)
	return s.persist()
}

// --- Custom settings ---

// AddCustomExpenseCategory appends a user-defined expense category. Names
// already present, built-in or custom, are rejected with ErrDuplicate.
func (s *Store) AddCustomExpenseCategory(name string) error {
	if slices.Contains(DefaultExpenseCategories, name) ||
		slices.Contains(s.ledger.settings.CustomExpenseCategories, name) {
		return fmt.Errorf("expense category %q: %w", name, ErrDuplicate)
	}
	s.ledger.settings.CustomExpenseCategories = append(s.ledger.settings.CustomExpenseCategories, name)
	return s.persist()
}

// RemoveCustomExpenseCategory removes a user-defined expense category.
func (s *Store) RemoveCustomExpenseCategory(name string) error {
	s.ledger.settings.CustomExpenseCategories = slices.DeleteFunc(
		s.ledger.settings.CustomExpenseCategories,
		func(c string) bool { return c == name },
	)
	return s.persist()
}

// AddCustomIncomeSource appends a user-defined income source. Names already
// present, built-in or custom, are rejected with ErrDuplicate.
func (s *Store) AddCustomIncomeSource(name string) error {
	if slices.Contains(DefaultIncomeSources, name) ||
		slices.Contains(s.ledger.settings.CustomIncomeSources, name) {
		return fmt.Errorf("income source %q: %w", name, ErrDuplicate)
	}
	s.ledger.settings.CustomIncomeSources = append(s.ledger.settings.CustomIncomeSources, name)
	return s.persist()
}

// RemoveCustomIncomeSource removes a user-defined income source.
func (s *Store) RemoveCustomIncomeSource(name string) error {
	s.ledger.settings.CustomIncomeSources = slices.DeleteFunc(
		s.ledger.settings.CustomIncomeSources,
		func(c string) bool { return c == name },
	)
	return s.persist()
}

// SetBranding updates the app name, icon and logo.
func (s *Store) SetBranding(name, icon, logo string) error {
	s.ledger.settings.AppName = name
	s.ledger.settings.AppIcon = icon
	s.ledger.settings.AppLogo = logo
	return s.persist()
}

// SetCurrency sets the ISO code used by Amount formatting.
func (s *Store) SetCurrency(code string) error {
	s.ledger.settings.Currency = code
	return s.persist()
}

// SetAutoSavingsAccount designates the bank account that receives
// auto-savings postings from AddIncome. An empty id clears the designation;
// otherwise the account must exist.
func (s *Store) SetAutoSavingsAccount(id string) error {
	if id != "" && s.ledger.BankAccount(id) == nil {
		return fmt.Errorf("bank account %q: %w", id, ErrNotFound)
	}
	s.ledger.settings.AutoSavingsAccountID = id
	return s.persist()
}
