// Package hisab provides the ledger engine for a single-user personal
// finance tracker. It records income, expenses, budgets, savings, loans,
// bank accounts and inter-account transfers, and derives monthly and yearly
// summaries (net worth, budget variance, loan balances) from that record.
//
// The package is split in two halves:
//   - Derivation Library: pure, side-effect-free functions over an immutable
//     ledger snapshot (budget variance, savings balances, loan positions,
//     month and year summaries, category breakdowns).
//   - Ledger Store: the single owner of the mutable ledger state. Every
//     mutation is a synchronous read-modify-write that preserves the
//     cross-entity invariants (auto-savings linkage, balance postings,
//     cascading deletes) and is followed by a full-snapshot persist through
//     an injected Storage collaborator.
//
// UI layers are expected to call the Store's mutation API and render values
// produced by the derivation functions; they never compute aggregates
// themselves.
package hisab
