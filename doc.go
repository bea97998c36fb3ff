// Package kirabuku provides the bookkeeping core for a small club's
// membership dues: members, their monthly payment records, and a general
// ledger of income and expense transactions.
//
// The core functionalities include:
//   - Entity Store: the single owner of the three collections, with lookup
//     helpers by id, natural key and back-reference.
//   - Reconciliation Engine: all cross-collection mutations, including the
//     cascade delete of a member and the payment toggle that derives (and
//     retracts) fee-income ledger entries from payment status.
//   - Derived Views: stateless projections such as dashboard totals,
//     month-bucketed cashflow and per-member session balances.
//   - Data Persistence: encoding of the whole state to a single
//     human-readable JSON file, compatible with exports of the legacy web
//     application.
//
// This package serves as the foundational logic for the `kira` command-line
// tool, ensuring that the payment matrix and the ledger can never drift out
// of sync.
package kirabuku
