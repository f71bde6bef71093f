// Package cashbook provides the types and functions to keep a personal cash
// ledger: a flat, append-only file of deposits and payments.
//
// The core functionalities include:
//   - Transaction Model: a deposit or a payment, its display form and its
//     single line storage form (see ParseTransaction and EncodeLine).
//   - Ledger Queries: stateless filters over a list of transactions, most
//     recent first, by sign, by calendar month or year, and by vendor.
//   - Summaries: totals of deposits and payments over a selection.
//   - Storage: the Store appends one line per transaction and loads the whole
//     file, skipping the lines it cannot read.
//   - Import and export: JSON documents from a bank, JSONL and YAML.
//
// This package serves as the foundational logic for the `cbk` command-line
// tool.
package cashbook
