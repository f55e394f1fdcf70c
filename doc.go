// Package fintrack provides the types and functions behind the `fintrack`
// personal finance ledger. It is designed to be local-first and auditable: the
// whole ledger is a plain text file the user owns.
//
// The core functionalities include:
//   - Transactions: immutable, validated entries with a date, a time, a
//     description, a vendor and a signed amount (deposits are positive,
//     payments negative).
//   - Encoding: a canonical one-line, `|`-delimited encoding of a transaction
//     that always decodes back to the same transaction.
//   - Store: an append-only file of encoded transactions, tolerant to corrupted
//     lines when loading.
//   - Views: all transactions (most recent first), deposits only, payments only,
//     rendered as plain text.
//
// This package serves as the foundational logic for the `fintrack` command-line
// tool.
package fintrack
