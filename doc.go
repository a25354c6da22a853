// Package faktur provides the core engine for a small business's
// sales-invoice book. It is designed to be local-first: all data lives in a
// single flat file on disk, under the user's control.
//
// The core functionalities include:
//   - Record Registries: uniqueness-enforced lists of customer and product
//     names. Invoices store those names as text snapshots, so deleting or
//     renaming a registry entry never rewrites historical invoices.
//   - Invoice Book: creating, editing and deleting invoices. Every invoice
//     carries a unique, monotonically increasing number that is assigned
//     once and never reused; a reconciliation step repairs the number
//     counter against the stored invoices after every mutation.
//   - Report Filtering: predicate-based selection of invoices by date
//     components, customer and product, preserving book order.
//   - Backup: exporting the whole book as a portable JSON snapshot and
//     importing snapshots back, tolerating field aliases, localized digit
//     glyphs and other schema drift between exports.
//
// This package serves as the foundational logic for the `fk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package faktur
