// Package queries holds the read side of the shipping engine. Handlers run
// plain SQL against the same tables the repositories write and return flat
// response structs; they never load aggregates.
//
// Soft-deleted shipments are invisible to every query. Customers only see
// their own shipments; other shipments are reported as not found.
package queries
