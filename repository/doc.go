// Package repository provides the generic persistence contract used by the
// CRUD services, with a Bun implementation covering lookups, listing,
// pagination, insert-or-upsert saves and deletes on a *bun.DB or bun.Tx.
package repository
