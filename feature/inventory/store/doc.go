// Package store provides the persistent CRUD layer for the product catalog,
// warehouses and stock rows.
//
// Every operation is a single unit of work against the database, and every
// failure is classified exactly once at this boundary into one of the
// sentinel kinds (ErrDuplicateKey, ErrConstraintViolation, ErrNotFound);
// anything unclassified propagates as-is and is treated as fatal by callers.
// Driver-specific error codes (SQLite constraint codes, MySQL error numbers)
// never leak past this package.
//
// The store does not enforce warehouse capacity; that is the reconcile
// logic's job. It does enforce key uniqueness and foreign keys, which is why
// the SQLite connection is opened with foreign_keys on.
package store
