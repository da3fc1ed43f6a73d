// Package reconcile contains the capacity-aware quantity logic behind the
// STOCK and UNSTOCK commands.
//
// The package is pure decision logic: callers fetch the warehouse limit, the
// current total occupancy and the existing stock row, and reconcile computes
// what to write. Keeping the arithmetic free of database access makes the
// clamping rules directly testable.
//
// # Shape
//
// Available computes how many units a request may move given the warehouse
// limit and its current total. PlanStock turns that number plus the existing
// row (or its absence) into a concrete insert/update mutation. For UNSTOCK,
// SkipUnstock gates whether anything should happen at all, and UnstockQty
// computes the clamped remaining quantity.
//
// # A note on UNSTOCK
//
// UNSTOCK deliberately reuses the same remaining-room formula as STOCK, even
// though unstocking is a reduction. The value is used only as a proceed/skip
// gate; the written quantity is always max(existing-requested, 0). This
// mirrors the long-standing command behavior and is covered by tests, so a
// rewrite with a "more sensible" formula would be an observable change.
package reconcile
