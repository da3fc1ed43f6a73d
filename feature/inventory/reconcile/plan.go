package reconcile

// Available computes how many units of a requested shipment may move into a
// warehouse. limit is the warehouse capacity (nil means unbounded) and total
// is the summed quantity already stored across all products.
//
// When the shipment fits entirely under the limit the full request is
// granted; otherwise only the remaining room is. A warehouse already at or
// over its limit yields zero or a negative value, which callers pass through
// to the write unchanged (see package doc).
func Available(limit *int, total, requested int) int {
	if limit == nil {
		return requested
	}
	if *limit > requested+total {
		return requested
	}
	return *limit - total
}

// PlanStock decides the write for a STOCK command once Available has been
// computed and the existing row (if any) has been fetched. A missing row
// becomes an insert of the available quantity; an existing row becomes an
// update adding the available quantity on top of what is already stored.
func PlanStock(available, existingQty int, exists bool) Mutation {
	if !exists {
		return Mutation{Op: OpInsert, Qty: available}
	}
	return Mutation{Op: OpUpdate, Qty: existingQty + available}
}

// SkipUnstock reports whether an UNSTOCK command should complete without
// touching any row: either the warehouse holds nothing, or the room formula
// evaluated to exactly zero.
func SkipUnstock(total, available int) bool {
	return total == 0 || available == 0
}

// UnstockQty computes the quantity left after removing requested units from
// an existing row, clamped at zero. The reduction uses the raw requested
// quantity, never the Available value.
func UnstockQty(existingQty, requested int) int {
	if q := existingQty - requested; q > 0 {
		return q
	}
	return 0
}
