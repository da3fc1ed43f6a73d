package reconcile

// Op identifies the write a plan calls for.
type Op string

const (
	// OpInsert creates a new stock row.
	OpInsert Op = "insert"
	// OpUpdate overwrites the quantity of an existing stock row.
	OpUpdate Op = "update"
)

// Mutation is a planned write against the stock table.
type Mutation struct {
	// Op specifies the write to perform.
	Op Op

	// Qty is the quantity to store. It is the full new value, not a delta.
	Qty int
}
