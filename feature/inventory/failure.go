package inventory

import "fmt"

// Command verbs and subjects used in failure messages.
const (
	VerbAdding     = "ADDING"
	VerbStocking   = "STOCKING"
	VerbUnstocking = "UNSTOCKING"
	VerbListing    = "LISTING"

	SubjectProduct   = "PRODUCT"
	SubjectWarehouse = "WAREHOUSE"

	FieldSKU          = "SKU"
	FieldWarehouseNum = "WAREHOUSE#"
	FieldStockLimit   = "STOCK_LIMIT"
	FieldQty          = "QTY"
)

// Failure reason strings. These are part of the command contract and must
// not be reworded.
const (
	ReasonAlreadyExists        = "ALREADY EXISTS"
	ReasonWarehouseNotInteger  = "WAREHOUSE# NOT INTEGER"
	ReasonStockLimitNotInteger = "STOCK_LIMIT NOT INTEGER"
	ReasonQtyNotInteger        = "QTY NOT INTEGER"
	ReasonProductNotFound      = "PRODUCT DOES NOT EXIST"
	ReasonWarehouseNotFound    = "WAREHOUSE DOES NOT EXIST"
)

// Failure is a recoverable, user-facing command failure. It renders as the
// fixed two-line message
//
//	ERROR <VERB> <SUBJECT> with <FIELD> <value>
//	<REASON>
//
// and never stops the command loop.
type Failure struct {
	Verb    string
	Subject string
	Field   string
	Value   string
	Reason  string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("ERROR %s %s with %s %s\n%s", f.Verb, f.Subject, f.Field, f.Value, f.Reason)
}

// notInteger builds the argument-format failure for a non-integer value.
// The reason names the offending field.
func notInteger(verb, field, value string) *Failure {
	return &Failure{
		Verb:    verb,
		Subject: SubjectWarehouse,
		Field:   field,
		Value:   value,
		Reason:  field + " NOT INTEGER",
	}
}
